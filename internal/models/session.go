package models

type DeckSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CardCount int    `json:"card_count"`
	Active    bool   `json:"active"`
}

// SessionState is the read-only view the presentation layer renders from.
type SessionState struct {
	Decks        []DeckSummary `json:"decks"`
	ActiveDeckID string        `json:"active_deck_id"`
	CurrentIndex int           `json:"current_index"`
	Total        int           `json:"total"`
	Direction    string        `json:"direction"`
	CurrentCard  *Card         `json:"current_card"`
}
