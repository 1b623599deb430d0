// Package codec converts a deck collection to and from its stored JSON form.
//
// The stored form is a JSON array of decks:
//
//	[{"id": "...", "name": "...", "cards": [{"id": "...", "text": "..."}]}]
//
// Older data stored each card as a bare string; those are accepted on read
// and given fresh ids. Writes always use the object form.
package codec

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/vytor/dialoguedeck/internal/deck"
	"github.com/vytor/dialoguedeck/internal/models"
)

// ErrCorrupt wraps every reason a stored collection was rejected.
var ErrCorrupt = stderrors.New("stored collection is corrupt")

const maxIDAttempts = 16

type Codec struct {
	ids deck.IDGenerator
}

// New returns a Codec that mints ids for legacy cards from ids. A nil
// generator falls back to deck.UUIDGenerator.
func New(ids deck.IDGenerator) *Codec {
	if ids == nil {
		ids = deck.UUIDGenerator{}
	}
	return &Codec{ids: ids}
}

// Encode serializes the whole collection.
func (c *Codec) Encode(decks []models.Deck) ([]byte, error) {
	out := make([]models.Deck, len(decks))
	for i, d := range decks {
		out[i] = d.Clone()
	}
	return json.Marshal(out)
}

type storedDeck struct {
	ID    *string           `json:"id"`
	Name  *string           `json:"name"`
	Cards []json.RawMessage `json:"cards"`
}

type storedCard struct {
	ID   string  `json:"id"`
	Text *string `json:"text"`
}

// Decode parses a stored collection. Any structural problem yields an
// error wrapping ErrCorrupt; the result is then unusable as a whole.
// Stored names and texts only need to be non-empty. Whitespace-only values
// written by older versions are kept as they are.
func (c *Codec) Decode(data []byte) ([]models.Deck, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, corrupt("empty payload")
	}
	if trimmed[0] != '[' {
		return nil, corrupt("top level is not an array")
	}

	var raw []storedDeck
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	decks := make([]models.Deck, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, sd := range raw {
		if sd.ID == nil || *sd.ID == "" {
			return nil, corrupt("deck %d has no id", i)
		}
		if sd.Name == nil || *sd.Name == "" {
			return nil, corrupt("deck %s has no name", *sd.ID)
		}
		if seen[*sd.ID] {
			return nil, corrupt("duplicate deck id %s", *sd.ID)
		}
		seen[*sd.ID] = true

		cards, err := c.decodeCards(*sd.ID, sd.Cards)
		if err != nil {
			return nil, err
		}
		decks = append(decks, models.Deck{ID: *sd.ID, Name: *sd.Name, Cards: cards})
	}
	return decks, nil
}

func (c *Codec) decodeCards(deckID string, raw []json.RawMessage) ([]models.Card, error) {
	cards := make([]models.Card, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, msg := range raw {
		card, err := parseCard(msg)
		if err != nil {
			return nil, corrupt("deck %s card %d: %v", deckID, i, err)
		}
		if card.ID == "" || seen[card.ID] {
			id, err := c.freshID(seen)
			if err != nil {
				return nil, err
			}
			card.ID = id
		}
		seen[card.ID] = true
		cards = append(cards, card)
	}
	return cards, nil
}

func parseCard(msg json.RawMessage) (models.Card, error) {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 {
		return models.Card{}, stderrors.New("empty card")
	}
	switch msg[0] {
	case '"':
		var text string
		if err := json.Unmarshal(msg, &text); err != nil {
			return models.Card{}, err
		}
		if text == "" {
			return models.Card{}, stderrors.New("empty text")
		}
		return models.Card{Text: text}, nil
	case '{':
		var sc storedCard
		if err := json.Unmarshal(msg, &sc); err != nil {
			return models.Card{}, err
		}
		if sc.Text == nil || *sc.Text == "" {
			return models.Card{}, stderrors.New("empty text")
		}
		return models.Card{ID: sc.ID, Text: *sc.Text}, nil
	default:
		return models.Card{}, stderrors.New("card is neither a string nor an object")
	}
}

func (c *Codec) freshID(taken map[string]bool) (string, error) {
	for range maxIDAttempts {
		id := c.ids.NewID()
		if id != "" && !taken[id] {
			return id, nil
		}
	}
	return "", fmt.Errorf("no unique card id after %d attempts", maxIDAttempts)
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
}
