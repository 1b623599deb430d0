package models

type Card struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Deck struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// Clone returns a deep copy so callers cannot alias the card slice.
func (d Deck) Clone() Deck {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)
	d.Cards = cards
	return d
}

// Direction is the last navigation step taken through the active deck.
type Direction int

const (
	Backward Direction = -1
	None     Direction = 0
	Forward  Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return "none"
	}
}

// Valid reports whether d is a step that Advance accepts.
func (d Direction) Valid() bool {
	return d == Backward || d == Forward
}
