package deck

import (
	"github.com/vytor/dialoguedeck/internal/errors"
	"github.com/vytor/dialoguedeck/internal/models"
)

// Navigator tracks the active deck and the card shown from it. It reads
// deck contents from the repository on every call, so it never holds a
// stale copy of the cards.
type Navigator struct {
	repo      *Repository
	activeID  string
	index     int
	direction models.Direction
}

func NewNavigator(repo *Repository) *Navigator {
	return &Navigator{repo: repo}
}

func (n *Navigator) ActiveDeckID() string {
	return n.activeID
}

func (n *Navigator) Index() int {
	return n.index
}

func (n *Navigator) Direction() models.Direction {
	return n.direction
}

// Select makes the deck active and rewinds to its first card.
func (n *Navigator) Select(id string) error {
	if _, ok := n.repo.Deck(id); !ok {
		return errors.NewNotFoundError("deck", id)
	}
	n.activeID = id
	n.index = 0
	n.direction = models.None
	return nil
}

// Clear drops the selection entirely.
func (n *Navigator) Clear() {
	n.activeID = ""
	n.index = 0
	n.direction = models.None
}

// Reset rewinds to the first card without changing the selection.
func (n *Navigator) Reset() {
	n.index = 0
}

// Advance steps one card forward or backward with wraparound. An empty or
// missing active deck is a no-op.
func (n *Navigator) Advance(dir models.Direction) error {
	if !dir.Valid() {
		return errors.NewValidationError("direction", "must be +1 or -1")
	}
	total := n.total()
	if total == 0 {
		n.index = 0
		return nil
	}
	n.index = (n.index + int(dir) + total) % total
	n.direction = dir
	return nil
}

// Current returns the card at the current index of the active deck.
func (n *Navigator) Current() (models.Card, bool) {
	d, ok := n.repo.Deck(n.activeID)
	if !ok || n.index < 0 || n.index >= len(d.Cards) {
		return models.Card{}, false
	}
	return d.Cards[n.index], true
}

// Position returns the zero-based index and the active deck's card count.
func (n *Navigator) Position() (int, int) {
	return n.index, n.total()
}

func (n *Navigator) total() int {
	d, ok := n.repo.Deck(n.activeID)
	if !ok {
		return 0
	}
	return len(d.Cards)
}
