// Package deck holds the in-memory collection of decks and the carousel
// position over the active one. Nothing here performs I/O; persistence is
// layered on top by the session service.
package deck

import (
	"fmt"
	"strings"

	"github.com/vytor/dialoguedeck/internal/errors"
	"github.com/vytor/dialoguedeck/internal/models"
)

const maxIDAttempts = 16

// Repository owns the ordered collection of decks. It is not safe for
// concurrent use; callers serialize access.
type Repository struct {
	decks []models.Deck
	ids   IDGenerator
}

// NewRepository creates an empty repository. A nil generator falls back to
// UUIDGenerator.
func NewRepository(ids IDGenerator) *Repository {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Repository{ids: ids}
}

// Load replaces the whole collection. The decks are copied.
func (r *Repository) Load(decks []models.Deck) {
	r.decks = make([]models.Deck, 0, len(decks))
	for _, d := range decks {
		r.decks = append(r.decks, d.Clone())
	}
}

// Decks returns a deep copy of the collection in order.
func (r *Repository) Decks() []models.Deck {
	out := make([]models.Deck, len(r.decks))
	for i, d := range r.decks {
		out[i] = d.Clone()
	}
	return out
}

func (r *Repository) Len() int {
	return len(r.decks)
}

// Deck returns a copy of the deck with the given id.
func (r *Repository) Deck(id string) (models.Deck, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return models.Deck{}, false
	}
	return r.decks[i].Clone(), true
}

// First returns the first deck in the collection, if any.
func (r *Repository) First() (models.Deck, bool) {
	if len(r.decks) == 0 {
		return models.Deck{}, false
	}
	return r.decks[0].Clone(), true
}

func (r *Repository) CreateDeck(name string) (models.Deck, error) {
	if isBlank(name) {
		return models.Deck{}, errors.NewValidationError("name", "must not be empty")
	}
	id, err := r.uniqueID(func(id string) bool { return r.indexOf(id) >= 0 })
	if err != nil {
		return models.Deck{}, err
	}
	d := models.Deck{ID: id, Name: name, Cards: []models.Card{}}
	r.decks = append(r.decks, d)
	return d.Clone(), nil
}

func (r *Repository) DeleteDeck(id string) error {
	i := r.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("deck", id)
	}
	r.decks = append(r.decks[:i], r.decks[i+1:]...)
	return nil
}

func (r *Repository) CreateCard(deckID, text string) (models.Card, error) {
	if isBlank(text) {
		return models.Card{}, errors.NewValidationError("text", "must not be empty")
	}
	i := r.indexOf(deckID)
	if i < 0 {
		return models.Card{}, errors.NewNotFoundError("deck", deckID)
	}
	d := &r.decks[i]
	id, err := r.uniqueID(func(id string) bool { return cardIndex(d.Cards, id) >= 0 })
	if err != nil {
		return models.Card{}, err
	}
	c := models.Card{ID: id, Text: text}
	d.Cards = append(d.Cards, c)
	return c, nil
}

func (r *Repository) DeleteCard(deckID, cardID string) error {
	i := r.indexOf(deckID)
	if i < 0 {
		return errors.NewNotFoundError("deck", deckID)
	}
	d := &r.decks[i]
	j := cardIndex(d.Cards, cardID)
	if j < 0 {
		return errors.NewNotFoundError("card", cardID)
	}
	cards := make([]models.Card, 0, len(d.Cards)-1)
	cards = append(cards, d.Cards[:j]...)
	cards = append(cards, d.Cards[j+1:]...)
	d.Cards = cards
	return nil
}

// ReplaceCards swaps the deck's card sequence for a reordering of the same
// cards. Anything that is not a permutation of the current sequence is
// rejected.
func (r *Repository) ReplaceCards(deckID string, cards []models.Card) error {
	i := r.indexOf(deckID)
	if i < 0 {
		return errors.NewNotFoundError("deck", deckID)
	}
	if !samePermutation(r.decks[i].Cards, cards) {
		return errors.NewValidationError("cards", "must be a reordering of the deck's cards")
	}
	replaced := make([]models.Card, len(cards))
	copy(replaced, cards)
	r.decks[i].Cards = replaced
	return nil
}

func (r *Repository) indexOf(id string) int {
	for i := range r.decks {
		if r.decks[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) uniqueID(taken func(string) bool) (string, error) {
	for range maxIDAttempts {
		id := r.ids.NewID()
		if id != "" && !taken(id) {
			return id, nil
		}
	}
	return "", errors.NewInternalError(fmt.Errorf("no unique id after %d attempts", maxIDAttempts))
}

func cardIndex(cards []models.Card, id string) int {
	for i := range cards {
		if cards[i].ID == id {
			return i
		}
	}
	return -1
}

func samePermutation(a, b []models.Card) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[models.Card]int, len(a))
	for _, c := range a {
		counts[c]++
	}
	for _, c := range b {
		if counts[c] == 0 {
			return false
		}
		counts[c]--
	}
	return true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
