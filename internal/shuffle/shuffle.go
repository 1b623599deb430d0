// Package shuffle reorders card sequences.
package shuffle

import (
	"math/rand/v2"

	"github.com/vytor/dialoguedeck/internal/models"
)

// Engine produces uniform random permutations (Fisher-Yates).
type Engine struct {
	rng *rand.Rand
}

// New returns an Engine drawing from src. A nil src uses a randomly seeded
// PCG source.
func New(src rand.Source) *Engine {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Engine{rng: rand.New(src)}
}

// NewSeeded returns an Engine whose output is reproducible for the seed.
func NewSeeded(seed uint64) *Engine {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Permute returns a reordered copy of cards. The input is left untouched.
func (e *Engine) Permute(cards []models.Card) []models.Card {
	out := make([]models.Card, len(cards))
	copy(out, cards)
	e.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
