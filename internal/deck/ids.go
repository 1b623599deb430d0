package deck

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator mints opaque identifiers for decks and cards.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator returns random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator returns prefix-1, prefix-2, ... and is deterministic.
// Zero value is ready to use.
type SequenceGenerator struct {
	Prefix string
	next   int
}

func (g *SequenceGenerator) NewID() string {
	g.next++
	if g.Prefix == "" {
		return strconv.Itoa(g.next)
	}
	return g.Prefix + "-" + strconv.Itoa(g.next)
}
