package shuffle_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/dialoguedeck/internal/models"
	"github.com/vytor/dialoguedeck/internal/shuffle"
)

func cardsOf(n int) []models.Card {
	cards := make([]models.Card, n)
	for i := range cards {
		cards[i] = models.Card{ID: fmt.Sprintf("c%d", i), Text: fmt.Sprintf("prompt %d", i)}
	}
	return cards
}

func sortedIDs(cards []models.Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	sort.Strings(ids)
	return ids
}

func TestPermute_IsPermutation(t *testing.T) {
	engine := shuffle.New(nil)
	for n := 0; n <= 12; n++ {
		in := cardsOf(n)
		for range 20 {
			out := engine.Permute(in)
			require.Len(t, out, n)
			assert.Equal(t, sortedIDs(in), sortedIDs(out))
			assert.ElementsMatch(t, in, out)
		}
	}
}

func TestPermute_DoesNotModifyInput(t *testing.T) {
	in := cardsOf(8)
	snapshot := append([]models.Card(nil), in...)

	_ = shuffle.NewSeeded(7).Permute(in)

	assert.Equal(t, snapshot, in)
}

func TestPermute_SeededIsReproducible(t *testing.T) {
	in := cardsOf(10)
	a := shuffle.NewSeeded(42).Permute(in)
	b := shuffle.NewSeeded(42).Permute(in)
	assert.Equal(t, a, b)
}

func TestPermute_ReachesEveryOrderingOfThree(t *testing.T) {
	engine := shuffle.NewSeeded(1)
	in := cardsOf(3)
	seen := map[string]int{}
	const rounds = 6000
	for range rounds {
		out := engine.Permute(in)
		seen[out[0].ID+out[1].ID+out[2].ID]++
	}

	require.Len(t, seen, 6)
	for order, count := range seen {
		// Expected 1000 each; a uniform shuffle stays well inside this band.
		assert.InDelta(t, rounds/6, count, 200, "ordering %s", order)
	}
}
