package deck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/dialoguedeck/internal/deck"
	"github.com/vytor/dialoguedeck/internal/errors"
	"github.com/vytor/dialoguedeck/internal/models"
)

func newDeckWithCards(t *testing.T, texts ...string) (*deck.Repository, models.Deck) {
	t.Helper()
	repo := deck.NewRepository(&deck.SequenceGenerator{})
	d, err := repo.CreateDeck("Icebreakers")
	require.NoError(t, err)
	for _, text := range texts {
		_, err := repo.CreateCard(d.ID, text)
		require.NoError(t, err)
	}
	d, _ = repo.Deck(d.ID)
	return repo, d
}

func TestAdvance_WrapsForward(t *testing.T) {
	repo, d := newDeckWithCards(t, "A", "B", "C")
	nav := deck.NewNavigator(repo)
	require.NoError(t, nav.Select(d.ID))

	require.NoError(t, nav.Advance(models.Forward))
	require.NoError(t, nav.Advance(models.Forward))
	card, ok := nav.Current()
	require.True(t, ok)
	assert.Equal(t, 2, nav.Index())
	assert.Equal(t, "C", card.Text)

	require.NoError(t, nav.Advance(models.Forward))
	card, _ = nav.Current()
	assert.Equal(t, 0, nav.Index())
	assert.Equal(t, "A", card.Text)
	assert.Equal(t, models.Forward, nav.Direction())
}

func TestAdvance_CircularArithmetic(t *testing.T) {
	for n := 1; n <= 5; n++ {
		texts := make([]string, n)
		for i := range texts {
			texts[i] = string(rune('A' + i))
		}
		repo, d := newDeckWithCards(t, texts...)
		nav := deck.NewNavigator(repo)
		require.NoError(t, nav.Select(d.ID))

		for i := 0; i < n; i++ {
			for range i {
				require.NoError(t, nav.Advance(models.Forward))
			}
			require.Equal(t, i, nav.Index())

			require.NoError(t, nav.Advance(models.Forward))
			assert.Equal(t, (i+1)%n, nav.Index())
			require.NoError(t, nav.Advance(models.Backward))
			require.NoError(t, nav.Advance(models.Backward))
			assert.Equal(t, (i-1+n)%n, nav.Index())

			require.NoError(t, nav.Select(d.ID))
		}
	}
}

func TestAdvance_BackwardFromZeroWraps(t *testing.T) {
	repo, d := newDeckWithCards(t, "A", "B", "C")
	nav := deck.NewNavigator(repo)
	require.NoError(t, nav.Select(d.ID))

	require.NoError(t, nav.Advance(models.Backward))
	assert.Equal(t, 2, nav.Index())
	assert.Equal(t, models.Backward, nav.Direction())
}

func TestAdvance_EmptyDeckIsNoOp(t *testing.T) {
	repo, d := newDeckWithCards(t)
	nav := deck.NewNavigator(repo)
	require.NoError(t, nav.Select(d.ID))

	require.NoError(t, nav.Advance(models.Forward))
	require.NoError(t, nav.Advance(models.Backward))

	assert.Equal(t, 0, nav.Index())
	assert.Equal(t, models.None, nav.Direction())
	_, ok := nav.Current()
	assert.False(t, ok)
}

func TestAdvance_NoSelectionIsNoOp(t *testing.T) {
	repo, _ := newDeckWithCards(t, "A")
	nav := deck.NewNavigator(repo)

	require.NoError(t, nav.Advance(models.Forward))
	assert.Equal(t, 0, nav.Index())
	_, ok := nav.Current()
	assert.False(t, ok)
}

func TestAdvance_RejectsInvalidDirection(t *testing.T) {
	repo, d := newDeckWithCards(t, "A", "B")
	nav := deck.NewNavigator(repo)
	require.NoError(t, nav.Select(d.ID))

	for _, dir := range []models.Direction{models.None, 2, -3} {
		err := nav.Advance(dir)
		assert.True(t, errors.IsValidation(err))
		assert.Equal(t, 0, nav.Index())
	}
}

func TestSelect(t *testing.T) {
	repo, d := newDeckWithCards(t, "A", "B")
	other, _ := repo.CreateDeck("Other")
	nav := deck.NewNavigator(repo)

	require.NoError(t, nav.Select(d.ID))
	require.NoError(t, nav.Advance(models.Forward))

	err := nav.Select("missing")
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, d.ID, nav.ActiveDeckID())
	assert.Equal(t, 1, nav.Index())

	require.NoError(t, nav.Select(other.ID))
	assert.Equal(t, other.ID, nav.ActiveDeckID())
	assert.Equal(t, 0, nav.Index())
	assert.Equal(t, models.None, nav.Direction())

	require.NoError(t, nav.Select(d.ID))
	assert.Equal(t, 0, nav.Index())
}

func TestPositionAndClear(t *testing.T) {
	repo, d := newDeckWithCards(t, "A", "B", "C")
	nav := deck.NewNavigator(repo)
	require.NoError(t, nav.Select(d.ID))
	require.NoError(t, nav.Advance(models.Forward))

	idx, total := nav.Position()
	assert.Equal(t, 1, idx)
	assert.Equal(t, 3, total)

	nav.Reset()
	assert.Equal(t, 0, nav.Index())
	assert.Equal(t, d.ID, nav.ActiveDeckID())

	nav.Clear()
	assert.Empty(t, nav.ActiveDeckID())
	idx, total = nav.Position()
	assert.Zero(t, idx)
	assert.Zero(t, total)
}
