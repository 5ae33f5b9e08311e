package services

import (
	"context"
	"testing"

	"github.com/Yoon-Seong-hyun/pajuon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckOpen_FiltersByPreferenceTag(t *testing.T) {
	f := newEngineFixture([]models.Profile{
		candidate("a", "male"),
		candidate("b", "female"),
		candidate("c", "male"),
		candidate("d", "female"),
	})

	current, err := f.deck.Open(context.Background(), "a", "female")
	require.NoError(t, err)
	assert.Equal(t, "female", current.GenderTag)

	// Walk a full cycle: only female candidates should ever come up.
	seen := map[string]bool{current.ProfileID: true}
	for i := 0; i < 3; i++ {
		next, err := f.deck.Advance("a")
		require.NoError(t, err)
		assert.Equal(t, "female", next.GenderTag)
		seen[next.ProfileID] = true
	}
	assert.NotContains(t, seen, "a")
	assert.NotContains(t, seen, "c")
}

func TestDeckOpen_ExcludesPriorTargets(t *testing.T) {
	f := newEngineFixture([]models.Profile{
		candidate("a", "male"),
		candidate("b", "female"),
		candidate("d", "female"),
	})
	require.NoError(t, f.interactions.Record(context.Background(), NewInteraction("a", "b", models.ActionLike, 5, "")))

	current, err := f.deck.Open(context.Background(), "a", "female")
	require.NoError(t, err)
	assert.Equal(t, "d", current.ProfileID)

	// The excluded target must not reappear anywhere in the cycle.
	for i := 0; i < 4; i++ {
		next, err := f.deck.Advance("a")
		require.NoError(t, err)
		assert.NotEqual(t, "b", next.ProfileID)
	}
}

func TestDeckOpen_FallbackWhenFilterEmpty(t *testing.T) {
	f := newEngineFixture([]models.Profile{
		candidate("a", "male"),
		candidate("c", "male"),
	})

	// No female candidates exist; the default pool is shown instead of nothing.
	current, err := f.deck.Open(context.Background(), "a", "female")
	require.NoError(t, err)
	assert.Equal(t, "c", current.ProfileID)
}

func TestDeckOpen_EmptyDirectory(t *testing.T) {
	f := newEngineFixture([]models.Profile{candidate("a", "male")})

	_, err := f.deck.Open(context.Background(), "a", "female")
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestDeckAdvance_WrapsOnExhaustion(t *testing.T) {
	f := newEngineFixture([]models.Profile{
		candidate("a", "male"),
		candidate("b", "female"),
		candidate("d", "female"),
	})

	first, err := f.deck.Open(context.Background(), "a", "female")
	require.NoError(t, err)

	second, err := f.deck.Advance("a")
	require.NoError(t, err)
	assert.NotEqual(t, first.ProfileID, second.ProfileID)

	wrapped, err := f.deck.Advance("a")
	require.NoError(t, err)
	assert.Equal(t, first.ProfileID, wrapped.ProfileID)
}

func TestDeckCurrent_NoSession(t *testing.T) {
	f := newEngineFixture(nil)

	_, err := f.deck.Current("a")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = f.deck.Advance("a")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestDeckClose_DropsSession(t *testing.T) {
	f := newEngineFixture([]models.Profile{
		candidate("a", "male"),
		candidate("b", "female"),
	})

	_, err := f.deck.Open(context.Background(), "a", "female")
	require.NoError(t, err)

	f.deck.Close("a")
	_, err = f.deck.Current("a")
	assert.ErrorIs(t, err, ErrNoSession)
}
