package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_RecordResult(t *testing.T) {
	t.Run("First win creates the row", func(t *testing.T) {
		ctx, st := newTestSQLite(t)

		playerRepo := NewPlayerRepository(st.Connection)

		// When: a win is recorded for an unknown name
		err := playerRepo.RecordResult(ctx, "alice", true)

		// Then: the row exists with one game, one win, one point
		require.NoError(t, err)

		ranking, err := playerRepo.Ranking(ctx, 10)
		require.NoError(t, err)
		require.Len(t, ranking, 1)
		assert.Equal(t, "alice", ranking[0].Name)
		assert.Equal(t, 1, ranking[0].Games)
		assert.Equal(t, 1, ranking[0].Wins)
		assert.Equal(t, 1, ranking[0].Points)
		assert.InDelta(t, 100.0, ranking[0].WinRate, 0.01)
	})

	t.Run("Results accumulate", func(t *testing.T) {
		ctx, st := newTestSQLite(t)

		playerRepo := NewPlayerRepository(st.Connection)

		// Given: a win and a loss for the same name
		require.NoError(t, playerRepo.RecordResult(ctx, "alice", true))
		require.NoError(t, playerRepo.RecordResult(ctx, "alice", false))

		// Then: counters and win rate reflect both games
		ranking, err := playerRepo.Ranking(ctx, 10)
		require.NoError(t, err)
		require.Len(t, ranking, 1)
		assert.Equal(t, 2, ranking[0].Games)
		assert.Equal(t, 1, ranking[0].Wins)
		assert.Equal(t, 1, ranking[0].Losses)
		assert.InDelta(t, 50.0, ranking[0].WinRate, 0.01)
	})
}

func TestPlayerRepository_Ranking(t *testing.T) {
	ctx, st := newTestSQLite(t)

	playerRepo := NewPlayerRepository(st.Connection)

	// Given: alice with two wins, bob with one win and one loss, carol with losses only
	require.NoError(t, playerRepo.RecordResult(ctx, "alice", true))
	require.NoError(t, playerRepo.RecordResult(ctx, "alice", true))
	require.NoError(t, playerRepo.RecordResult(ctx, "bob", true))
	require.NoError(t, playerRepo.RecordResult(ctx, "bob", false))
	require.NoError(t, playerRepo.RecordResult(ctx, "carol", false))
	require.NoError(t, playerRepo.RecordResult(ctx, "carol", false))

	// When: the ranking is queried
	ranking, err := playerRepo.Ranking(ctx, 10)

	// Then: order follows points, then win rate
	require.NoError(t, err)
	require.Len(t, ranking, 3)
	assert.Equal(t, "alice", ranking[0].Name)
	assert.Equal(t, "bob", ranking[1].Name)
	assert.Equal(t, "carol", ranking[2].Name)

	// Then: the limit caps the result
	top, err := playerRepo.Ranking(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "alice", top[0].Name)
}
