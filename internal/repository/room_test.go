package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizarena/tictactrivia-backend/internal/apperror"
	"github.com/quizarena/tictactrivia-backend/internal/entity"
	"github.com/quizarena/tictactrivia-backend/testing/suite"
)

const testRoomTTL = time.Hour

func TestRoomRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	roomRepo := NewRoomRepository(st.Storage, testRoomTTL)

	// Given: a fresh room
	room := entity.NewRoom("ABC123", "player-1", "Alice")

	// When: CreateOrUpdate is called
	err := roomRepo.CreateOrUpdate(ctx, room)

	// Then: no error, and the record carries the configured TTL
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "room:ABC123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, testRoomTTL)
}

func TestRoomRepository_GetByCode(t *testing.T) {
	t.Run("GetByCode_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage, testRoomTTL)

		// Given: a stored room
		room := entity.NewRoom("ABC123", "player-1", "Alice")
		require.NoError(t, roomRepo.CreateOrUpdate(ctx, room))

		// When: GetByCode is called
		retrieved, err := roomRepo.GetByCode(ctx, "ABC123")

		// Then: the retrieved room matches the saved one
		require.NoError(t, err)
		assert.Equal(t, room.Code, retrieved.Code)
		assert.Equal(t, room.Players, retrieved.Players)
		assert.Equal(t, room.Board.GameStatus, retrieved.Board.GameStatus)
	})

	t.Run("GetByCode_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage, testRoomTTL)

		// When: GetByCode is called with an unknown code
		_, err := roomRepo.GetByCode(ctx, "ZZZZZZ")

		// Then: ErrRoomNotFound is returned
		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})

	t.Run("GetByCode_DurableFallback", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a room written through one repository instance
		writer := NewRoomRepository(st.Storage, testRoomTTL)
		room := entity.NewRoom("ABC123", "player-1", "Alice")
		require.NoError(t, writer.CreateOrUpdate(ctx, room))

		// When: a second instance with a cold cache reads the same code
		reader := NewRoomRepository(st.Storage, testRoomTTL)
		retrieved, err := reader.GetByCode(ctx, "ABC123")

		// Then: the durable tier serves the record
		require.NoError(t, err)
		assert.Equal(t, room.Code, retrieved.Code)
		assert.Equal(t, room.Players, retrieved.Players)
	})

	t.Run("GetByCode_IndependentCopies", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage, testRoomTTL)

		room := entity.NewRoom("ABC123", "player-1", "Alice")
		require.NoError(t, roomRepo.CreateOrUpdate(ctx, room))

		// When: two reads hand out rooms and one is mutated
		first, err := roomRepo.GetByCode(ctx, "ABC123")
		require.NoError(t, err)
		first.Players["player-2"] = "Bob"

		second, err := roomRepo.GetByCode(ctx, "ABC123")
		require.NoError(t, err)

		// Then: the other read is unaffected
		assert.Len(t, second.Players, 1)
	})
}

func TestRoomRepository_DeleteByCode(t *testing.T) {
	ctx, st := suite.New(t)

	roomRepo := NewRoomRepository(st.Storage, testRoomTTL)

	// Given: a stored room
	room := entity.NewRoom("ABC123", "player-1", "Alice")
	require.NoError(t, roomRepo.CreateOrUpdate(ctx, room))

	// When: DeleteByCode is called
	err := roomRepo.DeleteByCode(ctx, "ABC123")

	// Then: the room is gone from both tiers
	require.NoError(t, err)
	_, err = roomRepo.GetByCode(ctx, "ABC123")
	require.ErrorIs(t, err, apperror.ErrRoomNotFound)

	exists, err := st.Storage.Exists(ctx, "room:ABC123").Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}
