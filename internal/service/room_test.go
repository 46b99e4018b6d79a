package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizarena/tictactrivia-backend/internal/apperror"
	"github.com/quizarena/tictactrivia-backend/internal/entity"
)

type fakeRoomRepo struct {
	rooms map[string]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]*entity.Room)}
}

func (that *fakeRoomRepo) CreateOrUpdate(_ context.Context, room *entity.Room) error {
	that.rooms[room.Code] = room
	return nil
}

func (that *fakeRoomRepo) GetByCode(_ context.Context, code string) (*entity.Room, error) {
	room, ok := that.rooms[code]
	if !ok {
		return nil, apperror.ErrRoomNotFound
	}
	return room, nil
}

func (that *fakeRoomRepo) DeleteByCode(_ context.Context, code string) error {
	delete(that.rooms, code)
	return nil
}

func TestRoomService_CreateRoom(t *testing.T) {
	ctx := context.Background()

	// Given: an empty store
	roomRepo := newFakeRoomRepo()
	rooms := NewRoomService(roomRepo)

	// When: a room is created
	room, playerID, err := rooms.CreateRoom(ctx, "Alice")

	// Then: the room is persisted with a six-character code and the creator inside
	require.NoError(t, err)
	assert.Len(t, room.Code, 6)
	assert.NotEmpty(t, playerID)
	assert.True(t, room.HasPlayer(playerID))
	assert.Equal(t, "Alice", room.NameOf(playerID))
	assert.Equal(t, entity.StatusWaiting, room.Board.GameStatus)

	stored, err := roomRepo.GetByCode(ctx, room.Code)
	require.NoError(t, err)
	assert.Equal(t, room.Code, stored.Code)
}

func TestRoomService_JoinRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("Second player joins and the game starts", func(t *testing.T) {
		// Given: a waiting room
		roomRepo := newFakeRoomRepo()
		rooms := NewRoomService(roomRepo)
		created, _, err := rooms.CreateRoom(ctx, "Alice")
		require.NoError(t, err)

		// When: the second player joins
		joined, joinerID, err := rooms.JoinRoom(ctx, created.Code, "Bob")

		// Then: the joiner holds O and the persisted room is playing
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, joined.MarkOf(joinerID))
		assert.Equal(t, entity.StatusPlaying, joined.Board.GameStatus)

		stored, err := roomRepo.GetByCode(ctx, created.Code)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.PlayerCount())
	})

	t.Run("Error when room does not exist", func(t *testing.T) {
		rooms := NewRoomService(newFakeRoomRepo())

		_, _, err := rooms.JoinRoom(ctx, "ZZZZZZ", "Bob")

		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})

	t.Run("Error when room is full", func(t *testing.T) {
		// Given: a full room
		roomRepo := newFakeRoomRepo()
		rooms := NewRoomService(roomRepo)
		created, _, err := rooms.CreateRoom(ctx, "Alice")
		require.NoError(t, err)
		_, _, err = rooms.JoinRoom(ctx, created.Code, "Bob")
		require.NoError(t, err)

		// When: a third player tries
		_, _, err = rooms.JoinRoom(ctx, created.Code, "Carol")

		// Then: ErrRoomFull must be returned
		require.ErrorIs(t, err, apperror.ErrRoomFull)
	})
}
