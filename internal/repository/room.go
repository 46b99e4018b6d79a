package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quizarena/tictactrivia-backend/internal/apperror"
	"github.com/quizarena/tictactrivia-backend/internal/entity"
)

type RoomRepository interface {
	CreateOrUpdate(ctx context.Context, room *entity.Room) error
	GetByCode(ctx context.Context, code string) (*entity.Room, error)
	DeleteByCode(ctx context.Context, code string) error
}

// dbRoom is a read-through/write-through store: an in-process cache of the
// marshaled records in front of redis. Every write hits both tiers; a read
// that misses the cache falls back to redis and backfills, so a room created
// before a process restart (or by another handler path) is still joinable.
// The cache holds marshaled bytes rather than shared pointers, so each read
// hands out an independent Room value.
type dbRoom struct {
	client *redis.Client
	ttl    time.Duration

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewRoomRepository builds the room store. ttl bounds how long an abandoned
// room survives in redis; zero keeps records forever.
func NewRoomRepository(client *redis.Client, ttl time.Duration) RoomRepository {
	return &dbRoom{
		client: client,
		ttl:    ttl,
		cache:  make(map[string][]byte),
	}
}

func (that *dbRoom) CreateOrUpdate(ctx context.Context, room *entity.Room) error {
	roomJSON, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("could not marshal room: %w", err)
	}

	roomKey := "room:" + room.Code
	if err = that.client.Set(ctx, roomKey, roomJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set room: %w", err)
	}

	that.mu.Lock()
	that.cache[room.Code] = roomJSON
	that.mu.Unlock()

	return nil
}

func (that *dbRoom) GetByCode(ctx context.Context, code string) (*entity.Room, error) {
	that.mu.RLock()
	roomJSON, ok := that.cache[code]
	that.mu.RUnlock()

	if !ok {
		roomKey := "room:" + code

		response, err := that.client.Get(ctx, roomKey).Result()
		if errors.Is(err, redis.Nil) {
			return nil, apperror.ErrRoomNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get room by code: %w", err)
		}

		roomJSON = []byte(response)

		that.mu.Lock()
		that.cache[code] = roomJSON
		that.mu.Unlock()
	}

	var existingRoom entity.Room
	if err := json.Unmarshal(roomJSON, &existingRoom); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &existingRoom, nil
}

func (that *dbRoom) DeleteByCode(ctx context.Context, code string) error {
	that.mu.Lock()
	delete(that.cache, code)
	that.mu.Unlock()

	roomKey := "room:" + code
	if err := that.client.Del(ctx, roomKey).Err(); err != nil {
		return fmt.Errorf("failed to delete room by code: %w", err)
	}

	return nil
}
