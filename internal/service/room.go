package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/quizarena/tictactrivia-backend/internal/apperror"
	"github.com/quizarena/tictactrivia-backend/internal/entity"
	"github.com/quizarena/tictactrivia-backend/internal/pkg"
)

type RoomService interface {
	CreateRoom(ctx context.Context, playerName string) (*entity.Room, string, error)
	JoinRoom(ctx context.Context, code, playerName string) (*entity.Room, string, error)
	GetRoom(ctx context.Context, code string) (*entity.Room, error)
	UpdateRoom(ctx context.Context, room *entity.Room) error
	DeleteRoom(ctx context.Context, code string) error
}

type roomRepo interface {
	CreateOrUpdate(ctx context.Context, room *entity.Room) error
	GetByCode(ctx context.Context, code string) (*entity.Room, error)
	DeleteByCode(ctx context.Context, code string) error
}

type roomService struct {
	roomRepo roomRepo
}

func NewRoomService(roomRepo roomRepo) RoomService {
	return &roomService{
		roomRepo: roomRepo,
	}
}

// CreateRoom allocates a fresh room with a code not currently live and the
// creator holding X. Returns the room and the creator's new player id.
func (that *roomService) CreateRoom(ctx context.Context, playerName string) (*entity.Room, string, error) {
	code, err := that.uniqueRoomCode(ctx)
	if err != nil {
		return nil, "", err
	}

	playerID := pkg.GenerateNewPlayerID()
	room := entity.NewRoom(code, playerID, playerName)

	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return nil, "", fmt.Errorf("failed to create room: %w", err)
	}

	return room, playerID, nil
}

// JoinRoom adds a second player to an existing room. The repository's
// durable fallback makes this work even when the room is not in the
// in-process cache.
func (that *roomService) JoinRoom(ctx context.Context, code, playerName string) (*entity.Room, string, error) {
	room, err := that.roomRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get room by code: %w", err)
	}

	playerID := pkg.GenerateNewPlayerID()
	if err = room.AddPlayer(playerID, playerName); err != nil {
		return nil, "", err
	}

	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return nil, "", fmt.Errorf("failed to update room: %w", err)
	}

	return room, playerID, nil
}

func (that *roomService) GetRoom(ctx context.Context, code string) (*entity.Room, error) {
	room, err := that.roomRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve room from storage: %w", err)
	}
	return room, nil
}

func (that *roomService) UpdateRoom(ctx context.Context, room *entity.Room) error {
	if err := that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	return nil
}

func (that *roomService) DeleteRoom(ctx context.Context, code string) error {
	if err := that.roomRepo.DeleteByCode(ctx, code); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

// uniqueRoomCode retries generation until the code is not live. Collisions
// are vanishingly rare in a 36^6 space but still checked, not assumed.
func (that *roomService) uniqueRoomCode(ctx context.Context) (string, error) {
	for {
		code := pkg.GenerateRoomCode()

		_, err := that.roomRepo.GetByCode(ctx, code)
		if errors.Is(err, apperror.ErrRoomNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check room code: %w", err)
		}
	}
}
