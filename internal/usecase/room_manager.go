package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/quizarena/tictactrivia-backend/internal/apperror"
	"github.com/quizarena/tictactrivia-backend/internal/entity"
	"github.com/quizarena/tictactrivia-backend/internal/protocol"
	"github.com/quizarena/tictactrivia-backend/internal/tictactoe"
)

type roomService interface {
	CreateRoom(ctx context.Context, playerName string) (*entity.Room, string, error)
	JoinRoom(ctx context.Context, code, playerName string) (*entity.Room, string, error)
	GetRoom(ctx context.Context, code string) (*entity.Room, error)
	UpdateRoom(ctx context.Context, room *entity.Room) error
	DeleteRoom(ctx context.Context, code string) error
}

type ratingService interface {
	RecordGameResult(ctx context.Context, winnerName, loserName string) error
}

type questionBank interface {
	Next(subject string) *entity.Question
}

type broadcaster interface {
	BroadcastToRoom(room *entity.Room, message any)
}

// RoomManager orchestrates the room lifecycle and the turn-taking protocol
// shared between the REST surface and the realtime channel. Every mutation
// of one room runs under that room's lock, and the broadcast announcing the
// mutation is sent before the lock is released, so no client can observe
// effects out of order.
type RoomManager struct {
	logger *slog.Logger

	rooms    roomService
	rating   ratingService
	bank     questionBank
	registry broadcaster

	locks sync.Map // room code -> *sync.Mutex
}

func NewRoomManager(logger *slog.Logger, rooms roomService, rating ratingService, bank questionBank, registry broadcaster) *RoomManager {
	return &RoomManager{
		logger:   logger.With("component", "room_manager"),
		rooms:    rooms,
		rating:   rating,
		bank:     bank,
		registry: registry,
	}
}

func (that *RoomManager) lockRoom(code string) func() {
	value, _ := that.locks.LoadOrStore(code, &sync.Mutex{})
	mutex, _ := value.(*sync.Mutex)
	mutex.Lock()
	return mutex.Unlock
}

// CreateRoom builds a new single-player room in waiting state.
func (that *RoomManager) CreateRoom(ctx context.Context, playerName string) (*entity.Room, string, error) {
	room, playerID, err := that.rooms.CreateRoom(ctx, playerName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create room: %w", err)
	}

	that.logger.Info("room created", "roomCode", room.Code, "playerID", playerID)

	return room, playerID, nil
}

// JoinRoom adds the second player over REST and pushes a player_joined event
// so the creator's already-open channel sees the same two-player room the
// joiner got in its response.
func (that *RoomManager) JoinRoom(ctx context.Context, code, playerName string) (*entity.Room, string, error) {
	unlock := that.lockRoom(code)
	defer unlock()

	room, playerID, err := that.rooms.JoinRoom(ctx, code, playerName)
	if err != nil {
		return nil, "", err
	}

	that.registry.BroadcastToRoom(room, protocol.NewPlayerJoined(playerName, room.Masked()))

	that.logger.Info("player joined room", "roomCode", code, "playerID", playerID)

	return room, playerID, nil
}

// RoomStatus is the read-only REST view; it goes through the same
// cache+durable read path as everything else.
func (that *RoomManager) RoomStatus(ctx context.Context, code string) (*entity.Room, error) {
	room, err := that.rooms.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	return room.Masked(), nil
}

// AttachToRoom serves the channel-level join_room: it re-reads the room and
// derives both the requester's room_state reply (returned) and the
// player_joined broadcast from that one freshly loaded value.
func (that *RoomManager) AttachToRoom(ctx context.Context, playerID, code string) (*entity.Room, error) {
	unlock := that.lockRoom(code)
	defer unlock()

	room, err := that.rooms.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	if !room.HasPlayer(playerID) {
		return nil, fmt.Errorf("%w: room %s", apperror.ErrNotInRoom, code)
	}

	masked := room.Masked()
	that.registry.BroadcastToRoom(room, protocol.NewPlayerJoined(room.NameOf(playerID), masked))

	return masked, nil
}

// IssueQuestion validates the claim, draws a question for the cell and
// stores it as the room's in-flight scratch state. The requester gets the
// question back; the room only hears that the cell is being contested.
func (that *RoomManager) IssueQuestion(ctx context.Context, playerID, code string, cell int, subject string) (*entity.Question, error) {
	unlock := that.lockRoom(code)
	defer unlock()

	room, err := that.rooms.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.CanClaim(room, playerID, cell); err != nil {
		return nil, err
	}

	question := that.bank.Next(subject)
	room.CurrentQuestion = question
	room.SelectedCell = &cell

	if err = that.rooms.UpdateRoom(ctx, room); err != nil {
		return nil, err
	}

	that.registry.BroadcastToRoom(room, protocol.NewPlayerAnswering(room.NameOf(playerID), cell, question.Subject))

	return question, nil
}

// MakeMove resolves the in-flight question against the submitted answer and
// broadcasts the authoritative result to both players. A rejected move
// mutates nothing and is reported only to the mover.
func (that *RoomManager) MakeMove(ctx context.Context, playerID, code string, cell int, answer string) (*entity.Room, *entity.MoveResult, error) {
	unlock := that.lockRoom(code)
	defer unlock()

	room, err := that.rooms.GetRoom(ctx, code)
	if err != nil {
		return nil, nil, err
	}

	// the server-held target cell is authoritative over the echoed one
	if room.SelectedCell != nil {
		cell = *room.SelectedCell
	}

	move, err := tictactoe.ResolveAnswer(room, playerID, cell, answer)
	if err != nil {
		return nil, nil, err
	}

	if err = that.rooms.UpdateRoom(ctx, room); err != nil {
		return nil, nil, err
	}

	if room.Board.GameStatus == entity.StatusWon {
		that.recordResult(ctx, room)
	}

	masked := room.Masked()
	that.registry.BroadcastToRoom(room, protocol.NewGameUpdate(masked, move))

	return masked, move, nil
}

// ResetRoom wipes the board for a rematch and announces it.
func (that *RoomManager) ResetRoom(ctx context.Context, code string) (*entity.Room, error) {
	unlock := that.lockRoom(code)
	defer unlock()

	room, err := that.rooms.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	room.ResetGame()

	if err = that.rooms.UpdateRoom(ctx, room); err != nil {
		return nil, err
	}

	masked := room.Masked()
	that.registry.BroadcastToRoom(room, protocol.NewGameReset(masked))

	return masked, nil
}

// LeaveRoom removes the player; the room record is deleted once its player
// set is empty, otherwise the remainder is told who left.
func (that *RoomManager) LeaveRoom(ctx context.Context, playerID, code string) error {
	unlock := that.lockRoom(code)
	defer unlock()

	room, err := that.rooms.GetRoom(ctx, code)
	if err != nil {
		return err
	}

	playerName := room.NameOf(playerID)
	room.RemovePlayer(playerID)

	if room.PlayerCount() == 0 {
		if err = that.rooms.DeleteRoom(ctx, code); err != nil {
			return err
		}
		that.logger.Info("room deleted", "roomCode", code)
		return nil
	}

	if err = that.rooms.UpdateRoom(ctx, room); err != nil {
		return err
	}

	that.registry.BroadcastToRoom(room, protocol.NewPlayerDisconnected(playerName))

	return nil
}

// NotifyDisconnected announces a dropped channel to the rest of the room.
// The room itself survives transient drops; only an explicit leave removes
// membership.
func (that *RoomManager) NotifyDisconnected(ctx context.Context, playerID, code string) {
	room, err := that.rooms.GetRoom(ctx, code)
	if err != nil {
		that.logger.Debug("failed to get room on disconnect", "roomCode", code, "error", err)
		return
	}

	if !room.HasPlayer(playerID) {
		return
	}

	that.registry.BroadcastToRoom(room, protocol.NewPlayerDisconnected(room.NameOf(playerID)))
}

func (that *RoomManager) recordResult(ctx context.Context, room *entity.Room) {
	log := that.logger.With("method", "recordResult", "roomCode", room.Code)

	winnerID := room.PlayerByMark(room.Board.Winner)
	loserID := room.OpponentID(winnerID)
	if winnerID == "" || loserID == "" {
		return
	}

	if err := that.rating.RecordGameResult(ctx, room.NameOf(winnerID), room.NameOf(loserID)); err != nil {
		log.Error("failed to record game result", "error", err)
	}
}
