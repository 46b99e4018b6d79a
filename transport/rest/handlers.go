package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quizarena/tictactrivia-backend/internal/apperror"
	"github.com/quizarena/tictactrivia-backend/internal/entity"
)

type Handlers interface {
	Ping(w http.ResponseWriter, _ *http.Request)

	CreateRoom(w http.ResponseWriter, r *http.Request)
	JoinRoom(w http.ResponseWriter, r *http.Request)
	RoomStatus(w http.ResponseWriter, r *http.Request)
	ResetRoom(w http.ResponseWriter, r *http.Request)

	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Ranking(w http.ResponseWriter, r *http.Request)
}

type roomManager interface {
	CreateRoom(ctx context.Context, playerName string) (*entity.Room, string, error)
	JoinRoom(ctx context.Context, code, playerName string) (*entity.Room, string, error)
	RoomStatus(ctx context.Context, code string) (*entity.Room, error)
	ResetRoom(ctx context.Context, code string) (*entity.Room, error)
}

type authService interface {
	Register(ctx context.Context, name, password string) (string, error)
	Login(ctx context.Context, name, password string) (string, error)
}

type ratingService interface {
	Ranking(ctx context.Context) ([]entity.PlayerStats, error)
}

type handlers struct {
	logger  *slog.Logger
	manager roomManager
	auth    authService
	rating  ratingService
}

func NewHandlers(logger *slog.Logger, manager roomManager, auth authService, rating ratingService) Handlers {
	return &handlers{
		logger:  logger.With("component", "rest"),
		manager: manager,
		auth:    auth,
		rating:  rating,
	}
}

func (that *handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerName string `json:"player_name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerName == "" {
		http.Error(w, "player_name is required", http.StatusBadRequest)
		return
	}

	room, playerID, err := that.manager.CreateRoom(r.Context(), req.PlayerName)
	if err != nil {
		that.logger.Error("failed to create room", "error", err)
		http.Error(w, "Failed to create room", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, http.StatusCreated, map[string]any{
		"room_code": room.Code,
		"player_id": playerID,
	})
}

func (that *handlers) JoinRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomCode   string `json:"room_code"`
		PlayerName string `json:"player_name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RoomCode == "" || req.PlayerName == "" {
		http.Error(w, "room_code and player_name are required", http.StatusBadRequest)
		return
	}

	room, playerID, err := that.manager.JoinRoom(r.Context(), req.RoomCode, req.PlayerName)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrRoomNotFound):
			http.Error(w, "Room not found", http.StatusNotFound)
		case errors.Is(err, apperror.ErrRoomFull):
			http.Error(w, "Room is full", http.StatusBadRequest)
		default:
			that.logger.Error("failed to join room", "roomCode", req.RoomCode, "error", err)
			http.Error(w, "Failed to join room", http.StatusInternalServerError)
		}
		return
	}

	that.writeJSON(w, http.StatusOK, map[string]any{
		"room_code":   room.Code,
		"player_id":   playerID,
		"room_status": room.Board.GameStatus,
	})
}

func (that *handlers) RoomStatus(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("room_code")

	room, err := that.manager.RoomStatus(r.Context(), code)
	if err != nil {
		if errors.Is(err, apperror.ErrRoomNotFound) {
			http.Error(w, "Room not found", http.StatusNotFound)
			return
		}
		that.logger.Error("failed to get room status", "roomCode", code, "error", err)
		http.Error(w, "Failed to get room status", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, http.StatusOK, map[string]any{
		"room_code":    room.Code,
		"players":      room.Players,
		"player_count": room.PlayerCount(),
		"game_status":  room.Board.GameStatus,
		"board":        room.Board,
	})
}

func (that *handlers) ResetRoom(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("room_code")

	room, err := that.manager.ResetRoom(r.Context(), code)
	if err != nil {
		if errors.Is(err, apperror.ErrRoomNotFound) {
			http.Error(w, "Room not found", http.StatusNotFound)
			return
		}
		that.logger.Error("failed to reset room", "roomCode", code, "error", err)
		http.Error(w, "Failed to reset room", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, http.StatusOK, map[string]any{
		"room_code":   room.Code,
		"game_status": room.Board.GameStatus,
	})
}

func (that *handlers) Register(w http.ResponseWriter, r *http.Request) {
	name, password, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := that.auth.Register(r.Context(), name, password)
	if err != nil {
		if errors.Is(err, apperror.ErrUserAlreadyExists) {
			http.Error(w, "User already exists", http.StatusConflict)
			return
		}
		that.logger.Error("failed to register user", "error", err)
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, http.StatusCreated, map[string]any{"name": name, "token": token})
}

func (that *handlers) Login(w http.ResponseWriter, r *http.Request) {
	name, password, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := that.auth.Login(r.Context(), name, password)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		that.logger.Error("failed to login user", "error", err)
		http.Error(w, "Failed to login", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, http.StatusOK, map[string]any{"name": name, "token": token})
}

func (that *handlers) Ranking(w http.ResponseWriter, r *http.Request) {
	stats, err := that.rating.Ranking(r.Context())
	if err != nil {
		that.logger.Error("failed to get ranking", "error", err)
		http.Error(w, "Failed to get ranking", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, http.StatusOK, map[string]any{"ranking": stats})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Password == "" {
		http.Error(w, "name and password are required", http.StatusBadRequest)
		return "", "", false
	}

	return req.Name, req.Password, true
}
