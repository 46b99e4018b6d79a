package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/quizarena/tictactrivia-backend/internal/entity"
	"github.com/quizarena/tictactrivia-backend/internal/protocol"
	"github.com/quizarena/tictactrivia-backend/internal/session"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
)

type gameUseCase interface {
	AttachToRoom(ctx context.Context, playerID, code string) (*entity.Room, error)
	IssueQuestion(ctx context.Context, playerID, code string, cell int, subject string) (*entity.Question, error)
	MakeMove(ctx context.Context, playerID, code string, cell int, answer string) (*entity.Room, *entity.MoveResult, error)
	LeaveRoom(ctx context.Context, playerID, code string) error
	NotifyDisconnected(ctx context.Context, playerID, code string)
}

type Server struct {
	logger   *slog.Logger
	game     gameUseCase
	registry *session.Registry
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, game gameUseCase, registry *session.Registry) *Server {
	return &Server{
		logger:   logger.With("component", "websocket"),
		game:     game,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}
}

// Start - starts the realtime channel server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ws/{player_id}", func(w http.ResponseWriter, r *http.Request) {
		that.handleConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) handleConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleConnection")

	playerID := r.PathValue("player_id")
	if playerID == "" {
		http.Error(w, "player_id is required", http.StatusBadRequest)
		return
	}

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	log = log.With("playerID", playerID)
	log.Info("connection established")

	channel := newChannel(conn)
	that.registry.Register(playerID, channel)

	if err = channel.Send(protocol.NewConnected(playerID)); err != nil {
		log.Error("failed to send connected ack", "error", err)
	}

	that.serveConnection(ctx, conn, channel, playerID, log)
}

// serveConnection runs one connection's read loop until the peer goes away.
func (that *Server) serveConnection(ctx context.Context, conn *websocket.Conn, channel *wsChannel, playerID string, log *slog.Logger) {
	// a per-connection view of which room the player announced
	var roomCode string

	defer func() {
		that.registry.UnregisterChannel(playerID, channel)
		_ = channel.Close()

		if roomCode != "" {
			that.game.NotifyDisconnected(ctx, playerID, roomCode)
		}

		log.Info("connection closed")
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// liveness probe; carries no game semantics
	stopPings := make(chan struct{})
	defer close(stopPings)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := channel.ping(); err != nil {
					return
				}
			case <-stopPings:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info("unexpected close", "error", err)
			}
			return
		}

		var message protocol.ClientMessage
		if err = json.Unmarshal(data, &message); err != nil {
			log.Info("failed to unmarshal message", "error", err)
			that.sendError(channel, "invalid message")
			continue
		}

		if joined := that.dispatch(ctx, channel, playerID, &message, log); joined != "" {
			roomCode = joined
		}
	}
}

// dispatch routes one inbound message. It returns the room code when the
// message attached this connection to a room, "" otherwise. A handler error
// never kills the connection; the sender gets an error reply instead.
func (that *Server) dispatch(ctx context.Context, channel *wsChannel, playerID string, message *protocol.ClientMessage, log *slog.Logger) string {
	switch message.Type {
	case protocol.TypePing:
		if err := channel.Send(protocol.NewPong()); err != nil {
			log.Info("failed to send pong", "error", err)
		}

	case protocol.TypePong:
		// peer-level keepalive answer, nothing to do

	case protocol.TypeJoinRoom:
		return that.handleJoinRoom(ctx, channel, playerID, message, log)

	case protocol.TypeGetQuestion:
		that.handleGetQuestion(ctx, channel, playerID, message, log)

	case protocol.TypeMakeMove:
		that.handleMakeMove(ctx, channel, playerID, message, log)

	case protocol.TypeLeaveRoom:
		that.handleLeaveRoom(ctx, channel, playerID, message, log)

	default:
		log.Info("unroutable message", "type", message.Type)
		that.sendError(channel, fmt.Sprintf("unknown message type %q", message.Type))
	}

	return ""
}

func (that *Server) handleJoinRoom(ctx context.Context, channel *wsChannel, playerID string, message *protocol.ClientMessage, log *slog.Logger) string {
	if message.RoomCode == "" {
		that.sendError(channel, "room_code is required")
		return ""
	}

	room, err := that.game.AttachToRoom(ctx, playerID, message.RoomCode)
	if err != nil {
		log.Info("failed to join room", "roomCode", message.RoomCode, "error", err)
		that.sendError(channel, err.Error())
		return ""
	}

	if err = channel.Send(protocol.NewRoomState(room)); err != nil {
		log.Error("failed to send room state", "error", err)
	}

	return message.RoomCode
}

func (that *Server) handleGetQuestion(ctx context.Context, channel *wsChannel, playerID string, message *protocol.ClientMessage, log *slog.Logger) {
	if message.RoomCode == "" || message.CellIndex == nil {
		that.sendError(channel, "room_code and cell_index are required")
		return
	}

	question, err := that.game.IssueQuestion(ctx, playerID, message.RoomCode, *message.CellIndex, message.Subject)
	if err != nil {
		log.Info("failed to issue question", "roomCode", message.RoomCode, "error", err)
		that.sendError(channel, err.Error())
		return
	}

	if err = channel.Send(protocol.NewQuestion(question, *message.CellIndex)); err != nil {
		log.Error("failed to send question", "error", err)
	}
}

func (that *Server) handleMakeMove(ctx context.Context, channel *wsChannel, playerID string, message *protocol.ClientMessage, log *slog.Logger) {
	if message.RoomCode == "" || message.CellIndex == nil {
		that.sendError(channel, "room_code and cell_index are required")
		return
	}

	// both players are told the outcome through the game_update broadcast;
	// only failures get a direct reply
	_, _, err := that.game.MakeMove(ctx, playerID, message.RoomCode, *message.CellIndex, message.SelectedAnswer)
	if err != nil {
		log.Info("failed to make move", "roomCode", message.RoomCode, "error", err)
		that.sendError(channel, err.Error())
	}
}

func (that *Server) handleLeaveRoom(ctx context.Context, channel *wsChannel, playerID string, message *protocol.ClientMessage, log *slog.Logger) {
	if message.RoomCode == "" {
		that.sendError(channel, "room_code is required")
		return
	}

	if err := that.game.LeaveRoom(ctx, playerID, message.RoomCode); err != nil {
		log.Info("failed to leave room", "roomCode", message.RoomCode, "error", err)
		that.sendError(channel, err.Error())
	}
}

func (that *Server) sendError(channel *wsChannel, errorMsg string) {
	if err := channel.Send(protocol.NewError(errorMsg)); err != nil {
		that.logger.Info("failed to send error response", "error", err)
	}
}
