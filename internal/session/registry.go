package session

import (
	"log/slog"
	"sync"

	"github.com/quizarena/tictactrivia-backend/internal/entity"
)

// Channel is one player's live realtime connection. Send must be safe for
// concurrent use.
type Channel interface {
	Send(message any) error
	Close() error
}

// Registry maps player identities to their live channels. It is purely
// in-memory: connections re-register after a reconnect and the whole map is
// rebuilt on restart.
type Registry struct {
	logger *slog.Logger

	mu       sync.RWMutex
	channels map[string]Channel
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger:   logger.With("component", "session"),
		channels: make(map[string]Channel),
	}
}

// Register binds the channel to the player, replacing (and closing) any
// previous one so a reconnect takes over cleanly.
func (that *Registry) Register(playerID string, channel Channel) {
	that.mu.Lock()
	previous := that.channels[playerID]
	that.channels[playerID] = channel
	that.mu.Unlock()

	if previous != nil && previous != channel {
		if err := previous.Close(); err != nil {
			that.logger.Debug("failed to close replaced channel", "playerID", playerID, "error", err)
		}
	}
}

// Unregister drops the player's channel unconditionally.
func (that *Registry) Unregister(playerID string) {
	that.mu.Lock()
	delete(that.channels, playerID)
	that.mu.Unlock()
}

// UnregisterChannel drops the mapping only if the given channel is still the
// current one, so a closing connection cannot reap its own replacement.
func (that *Registry) UnregisterChannel(playerID string, channel Channel) {
	that.mu.Lock()
	if current, ok := that.channels[playerID]; ok && current == channel {
		delete(that.channels, playerID)
	}
	that.mu.Unlock()
}

func (that *Registry) Get(playerID string) (Channel, bool) {
	that.mu.RLock()
	channel, ok := that.channels[playerID]
	that.mu.RUnlock()
	return channel, ok
}

// BroadcastToRoom pushes the message to every room member with a live
// channel. A dead recipient is unregistered and skipped; the rest still get
// the message.
func (that *Registry) BroadcastToRoom(room *entity.Room, message any) {
	for playerID := range room.Players {
		channel, ok := that.Get(playerID)
		if !ok {
			continue
		}

		if err := channel.Send(message); err != nil {
			that.logger.Info("dropping dead connection", "playerID", playerID, "error", err)
			that.UnregisterChannel(playerID, channel)
		}
	}
}
