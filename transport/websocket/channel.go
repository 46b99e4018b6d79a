package websocket

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// wsChannel wraps a gorilla connection behind the session.Channel interface.
// gorilla permits one concurrent writer, so writes are serialized here.
type wsChannel struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func newChannel(conn *websocket.Conn) *wsChannel {
	return &wsChannel{conn: conn}
}

func (that *wsChannel) Send(message any) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *wsChannel) ping() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to write ping: %w", err)
	}

	return nil
}

func (that *wsChannel) Close() error {
	if err := that.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}
