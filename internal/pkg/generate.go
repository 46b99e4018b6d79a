package pkg

import (
	"math/rand"

	"github.com/google/uuid"
)

const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength   = 6
)

// GenerateRoomCode returns a 6-character uppercase alphanumeric code.
// Uniqueness against live rooms is the caller's job.
func GenerateRoomCode() string {
	code := make([]byte, roomCodeLength)
	for i := range code {
		code[i] = roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))] //nolint: gosec // not a secret
	}
	return string(code)
}

// GenerateNewPlayerID returns an opaque player identity token.
func GenerateNewPlayerID() string {
	return uuid.NewString()
}
