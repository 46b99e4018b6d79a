package entity

import (
	"fmt"
	"time"

	"github.com/quizarena/tictactrivia-backend/internal/apperror"
)

const (
	StatusWaiting = "waiting"
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusDraw    = "draw"

	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	ColorCorrect   = "green"
	ColorIncorrect = "red"
	ColorNone      = ""

	MaxPlayers = 2
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the wire shape both clients render from: cells hold marks,
// colors hold the answer outcome for each claimed cell.
type Board struct {
	Cells      [9]string `json:"board"`
	Colors     [9]string `json:"board_colors"`
	Turn       string    `json:"current_player"`
	GameStatus string    `json:"game_status"`
	Winner     string    `json:"winner"`
}

type Room struct {
	Code            string            `json:"room_code"`
	Players         map[string]string `json:"players"`
	PlayerSymbols   map[string]string `json:"player_symbols"`
	CurrentPlayerID string            `json:"current_player_id"`
	Board           *Board            `json:"board"`
	CurrentQuestion *Question         `json:"current_question,omitempty"`
	SelectedCell    *int              `json:"selected_cell,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// NewRoom builds a fresh room with the creator holding X and the first turn.
func NewRoom(code, creatorID, creatorName string) *Room {
	return &Room{
		Code:            code,
		Players:         map[string]string{creatorID: creatorName},
		PlayerSymbols:   map[string]string{creatorID: PlayerX},
		CurrentPlayerID: creatorID,
		Board: &Board{
			Turn:       PlayerX,
			GameStatus: StatusWaiting,
		},
		CreatedAt: time.Now().UTC(),
	}
}

// AddPlayer registers the second player with mark O and starts the game.
func (that *Room) AddPlayer(id, name string) error {
	if len(that.Players) >= MaxPlayers {
		return fmt.Errorf("%w: room %s", apperror.ErrRoomFull, that.Code)
	}

	that.Players[id] = name
	that.PlayerSymbols[id] = PlayerO

	if len(that.Players) == MaxPlayers {
		that.Board.GameStatus = StatusPlaying
	}

	return nil
}

func (that *Room) RemovePlayer(id string) {
	delete(that.Players, id)
	delete(that.PlayerSymbols, id)
}

func (that *Room) PlayerCount() int {
	return len(that.Players)
}

func (that *Room) HasPlayer(id string) bool {
	_, ok := that.Players[id]
	return ok
}

func (that *Room) NameOf(id string) string {
	return that.Players[id]
}

func (that *Room) MarkOf(id string) string {
	return that.PlayerSymbols[id]
}

// OpponentID returns the other player's id, or "" while the room is short-handed.
func (that *Room) OpponentID(id string) string {
	for playerID := range that.Players {
		if playerID != id {
			return playerID
		}
	}
	return ""
}

// PlayerByMark returns the id holding the given mark, or "".
func (that *Room) PlayerByMark(mark string) string {
	for playerID, playerMark := range that.PlayerSymbols {
		if playerMark == mark {
			return playerID
		}
	}
	return ""
}

func (that *Room) IsWaiting() bool {
	return that.Board.GameStatus == StatusWaiting
}

func (that *Room) IsPlaying() bool {
	return that.Board.GameStatus == StatusPlaying
}

func (that *Room) IsFinished() bool {
	return that.Board.GameStatus == StatusWon || that.Board.GameStatus == StatusDraw
}

func (that *Room) ConfirmPlayingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return nil
	}
}

// ClearQuestion drops the in-flight question scratch state.
func (that *Room) ClearQuestion() {
	that.CurrentQuestion = nil
	that.SelectedCell = nil
}

// ResetGame wipes the board for a rematch. The creator (mark X) opens again.
func (that *Room) ResetGame() {
	that.Board = &Board{
		Turn:       PlayerX,
		GameStatus: StatusPlaying,
	}
	that.CurrentPlayerID = that.PlayerByMark(PlayerX)
	that.ClearQuestion()
}

// Masked returns a copy safe to put on the wire: the in-flight question
// carries the correct answer and must never reach the opponent.
func (that *Room) Masked() *Room {
	clone := *that
	clone.CurrentQuestion = nil
	return &clone
}
