package tictactoe

import (
	"errors"
	"fmt"

	"github.com/quizarena/tictactrivia-backend/internal/apperror"
	"github.com/quizarena/tictactrivia-backend/internal/entity"
)

var ErrInvalidCell = errors.New("invalid cell index")

// CanClaim reports whether playerID may target the cell right now: the game
// must be running, it must be that player's turn, and the cell must be empty
// or previously answered incorrectly. Incorrectly answered (red) cells stay
// contestable.
func CanClaim(room *entity.Room, playerID string, cell int) error {
	if err := room.ConfirmPlayingState(); err != nil {
		return err
	}

	if cell < 0 || cell >= len(room.Board.Cells) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if room.CurrentPlayerID != playerID {
		return apperror.ErrNotYourTurn
	}

	if room.Board.Cells[cell] != entity.EmptyCell && room.Board.Colors[cell] != entity.ColorIncorrect {
		return apperror.ErrCellOccupied
	}

	return nil
}

// ResolveAnswer settles the in-flight question: paints the cell with the
// mover's mark and the answer outcome, updates the game status and hands the
// turn over. The question scratch state is cleared whatever the outcome.
// On a rejected move nothing is mutated.
func ResolveAnswer(room *entity.Room, playerID string, cell int, answer string) (*entity.MoveResult, error) {
	question := room.CurrentQuestion
	if question == nil {
		return nil, apperror.ErrNoActiveQuestion
	}

	if err := CanClaim(room, playerID, cell); err != nil {
		return nil, fmt.Errorf("invalid turn: %w", err)
	}

	mark := room.MarkOf(playerID)
	isCorrect := answer == question.CorrectAnswer

	room.Board.Cells[cell] = mark
	if isCorrect {
		room.Board.Colors[cell] = entity.ColorCorrect
	} else {
		room.Board.Colors[cell] = entity.ColorIncorrect
	}

	updateGameStatus(room, playerID)
	room.ClearQuestion()

	return &entity.MoveResult{
		PlayerID:      playerID,
		PlayerName:    room.NameOf(playerID),
		CellIndex:     cell,
		IsCorrect:     isCorrect,
		Answer:        answer,
		CorrectAnswer: question.CorrectAnswer,
	}, nil
}

// updateGameStatus checks the board after a resolved move and either ends
// the game or passes the turn to the opponent.
func updateGameStatus(room *entity.Room, playerID string) {
	if winner := checkWinner(room.Board); winner != "" {
		room.Board.Winner = winner
		room.Board.GameStatus = entity.StatusWon
		room.Board.Turn = ""
		room.CurrentPlayerID = ""
		return
	}

	if boardFull(room.Board) {
		room.Board.GameStatus = entity.StatusDraw
		room.Board.Turn = ""
		room.CurrentPlayerID = ""
		return
	}

	room.Board.Turn = toggleMark(room.MarkOf(playerID))
	room.CurrentPlayerID = room.OpponentID(playerID)
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// checkWinner returns the winning mark, if any. A line only counts when all
// three cells were answered correctly.
func checkWinner(board *entity.Board) string {
	for _, combo := range entity.WinCombos {
		a, b, c := combo[0], combo[1], combo[2]
		if board.Cells[a] == entity.EmptyCell {
			continue
		}
		if board.Cells[a] != board.Cells[b] || board.Cells[b] != board.Cells[c] {
			continue
		}
		if board.Colors[a] == entity.ColorCorrect && board.Colors[b] == entity.ColorCorrect && board.Colors[c] == entity.ColorCorrect {
			return board.Cells[a]
		}
	}
	return ""
}

func boardFull(board *entity.Board) bool {
	for _, cell := range board.Cells {
		if cell == entity.EmptyCell {
			return false
		}
	}
	return true
}
