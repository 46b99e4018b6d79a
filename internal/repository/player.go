package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quizarena/tictactrivia-backend/internal/entity"
)

type PlayerRepository interface {
	RecordResult(ctx context.Context, name string, won bool) error
	Ranking(ctx context.Context, limit int) ([]entity.PlayerStats, error)
}

type playerRepository struct {
	conn *sql.DB
}

func NewPlayerRepository(conn *sql.DB) PlayerRepository {
	return &playerRepository{
		conn: conn,
	}
}

// RecordResult upserts the ranking counters for a display name after a
// finished game.
func (that *playerRepository) RecordResult(ctx context.Context, name string, won bool) error {
	stats, err := that.find(ctx, name)
	if err != nil {
		return err
	}

	stats.Games++
	if won {
		stats.Wins++
		stats.Points++
	} else {
		stats.Losses++
	}
	stats.WinRate = float64(stats.Wins) / float64(stats.Games) * 100

	query := `INSERT INTO players (name, games, wins, losses, points, win_rate)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			games = excluded.games,
			wins = excluded.wins,
			losses = excluded.losses,
			points = excluded.points,
			win_rate = excluded.win_rate`

	if _, err = that.conn.ExecContext(ctx, query,
		stats.Name, stats.Games, stats.Wins, stats.Losses, stats.Points, stats.WinRate); err != nil {
		return fmt.Errorf("can't save player stats: %w", err)
	}

	return nil
}

func (that *playerRepository) Ranking(ctx context.Context, limit int) ([]entity.PlayerStats, error) {
	query := `SELECT name, games, wins, losses, points, win_rate
		FROM players ORDER BY points DESC, win_rate DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't query ranking: %w", err)
	}
	defer rows.Close()

	ranking := make([]entity.PlayerStats, 0, limit)
	for rows.Next() {
		var stats entity.PlayerStats
		if err = rows.Scan(&stats.Name, &stats.Games, &stats.Wins, &stats.Losses, &stats.Points, &stats.WinRate); err != nil {
			return nil, fmt.Errorf("can't scan player stats: %w", err)
		}
		ranking = append(ranking, stats)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read ranking rows: %w", err)
	}

	return ranking, nil
}

func (that *playerRepository) find(ctx context.Context, name string) (entity.PlayerStats, error) {
	query := `SELECT name, games, wins, losses, points, win_rate FROM players WHERE name = ?`

	stats := entity.PlayerStats{Name: name}

	err := that.conn.QueryRowContext(ctx, query, name).
		Scan(&stats.Name, &stats.Games, &stats.Wins, &stats.Losses, &stats.Points, &stats.WinRate)
	if errors.Is(err, sql.ErrNoRows) {
		return stats, nil
	}
	if err != nil {
		return stats, fmt.Errorf("can't find player stats: %w", err)
	}

	return stats, nil
}
