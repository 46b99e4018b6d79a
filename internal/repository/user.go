package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quizarena/tictactrivia-backend/internal/apperror"
	"github.com/quizarena/tictactrivia-backend/internal/entity"
)

type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	Find(ctx context.Context, name string) (*entity.User, error)
}

type userRepository struct {
	conn *sql.DB
}

func NewUserRepository(conn *sql.DB) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (that *userRepository) Save(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (name, password_hash) VALUES (?, ?)`

	if _, err := that.conn.ExecContext(ctx, query, user.Name, user.PasswordHash); err != nil {
		return fmt.Errorf("can't save user: %w", err)
	}

	return nil
}

func (that *userRepository) Find(ctx context.Context, name string) (*entity.User, error) {
	query := `SELECT name, password_hash FROM users WHERE name = ?`

	var user entity.User

	err := that.conn.QueryRowContext(ctx, query, name).Scan(&user.Name, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	return &user, nil
}
