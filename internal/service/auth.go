package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/quizarena/tictactrivia-backend/internal/apperror"
	"github.com/quizarena/tictactrivia-backend/internal/entity"
)

const tokenLifetime = 24 * time.Hour

type AuthService interface {
	Register(ctx context.Context, name, password string) (string, error)
	Login(ctx context.Context, name, password string) (string, error)
	GenerateToken(name string) (string, error)
}

type userRepo interface {
	Save(ctx context.Context, user *entity.User) error
	Find(ctx context.Context, name string) (*entity.User, error)
}

type authService struct {
	secretKey string
	userRepo  userRepo
}

func NewAuthService(secretKey string, userRepo userRepo) AuthService {
	return &authService{
		secretKey: secretKey,
		userRepo:  userRepo,
	}
}

func (that *authService) Register(ctx context.Context, name, password string) (string, error) {
	_, err := that.userRepo.Find(ctx, name)
	if err == nil {
		return "", fmt.Errorf("%w: %s", apperror.ErrUserAlreadyExists, name)
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return "", fmt.Errorf("failed to check user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:         name,
		PasswordHash: string(hash),
	}
	if err = that.userRepo.Save(ctx, user); err != nil {
		return "", fmt.Errorf("failed to save user: %w", err)
	}

	return that.GenerateToken(name)
}

func (that *authService) Login(ctx context.Context, name, password string) (string, error) {
	user, err := that.userRepo.Find(ctx, name)
	if errors.Is(err, apperror.ErrNotFound) {
		return "", apperror.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperror.ErrInvalidCredentials
	}

	return that.GenerateToken(name)
}

func (that *authService) GenerateToken(name string) (string, error) {
	claims := jwt.MapClaims{}
	claims["name"] = name
	claims["exp"] = time.Now().Add(tokenLifetime).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(that.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}
