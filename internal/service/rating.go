package service

import (
	"context"
	"fmt"

	"github.com/quizarena/tictactrivia-backend/internal/entity"
)

const rankingLimit = 50

type RatingService interface {
	RecordGameResult(ctx context.Context, winnerName, loserName string) error
	Ranking(ctx context.Context) ([]entity.PlayerStats, error)
}

type playerRepo interface {
	RecordResult(ctx context.Context, name string, won bool) error
	Ranking(ctx context.Context, limit int) ([]entity.PlayerStats, error)
}

type ratingService struct {
	playerRepo playerRepo
}

func NewRatingService(playerRepo playerRepo) RatingService {
	return &ratingService{
		playerRepo: playerRepo,
	}
}

func (that *ratingService) RecordGameResult(ctx context.Context, winnerName, loserName string) error {
	if err := that.playerRepo.RecordResult(ctx, winnerName, true); err != nil {
		return fmt.Errorf("failed to record winner result: %w", err)
	}

	if err := that.playerRepo.RecordResult(ctx, loserName, false); err != nil {
		return fmt.Errorf("failed to record loser result: %w", err)
	}

	return nil
}

func (that *ratingService) Ranking(ctx context.Context) ([]entity.PlayerStats, error) {
	ranking, err := that.playerRepo.Ranking(ctx, rankingLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get ranking: %w", err)
	}
	return ranking, nil
}
