package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/limbo/mindwell/internal/repository"
	"github.com/limbo/mindwell/pkg/entity"
)

// ComputeChallengeStats derives completion stats from raw element counts.
// Percentage is rounded to two decimals and is 0 for an empty challenge.
func ComputeChallengeStats(total, completed int) entity.ChallengeStats {
	stats := entity.ChallengeStats{
		Total:     total,
		Completed: completed,
	}
	if total > 0 {
		stats.Percentage = roundPercentage(float64(completed) / float64(total) * 100)
	}
	stats.IsCompleted = total > 0 && completed == total
	return stats
}

func roundPercentage(v float64) float64 {
	return math.Round(v*100) / 100
}

type ChallengeAggregator struct {
	challengesRepo repository.ChallengesRepositoryI
	elementsRepo   repository.ElementsRepositoryI
}

func NewChallengeAggregator(challengesRepo repository.ChallengesRepositoryI, elementsRepo repository.ElementsRepositoryI) *ChallengeAggregator {
	if challengesRepo == nil || elementsRepo == nil {
		panic("on challenge aggregator provided nil repos")
	}
	return &ChallengeAggregator{
		challengesRepo: challengesRepo,
		elementsRepo:   elementsRepo,
	}
}

// Recompute counts the challenge's elements and overwrites its stored stats.
// Calling it again without element changes writes the same values.
func (ca *ChallengeAggregator) Recompute(ctx context.Context, challengeID uuid.UUID) (entity.ChallengeStats, error) {
	counts, err := ca.elementsRepo.CountByChallenge(ctx, challengeID)
	if err != nil {
		return entity.ChallengeStats{}, errors.New("repository error: " + err.Error())
	}
	stats := ComputeChallengeStats(counts.Total, counts.Completed)
	if err = ca.challengesRepo.UpdateStats(ctx, challengeID, stats); err != nil {
		return entity.ChallengeStats{}, errors.New("repository error: " + err.Error())
	}
	slog.Debug("challenge stats recomputed",
		slog.String("challenge_id", challengeID.String()),
		slog.Int("total", stats.Total),
		slog.Int("completed", stats.Completed),
	)
	return stats, nil
}
