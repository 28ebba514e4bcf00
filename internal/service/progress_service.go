package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindwell/internal/error_values"
	"github.com/limbo/mindwell/internal/repository"
	"github.com/limbo/mindwell/pkg/entity"
)

type ProgressService struct {
	challengesRepo repository.ChallengesRepositoryI
	progressRepo   repository.ProgressRepositoryI
	streaks        *StreakCalculator
	now            func() time.Time
}

func NewProgressService(challengesRepo repository.ChallengesRepositoryI, progressRepo repository.ProgressRepositoryI, streaks *StreakCalculator) *ProgressService {
	if challengesRepo == nil || progressRepo == nil || streaks == nil {
		panic("on progress service provided nil dependencies")
	}
	return &ProgressService{
		challengesRepo: challengesRepo,
		progressRepo:   progressRepo,
		streaks:        streaks,
		now:            time.Now,
	}
}

func (ps *ProgressService) GetProgress(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error) {
	progress, err := ps.progressRepo.GetByUserID(ctx, uid)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, errorvalues.ErrProgressNotFound) {
		return nil, errors.New("repository error: " + err.Error())
	}
	now := ps.now()
	progress = &entity.UserProgress{
		UserID:    uid,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = ps.progressRepo.Create(ctx, progress)
	switch {
	case err == nil:
		return progress, nil
	case errors.Is(err, errorvalues.ErrProgressExists):
		// Created concurrently by another request
		return ps.progressRepo.GetByUserID(ctx, uid)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		return nil, err
	default:
		return nil, errors.New("repository error: " + err.Error())
	}
}

// Upsert rolls up every challenge of uid together with a fresh streak scan.
// The row is inserted on first call and updated in place afterwards.
func (ps *ProgressService) Upsert(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error) {
	summary, err := ps.challengesRepo.SummaryByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	streaks, lastDay, err := ps.streaks.computeWithLastDay(ctx, uid)
	if err != nil {
		return nil, err
	}
	now := ps.now()
	progress := &entity.UserProgress{
		UserID:              uid,
		TotalWeeks:          summary.TotalWeeks,
		CompletedWeeks:      summary.CompletedWeeks,
		TotalChallenges:     summary.TotalElements,
		CompletedChallenges: summary.CompletedElements,
		CurrentStreak:       streaks.Current,
		LongestStreak:       streaks.Longest,
		TotalPoints:         summary.EarnedPoints,
		LastActivityDate:    lastDay,
		UpdatedAt:           now,
	}
	if summary.TotalElements > 0 {
		progress.OverallPercentage = roundPercentage(float64(summary.CompletedElements) / float64(summary.TotalElements) * 100)
	}

	existing, err := ps.progressRepo.GetByUserID(ctx, uid)
	switch {
	case err == nil:
		progress.CreatedAt = existing.CreatedAt
		err = ps.progressRepo.Update(ctx, progress)
	case errors.Is(err, errorvalues.ErrProgressNotFound):
		progress.CreatedAt = now
		err = ps.progressRepo.Create(ctx, progress)
		if errors.Is(err, errorvalues.ErrProgressExists) {
			err = ps.progressRepo.Update(ctx, progress)
		}
	}
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	slog.Debug("user progress upserted",
		slog.String("uid", uid.String()),
		slog.Int("current_streak", progress.CurrentStreak),
		slog.Int("longest_streak", progress.LongestStreak),
	)
	return progress, nil
}
