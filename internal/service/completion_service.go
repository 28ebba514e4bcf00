package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindwell/internal/repository"
	"github.com/limbo/mindwell/pkg/entity"
)

type CompletionService struct {
	elementsRepo repository.ElementsRepositoryI
	transactor   repository.TransactorI
	aggregator   *ChallengeAggregator
	progress     *ProgressService
	now          func() time.Time
}

func NewCompletionService(elementsRepo repository.ElementsRepositoryI, transactor repository.TransactorI,
	aggregator *ChallengeAggregator, progress *ProgressService) *CompletionService {
	if elementsRepo == nil || transactor == nil || aggregator == nil || progress == nil {
		panic("on completion service provided nil dependencies")
	}
	return &CompletionService{
		elementsRepo: elementsRepo,
		transactor:   transactor,
		aggregator:   aggregator,
		progress:     progress,
		now:          time.Now,
	}
}

// RecordCompletion sets the element's completion state and recomputes the challenge
// stats and the user's progress in one transaction. An element that doesn't belong to
// the challenge matches nothing, and the recomputed stats reflect unchanged counts.
func (cs *CompletionService) RecordCompletion(ctx context.Context, uid, challengeID, elementID uuid.UUID, completed bool) (*entity.CompletionResult, error) {
	result := &entity.CompletionResult{
		ElementID: elementID,
		Completed: completed,
	}
	err := cs.transactor.WithinTx(ctx, func(ctx context.Context) error {
		affected, err := cs.elementsRepo.SetCompletion(ctx, challengeID, elementID, uid, completed, cs.now())
		if err != nil {
			return errors.New("repository error: " + err.Error())
		}
		if affected == 0 {
			slog.Warn("completion matched no element",
				slog.String("challenge_id", challengeID.String()),
				slog.String("element_id", elementID.String()),
			)
		}
		stats, err := cs.aggregator.Recompute(ctx, challengeID)
		if err != nil {
			return err
		}
		result.ChallengeStats = stats
		_, err = cs.progress.Upsert(ctx, uid)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
