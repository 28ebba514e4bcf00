package service

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindwell/internal/error_values"
	"github.com/limbo/mindwell/internal/repository"
	"github.com/limbo/mindwell/pkg/entity"
)

type ChallengesService struct {
	challengesRepo repository.ChallengesRepositoryI
	elementsRepo   repository.ElementsRepositoryI
	transactor     repository.TransactorI
	aggregator     *ChallengeAggregator
	progress       *ProgressService
}

func NewChallengesService(challengesRepo repository.ChallengesRepositoryI, elementsRepo repository.ElementsRepositoryI,
	transactor repository.TransactorI, aggregator *ChallengeAggregator, progress *ProgressService) *ChallengesService {
	if challengesRepo == nil || elementsRepo == nil || transactor == nil || aggregator == nil || progress == nil {
		panic("on challenges service provided nil dependencies")
	}
	return &ChallengesService{
		challengesRepo: challengesRepo,
		elementsRepo:   elementsRepo,
		transactor:     transactor,
		aggregator:     aggregator,
		progress:       progress,
	}
}

func (cs *ChallengesService) CreateChallenge(ctx context.Context, uid uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	elements := assignPoints(req.TotalPoints, req.Elements)
	var created *entity.Challenge
	err := cs.transactor.WithinTx(ctx, func(ctx context.Context) error {
		id, err := cs.challengesRepo.Create(ctx, &entity.Challenge{
			UserID:      uid,
			Title:       req.Title,
			Description: req.Description,
			StartsAt:    req.StartsAt,
			TotalPoints: req.TotalPoints,
		})
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrOwnerNotFound):
				return errorvalues.ErrUserNotFound
			case errors.Is(err, errorvalues.ErrUserHasChallenge):
				return err
			}
			return errors.New("challenges repository error: " + err.Error())
		}
		if err = cs.elementsRepo.CreateMany(ctx, id, elements); err != nil {
			return errors.New("elements repository error: " + err.Error())
		}
		if _, err = cs.aggregator.Recompute(ctx, id); err != nil {
			return err
		}
		if _, err = cs.progress.Upsert(ctx, uid); err != nil {
			return err
		}
		created, err = cs.loadWithElements(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (cs *ChallengesService) GetUserChallenges(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Challenge, error) {
	challenges, err := cs.challengesRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenges, nil
}

func (cs *ChallengesService) GetChallenge(ctx context.Context, challengeID, uid uuid.UUID) (*entity.Challenge, error) {
	challenge, err := cs.loadWithElements(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return challenge, nil
}

// DeleteChallenge removes the challenge with its elements and recomputes the owner's progress.
func (cs *ChallengesService) DeleteChallenge(ctx context.Context, challengeID, uid uuid.UUID) error {
	return cs.transactor.WithinTx(ctx, func(ctx context.Context) error {
		challenge, err := cs.challengesRepo.GetByID(ctx, challengeID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrChallengeNotFound) {
				return err
			}
			return errors.New("challenges repository error: " + err.Error())
		}
		if challenge.UserID != uid {
			return errorvalues.ErrWrongOwner
		}
		if err = cs.challengesRepo.Delete(ctx, challengeID); err != nil {
			if errors.Is(err, errorvalues.ErrChallengeNotFound) {
				return err
			}
			return errors.New("challenges repository error: " + err.Error())
		}
		_, err = cs.progress.Upsert(ctx, uid)
		return err
	})
}

func (cs *ChallengesService) loadWithElements(ctx context.Context, challengeID uuid.UUID) (*entity.Challenge, error) {
	challenge, err := cs.challengesRepo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	elements, err := cs.elementsRepo.GetByChallengeID(ctx, challengeID)
	if err != nil {
		return nil, errors.New("elements repository error: " + err.Error())
	}
	challenge.Elements = elements
	return challenge, nil
}

// assignPoints gives elements without explicit points an even share of what is left
// of the pool after explicit points. Earlier days receive the remainder.
func assignPoints(pool int, reqs []CreateElementRequest) []entity.ChallengeElement {
	elements := make([]entity.ChallengeElement, len(reqs))
	unset := make([]int, 0, len(reqs))
	for i, r := range reqs {
		elements[i] = entity.ChallengeElement{
			Title:  r.Title,
			Day:    r.Day,
			Points: r.Points,
		}
		if r.Points == 0 {
			unset = append(unset, i)
		} else {
			pool -= r.Points
		}
	}
	slices.SortStableFunc(unset, func(a, b int) int {
		return elements[a].Day - elements[b].Day
	})
	for i, share := range DistributePoints(pool, len(unset)) {
		elements[unset[i]].Points = share
	}
	return elements
}
