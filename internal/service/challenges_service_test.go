package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindwell/internal/error_values"
	"github.com/limbo/mindwell/internal/repository/mocks"
	"github.com/limbo/mindwell/internal/service"
	"github.com/limbo/mindwell/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type challengesDeps struct {
	challengesRepo *mocks.MockChallengesRepositoryI
	elementsRepo   *mocks.MockElementsRepositoryI
	progressRepo   *mocks.MockProgressRepositoryI
	transactor     *mocks.MockTransactorI
	serv           *service.ChallengesService
}

func newChallengesDeps(t *testing.T) *challengesDeps {
	ctrl := gomock.NewController(t)
	d := &challengesDeps{
		challengesRepo: mocks.NewMockChallengesRepositoryI(ctrl),
		elementsRepo:   mocks.NewMockElementsRepositoryI(ctrl),
		progressRepo:   mocks.NewMockProgressRepositoryI(ctrl),
		transactor:     mocks.NewMockTransactorI(ctrl),
	}
	aggregator := service.NewChallengeAggregator(d.challengesRepo, d.elementsRepo)
	streaks := service.NewStreakCalculator(d.elementsRepo, time.UTC).WithClock(func() time.Time { return today })
	progress := service.NewProgressService(d.challengesRepo, d.progressRepo, streaks)
	d.serv = service.NewChallengesService(d.challengesRepo, d.elementsRepo, d.transactor, aggregator, progress)
	return d
}

// expectRecompute covers the stats and progress writes following a mutation.
func (d *challengesDeps) expectRecompute(challengeID, uid uuid.UUID, counts entity.ElementCounts) {
	if challengeID != uuid.Nil {
		d.elementsRepo.EXPECT().CountByChallenge(gomock.Any(), challengeID).Return(counts, nil)
		d.challengesRepo.EXPECT().UpdateStats(gomock.Any(), challengeID, gomock.Any()).Return(nil)
	}
	d.challengesRepo.EXPECT().SummaryByUser(gomock.Any(), uid).Return(&entity.ChallengesSummary{}, nil)
	d.elementsRepo.EXPECT().CompletionTimesByUser(gomock.Any(), uid).Return(nil, nil)
	d.progressRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&entity.UserProgress{UserID: uid}, nil)
	d.progressRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
}

func validChallengeRequest() *service.CreateChallengeRequest {
	return &service.CreateChallengeRequest{
		Title:       "gratitude week",
		Description: "three good things a day",
		StartsAt:    time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		TotalPoints: 10,
		Elements: []service.CreateElementRequest{
			{Title: "day three", Day: 3},
			{Title: "day one", Day: 1},
			{Title: "bonus", Day: 2, Points: 4},
			{Title: "day two", Day: 2},
		},
	}
}

func TestCreateChallenge(t *testing.T) {
	t.Parallel()
	uid, challengeID := uuid.New(), uuid.New()
	t.Run("success distributes points", func(t *testing.T) {
		d := newChallengesDeps(t)
		req := validChallengeRequest()
		runInTx(d.transactor)
		d.challengesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *entity.Challenge) (uuid.UUID, error) {
			assert.Equal(t, uid, c.UserID)
			assert.Equal(t, req.Title, c.Title)
			assert.Equal(t, req.TotalPoints, c.TotalPoints)
			return challengeID, nil
		})
		d.elementsRepo.EXPECT().CreateMany(gomock.Any(), challengeID, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, els []entity.ChallengeElement) error {
			// 6 points left after the bonus: day one 2, day two 2, day three 2
			require.Len(t, els, 4)
			assert.Equal(t, []int{2, 2, 4, 2}, []int{els[0].Points, els[1].Points, els[2].Points, els[3].Points})
			return nil
		})
		d.expectRecompute(challengeID, uid, entity.ElementCounts{Total: 4})
		d.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(&entity.Challenge{ID: challengeID, UserID: uid, Title: req.Title, TotalElements: 4}, nil)
		d.elementsRepo.EXPECT().GetByChallengeID(gomock.Any(), challengeID).Return(make([]entity.ChallengeElement, 4), nil)
		c, err := d.serv.CreateChallenge(context.Background(), uid, req)
		require.NoError(t, err)
		assert.Equal(t, challengeID, c.ID)
		assert.Len(t, c.Elements, 4)
	})
	t.Run("remainder goes to earliest days", func(t *testing.T) {
		d := newChallengesDeps(t)
		req := validChallengeRequest()
		req.TotalPoints = 11
		runInTx(d.transactor)
		d.challengesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(challengeID, nil)
		d.elementsRepo.EXPECT().CreateMany(gomock.Any(), challengeID, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, els []entity.ChallengeElement) error {
			// 7 points over days 1, 2, 3
			assert.Equal(t, []int{2, 3, 4, 2}, []int{els[0].Points, els[1].Points, els[2].Points, els[3].Points})
			return nil
		})
		d.expectRecompute(challengeID, uid, entity.ElementCounts{Total: 4})
		d.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(&entity.Challenge{ID: challengeID, UserID: uid}, nil)
		d.elementsRepo.EXPECT().GetByChallengeID(gomock.Any(), challengeID).Return(nil, nil)
		_, err := d.serv.CreateChallenge(context.Background(), uid, req)
		require.NoError(t, err)
	})
	t.Run("validation error", func(t *testing.T) {
		d := newChallengesDeps(t)
		req := validChallengeRequest()
		req.Title = ""
		req.Elements = nil
		_, err := d.serv.CreateChallenge(context.Background(), uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("invalid element day", func(t *testing.T) {
		d := newChallengesDeps(t)
		req := validChallengeRequest()
		req.Elements[0].Day = 0
		_, err := d.serv.CreateChallenge(context.Background(), uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("owner not found", func(t *testing.T) {
		d := newChallengesDeps(t)
		runInTx(d.transactor)
		d.challengesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrOwnerNotFound)
		_, err := d.serv.CreateChallenge(context.Background(), uid, validChallengeRequest())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("challenge duplication", func(t *testing.T) {
		d := newChallengesDeps(t)
		runInTx(d.transactor)
		d.challengesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrUserHasChallenge)
		_, err := d.serv.CreateChallenge(context.Background(), uid, validChallengeRequest())
		assert.ErrorIs(t, err, errorvalues.ErrUserHasChallenge)
	})
	t.Run("elements error", func(t *testing.T) {
		d := newChallengesDeps(t)
		runInTx(d.transactor)
		d.challengesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(challengeID, nil)
		d.elementsRepo.EXPECT().CreateMany(gomock.Any(), challengeID, gomock.Any()).Return(errors.New("db error"))
		_, err := d.serv.CreateChallenge(context.Background(), uid, validChallengeRequest())
		assert.EqualError(t, err, "elements repository error: db error")
	})
}

func TestGetUserChallenges(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	challenges := []*entity.Challenge{{ID: uuid.New(), UserID: uid}, {ID: uuid.New(), UserID: uid}}
	t.Run("success", func(t *testing.T) {
		d := newChallengesDeps(t)
		d.challengesRepo.EXPECT().GetByUserID(gomock.Any(), uid, 10, 20).Return(challenges, nil)
		res, err := d.serv.GetUserChallenges(context.Background(), uid, service.PaginationOpts{Limit: 10, Offset: 20})
		require.NoError(t, err)
		assert.Equal(t, challenges, res)
	})
	t.Run("db error", func(t *testing.T) {
		d := newChallengesDeps(t)
		d.challengesRepo.EXPECT().GetByUserID(gomock.Any(), uid, 10, 0).Return(nil, errors.New("db error"))
		_, err := d.serv.GetUserChallenges(context.Background(), uid, service.PaginationOpts{Limit: 10})
		assert.Error(t, err)
	})
}

func TestGetChallenge(t *testing.T) {
	t.Parallel()
	uid, challengeID := uuid.New(), uuid.New()
	elements := []entity.ChallengeElement{{ID: uuid.New(), ChallengeID: challengeID, Day: 1}}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func(d *challengesDeps)
	}{
		{
			Desc: "success",
			MockPrepFunc: func(d *challengesDeps) {
				d.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(&entity.Challenge{ID: challengeID, UserID: uid}, nil)
				d.elementsRepo.EXPECT().GetByChallengeID(gomock.Any(), challengeID).Return(elements, nil)
			},
		},
		{
			Desc:  "wrong owner",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func(d *challengesDeps) {
				d.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(&entity.Challenge{ID: challengeID, UserID: uuid.New()}, nil)
				d.elementsRepo.EXPECT().GetByChallengeID(gomock.Any(), challengeID).Return(elements, nil)
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrChallengeNotFound,
			MockPrepFunc: func(d *challengesDeps) {
				d.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(nil, errorvalues.ErrChallengeNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			d := newChallengesDeps(t)
			tc.MockPrepFunc(d)
			c, err := d.serv.GetChallenge(context.Background(), challengeID, uid)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, elements, c.Elements)
		})
	}
}

func TestDeleteChallenge(t *testing.T) {
	t.Parallel()
	uid, challengeID := uuid.New(), uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func(d *challengesDeps)
	}{
		{
			Desc: "success recomputes progress",
			MockPrepFunc: func(d *challengesDeps) {
				runInTx(d.transactor)
				d.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(&entity.Challenge{ID: challengeID, UserID: uid}, nil)
				d.challengesRepo.EXPECT().Delete(gomock.Any(), challengeID).Return(nil)
				d.expectRecompute(uuid.Nil, uid, entity.ElementCounts{})
			},
		},
		{
			Desc:  "wrong owner",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func(d *challengesDeps) {
				runInTx(d.transactor)
				d.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(&entity.Challenge{ID: challengeID, UserID: uuid.New()}, nil)
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrChallengeNotFound,
			MockPrepFunc: func(d *challengesDeps) {
				runInTx(d.transactor)
				d.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(nil, errorvalues.ErrChallengeNotFound)
			},
		},
		{
			Desc:  "deleted concurrently",
			Error: errorvalues.ErrChallengeNotFound,
			MockPrepFunc: func(d *challengesDeps) {
				runInTx(d.transactor)
				d.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(&entity.Challenge{ID: challengeID, UserID: uid}, nil)
				d.challengesRepo.EXPECT().Delete(gomock.Any(), challengeID).Return(errorvalues.ErrChallengeNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			d := newChallengesDeps(t)
			tc.MockPrepFunc(d)
			err := d.serv.DeleteChallenge(context.Background(), challengeID, uid)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
		})
	}
}
