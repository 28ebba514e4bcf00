package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/mindwell/internal/error_values"
	"github.com/limbo/mindwell/internal/repository"
	"github.com/limbo/mindwell/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userID = uuid.New()
)

var challengeRowColumns = []string{"id", "user_id", "title", "description", "starts_at", "total_points", "total_elements",
	"completed_elements", "completion_percentage", "is_week_completed", "created_at", "updated_at"}

func addChallengeRow(rows *pgxmock.Rows, c *entity.Challenge) *pgxmock.Rows {
	return rows.AddRow(c.ID, c.UserID, c.Title, c.Description, c.StartsAt, c.TotalPoints, c.TotalElements,
		c.CompletedElements, c.CompletionPercentage, c.IsWeekCompleted, c.CreatedAt, c.UpdatedAt)
}

func TestCreateChallenge(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengesRepo(mock)
	challenge := entity.Challenge{
		UserID:      userID,
		Title:       "gratitude week",
		Description: "three good things a day",
		StartsAt:    time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		TotalPoints: 70,
	}
	cid := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO challenges (user_id, title, description, starts_at, total_points) VALUES ($1, $2, $3, $4, $5) RETURNING id;`)
	testCases := []struct {
		Desc         string
		Error        error
		ID           uuid.UUID
		MockPrepFunc func()
	}{
		{
			Desc: "successfully created",
			ID:   cid,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(challenge.UserID, challenge.Title, challenge.Description, challenge.StartsAt, challenge.TotalPoints).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(cid))
			},
		},
		{
			Desc:  "unique violation",
			Error: errorvalues.ErrUserHasChallenge,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(challenge.UserID, challenge.Title, challenge.Description, challenge.StartsAt, challenge.TotalPoints).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrOwnerNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(challenge.UserID, challenge.Title, challenge.Description, challenge.StartsAt, challenge.TotalPoints).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating challenge db error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(challenge.UserID, challenge.Title, challenge.Description, challenge.StartsAt, challenge.TotalPoints).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := repo.Create(ctx, &challenge)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.ID, id)
			}
		})
	}
}

func TestGetChallengeByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengesRepo(mock)
	now := time.Now()
	challenge := entity.Challenge{
		ID:                   uuid.New(),
		UserID:               userID,
		Title:                "mindful mornings",
		StartsAt:             now,
		TotalElements:        4,
		CompletedElements:    2,
		CompletionPercentage: 50,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	query := regexp.QuoteMeta(`FROM challenges WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(challenge.ID).
			WillReturnRows(addChallengeRow(pgxmock.NewRows(challengeRowColumns), &challenge))
		result, err := repo.GetByID(context.Background(), challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, challenge, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(challenge.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(context.Background(), challenge.ID)
		assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(challenge.ID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(context.Background(), challenge.ID)
		assert.EqualError(t, err, "getting challenge by id error: db error")
	})
}

func TestGetChallengesByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengesRepo(mock)
	now := time.Now()
	returned := []*entity.Challenge{
		{ID: uuid.New(), UserID: userID, Title: "week 2", StartsAt: now, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), UserID: userID, Title: "week 1", StartsAt: now.AddDate(0, 0, -7), CreatedAt: now, UpdatedAt: now},
	}
	query := regexp.QuoteMeta(`FROM challenges WHERE user_id = $1 ORDER BY starts_at DESC, created_at DESC LIMIT $2 OFFSET $3;`)
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(challengeRowColumns)
		for _, c := range returned {
			addChallengeRow(rows, c)
		}
		mock.ExpectQuery(query).WithArgs(userID, 10, 0).WillReturnRows(rows)
		result, err := repo.GetByUserID(context.Background(), userID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, returned, result)
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, 10, 10).WillReturnRows(pgxmock.NewRows(challengeRowColumns))
		result, err := repo.GetByUserID(context.Background(), userID, 10, 10)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, 10, 0).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(context.Background(), userID, 10, 0)
		assert.EqualError(t, err, "getting challenges by uid error: db error")
	})
}

func TestUpdateChallengeStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengesRepo(mock)
	cid := uuid.New()
	stats := entity.ChallengeStats{Total: 3, Completed: 3, Percentage: 100, IsCompleted: true}
	query := regexp.QuoteMeta(`UPDATE challenges SET total_elements = $1, completed_elements = $2,`)
	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(stats.Total, stats.Completed, stats.Percentage, stats.IsCompleted, cid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdateStats(context.Background(), cid, stats))
	})
	t.Run("unknown challenge is not an error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(stats.Total, stats.Completed, stats.Percentage, stats.IsCompleted, cid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.NoError(t, repo.UpdateStats(context.Background(), cid, stats))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(stats.Total, stats.Completed, stats.Percentage, stats.IsCompleted, cid).
			WillReturnError(errors.New("db error"))
		assert.EqualError(t, repo.UpdateStats(context.Background(), cid, stats), "updating challenge stats error: db error")
	})
}

func TestDeleteChallenge(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengesRepo(mock)
	cid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM challenges WHERE id = $1;`)
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "deleted",
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(cid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrChallengeNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(cid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("deleting challenge error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(cid).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Delete(context.Background(), cid)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSummaryByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengesRepo(mock)
	query := regexp.QuoteMeta(`FROM challenges c WHERE c.user_id = $1;`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"count", "completed", "total_elements", "completed_elements", "points"}).
				AddRow(3, 1, 12, 7, 45))
		summary, err := repo.SummaryByUser(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, entity.ChallengesSummary{
			TotalWeeks:        3,
			CompletedWeeks:    1,
			TotalElements:     12,
			CompletedElements: 7,
			EarnedPoints:      45,
		}, *summary)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := repo.SummaryByUser(context.Background(), userID)
		assert.EqualError(t, err, "summarizing challenges error: db error")
	})
}
