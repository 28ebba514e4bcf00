package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/mindwell/internal/error_values"
	"github.com/limbo/mindwell/pkg/entity"
)

type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepo(conn PgConnection) *ProgressRepository {
	return &ProgressRepository{
		conn: conn,
	}
}

func (pr *ProgressRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error) {
	var p entity.UserProgress
	row := executor(ctx, pr.conn).QueryRow(ctx, `SELECT user_id, total_weeks, completed_weeks, total_challenges,
		completed_challenges, overall_percentage, current_streak, longest_streak, total_points, last_activity_date,
		created_at, updated_at FROM user_progress WHERE user_id = $1;`, uid)
	err := row.Scan(
		&p.UserID,
		&p.TotalWeeks,
		&p.CompletedWeeks,
		&p.TotalChallenges,
		&p.CompletedChallenges,
		&p.OverallPercentage,
		&p.CurrentStreak,
		&p.LongestStreak,
		&p.TotalPoints,
		&p.LastActivityDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProgressNotFound
		}
		return nil, errors.New("getting user progress error: " + err.Error())
	}
	return &p, nil
}

func (pr *ProgressRepository) Create(ctx context.Context, p *entity.UserProgress) error {
	_, err := executor(ctx, pr.conn).Exec(ctx, `INSERT INTO user_progress (user_id, total_weeks, completed_weeks,
		total_challenges, completed_challenges, overall_percentage, current_streak, longest_streak, total_points,
		last_activity_date, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		p.UserID,
		p.TotalWeeks,
		p.CompletedWeeks,
		p.TotalChallenges,
		p.CompletedChallenges,
		p.OverallPercentage,
		p.CurrentStreak,
		p.LongestStreak,
		p.TotalPoints,
		p.LastActivityDate,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrProgressExists
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating user progress error: " + err.Error())
	}
	return nil
}

func (pr *ProgressRepository) Update(ctx context.Context, p *entity.UserProgress) error {
	ct, err := executor(ctx, pr.conn).Exec(ctx, `UPDATE user_progress SET total_weeks = $1, completed_weeks = $2,
		total_challenges = $3, completed_challenges = $4, overall_percentage = $5, current_streak = $6,
		longest_streak = $7, total_points = $8, last_activity_date = $9, updated_at = $10 WHERE user_id = $11;`,
		p.TotalWeeks,
		p.CompletedWeeks,
		p.TotalChallenges,
		p.CompletedChallenges,
		p.OverallPercentage,
		p.CurrentStreak,
		p.LongestStreak,
		p.TotalPoints,
		p.LastActivityDate,
		p.UpdatedAt,
		p.UserID,
	)
	if err != nil {
		return errors.New("updating user progress error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProgressNotFound
	}
	return nil
}
