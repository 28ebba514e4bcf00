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

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(conn PgConnection) *ChallengesRepository {
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error) {
	var id uuid.UUID
	row := executor(ctx, cr.conn).QueryRow(ctx,
		`INSERT INTO challenges (user_id, title, description, starts_at, total_points) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		challenge.UserID,
		challenge.Title,
		challenge.Description,
		challenge.StartsAt,
		challenge.TotalPoints,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.Nil, errorvalues.ErrUserHasChallenge
			// FK violation
			case "23503":
				return uuid.Nil, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.Nil, errors.New("creating challenge db error: " + err.Error())
	}
	return id, nil
}

const challengeColumns = `id, user_id, title, description, starts_at, total_points, total_elements,
	completed_elements, completion_percentage, is_week_completed, created_at, updated_at`

func scanChallenge(row pgx.Row, c *entity.Challenge) error {
	return row.Scan(
		&c.ID,
		&c.UserID,
		&c.Title,
		&c.Description,
		&c.StartsAt,
		&c.TotalPoints,
		&c.TotalElements,
		&c.CompletedElements,
		&c.CompletionPercentage,
		&c.IsWeekCompleted,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var challenge entity.Challenge
	row := executor(ctx, cr.conn).QueryRow(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE id = $1;`, id)
	if err := scanChallenge(row, &challenge); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge by id error: " + err.Error())
	}
	return &challenge, nil
}

func (cr *ChallengesRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Challenge, error) {
	challenges := make([]*entity.Challenge, 0)
	rows, err := executor(ctx, cr.conn).Query(ctx, `SELECT `+challengeColumns+`
		FROM challenges WHERE user_id = $1 ORDER BY starts_at DESC, created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting challenges by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		c := entity.Challenge{}
		if err = scanChallenge(rows, &c); err != nil {
			return nil, errors.New("unmarshalling challenge error: " + err.Error())
		}
		challenges = append(challenges, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return challenges, nil
}

func (cr *ChallengesRepository) UpdateStats(ctx context.Context, id uuid.UUID, stats entity.ChallengeStats) error {
	_, err := executor(ctx, cr.conn).Exec(ctx, `UPDATE challenges SET total_elements = $1, completed_elements = $2,
		completion_percentage = $3, is_week_completed = $4, updated_at = NOW() WHERE id = $5;`,
		stats.Total, stats.Completed, stats.Percentage, stats.IsCompleted, id,
	)
	if err != nil {
		return errors.New("updating challenge stats error: " + err.Error())
	}
	return nil
}

func (cr *ChallengesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := executor(ctx, cr.conn).Exec(ctx, `DELETE FROM challenges WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting challenge error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrChallengeNotFound
	}
	return nil
}

func (cr *ChallengesRepository) SummaryByUser(ctx context.Context, uid uuid.UUID) (*entity.ChallengesSummary, error) {
	var summary entity.ChallengesSummary
	row := executor(ctx, cr.conn).QueryRow(ctx, `SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE c.is_week_completed),
		COALESCE(SUM(c.total_elements), 0),
		COALESCE(SUM(c.completed_elements), 0),
		COALESCE((SELECT SUM(e.points) FROM challenge_elements e JOIN challenges o ON o.id = e.challenge_id
			WHERE o.user_id = $1 AND e.is_completed), 0)
		FROM challenges c WHERE c.user_id = $1;`, uid)
	err := row.Scan(
		&summary.TotalWeeks,
		&summary.CompletedWeeks,
		&summary.TotalElements,
		&summary.CompletedElements,
		&summary.EarnedPoints,
	)
	if err != nil {
		return nil, errors.New("summarizing challenges error: " + err.Error())
	}
	return &summary, nil
}
