package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/mindwell/internal/error_values"
	"github.com/limbo/mindwell/pkg/entity"
)

type ElementsRepository struct {
	conn PgConnection
}

func NewElementsRepo(conn PgConnection) *ElementsRepository {
	return &ElementsRepository{
		conn: conn,
	}
}

func (er *ElementsRepository) CreateMany(ctx context.Context, challengeID uuid.UUID, elements []entity.ChallengeElement) error {
	db := executor(ctx, er.conn)
	for _, el := range elements {
		_, err := db.Exec(ctx, `INSERT INTO challenge_elements (challenge_id, title, day, points) VALUES ($1, $2, $3, $4);`,
			challengeID, el.Title, el.Day, el.Points,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return errorvalues.ErrChallengeNotFound
			}
			return errors.New("creating challenge element error: " + err.Error())
		}
	}
	return nil
}

func (er *ElementsRepository) GetByChallengeID(ctx context.Context, challengeID uuid.UUID) ([]entity.ChallengeElement, error) {
	rows, err := executor(ctx, er.conn).Query(ctx, `SELECT id, challenge_id, title, day, points, is_completed, completed_at,
		completed_by, created_at, updated_at FROM challenge_elements WHERE challenge_id = $1 ORDER BY day, created_at;`, challengeID)
	if err != nil {
		return nil, errors.New("getting challenge elements error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.ChallengeElement, 0)
	for rows.Next() {
		el := entity.ChallengeElement{}
		err = rows.Scan(&el.ID, &el.ChallengeID, &el.Title, &el.Day, &el.Points, &el.IsCompleted, &el.CompletedAt,
			&el.CompletedBy, &el.CreatedAt, &el.UpdatedAt)
		if err != nil {
			return nil, errors.New("challenge element row parsing error: " + err.Error())
		}
		result = append(result, el)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected challenge element rows error: " + err.Error())
	}
	return result, nil
}

// SetCompletion clears completed_at and completed_by when completed is false.
// An element outside challengeID matches zero rows.
func (er *ElementsRepository) SetCompletion(ctx context.Context, challengeID, elementID, userID uuid.UUID, completed bool, at time.Time) (int64, error) {
	var (
		completedAt *time.Time
		completedBy *uuid.UUID
	)
	if completed {
		completedAt = &at
		completedBy = &userID
	}
	ct, err := executor(ctx, er.conn).Exec(ctx, `UPDATE challenge_elements SET is_completed = $1, completed_at = $2,
		completed_by = $3, updated_at = $4 WHERE id = $5 AND challenge_id = $6;`,
		completed, completedAt, completedBy, at, elementID, challengeID,
	)
	if err != nil {
		return 0, errors.New("setting element completion error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}

func (er *ElementsRepository) CountByChallenge(ctx context.Context, challengeID uuid.UUID) (entity.ElementCounts, error) {
	var counts entity.ElementCounts
	row := executor(ctx, er.conn).QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_completed) FROM challenge_elements WHERE challenge_id = $1;`,
		challengeID,
	)
	if err := row.Scan(&counts.Total, &counts.Completed); err != nil {
		return entity.ElementCounts{}, errors.New("error counting elements: " + err.Error())
	}
	return counts, nil
}

func (er *ElementsRepository) CompletionTimesByUser(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := executor(ctx, er.conn).Query(ctx, `SELECT e.completed_at FROM challenge_elements e
		JOIN challenges c ON c.id = e.challenge_id
		WHERE c.user_id = $1 AND e.is_completed AND e.completed_at IS NOT NULL ORDER BY e.completed_at;`, uid)
	if err != nil {
		return nil, errors.New("getting completion times error: " + err.Error())
	}
	defer rows.Close()
	result := make([]time.Time, 0)
	for rows.Next() {
		var at time.Time
		if err = rows.Scan(&at); err != nil {
			return nil, errors.New("completion time parsing error: " + err.Error())
		}
		result = append(result, at)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected completion time rows error: " + err.Error())
	}
	return result, nil
}
