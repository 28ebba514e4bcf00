package repository

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/mindwell/pkg/entity"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . UsersRepositoryI,ChallengesRepositoryI,ElementsRepositoryI,ProgressRepositoryI,TransactorI

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ChallengesRepositoryI interface {
	// Creates challenge row. UserID and Title are necessary, stats start zeroed
	Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// Lists challenges owned by uid, newest first. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Challenge, error)
	// Overwrites derived completion stats. Unknown id matches zero rows and is not an error
	UpdateStats(ctx context.Context, id uuid.UUID, stats entity.ChallengeStats) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Rolls every challenge of uid into one summary
	SummaryByUser(ctx context.Context, uid uuid.UUID) (*entity.ChallengesSummary, error)
}

type ElementsRepositoryI interface {
	// Inserts elements of challengeID
	CreateMany(ctx context.Context, challengeID uuid.UUID, elements []entity.ChallengeElement) error
	GetByChallengeID(ctx context.Context, challengeID uuid.UUID) ([]entity.ChallengeElement, error)
	// Sets completion state of element within challenge. Returns count of matched rows
	SetCompletion(ctx context.Context, challengeID, elementID, userID uuid.UUID, completed bool, at time.Time) (int64, error)
	// Counts all and completed elements of challenge
	CountByChallenge(ctx context.Context, challengeID uuid.UUID) (entity.ElementCounts, error)
	// Completion timestamps of every completed element in challenges owned by uid, oldest first
	CompletionTimesByUser(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
}

type ProgressRepositoryI interface {
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error)
	Create(ctx context.Context, progress *entity.UserProgress) error
	Update(ctx context.Context, progress *entity.UserProgress) error
}

type TransactorI interface {
	// Runs fn in a transaction. Repositories called with the ctx passed to fn join it
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type DBConfig interface {
	ConnString() string
}

// DBTX is satisfied by both the pool and a pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	DBTX
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

func (pgcfg *PGCfg) ConnString() string {
	connString := fmt.Sprintf("postgresql://%s:%s@%s/%s",
		url.QueryEscape(pgcfg.Username), url.QueryEscape(pgcfg.Password), pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connString += "?sslmode=" + pgcfg.SSLMode
	}
	return connString
}
