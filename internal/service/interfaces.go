package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindwell/pkg/entity"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . UserServiceI,ChallengesServiceI,CompletionServiceI,ProgressServiceI

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateChallengeRequest struct {
	Title       string                 `validate:"required,min=1,max=200"`
	Description string                 `validate:"max=2000"`
	StartsAt    time.Time              `validate:"required"`
	TotalPoints int                    `validate:"gte=0"`
	Elements    []CreateElementRequest `validate:"required,min=1,max=100,dive"`
}

type CreateElementRequest struct {
	Title  string `validate:"required,min=1,max=200"`
	Day    int    `validate:"gte=1,lte=366"`
	Points int    `validate:"gte=0"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type ChallengesServiceI interface {
	// Creates challenge with its elements. Stats and user's progress are recomputed before return
	CreateChallenge(ctx context.Context, uid uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error)
	GetUserChallenges(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Challenge, error)
	// Returns challenge with elements. Fails with ErrWrongOwner for foreign challenges
	GetChallenge(ctx context.Context, challengeID, uid uuid.UUID) (*entity.Challenge, error)
	DeleteChallenge(ctx context.Context, challengeID, uid uuid.UUID) error
}

type CompletionServiceI interface {
	// Toggles element completion and cascades recomputation of challenge stats, streaks and progress
	RecordCompletion(ctx context.Context, uid, challengeID, elementID uuid.UUID, completed bool) (*entity.CompletionResult, error)
}

type ProgressServiceI interface {
	// Returns user's progress, creating zeroed row on first access
	GetProgress(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error)
	// Recomputes user's progress from challenges and completion history
	Upsert(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error)
}
