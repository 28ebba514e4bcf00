package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Challenge struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"userId"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	StartsAt             time.Time `json:"startsAt"`
	TotalPoints          int       `json:"totalPoints"`
	TotalElements        int       `json:"totalElements"`
	CompletedElements    int       `json:"completedElements"`
	CompletionPercentage float64   `json:"completionPercentage"`
	IsWeekCompleted      bool      `json:"isWeekCompleted"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`

	Elements []ChallengeElement `json:"elements,omitempty"`
}

// ChallengeElement is a single task of a challenge. CompletedAt is set iff IsCompleted.
type ChallengeElement struct {
	ID          uuid.UUID  `json:"id"`
	ChallengeID uuid.UUID  `json:"challengeId"`
	Title       string     `json:"title"`
	Day         int        `json:"day"`
	Points      int        `json:"points"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CompletedBy *uuid.UUID `json:"completedBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type ChallengeStats struct {
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	Percentage  float64 `json:"percentage"`
	IsCompleted bool    `json:"isCompleted"`
}

// ElementCounts is a raw count of a challenge's elements before derivation.
type ElementCounts struct {
	Total     int
	Completed int
}

// ChallengesSummary aggregates every challenge owned by a user.
type ChallengesSummary struct {
	TotalWeeks        int
	CompletedWeeks    int
	TotalElements     int
	CompletedElements int
	EarnedPoints      int
}

type Streaks struct {
	Current int `json:"currentStreak"`
	Longest int `json:"longestStreak"`
}

// UserProgress is the per-user dashboard rollup. TotalChallenges and
// CompletedChallenges hold element counts, not challenge counts.
type UserProgress struct {
	UserID              uuid.UUID  `json:"userId"`
	TotalWeeks          int        `json:"totalWeeks"`
	CompletedWeeks      int        `json:"completedWeeks"`
	TotalChallenges     int        `json:"totalChallenges"`
	CompletedChallenges int        `json:"completedChallenges"`
	OverallPercentage   float64    `json:"overallPercentage"`
	CurrentStreak       int        `json:"currentStreak"`
	LongestStreak       int        `json:"longestStreak"`
	TotalPoints         int        `json:"totalPoints"`
	LastActivityDate    *time.Time `json:"lastActivityDate,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

type CompletionResult struct {
	ElementID      uuid.UUID      `json:"elementId"`
	Completed      bool           `json:"completed"`
	ChallengeStats ChallengeStats `json:"challengeStats"`
}
