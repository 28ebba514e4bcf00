package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation error")

	ErrChallengeNotFound = errors.New("challenge doesn't exist")
	ErrOwnerNotFound     = errors.New("challenge owner doesn't exist")
	ErrWrongOwner        = errors.New("challenge has different owner")
	ErrUserHasChallenge  = errors.New("user already has challenge with such title")

	ErrProgressNotFound = errors.New("user progress doesn't exist")
	ErrProgressExists   = errors.New("user progress already exists")
)
