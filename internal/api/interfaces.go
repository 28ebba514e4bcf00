package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/mindwell/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Pinger reports storage availability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}
