package api

import (
	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	GenerateToken(uid int64) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims carries the chat user id as a decimal string.
type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}
