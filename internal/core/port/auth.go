package port

import (
	"context"
	"time"
)

type TokenPayload struct {
	Subject string
	Role    string
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(subject string, role string) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}

// TokenBlacklist is a shared store of revoked tokens. Revocations carry an
// explicit expiry so entries vanish together with the token they block.
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
