package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
)

// Identity is what a token asserts about its bearer.
type Identity struct {
	UserID uuid.UUID
	Role   domain.Role
	Email  string
}

// JWTService issues and verifies bearer tokens.
type JWTService interface {
	// GenerateToken signs a token for the given identity.
	GenerateToken(ctx context.Context, id Identity) (string, error)

	// ValidateToken verifies signature and lifetime and returns the claims.
	// Expired tokens yield ErrExpiredToken; anything else unusable yields
	// ErrInvalidToken or ErrTokenNotYetValid.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of a token.
type Claims struct {
	UserID    uuid.UUID
	Role      domain.Role
	Email     string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// Identity returns the identity the claims assert.
func (c *Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Role: c.Role, Email: c.Email}
}
