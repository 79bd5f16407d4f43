package auth

import (
	"context"
	"time"
)

// MockJWTService is a JWTService whose behaviour is set per test.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, id Identity) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*Claims, error)

	// Token and Claims are returned when the corresponding Fn is nil.
	Token  string
	Claims *Claims
}

var _ JWTService = (*MockJWTService)(nil)

// GenerateToken implements JWTService.
func (m *MockJWTService) GenerateToken(ctx context.Context, id Identity) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, id)
	}
	if m.Token == "" {
		return "mock-jwt-token", nil
	}
	return m.Token, nil
}

// ValidateToken implements JWTService.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if m.Claims == nil {
		return nil, ErrInvalidToken
	}
	c := *m.Claims
	if c.ExpiresAt.IsZero() {
		c.ExpiresAt = time.Now().Add(time.Hour)
	}
	return &c, nil
}
