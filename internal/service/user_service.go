package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/platform/logger"
	"github.com/pacificaway/pacificaway-api/internal/redact"
	"github.com/pacificaway/pacificaway-api/internal/service/auth"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

// Registration and login validation failures.
var (
	ErrRegistrationFieldsMissing = domain.NewValidationError(
		"firstName (or name), email, password, role are required")
	ErrCredentialsMissing = domain.NewValidationError("email and password required")
	ErrInvalidRole        = domain.NewValidationError("role must be customer, provider or admin")
)

// Registration is a sign-up request. A non-blank FirstName/LastName pair
// takes precedence over Name.
type Registration struct {
	Name      string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      domain.Role
}

// UserService covers account creation, login and profile lookups.
type UserService interface {
	// Register creates an account and returns it with a signed token.
	// A taken email yields store.ErrEmailExists.
	Register(ctx context.Context, r Registration) (*domain.User, string, error)

	// Login checks credentials and returns a signed token. Unknown emails
	// and wrong passwords both yield auth.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)

	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserServiceImpl implements UserService.
type UserServiceImpl struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.JWTService
	logger *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	log *slog.Logger,
) UserService {
	if users == nil || hasher == nil || tokens == nil {
		panic("user service dependencies cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &UserServiceImpl{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: log.With("component", "user_service"),
	}
}

var _ UserService = (*UserServiceImpl)(nil)

// Register validates r, stores the account with a hashed password and signs a
// token for it.
func (s *UserServiceImpl) Register(ctx context.Context, r Registration) (*domain.User, string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	fullName := domain.ResolveFullName(r.Name, r.FirstName, r.LastName)
	email := strings.TrimSpace(r.Email)
	if fullName == "" || email == "" || r.Password == "" || r.Role == "" {
		return nil, "", ErrRegistrationFieldsMissing
	}
	if !r.Role.Valid() {
		return nil, "", ErrInvalidRole
	}

	hash, err := s.hasher.Hash(r.Password)
	if err != nil {
		log.Error("failed to hash password", "error", redact.Error(err))
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, domain.NewUser{
		Name:         fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         r.Role,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to register existing email")
		} else {
			log.Error("failed to create user", "error", redact.Error(err))
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.GenerateToken(ctx, auth.Identity{UserID: user.ID, Role: user.Role, Email: user.Email})
	if err != nil {
		log.Error("failed to sign token", "error", redact.Error(err), "user_id", user.ID)
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	log.Info("user registered", "user_id", user.ID, "role", user.Role)
	return user, token, nil
}

// Login exchanges an email and password for a token.
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrCredentialsMissing
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug("login for unknown email")
		return "", auth.ErrInvalidCredentials
	}
	if err != nil {
		log.Error("failed to look up user", "error", redact.Error(err))
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Debug("login with wrong password", "user_id", user.ID)
			return "", auth.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := s.tokens.GenerateToken(ctx, auth.Identity{UserID: user.ID, Role: user.Role, Email: user.Email})
	if err != nil {
		log.Error("failed to sign token", "error", redact.Error(err), "user_id", user.ID)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// GetUser returns the user with id.
func (s *UserServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to retrieve user",
				"error", redact.Error(err),
				"user_id", id)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// ListUsers returns every user, newest first.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list users", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
