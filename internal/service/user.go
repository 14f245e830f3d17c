// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, hashes, orchestrates
//	Repository (Data layer)  → reads/writes the database
//
// The service depends on repository interfaces, not on the sqlite package —
// tests inject in-memory fakes, and the storage backend can change without
// touching this code. Services return domain errors (apperror); they never
// see HTTP status codes.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nikitav/billboard/internal/model"
	"github.com/nikitav/billboard/internal/password"
	"github.com/nikitav/billboard/internal/repository"
	"github.com/nikitav/billboard/internal/validation"
)

// UserService handles registration, lookup, and deletion of user accounts.
type UserService struct {
	repo   repository.UserRepository
	hasher password.Hasher
	logger *slog.Logger
}

// NewUserService creates a UserService. The hashing scheme is injected so
// the caller (composition root) decides between the legacy digest and bcrypt.
func NewUserService(repo repository.UserRepository, hasher password.Hasher, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// Create validates the registration payload, hashes the password, and
// persists the new user.
//
// The plaintext password exists only inside this method — what goes into the
// model, the database, and the response is the hash. Validation failures,
// including "password is too short", surface as apperror validation errors;
// a duplicate user_name or email surfaces as a conflict from the repository.
func (s *UserService) Create(ctx context.Context, in validation.CreateUserInput) (*model.User, error) {
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		UserName: in.UserName,
		Email:    in.Email,
		Password: hash,
	}

	// The repository fills in ID and RegistrationTime on success.
	if err := s.repo.Create(ctx, user); err != nil {
		// %w keeps the apperror classification (conflict) reachable via
		// errors.Is at the HTTP boundary.
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user registered",
		slog.Int64("id", user.ID),
		slog.String("user_name", user.UserName),
	)

	return user, nil
}

// GetByID retrieves a user by id.
// Returns apperror.ErrNotFound if the user doesn't exist — not logged as an
// error, it's a normal response.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a user by id. The store cascades the delete to every
// billboard the user owns.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", slog.Int64("id", id))
	return nil
}
