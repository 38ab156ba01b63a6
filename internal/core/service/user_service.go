package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// UserService implements registration, listing and the admin role checks.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a user record unless one with the same email already
// exists. The duplicate case is a normal outcome, not an error: it reports
// Existed and performs no write.
func (s *UserService) Register(ctx context.Context, user domain.User) (*ports.RegisterResult, error) {
	if user.Role == "" {
		user.Role = domain.RoleGuest
	}

	_, err := s.repo.FindByEmail(ctx, user.Email)
	if err == nil {
		return &ports.RegisterResult{Existed: true}, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	res, err := s.repo.Insert(ctx, &user)
	if err != nil {
		// The unique email index may win a race the lookup above lost.
		if errors.Is(err, domain.ErrUserExists) {
			return &ports.RegisterResult{Existed: true}, nil
		}
		s.logger.Error().Err(err).Msg("failed to insert user")
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Msg("user registered")
	return &ports.RegisterResult{Insert: res}, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// AdminStatus answers whether the record for email is an admin. A caller
// asking about anyone but themselves gets false with no store lookup.
func (s *UserService) AdminStatus(ctx context.Context, callerEmail, email string) (bool, error) {
	if email != callerEmail {
		return false, nil
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

// Promote sets the record identified by id to the admin role and reports the
// store's matched/modified counts verbatim.
func (s *UserService) Promote(ctx context.Context, id string) (*ports.UpdateResult, error) {
	res, err := s.repo.PromoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Int64("modified", res.ModifiedCount).Msg("user promoted to admin")
	return res, nil
}
