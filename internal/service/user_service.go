package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"app/internal/auth"
	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserService interface {
	// Signup creates an account for the (lower-cased) email and returns it
	// together with a fresh session token.
	Signup(ctx context.Context, email, password string) (*model.User, string, error)
	// Login verifies the credentials and returns the account with a fresh
	// session token.
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Get(ctx context.Context, id string) (*model.User, error)
	// ActivatePremium flips the entitlement flag for the account.
	ActivatePremium(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repo      repository.UserRepository
	authority *auth.Authority
	logger    zerolog.Logger
}

func NewUserService(repo repository.UserRepository, authority *auth.Authority, logger zerolog.Logger) UserService {
	return &userService{
		repo:      repo,
		authority: authority,
		logger:    logger.With().Str("service", "UserService").Logger(),
	}
}

func (s *userService) Signup(ctx context.Context, email, password string) (*model.User, string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	u := &model.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, "", ErrEmailTaken
		}
		s.logger.Error().Err(err).Str("email", u.Email).Msg("Failed to create user")
		return nil, "", err
	}

	token, err := s.authority.Issue(u.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", u.ID).Msg("Failed to issue session token")
		return nil, "", err
	}
	return u, token, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	u, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to fetch user for login")
		return nil, "", err
	}
	if u == nil || !auth.CheckPassword(u.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.authority.Issue(u.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", u.ID).Msg("Failed to issue session token")
		return nil, "", err
	}
	return u, token, nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) ActivatePremium(ctx context.Context, id string) (*model.User, error) {
	u, err := s.repo.SetPremium(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("Failed to set premium flag")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	s.logger.Info().Str("user_id", id).Msg("Premium activated")
	return u, nil
}
