package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"app/internal/config"
	"app/internal/model"
	"app/internal/repository"
	"app/internal/transform"

	"github.com/rs/zerolog"
)

var (
	// ErrCharLimitExceeded is returned for free-tier conversions longer than
	// the per-conversion character limit.
	ErrCharLimitExceeded = errors.New("character limit exceeded")
	// ErrDailyLimitReached is returned once a free-tier user has spent their
	// daily conversions.
	ErrDailyLimitReached = errors.New("daily conversion limit reached")
)

// ConvertResult is the outcome of an allowed conversion. Remaining is nil for
// premium accounts.
type ConvertResult struct {
	Result    string
	Remaining *int
	Premium   bool
}

type ConvertService interface {
	Convert(ctx context.Context, userID, text string, useGreekOX bool) (*ConvertResult, error)
}

type convertService struct {
	userRepo   repository.UserRepository
	usageRepo  repository.UsageRepository
	charLimit  int
	dailyLimit int
	logger     zerolog.Logger
}

func NewConvertService(userRepo repository.UserRepository, usageRepo repository.UsageRepository, cfg *config.Config, logger zerolog.Logger) ConvertService {
	return &convertService{
		userRepo:   userRepo,
		usageRepo:  usageRepo,
		charLimit:  cfg.FreeCharLimit,
		dailyLimit: cfg.FreeDailyLimit,
		logger:     logger.With().Str("service", "ConvertService").Logger(),
	}
}

// Convert decides whether the request is within the user's entitlement and,
// if so, performs the substitution. Ordering is fixed: account load, length
// check, usage commit, transform. Deny paths never touch the usage counter,
// and the counter is only advanced for a request that is about to be served.
func (s *convertService) Convert(ctx context.Context, userID, text string, useGreekOX bool) (*ConvertResult, error) {
	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading user %s: %w", userID, err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if u.Premium {
		return &ConvertResult{
			Result:  transform.Convert(text, useGreekOX),
			Premium: true,
		}, nil
	}

	// The length cap applies before, and independently of, the daily counter.
	if utf8.RuneCountInString(text) > s.charLimit {
		return nil, ErrCharLimitExceeded
	}

	day := model.UsageDay(time.Now())
	count, err := s.usageRepo.IncrementWithinLimit(ctx, userID, day, s.dailyLimit)
	if err != nil {
		if errors.Is(err, repository.ErrDailyLimitReached) {
			return nil, ErrDailyLimitReached
		}
		return nil, fmt.Errorf("committing usage for user %s: %w", userID, err)
	}

	remaining := s.dailyLimit - count
	s.logger.Debug().Str("user_id", userID).Int("count", count).Int("remaining", remaining).Msg("Conversion slot taken")
	return &ConvertResult{
		Result:    transform.Convert(text, useGreekOX),
		Remaining: &remaining,
	}, nil
}
