package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrDailyLimitReached is returned when a user has spent their free
// conversions for the day.
var ErrDailyLimitReached = errors.New("daily_limit_reached")

// UsageRepository tracks per-user, per-day conversion counts for free-tier
// limits.
type UsageRepository interface {
	// IncrementWithinLimit atomically takes one conversion slot for
	// (userID, day) and returns the resulting count, creating the row at
	// count 1 on first use. When the counter already stands at limit or
	// above, nothing is written and ErrDailyLimitReached is returned.
	IncrementWithinLimit(ctx context.Context, userID, day string, limit int) (int, error)
	// Get returns the current count for (userID, day), 0 when absent.
	Get(ctx context.Context, userID, day string) (int, error)
}

type usageRepo struct {
	db *sql.DB
}

func NewUsageRepo(db *sql.DB) UsageRepository {
	return &usageRepo{db: db}
}

// IncrementWithinLimit is a single conditional upsert so that concurrent
// callers for the same (userID, day) serialize on the row: each allowed call
// observes a distinct count and a call that loses the race for the last slot
// writes nothing. A separate read followed by a write would let concurrent
// requests slip past the limit.
func (r *usageRepo) IncrementWithinLimit(ctx context.Context, userID, day string, limit int) (int, error) {
	const q = `
        INSERT INTO usage_daily (user_id, day, count)
        VALUES ($1, $2, 1)
        ON CONFLICT (user_id, day)
        DO UPDATE SET count = usage_daily.count + 1
        WHERE usage_daily.count < $3
        RETURNING count
    `
	var count int
	if err := r.db.QueryRowContext(ctx, q, userID, day, limit).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrDailyLimitReached
		}
		return 0, fmt.Errorf("incrementing usage for user %s on %s: %w", userID, day, err)
	}
	return count, nil
}

func (r *usageRepo) Get(ctx context.Context, userID, day string) (int, error) {
	const q = `SELECT count FROM usage_daily WHERE user_id = $1 AND day = $2`
	var count int
	if err := r.db.QueryRowContext(ctx, q, userID, day).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading usage for user %s on %s: %w", userID, day, err)
	}
	return count, nil
}
