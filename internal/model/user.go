package model

import "time"

// User represents a registered account. Email is stored lower-cased and is
// unique across accounts.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Premium      bool      `db:"premium" json:"premium"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// DailyUsage is one day's conversion counter for a free-tier user. At most
// one row exists per (user, day).
type DailyUsage struct {
	UserID string `db:"user_id" json:"user_id"`
	Day    string `db:"day" json:"day"`
	Count  int    `db:"count" json:"count"`
}

// UsageDay returns the ledger key for t: the UTC calendar day as YYYY-MM-DD.
func UsageDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
