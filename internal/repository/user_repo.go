package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"app/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrEmailTaken is returned when an insert collides with an existing email.
var ErrEmailTaken = errors.New("email already registered")

type UserRepository interface {
	// CreateUser inserts u, assigning an ID when unset. Returns ErrEmailTaken
	// if the email is already registered.
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	// SetPremium marks the user as premium and returns the updated row, or
	// nil if no such user exists.
	SetPremium(ctx context.Context, id string) (*model.User, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

const uniqueViolation = "23505"

func (r *userRepo) CreateUser(ctx context.Context, u *model.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	query := `INSERT INTO users (id, email, password_hash)
              VALUES ($1, $2, $3) RETURNING premium, created_at`
	err := r.db.QueryRowContext(ctx, query, u.ID, u.Email, u.PasswordHash).
		Scan(&u.Premium, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("inserting user %s: %w", u.Email, err)
	}
	return nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, email, password_hash, premium, created_at
              FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, email, password_hash, premium, created_at
              FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepo) SetPremium(ctx context.Context, id string) (*model.User, error) {
	query := `UPDATE users SET premium = TRUE WHERE id = $1
              RETURNING id, email, password_hash, premium, created_at`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepo) scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Premium, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}
