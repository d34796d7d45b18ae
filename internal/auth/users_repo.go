package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/fitcal/internal/telemetry/tracing"
	"github.com/2beens/fitcal/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createUserSQL = `
		INSERT INTO app_user (email, password_hash)
		VALUES ($1, $2)
		RETURNING id::text, email, password_hash, created_at`
	getUserByEmailSQL = `
		SELECT id::text, email, password_hash, created_at
		FROM app_user
		WHERE email = $1`
)

type UsersRepo struct {
	db *pgxpool.Pool
}

func NewUsersRepo(db *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

func (r *UsersRepo) CreateUser(ctx context.Context, email, passwordHash string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var u User
	if err := r.db.QueryRow(ctx, createUserSQL, normalizeEmail(email), passwordHash).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user [query]: %w", err)
	}

	return &u, nil
}

func (r *UsersRepo) GetUserByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get_by_email")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var u User
	if err := r.db.QueryRow(ctx, getUserByEmailSQL, normalizeEmail(email)).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user [query]: %w", err)
	}

	return &u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
