package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmirasol/tanod"
)

func (a *Adapter) FindByEmail(ctx context.Context, email string) (*tanod.Identity, error) {
	q := `SELECT id, email, username, password_hash, created_at, updated_at FROM users WHERE lower(email) = lower($1)`

	identity := &tanod.Identity{}
	err := a.pool.QueryRow(ctx, q, email).Scan(
		&identity.ID,
		&identity.Email,
		&identity.Username,
		&identity.PasswordHash,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tanod.ErrUserNotFound
		}
		return nil, err
	}
	return identity, nil
}

func (a *Adapter) Create(ctx context.Context, email, username, passwordHash string) (*tanod.Identity, error) {
	q := `INSERT INTO users (email, username, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`

	identity := &tanod.Identity{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
	}
	err := a.pool.QueryRow(ctx, q, email, username, passwordHash).Scan(
		&identity.ID,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, tanod.ErrUserExists
		}
		return nil, err
	}
	return identity, nil
}
