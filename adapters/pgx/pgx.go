// Package pgx implements tanod's UserDirectory on a PostgreSQL pool.
//
// Expected schema:
//
//	CREATE TABLE users (
//	    id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
//	    email         text NOT NULL,
//	    username      text NOT NULL,
//	    password_hash text NOT NULL,
//	    created_at    timestamptz NOT NULL DEFAULT now(),
//	    updated_at    timestamptz NOT NULL DEFAULT now()
//	);
//	CREATE UNIQUE INDEX users_email_lower_idx ON users (lower(email));
//
// The unique index on lower(email) is what makes concurrent duplicate
// registration safe; the service's pre-check is only a fast path.
package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmirasol/tanod"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var _ tanod.UserDirectory = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}
