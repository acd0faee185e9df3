// Package memory provides an in-memory UserDirectory for tests, examples,
// and single-process setups. Uniqueness is enforced under a mutex, so the
// duplicate-registration guarantee holds for concurrent callers too.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmirasol/tanod"
)

type Directory struct {
	mu      sync.RWMutex
	byEmail map[string]*tanod.Identity // keyed by normalized email
}

var _ tanod.UserDirectory = (*Directory)(nil)

func New() *Directory {
	return &Directory{
		byEmail: make(map[string]*tanod.Identity),
	}
}

func (d *Directory) FindByEmail(ctx context.Context, email string) (*tanod.Identity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	identity, ok := d.byEmail[tanod.NormalizeEmail(email)]
	if !ok {
		return nil, tanod.ErrUserNotFound
	}
	cp := *identity
	return &cp, nil
}

func (d *Directory) Create(ctx context.Context, email, username, passwordHash string) (*tanod.Identity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := tanod.NormalizeEmail(email)
	if _, exists := d.byEmail[key]; exists {
		return nil, tanod.ErrUserExists
	}

	now := time.Now()
	identity := &tanod.Identity{
		ID:           uuid.NewString(),
		Email:        key,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	d.byEmail[key] = identity

	cp := *identity
	return &cp, nil
}

// Len reports the number of stored identities.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byEmail)
}
