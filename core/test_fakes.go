package core

import (
	"context"
	"fmt"
	"sync"
)

// FakeDirectory is a test-only UserDirectory backed by a map, keyed by
// normalized email. Error fields allow behavior injection.
type FakeDirectory struct {
	mu        sync.RWMutex
	byEmail   map[string]*Identity
	findErr   error
	createErr error
	nextID    int
}

func NewFakeDirectory() *FakeDirectory {
	return &FakeDirectory{
		byEmail: make(map[string]*Identity),
	}
}

func (f *FakeDirectory) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.findErr != nil {
		return nil, f.findErr
	}

	identity, ok := f.byEmail[NormalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return identity, nil
}

func (f *FakeDirectory) Create(ctx context.Context, email, username, passwordHash string) (*Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	key := NormalizeEmail(email)
	if _, exists := f.byEmail[key]; exists {
		return nil, ErrUserExists
	}

	f.nextID++
	identity := &Identity{
		ID:           fmt.Sprintf("user-%d", f.nextID),
		Email:        key,
		Username:     username,
		PasswordHash: passwordHash,
	}
	f.byEmail[key] = identity
	return identity, nil
}

func (f *FakeDirectory) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.byEmail)
}

// recordPublisher captures published events for assertions.
type recordPublisher struct {
	mu       sync.Mutex
	subjects []string
	payloads []any
	err      error
}

func (p *recordPublisher) Publish(subject string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, payload)
	return nil
}

// fakeIssuer returns a canned token or error.
type fakeIssuer struct {
	token string
	err   error

	subjectID string
	username  string
}

func (f *fakeIssuer) Issue(subjectID, username string) (string, error) {
	f.subjectID = subjectID
	f.username = username
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}
