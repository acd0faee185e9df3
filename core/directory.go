package core

import "context"

// Ports define interfaces for external dependencies

// UserDirectory is the durable identity store consumed by the core.
//
// Implementations must treat email lookups as case-insensitive and report
// an absent user with ErrUserNotFound rather than a generic error. Create
// must enforce email uniqueness and report a violation with ErrUserExists.
// The store's own constraint, not the service's pre-check, is the final
// authority under concurrent registration.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	Create(ctx context.Context, email, username, passwordHash string) (*Identity, error)
}

// TokenIssuer mints the bearer token for an authenticated identity.
type TokenIssuer interface {
	Issue(subjectID, username string) (string, error)
}

// EventPublisher receives domain events after successful writes. It is
// optional glue (message broker, audit trail); a publish failure never
// fails the authentication call that triggered it.
type EventPublisher interface {
	Publish(subject string, payload any) error
}
