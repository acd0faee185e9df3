package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmirasol/tanod/pkg/crypto"
)

// SubjectRegistered is the event subject published after a successful
// registration. The payload is the new user's PublicProfile.
const SubjectRegistered = "user.registered"

// AuthService orchestrates registration and login over its collaborators.
// It holds no mutable state of its own; every call is independent and
// safe to run concurrently.
type AuthService struct {
	directory UserDirectory
	passwords crypto.PasswordHandler
	tokens    TokenIssuer
	events    EventPublisher // optional, may be nil
}

func NewAuthService(directory UserDirectory, passwords crypto.PasswordHandler, tokens TokenIssuer, events EventPublisher) *AuthService {
	return &AuthService{
		directory: directory,
		passwords: passwords,
		tokens:    tokens,
		events:    events,
	}
}

// Register creates a new identity from email, username, and password.
// The returned profile carries no credential material.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*PublicProfile, error) {
	email := NormalizeEmail(input.Email)

	// Step 1: Refuse emails that are already taken. This check is not
	// atomic with the create below; the directory's uniqueness
	// constraint backs it up.
	existing, err := s.directory.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	// Step 2: Hash the password. Only the digest is stored.
	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Create the identity. A concurrent registration that wins
	// the race trips the constraint and surfaces as ErrUserExists, the
	// same as the pre-check.
	identity, err := s.directory.Create(ctx, email, input.Username, hash)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile := identity.Profile()

	// Step 4: Notify listeners. Best effort - the registration already
	// succeeded and a broker hiccup must not undo it.
	if s.events != nil {
		_ = s.events.Publish(SubjectRegistered, profile)
	}

	return profile, nil
}

// ValidateCredentials checks an email/password pair against the directory.
// Both failure branches return ErrInvalidCredentials so a caller cannot
// tell an unknown email from a wrong password.
func (s *AuthService) ValidateCredentials(ctx context.Context, input LoginInput) (*PublicProfile, error) {
	identity, err := s.directory.FindByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	ok, err := s.passwords.Verify(input.Password, identity.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return identity.Profile(), nil
}

// IssueSession mints a bearer token for an already-validated profile.
// It is a separate operation from ValidateCredentials so callers can
// validate without issuing, or compose the two.
func (s *AuthService) IssueSession(profile *PublicProfile) (*Session, error) {
	token, err := s.tokens.Issue(profile.ID, profile.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return &Session{AccessToken: token}, nil
}

// NormalizeEmail lowercases and trims an address so lookups and the
// uniqueness constraint are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
