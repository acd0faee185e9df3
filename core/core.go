package core

import (
	"context"
	"time"

	"github.com/jmirasol/tanod/pkg/crypto"
	"github.com/jmirasol/tanod/ratelimit"
	"github.com/jmirasol/tanod/token"
)

type Config struct {
	// Secret signs session tokens. Required, minimum 32 characters.
	Secret string

	// Directory is the durable identity store. Required.
	Directory UserDirectory

	// Optional config
	HTTP             HTTPAdapter
	TokenLifetime    time.Duration
	PasswordHasher   crypto.PasswordHandler
	Publisher        EventPublisher
	RateLimit        *ratelimit.Config
	DisableRateLimit bool
	BasePath         string
}

type Tanod struct {
	Auth     AuthProvider
	Tokens   *token.Issuer
	Limiter  ratelimit.Limiter // nil when rate limiting is disabled
	BasePath string
}

// Close releases background resources (the limiter's cleanup goroutine).
func (t *Tanod) Close() error {
	if t.Limiter != nil {
		return t.Limiter.Close()
	}
	return nil
}

// AuthProvider is the surface HTTP adapters program against.
type AuthProvider interface {
	Register(ctx context.Context, input RegisterInput) (*PublicProfile, error)
	ValidateCredentials(ctx context.Context, input LoginInput) (*PublicProfile, error)
	IssueSession(profile *PublicProfile) (*Session, error)
}

// Ensure AuthService implements AuthProvider
var _ AuthProvider = (*AuthService)(nil)

type HTTPAdapter interface {
	RegisterRoutes(t *Tanod) error
}
