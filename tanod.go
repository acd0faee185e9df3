// Package tanod provides email/password authentication with stateless JWT
// sessions for Go applications.
//
// The library owns the invariants around credential handling - argon2id
// hashing, constant-time verification, duplicate-identity mapping, and
// enumeration-resistant login failures - and leaves storage and transport
// to pluggable adapters.
//
// Basic usage:
//
//	t, err := tanod.New(tanod.Config{
//	    Secret:    os.Getenv("JWT_SECRET"),
//	    Directory: pgxadapter.New(pool),
//	    HTTP:      fiberadapter.New(app),
//	})
package tanod

import (
	"fmt"

	"github.com/jmirasol/tanod/core"
	"github.com/jmirasol/tanod/pkg/crypto"
	"github.com/jmirasol/tanod/ratelimit"
	"github.com/jmirasol/tanod/token"
)

// interfaces
type (
	UserDirectory  = core.UserDirectory
	EventPublisher = core.EventPublisher
	TokenIssuer    = core.TokenIssuer
	AuthProvider   = core.AuthProvider
	HTTPAdapter    = core.HTTPAdapter

	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	Tanod       = core.Tanod
	Config      = core.Config
	AuthService = core.AuthService
)

type (
	Identity      = core.Identity
	PublicProfile = core.PublicProfile
	RegisterInput = core.RegisterInput
	LoginInput    = core.LoginInput
	Session       = core.Session
)

const (
	defaultBasePath  = "/api/auth"
	defaultSecretLen = 32
)

// Constructors & helpers (convenience re-exports)
var (
	NewArgon2       = crypto.NewArgon2
	NewAuthService  = core.NewAuthService
	NormalizeEmail  = core.NormalizeEmail
	DefaultLifetime = token.DefaultLifetime

	ValidateRegisterInput = core.ValidateRegisterInput
	ValidateLoginInput    = core.ValidateLoginInput
)

var (
	ErrUserExists         = core.ErrUserExists
	ErrUserNotFound       = core.ErrUserNotFound
	ErrInvalidCredentials = core.ErrInvalidCredentials
)

var (
	ErrEmailRequired    = core.ErrEmailRequired
	ErrInvalidEmail     = core.ErrInvalidEmail
	ErrUsernameRequired = core.ErrUsernameRequired
	ErrPasswordRequired = core.ErrPasswordRequired
	ErrPasswordTooShort = core.ErrPasswordTooShort
	ErrPasswordTooLong  = core.ErrPasswordTooLong
	ErrTooManyRequests  = core.ErrTooManyRequests
)

var (
	ErrDirectoryRequired = core.ErrDirectoryRequired
	ErrSecretRequired    = core.ErrSecretRequired
	ErrSecretTooShort    = core.ErrSecretTooShort
)

func New(config Config) (*Tanod, error) {
	if config.Secret == "" {
		return nil, ErrSecretRequired
	}
	if len(config.Secret) < defaultSecretLen {
		return nil, fmt.Errorf("%w - minimum of %d characters", ErrSecretTooShort, defaultSecretLen)
	}
	if config.Directory == nil {
		return nil, ErrDirectoryRequired
	}

	// Set Defaults

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewArgon2()
	}

	issuer, err := token.NewIssuer([]byte(config.Secret), config.TokenLifetime)
	if err != nil {
		return nil, err
	}

	var limiter ratelimit.Limiter
	if !config.DisableRateLimit {
		rl := config.RateLimit
		if rl == nil {
			rl = ratelimit.DefaultConfig()
		}
		limiter = ratelimit.NewMemoryLimiter(rl.Rate, rl.Window)
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	tanod := &Tanod{
		Auth:     core.NewAuthService(config.Directory, passwordHasher, issuer, config.Publisher),
		Tokens:   issuer,
		Limiter:  limiter,
		BasePath: basePath,
	}

	if config.HTTP != nil {
		if err := config.HTTP.RegisterRoutes(tanod); err != nil {
			return nil, err
		}
	}

	return tanod, nil
}
