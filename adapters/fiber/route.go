// Package fiber mounts tanod's HTTP boundary on a Fiber app. Request
// validation happens here, before the core is invoked; the core itself
// never sees the transport.
package fiber

import (
	"github.com/gofiber/fiber/v3"
	"github.com/jmirasol/tanod"
	"github.com/jmirasol/tanod/ratelimit"
	"github.com/jmirasol/tanod/token"
)

type Adapter struct {
	app     *fiber.App
	auth    tanod.AuthProvider
	tokens  *token.Issuer
	limiter ratelimit.Limiter
}

var _ tanod.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app}
}

func (a *Adapter) RegisterRoutes(t *tanod.Tanod) error {
	a.auth = t.Auth
	a.tokens = t.Tokens
	a.limiter = t.Limiter

	api := a.app.Group(t.BasePath)

	// Public routes
	api.Post("/register", a.throttle, a.register)
	api.Post("/login", a.throttle, a.login)

	// Protected routes
	api.Get("/me", a.requireAuth, a.me)

	return nil
}
