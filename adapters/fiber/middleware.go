package fiber

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jmirasol/tanod"
	"github.com/jmirasol/tanod/ratelimit"
)

// requireAuth validates the bearer token and stores its claims in the
// context for downstream handlers.
func (a *Adapter) requireAuth(c fiber.Ctx) error {
	tok := extractToken(c)
	if tok == "" {
		return c.Status(http.StatusUnauthorized).JSON(map[string]string{
			"error": "missing authorization header",
		})
	}

	claims, err := a.tokens.Parse(tok)
	if err != nil {
		return handleAuthError(c, err)
	}

	c.Locals("claims", claims)
	return c.Next()
}

// throttle applies the configured rate limit per client IP. Limiter
// errors fail open; blocking logins on a broken limiter would be worse
// than letting a burst through.
func (a *Adapter) throttle(c fiber.Ctx) error {
	if a.limiter == nil {
		return c.Next()
	}

	key := c.IP()
	allowed, err := a.limiter.Allow(c.Context(), key)
	if err != nil {
		return c.Next()
	}
	if !allowed {
		if ml, ok := a.limiter.(*ratelimit.MemoryLimiter); ok {
			retryAfter := int(time.Until(ml.ResetAt(key)).Seconds())
			if retryAfter < 0 {
				retryAfter = 0
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
		}
		return c.Status(http.StatusTooManyRequests).JSON(map[string]string{
			"error": tanod.ErrTooManyRequests.Error(),
		})
	}

	return c.Next()
}
