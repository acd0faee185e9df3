package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/jmirasol/tanod"
	"github.com/jmirasol/tanod/token"
)

// register handles POST {base}/register.
func (a *Adapter) register(c fiber.Ctx) error {
	var input tanod.RegisterInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]string{
			"error": "invalid request body",
		})
	}

	if err := tanod.ValidateRegisterInput(input); err != nil {
		return handleAuthError(c, err)
	}

	profile, err := a.auth.Register(c.Context(), input)
	if err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(profile)
}

// login handles POST {base}/login. Credential validation and session
// issuance are two core calls composed here.
func (a *Adapter) login(c fiber.Ctx) error {
	var input tanod.LoginInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]string{
			"error": "invalid request body",
		})
	}

	if err := tanod.ValidateLoginInput(input); err != nil {
		return handleAuthError(c, err)
	}

	profile, err := a.auth.ValidateCredentials(c.Context(), input)
	if err != nil {
		return handleAuthError(c, err)
	}

	session, err := a.auth.IssueSession(profile)
	if err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusOK).JSON(session)
}

// me handles GET {base}/me using the claims set by requireAuth.
func (a *Adapter) me(c fiber.Ctx) error {
	claims := c.Locals("claims").(*token.SessionClaims)

	return c.Status(http.StatusOK).JSON(map[string]any{
		"id":        claims.Subject,
		"username":  claims.Username,
		"expiresAt": claims.ExpiresAt.Time,
	})
}

// extractToken pulls the bearer token from the Authorization header.
func extractToken(c fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ""
}

// handleAuthError maps tanod errors to HTTP responses. Invalid
// credentials deliberately map to a bare 401 with no detail about which
// part of the credential failed.
func handleAuthError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	return c.Status(status).JSON(map[string]string{
		"error": err.Error(),
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, tanod.ErrUserExists):
		return http.StatusConflict

	case errors.Is(err, tanod.ErrInvalidCredentials),
		errors.Is(err, token.ErrTokenExpired),
		errors.Is(err, token.ErrTokenMalformed),
		errors.Is(err, token.ErrTokenInvalidSig):
		return http.StatusUnauthorized

	case errors.Is(err, tanod.ErrEmailRequired),
		errors.Is(err, tanod.ErrInvalidEmail),
		errors.Is(err, tanod.ErrUsernameRequired),
		errors.Is(err, tanod.ErrPasswordRequired),
		errors.Is(err, tanod.ErrPasswordTooShort),
		errors.Is(err, tanod.ErrPasswordTooLong):
		return http.StatusBadRequest

	case errors.Is(err, tanod.ErrTooManyRequests):
		return http.StatusTooManyRequests

	default:
		return http.StatusInternalServerError
	}
}
