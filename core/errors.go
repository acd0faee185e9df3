package core

import "errors"

// Authentication errors
var (
	ErrUserExists         = errors.New("user with this email already exists") // 409 Conflict
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password") // 401 Unauthorized
)

// Validation errors (client input)
var (
	ErrEmailRequired    = errors.New("email is required")     // 400
	ErrInvalidEmail     = errors.New("invalid email format")  // 400
	ErrUsernameRequired = errors.New("username is required")  // 400
	ErrPasswordRequired = errors.New("password is required")  // 400
	ErrPasswordTooShort = errors.New("password is too short") // 400
	ErrPasswordTooLong  = errors.New("password is too long")  // 400
)

// Rate limit errors
var (
	ErrTooManyRequests = errors.New("too many requests") // 429
)

// Config errors (server-side configuration)
var (
	ErrDirectoryRequired = errors.New("user directory is required") // 500
	ErrSecretRequired    = errors.New("secret is required")         // 500
	ErrSecretTooShort    = errors.New("secret too short")           // 500
)
