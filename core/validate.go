package core

import (
	"fmt"
	"net/mail"
	"strings"
)

const (
	// MinPasswordLength matches the minimum enforced at registration.
	MinPasswordLength = 6
	// MaxPasswordLength caps input fed to the memory-hard hash.
	MaxPasswordLength = 128
)

// ValidateRegisterInput checks a registration payload before it reaches
// the service. Boundary adapters run this; the service itself stays
// defensive but does not depend on it.
func ValidateRegisterInput(input RegisterInput) error {
	if err := validateEmail(input.Email); err != nil {
		return err
	}
	if strings.TrimSpace(input.Username) == "" {
		return ErrUsernameRequired
	}
	return validatePassword(input.Password)
}

// ValidateLoginInput checks a login payload before it reaches the service.
func ValidateLoginInput(input LoginInput) error {
	if err := validateEmail(input.Email); err != nil {
		return err
	}
	if input.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w - minimum of %d characters", ErrPasswordTooShort, MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w - maximum of %d characters", ErrPasswordTooLong, MaxPasswordLength)
	}
	return nil
}
