package core

import (
	"errors"
	"strings"
	"testing"
)

// Requirement: registration input is validated at the boundary - email
// shape, username presence, password length 6..128.
func TestValidateRegisterInput(t *testing.T) {
	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{
			name:  "valid input",
			input: RegisterInput{Email: "user@example.com", Username: "johndoe", Password: "strongPassword123"},
		},
		{
			name:    "empty email",
			input:   RegisterInput{Email: "", Username: "johndoe", Password: "secret1"},
			wantErr: ErrEmailRequired,
		},
		{
			name:    "malformed email",
			input:   RegisterInput{Email: "not-an-email", Username: "johndoe", Password: "secret1"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email with display name",
			input:   RegisterInput{Email: "John <john@example.com>", Username: "johndoe", Password: "secret1"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "missing username",
			input:   RegisterInput{Email: "user@example.com", Username: "  ", Password: "secret1"},
			wantErr: ErrUsernameRequired,
		},
		{
			name:    "empty password",
			input:   RegisterInput{Email: "user@example.com", Username: "johndoe", Password: ""},
			wantErr: ErrPasswordRequired,
		},
		{
			name:    "password below minimum",
			input:   RegisterInput{Email: "user@example.com", Username: "johndoe", Password: "12345"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:  "password at minimum",
			input: RegisterInput{Email: "user@example.com", Username: "johndoe", Password: "123456"},
		},
		{
			name:    "password above maximum",
			input:   RegisterInput{Email: "user@example.com", Username: "johndoe", Password: strings.Repeat("a", 129)},
			wantErr: ErrPasswordTooLong,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			err := ValidateRegisterInput(test.input)
			if test.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateRegisterInput() error = %v", err)
				}
				return
			}
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("ValidateRegisterInput() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

// Requirement: login input needs a well-formed email and a non-empty
// password; no length rule so old shorter passwords can still sign in.
func TestValidateLoginInput(t *testing.T) {
	tests := []struct {
		name    string
		input   LoginInput
		wantErr error
	}{
		{
			name:  "valid input",
			input: LoginInput{Email: "user@example.com", Password: "secret1"},
		},
		{
			name:  "short password allowed on login",
			input: LoginInput{Email: "user@example.com", Password: "abc"},
		},
		{
			name:    "empty email",
			input:   LoginInput{Email: "", Password: "secret1"},
			wantErr: ErrEmailRequired,
		},
		{
			name:    "malformed email",
			input:   LoginInput{Email: "user@", Password: "secret1"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "empty password",
			input:   LoginInput{Email: "user@example.com", Password: ""},
			wantErr: ErrPasswordRequired,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			err := ValidateLoginInput(test.input)
			if test.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateLoginInput() error = %v", err)
				}
				return
			}
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("ValidateLoginInput() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}
