package core

import "time"

// Identity is a persisted user record.
//
// PasswordHash is the argon2id digest of the user's password, never the
// password itself. The field is excluded from JSON as a second line of
// defense, but callers should never see an Identity at all - the service
// only hands out PublicProfile values.
type Identity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile strips the credential material from an Identity.
// This is the only way a PublicProfile gets constructed.
func (i *Identity) Profile() *PublicProfile {
	return &PublicProfile{
		ID:        i.ID,
		Email:     i.Email,
		Username:  i.Username,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// PublicProfile is the caller-facing view of an Identity. It has no
// password or hash field, so the secret cannot leak through serialization.
type PublicProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterInput contains the data needed to register a new user.
type RegisterInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginInput is the ephemeral credential pair for a login attempt.
// It exists only for the duration of the call; it is never persisted
// and never logged.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of issuing a bearer token. The token is the whole
// session state; nothing is kept server-side.
type Session struct {
	AccessToken string `json:"accessToken"`
}
