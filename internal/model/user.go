package model

import "time"

// User is a registered account. PasswordHash is nil for accounts created
// through Google sign-in; GoogleID is nil for local accounts. A user always
// has at least one of the two.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"`
	GoogleID     *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthClaims is the decoded identity carried by a bearer token.
type AuthClaims struct {
	UserID   string `json:"sub"`
	Username string `json:"username"`
}
