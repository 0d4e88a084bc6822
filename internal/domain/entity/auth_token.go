package entity

import "time"

// TokenPurpose is the single intended use of an issued auth token.
type TokenPurpose string

const (
	PurposeEmailVerify    TokenPurpose = "email_verify"
	PurposeForgotPassword TokenPurpose = "forgot_password"
)

// AuthToken is a short-lived single-purpose token. At most one live row
// exists per (email, purpose); issuing a new one supersedes the old.
// There is no persisted expired state: age is computed from UpdatedAt at
// redemption time.
type AuthToken struct {
	ID        string
	Email     string
	Purpose   TokenPurpose
	Token     string
	UpdatedAt time.Time
}
