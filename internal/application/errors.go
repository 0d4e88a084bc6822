package application

import "errors"

// Sentinel errors returned by services. Handlers map these onto HTTP
// statuses; everything else is treated as an internal error.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailNotVerified    = errors.New("please verify your email before logging in")
	ErrTokenRecentlySent   = errors.New("token recently sent, please wait before requesting again")
	ErrAlreadyVerified     = errors.New("email already verified")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrPasswordMismatch    = errors.New("current password is incorrect")
	ErrSamePassword        = errors.New("new password must differ from the current one")
	ErrPasswordConfirm     = errors.New("password confirmation does not match")
	ErrMailDelivery        = errors.New("failed to send email")

	// ErrInvalidToken covers every redemption failure. Not found, expired
	// and unknown email all collapse into this one message so callers
	// cannot probe which case occurred.
	ErrInvalidToken = errors.New("invalid token or token expired")
)
