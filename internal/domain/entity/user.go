package entity

import "time"

// User is the credential record: login identity plus verification state.
// Passwords are stored as bcrypt hashes in Password.
type User struct {
	ID            string
	Name          string
	Email         string
	Password      string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
