package helpers

import "golang.org/x/crypto/bcrypt"

// Cost for account password hashes.
const passwordHashCost = bcrypt.DefaultCost

// bcrypt ignores input past 72 bytes; reject instead of truncating.
const maxPasswordBytes = 72

// HashPassword bcrypt-hashes an account password.
func HashPassword(plain string) (string, error) {
	if len(plain) > maxPasswordBytes {
		return "", bcrypt.ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword reports whether plain matches the stored hash.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
