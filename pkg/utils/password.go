package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a password with bcrypt (random salt baked into the hash).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a password against a bcrypt hash using bcrypt's own
// constant-time verification, never by comparing hashes directly.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
