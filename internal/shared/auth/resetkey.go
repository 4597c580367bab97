package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashResetKey hashes the operator reset key using bcrypt. The hash goes into
// RESET_KEY_HASH; the plain key is only ever presented in the X-Reset-Key
// header.
func HashResetKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyResetKey checks a presented reset key against the configured hash.
func VerifyResetKey(hashedKey, key string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(key))
}
