package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is deliberately above the library default; login is rare
// compared to request verification, so the extra CPU is acceptable.
const bcryptCost = 12

// HashPassword derives a salted, adaptive digest from a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches digest. It never returns
// an error; callers must respond identically for unknown users and wrong
// passwords to avoid oracle behavior.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
