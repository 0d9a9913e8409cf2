package auth

import "golang.org/x/crypto/bcrypt"

const defaultBcryptCost = 10

// HashPassword hashes a plaintext password with the configured cost. A
// non-positive cost falls back to the default work factor.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = defaultBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
