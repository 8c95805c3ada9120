package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the work factor the site has always used.
const DefaultBcryptCost = 12

func HashPassword(password string, cost int) ([]byte, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// VerifyPassword reports whether password matches the stored hash. A malformed
// stored hash verifies as false rather than surfacing an error; callers
// collapse all failures into one generic credentials rejection.
func VerifyPassword(password string, encodedHash []byte) bool {
	return bcrypt.CompareHashAndPassword(encodedHash, []byte(password)) == nil
}
