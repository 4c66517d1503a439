package helpers

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the fixed work factor the stored hashes were created with.
const bcryptCost = 10

// HashPassword hashes the plain text password using bcrypt. The plaintext
// never leaves this function as anything but the hash.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password.
// bcrypt's own compare is constant-time; do not replace it with string
// equality.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
