// Package password wraps bcrypt behind the two operations the gateway
// needs: hash on registration, verify on login.
package password

import "golang.org/x/crypto/bcrypt"

// cost is fixed: high enough to slow brute force, low enough to keep a
// login in the tens of milliseconds.
const cost = 10

// Hasher produces and checks salted adaptive-cost password hashes.
// bcrypt salts per call, so hashing the same plaintext twice yields
// different outputs that both verify.
type Hasher struct{}

func NewHasher() *Hasher {
	return &Hasher{}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed or
// corrupted hash is reported as a plain mismatch, never an error.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
