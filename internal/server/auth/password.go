// Package auth implements credential hashing for the server. Tokens are
// opaque and stored server-side; the only cryptography here is the slow
// password hash.
package auth

import "golang.org/x/crypto/bcrypt"

// hashCost keeps a single hash in the tens of milliseconds on commodity
// hardware. Raising it invalidates nothing: the cost is embedded per digest.
const hashCost = 10

// PasswordHasher wraps bcrypt hashing and verification. The per-call salt
// and cost parameters live inside the digest, so no separate salt storage
// is needed.
type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

// Hash derives a salted digest from the plaintext. It fails only when the
// entropy source is unavailable, which callers treat as fatal.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify recomputes the hash using the parameters embedded in digest and
// compares in constant time. A mismatch is a normal false result, never an
// error.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
