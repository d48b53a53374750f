package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString generates a random hexadecimal string of the given size.
// The size parameter specifies the number of random bytes drawn from the
// cryptographic source before hex encoding, so the final string length is
// twice the size. Session tokens use size 20 (160 bits of entropy).
//
// It returns an error only if the random number generator fails, which is
// treated as fatal by callers.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
