package util

import (
	"crypto/rand"
	"math/big"

	"pymerp/internal/errors"
)

// DefaultPasswordLength is the length of provisioned and reset passwords.
const DefaultPasswordLength = 12

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

// GenerateRandomPassword returns length characters drawn uniformly from letters,
// digits and !@#$%^&* using a cryptographic source. A non-positive length uses
// DefaultPasswordLength.
func GenerateRandomPassword(length int) (string, error) {
	if length <= 0 {
		length = DefaultPasswordLength
	}

	max := big.NewInt(int64(len(passwordCharset)))
	password := make([]byte, length)
	for i := range password {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		password[i] = passwordCharset[idx.Int64()]
	}

	return string(password), nil
}
