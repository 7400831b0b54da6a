package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// scrypt(16384,8,1) keeps verification in the tens of milliseconds on
// commodity hardware.
const (
	saltSize   = 16
	digestSize = 32
	scryptN    = 16384
	scryptR    = 8
	scryptP    = 1
)

// HashPassword generates a fresh random salt and returns (salt, digest).
// The digest is deterministic given the salt; the salt is never reused.
func HashPassword(password string) (salt, digest []byte, err error) {
	salt = make([]byte, saltSize)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("create salt: %w", err)
	}
	digest, err = scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, digestSize)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}
	return salt, digest, nil
}

// VerifyPassword recomputes the digest with the stored salt and compares in
// constant time.
func VerifyPassword(password string, salt, digest []byte) bool {
	dk, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, digestSize)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(dk, digest) == 1
}
