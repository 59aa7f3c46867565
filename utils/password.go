package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashScheme identifies the format of a stored password hash. Early admin
// accounts were created with an unsalted SHA-256 hex digest; everything
// written since uses bcrypt. The scheme is derived from the stored string so
// both formats verify, and legacy hashes are upgraded on first successful
// login (see VerifyPassword).
type HashScheme int

const (
	SchemeBcrypt HashScheme = iota
	SchemeLegacySHA256
)

// SchemeOf classifies a stored hash by its format. bcrypt hashes are
// self-describing ("$2a$", "$2b$", "$2y$"); anything else is treated as a
// legacy hex digest.
func SchemeOf(hash string) HashScheme {
	if strings.HasPrefix(hash, "$2") {
		return SchemeBcrypt
	}
	return SchemeLegacySHA256
}

// HashPassword hashes with the current scheme. Password changes always go
// through here regardless of what the account stored before.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func legacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword checks password against a stored hash of either scheme.
// needsUpgrade is true when the match succeeded against a legacy hash; the
// caller must re-hash and persist before reporting success so the account
// migrates off the unsalted digest.
func VerifyPassword(storedHash, password string) (ok bool, needsUpgrade bool) {
	switch SchemeOf(storedHash) {
	case SchemeBcrypt:
		err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
		return err == nil, false
	case SchemeLegacySHA256:
		digest := legacyDigest(password)
		match := subtle.ConstantTimeCompare([]byte(digest), []byte(storedHash)) == 1
		return match, match
	}
	return false, false
}
