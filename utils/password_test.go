package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestSchemeOf(t *testing.T) {
	hash, err := HashPassword("secret-pw")
	require.NoError(t, err)
	assert.Equal(t, SchemeBcrypt, SchemeOf(hash))
	assert.Equal(t, SchemeLegacySHA256, SchemeOf(sha256Hex("secret-pw")))
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("secret-pw")
	require.NoError(t, err)

	ok, upgrade := VerifyPassword(hash, "secret-pw")
	assert.True(t, ok)
	assert.False(t, upgrade, "modern hashes must not request an upgrade")

	ok, _ = VerifyPassword(hash, "wrong-pw")
	assert.False(t, ok)
}

func TestVerifyPasswordLegacy(t *testing.T) {
	legacy := sha256Hex("old-pw")

	ok, upgrade := VerifyPassword(legacy, "old-pw")
	assert.True(t, ok)
	assert.True(t, upgrade, "legacy match must request an upgrade")

	ok, upgrade = VerifyPassword(legacy, "wrong-pw")
	assert.False(t, ok)
	assert.False(t, upgrade, "failed legacy verify must not request an upgrade")
}

func TestLegacyUpgradeProducesBcrypt(t *testing.T) {
	legacy := sha256Hex("old-pw")
	ok, upgrade := VerifyPassword(legacy, "old-pw")
	require.True(t, ok)
	require.True(t, upgrade)

	// What the login path persists after a legacy match.
	newHash, err := HashPassword("old-pw")
	require.NoError(t, err)
	assert.Equal(t, SchemeBcrypt, SchemeOf(newHash))

	// The second verification takes the modern branch.
	ok, upgrade = VerifyPassword(newHash, "old-pw")
	assert.True(t, ok)
	assert.False(t, upgrade)
}
