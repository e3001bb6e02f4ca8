package auth_test

import (
	"strings"
	"testing"

	"github.com/anuj140/hireengine/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))

	ok, err := hasher.Verify("correct horse", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	again, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "each hash gets a fresh salt")
}

func TestPasswordHasher_Cost(t *testing.T) {
	cheap := auth.NewPasswordHasher(auth.WithArgon2Cost(2, 8*1024, 1))
	assert.Equal(t, auth.Argon2Params{Time: 2, MemoryKiB: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}, cheap.Params())

	hash, err := cheap.Hash("s3cret pass")
	require.NoError(t, err)
	assert.Contains(t, hash, "$m=8192,t=2,p=1$")

	// Stored hashes keep verifying after the cost settings change.
	ok, err := auth.NewPasswordHasher().Verify("s3cret pass", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, auth.DefaultArgon2Params, auth.NewPasswordHasher(auth.WithArgon2Cost(0, 0, 0)).Params())
}

func TestPasswordHasher_MalformedHashes(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	for name, encoded := range map[string]string{
		"plaintext":     "plaintext",
		"bcrypt":        "$2a$10$abcdefghijklmnopqrstuv",
		"old version":   "$argon2id$v=16$m=65536,t=1,p=4$c2FsdA$a2V5",
		"bad params":    "$argon2id$v=19$memory=1$c2FsdA$a2V5",
		"bad salt":      "$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5",
		"empty key":     "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$",
		"missing field": "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := hasher.Verify("x", encoded)
			assert.ErrorIs(t, err, auth.ErrMalformedHash)
		})
	}
}
