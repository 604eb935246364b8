package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashVerify(t *testing.T) {
	hash, err := Hash("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)

	ok, err := Verify("pw123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same")
	require.NoError(t, err)
	b, err := Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyMalformedHash(t *testing.T) {
	ok, err := Verify("pw123", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestHashLongPassword(t *testing.T) {
	long := strings.Repeat("a", 80)

	hash, err := Hash(long)
	require.NoError(t, err)

	ok, err := Verify(long, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	// Only the first MaxLength bytes count.
	ok, err = Verify(long[:MaxLength]+"different tail", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify(strings.Repeat("b", 80), hash)
	require.NoError(t, err)
	assert.False(t, ok)
}
