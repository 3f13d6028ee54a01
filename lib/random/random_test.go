package random

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, i, len(String(i)))
	}
}

func TestKey(t *testing.T) {
	for _, n := range []int{0, 1, 64, 131} {
		key, err := Key(n)
		require.NoError(t, err)
		assert.Len(t, key, n)
	}
	a, err := Key(32)
	require.NoError(t, err)
	b, err := Key(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPasswordLength(t *testing.T) {
	for i := 0; i <= 128; i++ {
		s, err := Password(i)
		require.NoError(t, err)
		// expected length is number of bytes rounded up
		expected := i / 8
		if i%8 != 0 {
			expected++
		}
		// then converted to base 64
		expected = (expected*8 + 5) / 6
		assert.Equal(t, expected, len(s), i)
	}
}

func TestPasswordDuplicates(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s, err := Password(64)
		require.NoError(t, err)
		assert.False(t, seen[s])
		seen[s] = true
	}
	_, err := base64.RawURLEncoding.DecodeString(func() string { s, _ := Password(64); return s }())
	assert.NoError(t, err)
}
