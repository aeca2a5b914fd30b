package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err, "token must be URL-safe base64")
	require.Len(t, raw, 32, "token must carry 32 bytes of entropy")
}

func TestGenerateToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateToken()
		require.NoError(t, err)
		require.False(t, seen[token], "duplicate token generated")
		seen[token] = true
	}
}
