package session_test

import (
	"encoding/base64"
	"testing"

	"activities-service/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID_Entropy(t *testing.T) {
	id, err := session.GenerateID()
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(id)
	require.NoError(t, err)
	assert.Len(t, raw, 32) // 256 bits
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := session.GenerateID()
		require.NoError(t, err)
		assert.False(t, seen[id], "token reused across logins")
		seen[id] = true
	}
}
