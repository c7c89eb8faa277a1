package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken("secret", "user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("secret", "user-42")
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := ParseToken("secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
