package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garimajunejaa/jobportall/internal/common"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)

	signed, err := tokens.Generate(42, "recruiter")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "recruiter", claims.Role)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tokens := NewTokenManager("secret", -time.Minute)

	signed, err := tokens.Generate(1, "student")
	require.NoError(t, err)

	_, err = tokens.Parse(signed)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeUnauthorized))
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := NewTokenManager("secret-a", time.Hour).Generate(1, "student")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Parse(signed)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeUnauthorized))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pw123456")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123456", hash)
	assert.True(t, CheckPassword(hash, "pw123456"))
	assert.False(t, CheckPassword(hash, "pw1234567"))
}
