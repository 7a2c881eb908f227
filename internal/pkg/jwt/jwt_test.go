package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionTokenRoundtrip(t *testing.T) {
	token, err := GenerateSessionToken("0x70997970C51812dc3A010C7d01b50e0d17dc79C8", "provider", testSecret, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", claims.Address)
	assert.Equal(t, "provider", claims.Role)
	assert.Equal(t, "scholarchain", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateSessionToken_WrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("0xabc", "applicant", testSecret, 60)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "other-secret")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateSessionToken_Expired(t *testing.T) {
	token, err := GenerateSessionToken("0xabc", "applicant", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, testSecret)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	_, err := ValidateSessionToken("not.a.token", testSecret)
	require.ErrorIs(t, err, ErrTokenInvalid)
}
