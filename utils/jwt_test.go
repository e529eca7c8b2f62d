package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Generate(42, "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	assert.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").Generate(1, "admin")
	assert.NoError(t, err)

	_, err = NewTokenIssuer("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	_, err := NewTokenIssuer("secret").Parse("not-a-token")
	assert.Error(t, err)
}
