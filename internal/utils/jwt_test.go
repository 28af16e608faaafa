package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	tok, err := NewAccessToken("test-secret", 42, "admin", 60)
	assert.NoError(t, err)
	assert.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), tok.Exp, 5*time.Second)

	claims, err := ParseAccessToken("test-secret", tok.Token)
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	tok, err := NewAccessToken("test-secret", 1, "user", 60)
	assert.NoError(t, err)

	_, err = ParseAccessToken("other-secret", tok.Token)
	assert.Error(t, err)
}

func TestParseAccessToken_Expired(t *testing.T) {
	tok, err := NewAccessToken("test-secret", 1, "user", -1)
	assert.NoError(t, err)

	_, err = ParseAccessToken("test-secret", tok.Token)
	assert.Error(t, err)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	_, err := ParseAccessToken("test-secret", "not.a.jwt")
	assert.Error(t, err)
}
