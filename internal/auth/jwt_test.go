package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", 24*time.Hour)

	token, err := svc.Issue(42, "ann@example.com", false)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "ann@example.com", claims.Email)
	assert.False(t, claims.Admin)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue(42, "ann@example.com", false)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenService("right-secret", time.Hour).Issue(42, "ann@example.com", false)
	require.NoError(t, err)

	_, err = NewTokenService("wrong-secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTamperedPayload(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(42, "ann@example.com", false)
	require.NoError(t, err)

	// Swap the subject claim without re-signing; the signature must fail even
	// though the token is unexpired.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	forged := strings.Replace(string(payload), `"sub":"42"`, `"sub":"7"`, 1)
	require.NotEqual(t, string(payload), forged)

	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))
	_, err = svc.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
