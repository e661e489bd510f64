package credentials

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	hash, err := svc.HashPassword("supersecret")
	require.NoError(t, err)
	require.NotEqual(t, "supersecret", hash)

	require.True(t, svc.CheckPassword(hash, "supersecret"))
	require.False(t, svc.CheckPassword(hash, "wrong"))
}

func TestHashPassword_NotDeterministicButVerifiable(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	first, err := svc.HashPassword("pw1")
	require.NoError(t, err)
	second, err := svc.HashPassword("pw1")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes differ while both verify
	require.NotEqual(t, first, second)
	require.True(t, svc.CheckPassword(first, "pw1"))
	require.True(t, svc.CheckPassword(second, "pw1"))
}

func TestIssueAndVerifyToken(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.IssueToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestVerifyToken_Expired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	token, err := svc.IssueToken(42)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	issuer := NewService("test-secret", time.Hour)
	verifier := NewService("other-secret", time.Hour)

	token, err := issuer.IssueToken(42)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Malformed(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	for _, tokenStr := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.VerifyToken(tokenStr)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}
