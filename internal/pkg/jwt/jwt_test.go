package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_AccessRoundTrip(t *testing.T) {
	codec := NewCodec("access-secret", "refresh-secret", time.Minute, time.Hour)

	token, err := codec.SignAccess("user-1", "a@b.com", "A")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.VerifyAccess(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "A", claims.Name)
}

func TestCodec_RefreshUsesDistinctSecret(t *testing.T) {
	codec := NewCodec("access-secret", "refresh-secret", time.Minute, time.Hour)

	refresh, err := codec.SignRefresh("user-1", "a@b.com", "A")
	require.NoError(t, err)

	// A refresh token must not pass access verification and vice versa.
	_, err = codec.VerifyAccess(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	access, err := codec.SignAccess("user-1", "a@b.com", "A")
	require.NoError(t, err)
	_, err = codec.VerifyRefresh(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestCodec_ExpiredToken(t *testing.T) {
	codec := NewCodec("access-secret", "refresh-secret", -time.Minute, time.Hour)

	token, err := codec.SignAccess("user-1", "a@b.com", "A")
	require.NoError(t, err)

	claims, err := codec.VerifyAccess(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestCodec_WrongSecret(t *testing.T) {
	signer := NewCodec("access-secret", "refresh-secret", time.Minute, time.Hour)
	other := NewCodec("different-secret", "refresh-secret", time.Minute, time.Hour)

	token, err := signer.SignAccess("user-1", "a@b.com", "A")
	require.NoError(t, err)

	_, err = other.VerifyAccess(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestCodec_CorruptedToken(t *testing.T) {
	codec := NewCodec("access-secret", "refresh-secret", time.Minute, time.Hour)

	token, err := codec.SignAccess("user-1", "a@b.com", "A")
	require.NoError(t, err)

	_, err = codec.VerifyAccess(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = codec.VerifyAccess("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
