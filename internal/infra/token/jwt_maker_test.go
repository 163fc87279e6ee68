package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func TestJWTMaker(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	userID := uint(42)
	duration := time.Minute
	issuedAt := time.Now()
	expiredAt := issuedAt.Add(duration)

	tokenStr, payload, err := maker.CreateToken(userID, false, duration)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)
	require.NotEmpty(t, payload)

	verified, err := maker.VerifyToken(tokenStr)
	require.NoError(t, err)
	require.Equal(t, payload.ID, verified.ID)
	require.Equal(t, userID, verified.UserID)
	require.False(t, verified.IsAdmin)
	require.WithinDuration(t, issuedAt, verified.IssuedAt, time.Second)
	require.WithinDuration(t, expiredAt, verified.ExpiredAt, time.Second)
}

func TestJWTMaker_AdminToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	tokenStr, _, err := maker.CreateToken(7, true, time.Minute)
	require.NoError(t, err)

	verified, err := maker.VerifyToken(tokenStr)
	require.NoError(t, err)
	require.True(t, verified.IsAdmin)
}

func TestJWTMaker_ExpiredToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	tokenStr, _, err := maker.CreateToken(42, false, -time.Minute)
	require.NoError(t, err)

	verified, err := maker.VerifyToken(tokenStr)
	require.ErrorIs(t, err, ErrExpiredToken)
	require.Nil(t, verified)
}

func TestJWTMaker_WrongKey(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	other, err := NewJWTMaker(strings.Repeat("x", 32))
	require.NoError(t, err)

	tokenStr, _, err := other.CreateToken(42, false, time.Minute)
	require.NoError(t, err)

	verified, err := maker.VerifyToken(tokenStr)
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Nil(t, verified)
}

func TestJWTMaker_NoneAlgorithm(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	payload, err := NewPayload(42, false, time.Minute)
	require.NoError(t, err)

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodNone, payload)
	tokenStr, err := jwtToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	verified, err := maker.VerifyToken(tokenStr)
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Nil(t, verified)
}

func TestNewJWTMaker_ShortKey(t *testing.T) {
	maker, err := NewJWTMaker("too-short")
	require.Error(t, err)
	require.Nil(t, maker)
}
