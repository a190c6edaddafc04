package service

import (
	"testing"
	"time"

	"storefront/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123"

func restoreTokenGlobals() {
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

func TestTokenIssueVerify(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	ts := NewTokenService(testSecret, time.Hour)

	tok, err := ts.Issue("a@b.com", model.RoleAdmin)
	require.NoError(t, err)

	claims, err := ts.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", claims.Email)
	require.Equal(t, model.RoleAdmin, claims.Role)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
}

func TestTokenNoExpiry(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	ts := NewTokenService(testSecret, 0)

	tok, err := ts.Issue("a@b.com", model.RoleUser)
	require.NoError(t, err)

	timeNow = func() time.Time { return time.Now().Add(24 * 365 * time.Hour) }
	claims, err := ts.Verify(tok)
	require.NoError(t, err)
	require.Nil(t, claims.ExpiresAt)
}

func TestTokenExpired(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	ts := NewTokenService(testSecret, time.Minute)

	tok, err := ts.Issue("a@b.com", model.RoleUser)
	require.NoError(t, err)

	timeNow = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = ts.Verify(tok)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenRejects(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	ts := NewTokenService(testSecret, time.Hour)

	_, err := NewTokenService("", time.Hour).Issue("a@b.com", model.RoleUser)
	require.Error(t, err)
	_, err = NewTokenService("", time.Hour).Verify("abc")
	require.Error(t, err)

	_, err = ts.Verify("not-a-token")
	require.Error(t, err)

	other, _ := NewTokenService("another-secret-value", time.Hour).Issue("a@b.com", model.RoleAdmin)
	_, err = ts.Verify(other)
	require.Error(t, err)

	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "a@b.com"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = ts.Verify(tokNone)
	require.Error(t, err)

	noEmail, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin"}).SignedString([]byte(testSecret))
	_, err = ts.Verify(noEmail)
	require.Error(t, err)

	parseWithClaims = func(string, jwt.Claims, jwt.Keyfunc, ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = ts.Verify("whatever")
	require.Error(t, err)
}
