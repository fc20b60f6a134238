package httpadapter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
)

func requestWith(header string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	return r
}

func TestAuthenticatorPrincipal(t *testing.T) {
	auth := NewAuthenticator("s3cret", "idp")
	now := time.Now()

	valid, err := IssueToken("s3cret", "idp", "alice", time.Hour, now)
	require.NoError(t, err)
	wrongIssuer, err := IssueToken("s3cret", "other", "alice", time.Hour, now)
	require.NoError(t, err)
	wrongKey, err := IssueToken("different", "idp", "alice", time.Hour, now)
	require.NoError(t, err)
	expired, err := IssueToken("s3cret", "idp", "alice", time.Minute, now.Add(-time.Hour))
	require.NoError(t, err)
	noSubject, err := IssueToken("s3cret", "idp", "", time.Hour, now)
	require.NoError(t, err)

	p, err := auth.Principal(requestWith(""))
	require.NoError(t, err)
	assert.True(t, p.IsAnonymous())

	p, err = auth.Principal(requestWith("Bearer " + valid))
	require.NoError(t, err)
	assert.Equal(t, domain.Principal("alice"), p)

	p, err = auth.Principal(requestWith("bearer " + valid))
	require.NoError(t, err)
	assert.Equal(t, domain.Principal("alice"), p)

	for name, header := range map[string]string{
		"basic":        "Basic YWxpY2U6cHc=",
		"wrong issuer": "Bearer " + wrongIssuer,
		"wrong key":    "Bearer " + wrongKey,
		"expired":      "Bearer " + expired,
		"no subject":   "Bearer " + noSubject,
	} {
		_, err := auth.Principal(requestWith(header))
		assert.Error(t, err, name)
	}
}

func TestAuthenticatorRejectsOtherAlgorithms(t *testing.T) {
	auth := NewAuthenticator("s3cret", "")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "alice"}).
		SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = auth.Principal(requestWith("Bearer " + tok))
	assert.Error(t, err)
}

func TestAuthenticatorWithoutSecret(t *testing.T) {
	tok, err := IssueToken("s3cret", "", "alice", time.Hour, time.Now())
	require.NoError(t, err)

	_, err = NewAuthenticator("", "").Principal(requestWith("Bearer " + tok))
	assert.Error(t, err)
}

func TestMiddlewareStoresPrincipal(t *testing.T) {
	auth := NewAuthenticator("s3cret", "")
	var seen domain.Principal
	h := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = PrincipalFrom(r.Context())
	}))

	tok, err := IssueToken("s3cret", "", "bob", time.Hour, time.Now())
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestWith("Bearer "+tok))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Principal("bob"), seen)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, requestWith("Bearer garbage"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
