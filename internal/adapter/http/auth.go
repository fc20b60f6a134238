package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crowdfund/internal/core/domain"
)

type principalKey struct{}

// Authenticator resolves the caller principal from an HS256 bearer token
// issued by the identity provider. The principal is the token subject.
// Requests without a token are anonymous; requests with a bad token are
// rejected.
type Authenticator struct {
	secret []byte
	issuer string
}

// NewAuthenticator returns an authenticator verifying tokens with secret.
// When issuer is non-empty the iss claim must match it. An empty secret
// rejects every token, leaving only anonymous access.
func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{secret: []byte(secret), issuer: issuer}
}

// Principal extracts the caller from r.
func (a *Authenticator) Principal(r *http.Request) (domain.Principal, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return domain.Anonymous, nil
	}
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return domain.Anonymous, errors.New("authorization header must be a bearer token")
	}
	if len(a.secret) == 0 {
		return domain.Anonymous, errors.New("token authentication is not configured")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimSpace(header[7:]), claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return domain.Anonymous, err
	}
	p := domain.Principal(claims.Subject)
	if p.IsAnonymous() {
		return domain.Anonymous, errors.New("token has no subject")
	}
	return p, nil
}

// Middleware stores the caller principal in the request context. Invalid
// tokens end the request with 401.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := a.Principal(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
	})
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal stored in ctx, or domain.Anonymous.
func PrincipalFrom(ctx context.Context) domain.Principal {
	p, _ := ctx.Value(principalKey{}).(domain.Principal)
	return p
}

// IssueToken signs a token for subject. It stands in for the external
// identity provider in development and tests.
func IssueToken(secret, issuer, subject string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
