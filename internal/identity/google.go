// Package identity verifies Google-issued ID tokens against Google's
// published signing keys and maps them to a local identity.
package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"

	"go-job-board/internal/model"
)

var allowedIssuers = []string{
	"accounts.google.com",
	"https://accounts.google.com",
}

// Identity is the verified subject extracted from an ID token.
type Identity struct {
	SubjectID string
	Email     string
	Name      string
}

// GoogleVerifier validates Google ID tokens. Key rotation is handled by the
// background-refreshing JWKS client.
type GoogleVerifier struct {
	audience string
	jwks     *keyfunc.JWKS
}

// NewGoogleVerifier fetches the JWK Set from jwksURL and keeps it refreshed
// until Close is called. The audience must be the OAuth client id the
// frontend obtained the ID token for.
func NewGoogleVerifier(audience string, jwksURL string) (*GoogleVerifier, error) {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		RefreshErrorHandler: func(err error) {
			slog.Warn("google JWKS background refresh failed", "error", err)
		},
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch google JWK set: %w", err)
	}

	return &GoogleVerifier{audience: audience, jwks: jwks}, nil
}

// Verify checks the assertion's signature, audience and issuer and returns
// the verified identity. When the token carries no name claim, the display
// name falls back to the local part of the email address.
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	parsed, err := jwt.Parse(idToken, v.jwks.Keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.audience),
	)
	if err != nil || !parsed.Valid {
		return nil, model.ErrInvalidAssertion
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.ErrInvalidAssertion
	}

	issuer, _ := claims["iss"].(string)
	if !issuerAllowed(issuer) {
		return nil, model.ErrInvalidAssertion
	}

	subject, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if subject == "" || email == "" {
		return nil, model.ErrInvalidAssertion
	}

	name, _ := claims["name"].(string)
	if name == "" {
		name = email
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		}
	}

	return &Identity{SubjectID: subject, Email: email, Name: name}, nil
}

// Close stops the background JWKS refresh goroutine.
func (v *GoogleVerifier) Close() {
	v.jwks.EndBackground()
}

func issuerAllowed(issuer string) bool {
	for _, allowed := range allowedIssuers {
		if issuer == allowed {
			return true
		}
	}
	return false
}
