package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go-job-board/internal/model"
)

// TokenHeader is the custom header carrying the bearer token. The public
// contract predates this service and does not use the Authorization scheme.
const TokenHeader = "auth-token"

type tokenVerifier interface {
	Verify(tokenString string) (*model.AuthClaims, error)
}

type contextKey string

const authClaimsContextKey contextKey = "auth_claims"

type AuthMiddleware struct {
	verifier tokenVerifier
}

func NewAuthMiddleware(verifier tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth rejects requests without a valid token and attaches the decoded
// claims to the request context. Verification is purely cryptographic; the
// guard never consults the store.
//
// A missing header is 401 and a failing token is 400 — the status split the
// original service shipped with, kept for client compatibility.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(TokenHeader))
		if token == "" {
			writeGuardError(w, http.StatusUnauthorized, "MISSING_TOKEN", "Access Denied")
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			writeGuardError(w, http.StatusBadRequest, "INVALID_TOKEN", "Invalid Token")
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the identity attached by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*model.AuthClaims, bool) {
	claims, ok := ctx.Value(authClaimsContextKey).(*model.AuthClaims)
	return claims, ok
}

func writeGuardError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		Error: model.APIError{Code: code, Message: message},
	})
}
