package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-job-board/internal/model"
)

// TokenService mints and verifies the stateless bearer tokens. Validity is
// determined entirely by the HMAC signature and, when present, the exp claim;
// there is no server-side session state.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token for the given identity. A ttl of zero or less means
// the token carries no expiry claim and stays valid indefinitely; the
// registration flow passes a ttl, login and Google sign-in do not.
func (s *TokenService) Issue(userID string, username string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"iat":      now.Unix(),
	}
	if ttl > 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify decodes a token and returns its identity claims. Malformed, badly
// signed and expired tokens all yield ErrInvalidToken; Verify never panics
// and never touches the store.
func (s *TokenService) Verify(tokenString string) (*model.AuthClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, model.ErrInvalidToken
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.ErrInvalidToken
	}

	claims := &model.AuthClaims{}
	claims.UserID, _ = claimsMap["sub"].(string)
	claims.Username, _ = claimsMap["username"].(string)

	if claims.UserID == "" {
		return nil, model.ErrInvalidToken
	}

	return claims, nil
}
