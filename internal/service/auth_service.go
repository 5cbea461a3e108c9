package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-job-board/internal/identity"
	"go-job-board/internal/model"
)

const bcryptCost = 10

// UserStore is the subset of the user repository the auth flows need.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (model.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username string, email string) (bool, error)
	Create(ctx context.Context, u model.User) error
}

// FederatedVerifier validates a third-party identity assertion.
type FederatedVerifier interface {
	Verify(ctx context.Context, idToken string) (*identity.Identity, error)
}

type AuthService struct {
	users       UserStore
	tokens      *TokenService
	google      FederatedVerifier
	registerTTL time.Duration
}

func NewAuthService(users UserStore, tokens *TokenService, google FederatedVerifier, registerTTL time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		tokens:      tokens,
		google:      google,
		registerTTL: registerTTL,
	}
}

// Register creates a local account and returns a token bound to it. The
// registration token expires after registerTTL; login tokens do not, an
// asymmetry inherited from the original service contract.
func (s *AuthService) Register(ctx context.Context, username string, password string, email string) (model.AuthResponse, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if exists {
		return model.AuthResponse{}, model.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	hashStr := string(hash)
	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: &hashStr,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return model.AuthResponse{}, err
	}

	token, err := s.tokens.Issue(user.ID, user.Username, s.registerTTL)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("issue token: %w", err)
	}

	return model.AuthResponse{Token: token, Username: user.Username}, nil
}

// Login verifies local credentials. Unknown usernames and wrong passwords
// produce the same error so callers cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username string, password string) (model.AuthResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.AuthResponse{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.AuthResponse{}, err
	}

	if user.PasswordHash == nil {
		// Federated-only account; it has no password to check.
		return model.AuthResponse{}, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return model.AuthResponse{}, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username, 0)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("issue token: %w", err)
	}

	return model.AuthResponse{Token: token, Username: user.Username}, nil
}

// GoogleSignIn verifies the inbound ID token and signs the matching user in,
// creating a passwordless account on first sign-in. The google id is only
// ever attached at account creation; it is never linked to a pre-existing
// local account.
func (s *AuthService) GoogleSignIn(ctx context.Context, idToken string) (model.AuthResponse, error) {
	verified, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user, err := s.users.FindByGoogleID(ctx, verified.SubjectID)
	if errors.Is(err, model.ErrUserNotFound) {
		now := time.Now().UTC()
		googleID := verified.SubjectID
		user = model.User{
			ID:        uuid.NewString(),
			Username:  verified.Name,
			Email:     verified.Email,
			GoogleID:  &googleID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return model.AuthResponse{}, err
		}
	} else if err != nil {
		return model.AuthResponse{}, err
	}

	token, err := s.tokens.Issue(user.ID, user.Username, 0)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("issue token: %w", err)
	}

	return model.AuthResponse{Token: token, Username: user.Username}, nil
}
