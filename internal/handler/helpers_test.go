package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-job-board/internal/config"
	"go-job-board/internal/handler"
	"go-job-board/internal/identity"
	"go-job-board/internal/middleware"
	"go-job-board/internal/model"
	"go-job-board/internal/router"
	"go-job-board/internal/service"
)

const testSecret = "test-secret"

type memUserStore struct {
	users []model.User
}

func (s *memUserStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, strings.TrimSpace(username)) {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *memUserStore) FindByGoogleID(_ context.Context, googleID string) (model.User, error) {
	for _, u := range s.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *memUserStore) ExistsByUsernameOrEmail(_ context.Context, username string, email string) (bool, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) || strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) Create(_ context.Context, u model.User) error {
	if exists, _ := s.ExistsByUsernameOrEmail(context.Background(), u.Username, u.Email); exists {
		return model.ErrDuplicateUser
	}
	s.users = append(s.users, u)
	return nil
}

type memJobStore struct {
	jobs []model.JobEntry
}

func (s *memJobStore) Insert(_ context.Context, j model.JobEntry) error {
	s.jobs = append(s.jobs, j)
	return nil
}

func (s *memJobStore) FindByID(_ context.Context, id string) (model.JobEntry, error) {
	for _, j := range s.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return model.JobEntry{}, model.ErrJobNotFound
}

func (s *memJobStore) List(_ context.Context, employmentType string) ([]model.JobEntry, error) {
	out := make([]model.JobEntry, 0)
	for _, j := range s.jobs {
		if employmentType == "" || j.EmploymentType == employmentType {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *memJobStore) ListByOwner(_ context.Context, ownerID string) ([]model.JobEntry, error) {
	out := make([]model.JobEntry, 0)
	for _, j := range s.jobs {
		if j.PostedBy == ownerID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *memJobStore) Update(_ context.Context, id string, fields model.UpdateJobRequest) (model.JobEntry, error) {
	for i, j := range s.jobs {
		if j.ID != id {
			continue
		}
		j.Title = fields.Title
		j.Company = fields.Company
		j.Location = fields.Location
		j.Description = fields.Description
		j.EmploymentType = fields.EmploymentType
		j.ApplyLink = fields.ApplyLink
		s.jobs[i] = j
		return j, nil
	}
	return model.JobEntry{}, model.ErrJobNotFound
}

func (s *memJobStore) Delete(_ context.Context, id string) error {
	for i, j := range s.jobs {
		if j.ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return nil
		}
	}
	return model.ErrJobNotFound
}

type stubVerifier struct {
	identity *identity.Identity
	err      error
}

func (v stubVerifier) Verify(context.Context, string) (*identity.Identity, error) {
	return v.identity, v.err
}

// newTestServer wires the full router over in-memory stores the way
// internal/app does over the real repositories.
func newTestServer(t *testing.T, google service.FederatedVerifier) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		ServerPort:       "4000",
		RequestTimeout:   30 * time.Second,
		JWTSecret:        testSecret,
		RegisterTokenTTL: 24 * time.Hour,
		CORSOrigins:      []string{"*"},
	}

	tokenService := service.NewTokenService(cfg.JWTSecret)
	authService := service.NewAuthService(&memUserStore{}, tokenService, google, cfg.RegisterTokenTTL)
	jobService := service.NewJobService(&memJobStore{}, cfg.EnforceUpdateOwnership)

	appRouter := router.New(cfg, middleware.NewAuthMiddleware(tokenService), router.Handlers{
		Auth:  handler.NewAuthHandler(authService),
		Job:   handler.NewJobHandler(jobService),
		Story: handler.NewStoryHandler(service.NewStoryService()),
	})

	server := httptest.NewServer(appRouter)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method string, url string, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerUser registers through the public endpoint and returns the token.
func registerUser(t *testing.T, serverURL string, username string, password string, email string) string {
	t.Helper()

	resp := doJSON(t, http.MethodPost, serverURL+"/register", "", model.RegisterRequest{
		Username: username,
		Password: password,
		Email:    email,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	auth := decodeBody[model.AuthResponse](t, resp)
	require.NotEmpty(t, auth.Token)
	return auth.Token
}
