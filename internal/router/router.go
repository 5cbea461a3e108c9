package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-job-board/internal/config"
	"go-job-board/internal/handler"
	"go-job-board/internal/middleware"
)

type Handlers struct {
	Auth  *handler.AuthHandler
	Job   *handler.JobHandler
	Story *handler.StoryHandler
}

// New builds the route table. Paths and protection levels are the public
// contract of the service: reads on job entries and stories are open,
// mutations require the auth-token guard.
func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Hello World!"))
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/register", h.Auth.Register)
	r.Post("/login", h.Auth.Login)
	r.Post("/google-sign-in", h.Auth.GoogleSignIn)

	r.With(authMiddleware.RequireAuth).Get("/user/posts", h.Job.ListMine)

	r.Route("/api/jobEntries", func(api chi.Router) {
		api.Get("/", h.Job.List)
		api.Get("/{id}", h.Job.Get)
		api.With(authMiddleware.RequireAuth).Post("/", h.Job.Create)
		api.With(authMiddleware.RequireAuth).Put("/{id}", h.Job.Update)
		api.With(authMiddleware.RequireAuth).Delete("/{id}", h.Job.Delete)
	})

	r.Get("/api/storyEntries", h.Story.List)

	return r
}
