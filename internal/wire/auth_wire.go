package wire

import (
	"glamhaven/internal/adaptor"
	"glamhaven/internal/data/repository"
	"glamhaven/pkg/middleware"
	"glamhaven/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Credential endpoints get a per-IP limiter so password guessing and
	// register floods are throttled before reaching bcrypt.
	limiter := middleware.NewRateLimiter(config.RateLimit.RPS, config.RateLimit.Burst)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter))

		// POST /api/auth/register - Create account and open a session
		r.Post("/api/auth/register", authHandler.Register)

		// POST /api/auth/login - Open a session
		r.Post("/api/auth/login", authHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/auth/logout - Revoke current session
		r.Post("/api/auth/logout", authHandler.Logout)

		// GET /api/auth/me - Current user profile
		r.Get("/api/auth/me", authHandler.Me)
	})
}
