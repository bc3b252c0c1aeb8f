package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/clevercore-api/internal/api"
	apiMiddleware "github.com/phrazzld/clevercore-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	generationHandler := api.NewGenerationHandler(app.generationService)
	credentialHandler := api.NewCredentialHandler(app.credentials, app.logger)
	limiter := apiMiddleware.NewRateLimiter(app.config.Server.RateLimitRPS, app.config.Server.RateLimitBurst)

	r.Route("/api", func(r chi.Router) {
		// Provider-backed endpoints
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)

			r.Post("/generate/text", generationHandler.GenerateText)
			r.Post("/generate/image", generationHandler.GenerateImage)
			r.Post("/generate/video", generationHandler.GenerateVideo)
			r.Post("/chat", generationHandler.Chat)
		})

		r.Get("/credential", credentialHandler.GetCredential)
		r.Put("/credential", credentialHandler.SelectCredential)
		r.Delete("/credential", credentialHandler.ClearCredential)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
