package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wordtrail/wordtrail-api/internal/api"
	apiMiddleware "github.com/wordtrail/wordtrail-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	vocabHandler := api.NewVocabHandler(app.vocabService, app.logger)
	practiceHandler := api.NewPracticeHandler(app.practiceService, app.logger, app.now)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiMiddleware.IdentityMiddleware)

		// Vocab collection endpoints
		r.Post("/vocab", vocabHandler.CreateVocab)
		r.Get("/vocab", vocabHandler.ListVocab)
		r.Delete("/vocab/{id}", vocabHandler.DeleteVocab)

		// Practice flow endpoints
		r.Post("/vocab/{id}/attempts", practiceHandler.RecordAttempt)
		r.Get("/vocab/{id}/mastery", practiceHandler.GetMastery)
		r.Get("/practice/queue", practiceHandler.GetQueue)
		r.Get("/progress", practiceHandler.GetProgress)
		r.Post("/sessions", practiceHandler.RecordSession)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
