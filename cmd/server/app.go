package main

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/wordtrail/wordtrail-api/internal/config"
	"github.com/wordtrail/wordtrail-api/internal/domain/queue"
	"github.com/wordtrail/wordtrail-api/internal/domain/srs"
	"github.com/wordtrail/wordtrail-api/internal/platform/postgres"
	"github.com/wordtrail/wordtrail-api/internal/service/practice"
	"github.com/wordtrail/wordtrail-api/internal/service/vocab"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	vocabStore   store.VocabStore
	sessionStore store.SessionStore

	vocabService    vocab.VocabService
	practiceService practice.PracticeService

	now func() time.Time
}

// newApplication creates an application instance with all dependencies
// initialized. Configuration, logger, and database connection must already
// be established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		now:    time.Now,
	}

	app.vocabStore = postgres.NewPostgresVocabStore(db, logger)
	app.sessionStore = postgres.NewPostgresSessionStore(db, logger)

	params := srs.NewDefaultParams()
	if cfg.SRS.MinIntervalHours > 0 {
		params.MinIntervalHours = cfg.SRS.MinIntervalHours
	}

	upcomingWindow := cfg.SRS.UpcomingWindowHours
	if upcomingWindow <= 0 {
		upcomingWindow = queue.DefaultUpcomingWindowHours
	}

	app.vocabService = vocab.NewVocabService(app.vocabStore, logger)
	app.practiceService = practice.NewPracticeService(
		db,
		app.vocabStore,
		app.sessionStore,
		practice.Config{
			SRSParams:              params,
			UpcomingWindowHours:    upcomingWindow,
			LearnedStreakThreshold: cfg.SRS.LearnedStreakThreshold,
			DefaultQueueLimit:      cfg.SRS.QueueLimit,
		},
		logger,
	)

	logger.Info("Application services initialized",
		"min_interval_hours", params.MinIntervalHours,
		"upcoming_window_hours", upcomingWindow)

	return app, nil
}

// cleanup releases the application's resources during shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
