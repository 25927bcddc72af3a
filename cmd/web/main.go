package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/miyakoshi/septade/internal/catalog"
	"github.com/miyakoshi/septade/internal/diagnosis"
	"github.com/miyakoshi/septade/internal/envstruct"
	"github.com/miyakoshi/septade/internal/errors"
	"github.com/miyakoshi/septade/internal/logging"
	"github.com/miyakoshi/septade/internal/pprofserver"
	"github.com/miyakoshi/septade/internal/report"
	"github.com/miyakoshi/septade/internal/repositories"
	"github.com/miyakoshi/septade/internal/sqlite"
)

type application struct {
	logger         *slog.Logger
	uiDir          string
	sessionManager *scs.SessionManager
	scorer         *diagnosis.Scorer
	generator      *report.Generator
	histories      *repositories.HistoryRepository
	reports        *repositories.ReportRepository
}

type configuration struct {
	Addr         string `env:"SEPTADE_ADDR" envDefault:"localhost:4000"`
	PprofPort    string `env:"SEPTADE_PPROF_PORT" envDefault:":6060"`
	SQLiteURL    string `env:"SEPTADE_SQLITE_URL" envDefault:"./septade.sqlite"`
	OpenAIAPIKey string `env:"SEPTADE_OPENAI_API_KEY" envDefault:""`
	UIDir        string `env:"SEPTADE_UI_DIR" envDefault:"./ui"`
}

func main() {
	ctx := context.Background()
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{ //nolint:exhaustruct // this is better for readability
		Level:     slog.LevelDebug,
		AddSource: true,
	})))

	// Missing .env is fine, the environment may be configured externally.
	_ = godotenv.Load()

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server failed", errors.SlogError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var config configuration
	if err := envstruct.Populate(&config, lookupEnv); err != nil {
		return errors.Wrap(err, "parse environment")
	}

	// Initialise pprof listening on localhost so that it's not open to the world.
	pprofserver.Launch(config.PprofPort, logger)

	db, err := sqlite.NewDatabase(ctx, config.SQLiteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open database", slog.String("url", config.SQLiteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(db.ReadWrite.DB, 24*time.Hour)
	sessionManager.Lifetime = 12 * time.Hour

	scorer, err := diagnosis.NewScorer(catalog.Questions, logger)
	if err != nil {
		return errors.Wrap(err, "build scorer")
	}

	var generator *report.Generator
	if config.OpenAIAPIKey != "" {
		generator = report.NewGenerator(config.OpenAIAPIKey, logger)
	} else {
		logger.LogAttrs(ctx, slog.LevelWarn, "report generation disabled, no OpenAI API key configured")
	}

	app := application{
		logger:         logger,
		uiDir:          config.UIDir,
		sessionManager: sessionManager,
		scorer:         scorer,
		generator:      generator,
		histories:      repositories.NewHistoryRepository(db, logger),
		reports:        repositories.NewReportRepository(db, logger),
	}

	return app.configureAndStartServer(ctx, config.Addr)
}
