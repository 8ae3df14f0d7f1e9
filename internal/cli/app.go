// Package cli implements the interactive command-line surface of the
// companion layer: registration, login, identification, and history
// management.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/herbalif/herbalif/internal/accounts"
	"github.com/herbalif/herbalif/internal/classifier"
	"github.com/herbalif/herbalif/internal/config"
	"github.com/herbalif/herbalif/internal/history"
	"github.com/herbalif/herbalif/internal/ingest"
	"github.com/herbalif/herbalif/internal/knowledge"
	"github.com/herbalif/herbalif/internal/kv"
	"github.com/herbalif/herbalif/internal/logging"
	"github.com/herbalif/herbalif/internal/previews"
	"github.com/herbalif/herbalif/internal/session"
	"github.com/herbalif/herbalif/internal/workflow"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	sessions *session.Manager
	accounts *accounts.Store
	records  *history.Store
	workflow *workflow.Workflow
	reader   *bufio.Reader
	db       *sql.DB
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	substrate, db := openSubstrate(ctx, c, logger)

	sessions := session.NewManager(substrate, []byte(c.SessionSecret), logger)
	accts := accounts.NewStore(substrate, sessions, accounts.NewFixedSecretVerifier(), logger)
	records := history.NewStore(substrate, logger)

	app := &App{
		config:   c,
		logger:   logger,
		sessions: sessions,
		accounts: accts,
		records:  records,
		reader:   bufio.NewReader(os.Stdin),
		db:       db,
	}

	pipeline := ingest.New(sessions, knowledge.NewBase(), records, logger, app.onRecordSaved)
	app.workflow = workflow.New(
		classifier.NewHTTPClient(c.ClassifierAddr, c.RequestTimeout),
		newPreviewStore(c),
		pipeline,
		logger,
	)

	return app, nil
}

// openSubstrate picks the configured key-value backend. Any failure falls
// back to the disabled store so the CLI stays usable in degraded form.
func openSubstrate(ctx context.Context, c *config.Config, logger logging.Logger) (kv.Store, *sql.DB) {
	switch c.StorageDriver {
	case "sqlite":
		db, store, err := kv.OpenSQLite(ctx, c.DatabaseDSN)
		if err != nil {
			logger.Warn(ctx, "sqlite unavailable, persistence disabled", "error", err)
			return kv.NewDisabledStore(), nil
		}
		return store, db
	case "postgres":
		db, store, err := kv.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			logger.Warn(ctx, "postgres unavailable, persistence disabled", "error", err)
			return kv.NewDisabledStore(), nil
		}
		return store, db
	default:
		return kv.NewDisabledStore(), nil
	}
}

func newPreviewStore(c *config.Config) previews.Store {
	if c.PreviewDriver == "s3" {
		return previews.NewS3Store(previews.S3Config{
			RootUser:     c.S3RootUser,
			RootPassword: c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
	}
	return previews.NewLocalStore(c.PreviewDir)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current(context.Background()) != nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to Herbalif CLI (type 'help' for commands)")

	if current := a.sessions.Current(ctx); current != nil {
		printlnFn("Signed in as " + current.Name + " <" + current.Email + ">")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) status() string {
	if current := a.sessions.Current(context.Background()); current != nil {
		return current.Email
	}
	return "anonymous"
}
