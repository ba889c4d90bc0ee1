// Package app wires the engine together: logger, store, services,
// and the HTTP surface. Commands under cmd/ build an App and pick the
// pieces they need.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/avalder/pathwise/internal/api"
	"github.com/avalder/pathwise/internal/content"
	"github.com/avalder/pathwise/internal/llm"
	"github.com/avalder/pathwise/internal/logger"
	"github.com/avalder/pathwise/internal/path"
	"github.com/avalder/pathwise/internal/progress"
	"github.com/avalder/pathwise/internal/srs"
	"github.com/avalder/pathwise/internal/store"
	"github.com/avalder/pathwise/internal/studygen"
)

// Options configures App construction.
type Options struct {
	// DBPath is the SQLite database file. Required.
	DBPath string

	// CatalogPath points at a JSON content catalog. Empty means the
	// built-in seed catalog.
	CatalogPath string

	// LogMode selects the zap profile: "production" or "development".
	LogMode string

	// WithoutLLM skips provider setup even when keys are configured.
	WithoutLLM bool
}

// App holds the wired services.
type App struct {
	Log       *logger.Logger
	Store     *store.Store
	Source    content.Source
	Scheduler *srs.Scheduler
	Paths     *path.Manager
	Progress  *progress.Aggregator

	// Study is nil when no LLM provider is configured; the API
	// surface degrades to 503 on study-generation routes.
	Study *studygen.Service
}

// New opens the store and wires every service. Callers own Close.
func New(ctx context.Context, opts Options) (*App, error) {
	mode := opts.LogMode
	if mode == "" {
		mode = os.Getenv("PATHWISE_ENV")
	}
	log, err := logger.New(mode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	source, err := openCatalog(opts.CatalogPath)
	if err != nil {
		st.Close()
		return nil, err
	}

	eventRepo := st.EventRepo()
	scheduler := srs.NewScheduler(st.MasteryRepo(), eventRepo)
	paths := path.NewManager(st.PathRepo(), source, scheduler, scheduler.Ledger())
	aggreg := progress.NewAggregator(st.ProgressRepo(), st.AttemptRepo(), paths, scheduler)

	a := &App{
		Log:       log,
		Store:     st,
		Source:    source,
		Scheduler: scheduler,
		Paths:     paths,
		Progress:  aggreg,
	}

	if !opts.WithoutLLM {
		provider, err := llm.NewProviderFromEnv(ctx, eventRepo, log)
		if err != nil {
			log.Warn("LLM provider not configured, study generation unavailable", "error", err)
		} else {
			a.Study = studygen.NewService(provider, studygen.DefaultConfig())
		}
	}

	return a, nil
}

// Server builds the HTTP surface over the wired services.
func (a *App) Server() *api.Server {
	return api.NewServer(a.Log, a.Scheduler, a.Paths, a.Progress, a.Source, a.Study)
}

// Close releases the store and flushes the logger.
func (a *App) Close() error {
	a.Log.Sync()
	return a.Store.Close()
}

func openCatalog(path string) (content.Source, error) {
	if path == "" {
		return content.NewCached(seedSource(), 0), nil
	}
	src, err := content.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return content.NewCached(src, 0), nil
}
