package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c360studio/setty/blueprint"
	"github.com/c360studio/setty/config"
	"github.com/c360studio/setty/enum"
	"github.com/c360studio/setty/metrics"
)

// App wires one Builder, its metrics and the configured blueprint sources.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer

	registry *prometheus.Registry
	metrics  *metrics.Metrics
	builder  *enum.Builder
}

// NewApp creates a new application instance with a fresh Builder.
func NewApp(cfg *config.Config, logger *slog.Logger, out io.Writer) *App {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	opts := []enum.Option{enum.WithLogger(logger), enum.WithMetrics(m)}

	return &App{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		registry: reg,
		metrics:  m,
		builder:  enum.NewBuilder(enum.NewValueBuilder(opts...), opts...),
	}
}

// StoreFile stores every blueprint in path and builds each stored enum.
// A rejected document does not stop the rest of the file; all failures are
// returned joined.
func (a *App) StoreFile(path string) ([]*enum.Enum, error) {
	docs, err := blueprint.LoadFile(path)
	if err != nil {
		return nil, err
	}

	var (
		built []*enum.Enum
		errs  []error
	)
	for i, raw := range docs {
		if err := a.builder.StoreFromArray(raw); err != nil {
			a.logger.Warn("Rejected blueprint",
				slog.String("path", path),
				slog.Int("document", i),
				slog.String("kind", blueprint.KindName(err)),
				slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("%s: document %d: %w", path, i, err))
			continue
		}

		name, _ := raw[blueprint.KeyName].(string)
		e, err := a.builder.BuildStored(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		built = append(built, e)
	}

	return built, errors.Join(errs...)
}

// LoadAll resolves patterns (or the configured blueprint paths when none are
// given) and stores every file found.
func (a *App) LoadAll(patterns []string) ([]*enum.Enum, error) {
	if len(patterns) == 0 {
		patterns = a.cfg.Blueprints.Paths
	}

	paths, err := blueprint.ResolvePaths(patterns...)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no blueprint files matched %s", strings.Join(patterns, ", "))
	}

	var (
		built []*enum.Enum
		errs  []error
	)
	for _, path := range paths {
		enums, err := a.StoreFile(path)
		built = append(built, enums...)
		if err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info("Loaded blueprints",
		slog.Int("files", len(paths)),
		slog.Int("enums", len(built)),
		slog.Int("rejected", len(errs)))

	return built, errors.Join(errs...)
}

// Watch stores blueprints from files created or modified under dir until
// ctx is cancelled. Files already present are stored once the watch is in
// place.
func (a *App) Watch(ctx context.Context, dir string) error {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	exts := a.cfg.Watch.FileExtensions
	if len(exts) == 0 {
		exts = blueprint.FileExtensions
	}

	wcfg := blueprint.WatchConfig{
		DebounceDelay:  a.cfg.Watch.DebounceDelay,
		FileExtensions: exts,
		ExcludeDirs:    blueprint.DefaultWatchConfig().ExcludeDirs,
	}
	w, err := blueprint.NewWatcher(wcfg, dir, a.logger)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	a.logger.Info("Watching for blueprints", slog.String("dir", dir))

	existing, err := blueprint.ResolvePathsWithExtensions(exts, dir)
	if err != nil {
		return err
	}
	for _, path := range existing {
		if content, err := os.ReadFile(path); err == nil {
			w.Seen(path, content)
		}
		a.reportFile(path)
	}

	for {
		select {
		case <-ctx.Done():
			if dropped := w.DroppedEvents(); dropped > 0 {
				a.logger.Warn("Watcher dropped events", slog.Int64("count", dropped))
			}
			return nil
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			a.logger.Debug("Blueprint file changed",
				slog.String("path", ev.Path),
				slog.String("operation", string(ev.Operation)))
			a.reportFile(ev.Path)
		}
	}
}

func (a *App) reportFile(path string) {
	enums, err := a.StoreFile(path)
	for _, e := range enums {
		printEnum(a.out, e)
	}
	if err != nil {
		a.logger.Warn("Blueprint file had rejected documents", slog.String("path", path))
	}
}

// ServeMetrics exposes the app's registry on addr until ctx is cancelled.
func (a *App) ServeMetrics(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.metricsHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Serving metrics", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (a *App) metricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	return mux
}

func printEnum(w io.Writer, e *enum.Enum) {
	fmt.Fprintln(w, e.String())
}
