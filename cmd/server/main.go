package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/amore-wedding/invite/internal/cache"
	"github.com/amore-wedding/invite/internal/handlers"
	"github.com/amore-wedding/invite/internal/observability"
	"github.com/amore-wedding/invite/internal/resolve"
	"github.com/amore-wedding/invite/internal/settings"
	"github.com/amore-wedding/invite/internal/state"
	"github.com/amore-wedding/invite/internal/watch"
	"github.com/amore-wedding/invite/internal/wedding"
)

func main() {
	var (
		settingsPath string
		addr         string
		event        string
		pageURL      string
	)
	flag.StringVar(&settingsPath, "settings", "invite.yaml", "settings file (YAML)")
	flag.StringVar(&addr, "addr", "", "HTTP listen address (overrides settings)")
	flag.StringVar(&event, "event", "", "event identifier (overrides the page URL query)")
	flag.StringVar(&pageURL, "page-url", "", "public page URL (overrides settings)")
	flag.Parse()

	logger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	explicitSettings := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "settings" {
			explicitSettings = true
		}
	})
	cfg, err := settings.Load(settingsPath, explicitSettings)
	if err != nil {
		logger.Fatal("failed to load settings", zap.Error(err))
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if pageURL != "" {
		cfg.PageURL = pageURL
	}

	params := resolve.ParsePageURL(cfg.PageURL)
	if event != "" {
		params.Event = event
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *cache.Store
	if cfg.CachePath != "" {
		store, err = cache.Open(cfg.CachePath)
		if err != nil {
			// The page still works without the fallback cache.
			logger.Warn("configuration cache unavailable", zap.Error(err))
			store = nil
		} else {
			defer store.Close()
		}
	}

	var remote resolve.Source
	if cfg.ConfigBaseURL != "" {
		remote = resolve.NewHTTPSource(cfg.ConfigBaseURL)
	}
	var local resolve.Source
	if cfg.DataDir != "" {
		local = resolve.NewFileSource(cfg.DataDir)
	}
	resolver := resolve.NewResolver(remote, local, store, logger)

	// Serve defaults immediately; resolution replaces the cell once it
	// completes, mirroring the page that renders before its config arrives.
	cell := state.NewCell(wedding.Defaults())
	reresolve := func() {
		doc := resolver.Resolve(ctx, params)
		version := cell.Replace(doc)
		logger.Info("configuration resolved",
			zap.String("event", params.Event), zap.Uint64("version", version))
	}
	go reresolve()

	if cfg.WatchData && cfg.DataDir != "" {
		watcher := watch.New(cfg.DataDir, logger, reresolve)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Warn("data watcher stopped", zap.Error(err))
			}
		}()
	}

	policy := resolve.AdminPolicy{Enabled: cfg.AdminEnabled, DevMode: cfg.DevMode}
	api := &handlers.API{
		Cell:    cell,
		Store:   store,
		Policy:  policy,
		PageURL: cfg.PageURL,
		Logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.RequestLogger(logger))
	r.Use(observability.Recovery(logger))
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	api.Register(r)

	if cfg.DataDir != "" {
		data := http.StripPrefix("/data/", http.FileServer(http.Dir(cfg.DataDir)))
		r.Handle("/data/*", data)
	}
	if cfg.PublicDir != "" {
		assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(cfg.PublicDir, "assets"))))
		r.Handle("/assets/*", assets)
		r.Handle("/*", http.FileServer(http.Dir(cfg.PublicDir)))
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown error", zap.Error(err))
		}
	}()

	logger.Info("invite server listening",
		zap.String("addr", cfg.Addr),
		zap.String("event", params.Event),
		zap.Bool("admin_enabled", policy.Enabled || policy.DevMode))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("listen failed", zap.Error(err))
	}
}
