// Package server wires configuration, storage, cache and the ops endpoints
// into a runnable process and hosts the interactive session.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"smapp/internal/cache"
	"smapp/internal/cli"
	"smapp/internal/config"
	"smapp/internal/database"
	"smapp/internal/handlers"
	"smapp/internal/observability"
	"smapp/internal/repository"
	"smapp/internal/service"

	"gorm.io/gorm"
)

// package-level constructor hooks to make the server testable. Tests may
// replace these with fakes.
var (
	newDB    = database.Connect
	newCache = cache.Connect
)

const shutdownTimeout = 5 * time.Second

// Options control runtime initialization behavior.
type Options struct {
	// ResetSchema drops all tables before applying the schema.
	ResetSchema bool
}

// Server holds all dependencies of one process.
type Server struct {
	db         *gorm.DB
	cache      *cache.Cache
	controller *service.Controller
	ops        *http.Server
	opsAddr    net.Addr
}

// New connects to the database and cache, prepares the schema and starts
// the ops HTTP server when METRICS_ADDR is set.
func New(ctx context.Context, cfg *config.Config, opts Options) (*Server, error) {
	db, err := newDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	prepare := database.ApplySchema
	if opts.ResetSchema {
		prepare = database.ResetSchema
	}
	if err := prepare(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("schema setup failed: %w", err)
	}

	c := newCache(ctx, cfg.RedisURL, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	if opts.ResetSchema {
		if err := c.Flush(ctx); err != nil {
			observability.Logger.WarnContext(ctx, "cache flush failed", slog.String("error", err.Error()))
		}
	}

	s := &Server{
		db:         db,
		cache:      c,
		controller: service.NewController(repository.NewGateway(db), c),
	}

	if cfg.MetricsAddr != "" {
		if err := s.startOps(cfg.MetricsAddr); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
	}
	return s, nil
}

func (s *Server) startOps(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("ops listener: %w", err)
	}

	var pinger handlers.Pinger
	if sqlDB, err := s.db.DB(); err == nil {
		pinger = sqlDB
	}
	h := &handlers.Handlers{DB: pinger, Cache: s.cache}

	s.ops = &http.Server{
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.opsAddr = ln.Addr()

	go func() {
		observability.Logger.Info("Ops server starting", slog.String("addr", s.opsAddr.String()))
		if err := s.ops.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Error("ops server error", slog.String("error", err.Error()))
		}
	}()
	return nil
}

// DB returns the database handle.
func (s *Server) DB() *gorm.DB { return s.db }

// Controller returns the use-case controller bound to this process.
func (s *Server) Controller() *service.Controller { return s.controller }

// OpsAddr returns the address the ops server listens on, or nil.
func (s *Server) OpsAddr() net.Addr { return s.opsAddr }

// Run hosts an interactive session on in/out. It returns when the user
// exits, the input ends, or ctx is cancelled.
func (s *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	done := make(chan error, 1)
	go func() {
		done <- cli.New(s.controller, in, out).Run(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// the session goroutine may still be blocked on input
		return ctx.Err()
	}
}

// Close shuts the ops server down and releases the cache and database.
func (s *Server) Close(ctx context.Context) error {
	var errs []error
	if s.ops != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := s.ops.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("ops shutdown: %w", err))
		}
	}
	if err := s.cache.Close(); err != nil {
		errs = append(errs, fmt.Errorf("cache close: %w", err))
	}
	closeDB(s.db)
	return errors.Join(errs...)
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
