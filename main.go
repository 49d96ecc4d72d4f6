// Package main our entry point.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/johndosdos/chirp/internal/auth"
	"github.com/johndosdos/chirp/internal/config"
	"github.com/johndosdos/chirp/internal/handler"
	ratelimiter "github.com/johndosdos/chirp/internal/rate_limiter"
	"github.com/johndosdos/chirp/internal/service"
	"github.com/johndosdos/chirp/internal/storage"
	"github.com/johndosdos/chirp/internal/storage/memory"
	"github.com/johndosdos/chirp/internal/storage/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %+v", err)
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		log.Fatalf("%v", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Starting application...")

	// Init storage
	var store storage.Store
	var dbConn *pgxpool.Pool

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		log.Println("Initializing Database connection...")

		dbConn, err = pgxpool.New(ctx, cfg.DBURL)
		if err != nil {
			log.Fatalf("could not connect to the postgresql database: %v", err)
		}
		if err := dbConn.Ping(ctx); err != nil {
			log.Fatalf("could not reach the postgresql database: %v", err)
		}
		store = postgres.New(dbConn)
	case config.DriverMemory:
		log.Println("Using in-memory storage; data is lost on exit")
		store = memory.New()
	}

	hasher, err := auth.NewHasher(cfg.PasswordHashing)
	if err != nil {
		log.Fatalf("%v", err)
	}

	svc := service.New(store, hasher)

	var limiter *ratelimiter.IPRateLimiter
	if cfg.RateLimitRequests > 0 {
		limiter = ratelimiter.NewIPRateLimiter(ctx, cfg.RateLimitRequests, cfg.RateLimitWindow, ratelimiter.CleanupOpts{
			TTL:      10 * time.Minute,
			Interval: time.Minute,
		})
	}

	server := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           handler.NewRouter(svc, limiter),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		log.Printf("Server starting at 0.0.0.0:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutdown signal received; shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println(err)
	}

	// Close DB connection.
	if dbConn != nil {
		dbConn.Close()
	}

	log.Println("Server stopped")
}
