package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"eats/cmd"
	"eats/internal/adapters/out/rabbitmq"
	"eats/internal/core/ports"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err = run(cfg, logger); err != nil {
		logger.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, gormDB, err := cmd.OpenDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	var publisher ports.EventPublisher
	if cfg.RabbitMQURL != "" {
		p, dialErr := rabbitmq.Dial(cfg.RabbitMQURL, cfg.OrderEventsExchange)
		if dialErr != nil {
			return fmt.Errorf("connect rabbitmq: %w", dialErr)
		}
		defer func() { _ = p.Close() }()
		publisher = p
	} else {
		logger.Warn("RABBITMQ_URL is empty, order events stay in the outbox")
	}

	app := cmd.NewCompositionRoot(cfg, gormDB, publisher, logger)

	e, err := app.CreateRouter()
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
		logger.Info("HTTP server listening", "addr", addr)
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("Shutting down HTTP server")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}
