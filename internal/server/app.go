// Package server initializes and runs the bandroom server: it opens the
// database, runs migrations, wires the resource services and token codec,
// and serves the gRPC endpoint until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/bandroom/bandroom/internal/logging"
	"github.com/bandroom/bandroom/internal/server/auth"
	"github.com/bandroom/bandroom/internal/server/config"
	gs "github.com/bandroom/bandroom/internal/server/grpc"
	"github.com/bandroom/bandroom/internal/server/repositories/repomanager"
	"github.com/bandroom/bandroom/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *gs.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("config: secret key is required")
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	admins := auth.NewAdminSet(cfg.AdminIDs)
	tokens := auth.NewManager([]byte(cfg.SecretKey), cfg.TokenValidityDuration, admins)

	server := gs.NewServer(cfg.EndpointAddrGRPC, logger, tokens, admins,
		services.NewSongService(db, rm),
		services.NewConcertService(db, rm),
		services.NewParticipationService(db, rm))

	return &App{config: cfg, logger: logger, db: db, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "admins", len(app.config.AdminIDs))

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, "gRPC server stopped", "error", err)
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing database", "error", err)
	}
}
