package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - runs the application on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run loads the roster, serves console commands from in until exit, and saves the roster.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	playerRepo, closeStorage, err := openPlayerRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeStorage(); closeErr != nil {
			log.Error("could not close storage", "error", closeErr)
		}
	}()

	players := service.NewPlayerService(logger, playerRepo)
	if err = players.Load(ctx); err != nil {
		return fmt.Errorf("could not load roster: %w", err)
	}

	input := console.NewInput(ctx, in)
	searcher := minimax.New(minimax.Options{MiddleColumnShortcut: !conf.Search.DisableMiddleColumnShortcut})
	seats := service.NewProviderFactory(logger, input, searcher)
	referee := tictactoe.NewGameController(logger, out)

	log.Info("Starting console", "storage", conf.Storage.Driver)

	server := console.New(logger, input, out, players, referee, seats, conf.Rankings.Max)
	if err = server.Run(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}

func openPlayerRepository(ctx context.Context, conf *config.Config) (repository.PlayerRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.DriverRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewPlayerRepository(redisStorage.Connection), redisStorage.Close, nil
	case config.DriverSQLite:
		sqliteStorage, err := sqlite.New(conf.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLitePlayerRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
	case config.DriverFile:
		return repository.NewFilePlayerRepository(conf.Storage.Path), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, conf.Storage.Driver)
	}
}
