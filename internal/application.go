package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// RunApp - runs one match on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - plays a match between in and out until it ends or ctx is cancelled.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	matchLogger := logger.With("match", uuid.NewString())
	log := matchLogger.With("component", "app")

	var opts []console.Option
	if conf.NoColor {
		opts = append(opts, console.WithProfile(termenv.Ascii))
	}

	game := entity.NewGame()
	cons := console.New(matchLogger, game, in, out, opts...)

	log.Info("Starting match")

	// reading the terminal blocks, so the console runs aside and a signal doesn't wait for the next line
	errCh := make(chan error, 1)
	go func() {
		errCh <- cons.Run(ctx)
	}()

	select {
	case err := <-errCh:
		if ctx.Err() != nil {
			log.Info("Received signal, shutting down")
			return nil
		}
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}
		log.Info("Match ended")
		return nil
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
		return nil
	}
}
