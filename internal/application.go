package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the console game until the player quits, stdin closes or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	shutdown, err := telemetry.Setup(ctx, conf.Telemetry)
	if err != nil {
		return fmt.Errorf("could not set up telemetry: %w", err)
	}

	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error("could not shut down telemetry", "error", err)
		}
	}()

	seed := conf.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Debug("random source seeded", "seed", seed)

	random := rand.New(rand.NewPCG(seed, seed))
	rules := entity.DefaultRules()

	gameConsole := console.New(logger, rules, os.Stdin, os.Stdout,
		console.WithColor(conf.Console.ColorEnabled()),
		console.WithClearScreen(!conf.Console.NoClear),
	)
	bot := service.NewBotService(rules, random)
	rounds := tictactoe.NewRoundController(logger, rules, gameConsole, bot, gameConsole)
	matches := usecase.NewMatchManager(logger, rules, gameConsole, rounds, random)

	if err = matches.Run(ctx); err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	return nil
}
