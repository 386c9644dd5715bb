package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/logger"
)

const defaultConfigPath = "./config.yml"

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	logOut := initLogOutput(conf)
	defer logOut.Close()

	log := logger.New(logOut, logger.ParseLevel(conf.LogLevel), conf.Telemetry.OTLPEndpoint != "")

	if err := app.RunApp(log, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, defaultConfigPath)
	}

	return config.MustLoad(path)
}

// initialize log output; stdout belongs to the game board.
func initLogOutput(conf *config.Config) io.WriteCloser {
	if conf.LogFile == "" {
		return nopCloser{os.Stderr}
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	return file
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
