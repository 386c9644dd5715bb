package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	LogFile   string    `yaml:"log-file" env:"LOG_FILE"`
	Seed      uint64    `yaml:"seed" env:"TICTACTOE_SEED"`
	Console   Console   `yaml:"console"`
	Telemetry Telemetry `yaml:"telemetry"`
}

const (
	ColorAuto  = "auto"
	ColorNever = "never"
)

// Console toggles are phrased so that false is the default: cleanenv applies
// env-default to every zero value, including an explicit "false" in the file.
type Console struct {
	Color   string `yaml:"color" env:"CONSOLE_COLOR" env-default:"auto" validate:"oneof=auto never"`
	NoClear bool   `yaml:"no-clear" env:"CONSOLE_NO_CLEAR"`
}

type Telemetry struct {
	ServiceName  string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tictactoe" validate:"required"`
	OTLPEndpoint string `yaml:"otlp-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" validate:"omitempty,hostname_port"`
	TraceFile    string `yaml:"trace-file" env:"TRACE_FILE"`
}

// Load - reads the yml file at path when it exists, otherwise only the
// environment, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Console) ColorEnabled() bool {
	return that.Color != ColorNever
}

func (that *Telemetry) Enabled() bool {
	return that.OTLPEndpoint != "" || that.TraceFile != ""
}
