package config

import (
	"errors"
	"flag"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"scoreboard.db"`
	LogRequests  bool   `env:"LOG_REQUESTS" envDefault:"true"`
}

// Load builds the configuration: .env file (if present), then environment
// variables, then CLI flags. Flags take precedence.
func Load(args []string) (Config, error) {
	// A missing .env file is fine; env vars and flags still apply.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("scoreboard", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "SQLite database path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.New("invalid port")
	}
	if cfg.DatabasePath == "" {
		return Config{}, errors.New("database path required (use -d or DATABASE_PATH env)")
	}

	return cfg, nil
}
