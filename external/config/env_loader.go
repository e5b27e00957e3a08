package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	internalconfig "github.com/majlislab/jasoos/internal/config"
)

type envConfig struct {
	Env             string `env:"ENV" envDefault:"production"`
	DiscordToken    string `env:"DISCORD_TOKEN,required"`
	DatabaseURL     string `env:"DATABASE_URL,required"`
	PhaseTimeoutMin int    `env:"PHASE_TIMEOUT_MIN" envDefault:"5"`
}

func Load() (*internalconfig.Config, error) {
	// Missing .env is fine; real deployments use process environment.
	_ = godotenv.Load()

	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:             raw.Env,
		DiscordToken:    raw.DiscordToken,
		DatabaseURL:     raw.DatabaseURL,
		PhaseTimeoutMin: raw.PhaseTimeoutMin,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
