package config

import (
	"fmt"
	"time"
)

type Config struct {
	Env             string
	DiscordToken    string
	DatabaseURL     string
	PhaseTimeoutMin int
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if c.PhaseTimeoutMin <= 0 {
		return fmt.Errorf("PHASE_TIMEOUT_MIN must be positive, got %d", c.PhaseTimeoutMin)
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "DISCORD_TOKEN", value: c.DiscordToken},
		{name: "DATABASE_URL", value: c.DatabaseURL},
	}
}

// PhaseTimeout is the auto-expiry window applied to every timed game phase:
// category selection, guess collection and the round-continuation prompt.
func (c *Config) PhaseTimeout() time.Duration {
	return time.Duration(c.PhaseTimeoutMin) * time.Minute
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
