package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Session struct {
		// Lifetime of session tokens, matching the 7-day auth cookie
		// of the web client.
		TTLHours int `env:"SESSION_TTL_HOURS" envDefault:"168"`
	}

	Seed struct {
		// Seed demo users, tasks and the revenue snapshot when the
		// collections are empty.
		Enabled bool `env:"SEED_ENABLED" envDefault:"true"`
	}
}

func Load() *Config {
	// A missing .env file is fine; in production the variables are set
	// directly in the environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
