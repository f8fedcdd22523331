/*
Package config loads server configuration.

SOURCES (later wins):
  1. env-default struct tags
  2. YAML file, when a path is given (-config flag or CONFIG_PATH)
  3. Environment variables

EXAMPLE FILE:
  env: dev
  http_server:
    address: ":9090"
    timeout: 10s
  cors:
    allowed_origins: ["https://salary.example.com"]
  batch:
    max_items: 50
    concurrency: 4

SEE ALSO:
  - cmd/server/main.go: Flag handling and logger setup
*/
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	CORS       CORS  `yaml:"cors"`
	Batch      Batch `yaml:"batch"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout         time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"30s"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:5173,http://localhost:8080"`
}

// Batch bounds the UK tax batch endpoint.
type Batch struct {
	MaxItems    int `yaml:"max_items" env:"BATCH_MAX_ITEMS" env-default:"100"`
	Concurrency int `yaml:"concurrency" env:"BATCH_CONCURRENCY" env-default:"8"`
}

// Load reads configuration from path, or from the environment alone when
// path is empty, and validates the result.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown env %q (want %s, %s or %s)", c.Env, EnvLocal, EnvDev, EnvProd)
	}
	if c.Address == "" {
		return errors.New("http_server.address is required")
	}
	if c.Timeout <= 0 || c.IdleTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return errors.New("http_server timeouts must be positive")
	}
	if c.Batch.MaxItems <= 0 {
		return errors.New("batch.max_items must be positive")
	}
	if c.Batch.Concurrency <= 0 {
		return errors.New("batch.concurrency must be positive")
	}
	return nil
}
