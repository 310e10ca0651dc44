package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

// Parse loads .env when present and reads Config from the environment.
func Parse() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse cfg: %v", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("validate cfg: %v", err)
	}

	return cfg, nil
}

// validate rejects values cleanenv parses but the server cannot use.
func (c Config) validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.HTTP.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %q is not a tcp port", c.HTTP.Port))
	}

	if _, err := slogx.ParseLevel(c.App.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("APP_LOG_LEVEL: %v", err))
	}

	if c.Database.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.Database.MaxConns))
	}

	if c.HTTP.MaxBodyBytes < 1 {
		errs = append(errs, fmt.Errorf("HTTP_MAX_BODY_BYTES must be positive, got %d", c.HTTP.MaxBodyBytes))
	}

	return errors.Join(errs...)
}
