package config

import (
	"net"
	"time"
)

type Config struct {
	App      AppConfig `env-prefix:"APP_"`
	HTTP     HTTPConfig
	CORS     CORSConfig `env-prefix:"CORS_"`
	Database DatabaseConfig
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type HTTPConfig struct {
	Port         string        `env:"PORT" env-required:"true"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	MaxBodyBytes int64         `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576"`
}

// Addr is the listen address on all interfaces.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort("0.0.0.0", c.Port)
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000/api,http://localhost:4200"`
}

type DatabaseConfig struct {
	URL          string `env:"DATABASE_URL" env-required:"true"`
	MaxConns     int32  `env:"DB_MAX_CONNS" env-default:"5"`
	PingAttempts uint   `env:"DB_PING_ATTEMPTS" env-default:"3"`
}
