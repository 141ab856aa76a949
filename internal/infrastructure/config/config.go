package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,         default=8080"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	CORSOrigins string `env:"CORS_ORIGINS, default=*"`

	Database DatabaseConfig
	Admin    AdminConfig
	Mailgun  MailgunConfig
	Redis    RedisConfig
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/careers?sslmode=disable"`
}

type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@xgenai.com"`
	Password string `env:"ADMIN_PASSWORD, default=Admin@123"`
}

type MailgunConfig struct {
	APIKey    string `env:"MAILGUN_API_KEY"`
	Domain    string `env:"MAILGUN_DOMAIN"`
	FromEmail string `env:"MAILGUN_FROM_EMAIL, default=noreply@xgenai.com"`
}

// RedisConfig is optional: with an empty Addr the session registry runs
// without its token cache.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// IsProduction reports whether outbound email dispatch and restricted
// CORS are in effect.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
