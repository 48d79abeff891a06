package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultPort = "7000"

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

type ServerConfig struct {
	Port            string        `env:"PORT"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	// TrustedProxies lists proxy addresses or CIDRs whose X-Forwarded-For is believed.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

type DatabaseConfig struct {
	URI            string        `env:"MONGODB_URI"`
	Scheme         string        `env:"DB_SCHEME" envDefault:"mongodb"`
	User           string        `env:"DB_USER"`
	Password       string        `env:"DB_PASS"`
	Host           string        `env:"DB_HOST" envDefault:"localhost:27017"`
	Name           string        `env:"DB_NAME" envDefault:"MoveZy"`
	AppName        string        `env:"DB_APP_NAME" envDefault:"movezy-backend"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`
	QueryTimeout   time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"3s"`
}

type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

type NATSConfig struct {
	URL string `env:"NATS_URL"`
}

type AuthConfig struct {
	TokenSecret    string        `env:"ACCESS_TOKEN_SECRET" envDefault:"dev-only-secret-change-in-prod"`
	TokenTTL       time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"5h"`
	UsersListAdmin bool          `env:"USERS_LIST_ADMIN_ONLY" envDefault:"false"`
	AdminEmails    []string      `env:"ADMIN_EMAILS" envSeparator:","`
}

type RateLimitConfig struct {
	Requests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"30"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = getEnv("port", defaultPort)
	}
	if cfg.Auth.TokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET must not be empty")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_TTL must be positive, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Window <= 0 {
		return nil, errors.New("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive")
	}
	return &cfg, nil
}

// MongoURI returns MONGODB_URI when set, otherwise a URI assembled from the DB_* parts.
func (c DatabaseConfig) MongoURI() string {
	if c.URI != "" {
		return c.URI
	}

	u := url.URL{
		Scheme: c.Scheme,
		Host:   c.Host,
		Path:   "/",
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}

	q := url.Values{}
	q.Set("retryWrites", "true")
	q.Set("w", "majority")
	if c.AppName != "" {
		q.Set("appName", c.AppName)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// IsAdminEmail reports whether email is listed in ADMIN_EMAILS (case-insensitive).
func (c AuthConfig) IsAdminEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	for _, admin := range c.AdminEmails {
		if strings.EqualFold(strings.TrimSpace(admin), email) {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
