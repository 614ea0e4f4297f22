package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// UpstreamConfig holds the base URLs of the two services this backend
// proxies: the valuation service (holding contracts) and the data service
// (assets, currencies, transactions).
type UpstreamConfig struct {
	PositionsURL string
	DataURL      string
	Timeout      time.Duration
}

// AuthConfig holds the session-token settings. Key is the fernet key the
// tokens were minted with; TokenTTL bounds their age.
type AuthConfig struct {
	Key      *fernet.Key
	TokenTTL time.Duration
}

// CatalogConfig holds the reference-data refresh settings.
type CatalogConfig struct {
	RefreshSchedule string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	// Without a configured key every token verification would fail, so a
	// missing key generates an ephemeral one. Tokens then only survive one
	// process lifetime, which is fine for local development.
	var authKey *fernet.Key
	if raw := getEnv("AUTH_FERNET_KEY", ""); raw != "" {
		key, err := fernet.DecodeKey(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTH_FERNET_KEY: %w", err)
		}
		authKey = key
	} else {
		authKey = new(fernet.Key)
		if err := authKey.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate auth key: %w", err)
		}
	}

	tokenTTL, err := time.ParseDuration(getEnv("AUTH_TOKEN_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_TOKEN_TTL: %w", err)
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5002"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Upstream: UpstreamConfig{
			PositionsURL: getEnv("POSITIONS_URL", "http://localhost:9500"),
			DataURL:      getEnv("DATA_URL", "http://localhost:9510"),
			Timeout:      upstreamTimeout,
		},
		Auth: AuthConfig{
			Key:      authKey,
			TokenTTL: tokenTTL,
		},
		Catalog: CatalogConfig{
			RefreshSchedule: getEnv("CATALOG_REFRESH_SCHEDULE", "@every 1h"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(
				getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost"), ","),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
