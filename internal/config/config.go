package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

// Auth strategies selectable via AUTH_STRATEGY.
const (
	StrategyFirebase = "firebase"
	StrategyJWT      = "jwt"
)

// Config holds all environment-sourced configuration, loaded once at
// process start. There is no hot reload.
type Config struct {
	Port     string
	MongoURI string
	DBName   string

	JWTSecret    string
	AuthStrategy string
	// FirebaseCredentials is a service-account file path; empty means
	// application-default credentials.
	FirebaseCredentials string

	// Protocol and Host are display-only, used in the startup log line.
	Protocol string
	Host     string
}

// Load reads an optional .env file and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // load .env if present (ok if missing in prod)

	cfg := &Config{
		Port:                envOr("PORT", "3000"),
		DBName:              envOr("DB_NAME", "smart_DB"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		AuthStrategy:        envOr("AUTH_STRATEGY", StrategyFirebase),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
		Protocol:            envOr("PROTOCOL", "http"),
		Host:                envOr("HOST", "localhost"),
	}

	cfg.MongoURI = os.Getenv("MONGO_URI")
	if cfg.MongoURI == "" {
		user := os.Getenv("DB_USER")
		password := os.Getenv("DB_PASSWORD")
		host := os.Getenv("DB_HOST")
		if user != "" && host != "" {
			cfg.MongoURI = fmt.Sprintf("mongodb+srv://%s:%s@%s/?appName=SmartDeals",
				url.QueryEscape(user), url.QueryEscape(password), host)
		}
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("config: MONGO_URI or DB_USER/DB_PASSWORD/DB_HOST must be set")
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET must be set")
	}

	if cfg.AuthStrategy != StrategyFirebase && cfg.AuthStrategy != StrategyJWT {
		return nil, fmt.Errorf("config: unknown AUTH_STRATEGY %q", cfg.AuthStrategy)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// DisplayURL returns the human-facing base URL for the startup log line.
func (c *Config) DisplayURL() string {
	return fmt.Sprintf("%s://%s:%s", c.Protocol, c.Host, c.Port)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
