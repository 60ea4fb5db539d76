package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the service reads from the environment.
// Redirect routes are configuration, not code: the guard only knows the
// logical "sign-in" and "unauthorized" destinations.
type Config struct {
	AppPort string

	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	RedisAddr     string
	RedisPassword string

	SignInRoute       string
	UnauthorizedRoute string

	SessionTTL time.Duration
}

// Load reads configuration from the environment. A .env file, when
// present, seeds variables that are not already set.
func Load() Config {

	_ = godotenv.Load()

	cfg := Config{

		AppPort: getenv("APP_PORT", "8080"),

		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SignInRoute:       getenv("SIGNIN_ROUTE", "/oauth/login/appid"),
		UnauthorizedRoute: getenv("UNAUTHORIZED_ROUTE", "/unauthorized"),

		SessionTTL: getduration("SESSION_TTL", 24*time.Hour),
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
