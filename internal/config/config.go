// Package config reads the backend configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/goalpost-app/backend/internal/money"
	"github.com/goalpost-app/backend/internal/payment"
	"github.com/goalpost-app/backend/internal/secret"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	ErrAPIURLMissing        = errors.New("environment variable API_URL must be set")
	ErrInvalidURL           = errors.New("is not a valid URL")
	ErrTokenSigningKeyShort = errors.New("TOKEN_SIGNING_KEY must be at least 32 characters long")
)

type Config struct {
	APIURL                *url.URL // Base URL of the API as seen by clients
	Port                  string
	DatabaseURL           string // Path of the SQLite database or PostgreSQL DSN
	LogFormat             string
	GinMode               string
	CORSAllowOrigins      []string
	EnablePprof           bool
	PublicURL             *url.URL // Base URL of the frontend, used for checkout redirects
	Currency              money.Currency
	PaymentAPIURL         string
	PaymentAPIKey         string
	WebhookSecret         string
	WebhookTolerance      time.Duration
	CheckoutRedirectAllow []string // Glob patterns for accepted checkout redirect URLs
	TokenSigningKey       []byte
}

// Load reads the configuration. Variables from a .env file in the working
// directory are loaded first, they never override the environment.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load .env file: %w", err)
	}

	return FromEnv()
}

// FromEnv reads the configuration from the environment only.
func FromEnv() (Config, error) {
	c := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "data/goalpost.db"),
		LogFormat:     getEnv("LOG_FORMAT", ""),
		GinMode:       getEnv("GIN_MODE", "release"),
		EnablePprof:   getEnv("ENABLE_PPROF", "false") == "true",
		PaymentAPIURL: getEnv("PAYMENT_API_URL", payment.DefaultAPIURL),
		PaymentAPIKey: getEnv("PAYMENT_API_KEY", ""),
		WebhookSecret: getEnv("PAYMENT_WEBHOOK_SECRET", ""),
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return Config{}, ErrAPIURLMissing
	}

	var err error
	c.APIURL, err = parseURL("API_URL", apiURL)
	if err != nil {
		return Config{}, err
	}

	c.PublicURL, err = parseURL("PUBLIC_URL", getEnv("PUBLIC_URL", apiURL))
	if err != nil {
		return Config{}, err
	}

	c.CORSAllowOrigins = strings.Fields(getEnv("CORS_ALLOW_ORIGINS", ""))

	c.Currency, err = money.ParseCurrency(getEnv("CURRENCY", "EUR"))
	if err != nil {
		return Config{}, err
	}

	c.WebhookTolerance, err = time.ParseDuration(getEnv("PAYMENT_WEBHOOK_TOLERANCE", payment.DefaultTolerance.String()))
	if err != nil {
		return Config{}, fmt.Errorf("PAYMENT_WEBHOOK_TOLERANCE is not a valid duration: %w", err)
	}

	// Redirects back to the frontend are always allowed
	c.CheckoutRedirectAllow = strings.Fields(getEnv("CHECKOUT_REDIRECT_ALLOW", ""))
	c.CheckoutRedirectAllow = append(c.CheckoutRedirectAllow, strings.TrimRight(c.PublicURL.String(), "/")+"/*")

	key := getEnv("TOKEN_SIGNING_KEY", "")
	if key == "" {
		log.Warn().Msg("TOKEN_SIGNING_KEY is not set, capability tokens will not survive a restart")
		generated, err := secret.Generate()
		if err != nil {
			return Config{}, err
		}
		c.TokenSigningKey = []byte(generated)
	} else if len(key) < 32 {
		return Config{}, ErrTokenSigningKeyShort
	} else {
		c.TokenSigningKey = []byte(key)
	}

	if c.WebhookSecret == "" {
		log.Warn().Msg("PAYMENT_WEBHOOK_SECRET is not set, all payment notifications will be rejected")
	}

	return c, nil
}

func parseURL(name, value string) (*url.URL, error) {
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s %w: %q", name, ErrInvalidURL, value)
	}

	return u, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
