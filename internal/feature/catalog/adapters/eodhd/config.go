// Package eodhd provides a client for the EODHD market-data REST API.
package eodhd

import (
	"errors"
	"os"
	"time"
)

// ErrMissingAPIToken is returned by Validate when no API token is configured.
// This is the one fatal configuration error: without a token every call would
// fail, so the process should refuse to start instead of degrading silently.
var ErrMissingAPIToken = errors.New("eodhd: EODHD_API_TOKEN is not set")

// DefaultBaseURL is the production EODHD endpoint.
const DefaultBaseURL = "https://eodhd.com/api"

// DefaultExchangeCode covers all US tickers.
const DefaultExchangeCode = "US"

// Config holds configuration for the EODHD API client.
type Config struct {
	APIToken     string        // Static API token for authentication
	BaseURL      string        // Base URL for the API
	ExchangeCode string        // Exchange code for the symbol list and quote suffix
	Timeout      time.Duration // HTTP request timeout
}

// LoadConfig loads EODHD configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIToken:     os.Getenv("EODHD_API_TOKEN"),
		BaseURL:      os.Getenv("EODHD_BASE_URL"),
		ExchangeCode: os.Getenv("EODHD_EXCHANGE_CODE"),
		Timeout:      10 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ExchangeCode == "" {
		cfg.ExchangeCode = DefaultExchangeCode
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.APIToken == "" {
		return ErrMissingAPIToken
	}
	return nil
}
