// Package einvoice wires the e-invoicing API client and its MCP tool surface.
package einvoice

import (
	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

// DefaultBaseURL production API host. Overridable through EINVOICE_BASE_URL,
// mainly so tests can point the client at a local server.
const DefaultBaseURL = "https://api.e-invoice.dev"

// Config process configuration, read once at startup and passed down to every
// handler. The API key is never re-read from the environment after this.
type Config struct {
	APIKey  string `env:"EINVOICE_API_KEY"`
	BaseURL string `env:"EINVOICE_BASE_URL" envDefault:"https://api.e-invoice.dev"`
	Debug   bool   `env:"EINVOICE_DEBUG"`
}

// LoadConfig parses configuration from the environment. A missing API key is
// an error here, the caller decides that it is fatal.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("EINVOICE_API_KEY environment variable is not set")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &cfg, nil
}

// SetupLogging configures logrus for stdio transport: everything goes to
// stderr because stdout carries the MCP stream.
func (c *Config) SetupLogging() {
	if c.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
