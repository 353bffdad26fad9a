// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv = "WEATHERCLI"

	// APIKeyEnv is the conventional environment variable that holds the OpenWeatherMap API key.
	// It is consulted when WEATHERCLI_APIKEY is not set.
	APIKeyEnv = "OPENWEATHER_API_KEY"

	DefaultBaseURL = "http://api.openweathermap.org/data/2.5"
)

// ErrMissingAPIKey is returned when no API key could be found in the environment.
var ErrMissingAPIKey = errors.New("missing OpenWeatherMap API key: set " + configEnv + "_APIKEY or " +
	APIKeyEnv + " in the environment or in a .env file")

// Config represents the application's configuration structure. It is read from the
// environment only.
type Config struct {
	APIKey   string        `fig:"apikey"`
	BaseURL  string        `fig:"base_url" default:"http://api.openweathermap.org/data/2.5"`
	Timeout  time.Duration `fig:"timeout" default:"10s"`
	Locale   string        `fig:"locale"`
	LogLevel slog.Level    `fig:"loglevel" default:"4"`
	NoColor  bool          `fig:"no_color"`
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		c.APIKey = strings.TrimSpace(os.Getenv(APIKeyEnv))
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return fmt.Errorf("invalid base URL: %s", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout: %s", c.Timeout)
	}
	if c.Locale == "" {
		c.Locale = getLocale()
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.NoColor = true
	}

	return nil
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
