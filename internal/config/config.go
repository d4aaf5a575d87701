package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"golang.org/x/text/currency"
)

const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

const (
	defaultAppEnv       = "dev"
	defaultLogLevel     = "info"
	defaultSource       = SourceFile
	defaultCatalogPath  = "data/data.json"
	defaultCurrency     = "USD"
	defaultFetchTimeout = 10 * time.Second
)

type Config struct {
	AppEnv   string
	LogLevel string

	Catalog CatalogConfig
}

// CatalogConfig selects where the one-shot catalog load reads from.
type CatalogConfig struct {
	Source       string
	Path         string
	URL          string
	DatabaseURL  string
	Currency     currency.Unit
	FetchTimeout time.Duration
}

func Load() (Config, error) {
	cur, err := currency.ParseISO(getEnv("CATALOG_CURRENCY", defaultCurrency))
	if err != nil {
		return Config{}, errors.Wrap(err, "CATALOG_CURRENCY")
	}

	timeout, err := getEnvDuration("FETCH_TIMEOUT", defaultFetchTimeout)
	if err != nil {
		return Config{}, errors.Wrap(err, "FETCH_TIMEOUT")
	}

	cfg := Config{
		AppEnv:   getEnv("APP_ENV", defaultAppEnv),
		LogLevel: getEnv("LOG_LEVEL", defaultLogLevel),
		Catalog: CatalogConfig{
			Source:       strings.ToLower(getEnv("CATALOG_SOURCE", defaultSource)),
			Path:         getEnv("CATALOG_PATH", defaultCatalogPath),
			URL:          getEnv("CATALOG_URL", ""),
			DatabaseURL:  getEnv("DATABASE_URL", ""),
			Currency:     cur,
			FetchTimeout: timeout,
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Catalog.Source {
	case SourceFile:
		if c.Catalog.Path == "" {
			return errors.New("CATALOG_PATH is required for file source")
		}
	case SourceHTTP:
		if c.Catalog.URL == "" {
			return errors.New("CATALOG_URL is required for http source")
		}
	case SourcePostgres:
		if c.Catalog.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for postgres source")
		}
	default:
		return errors.Errorf("CATALOG_SOURCE %q is not one of file, http, postgres", c.Catalog.Source)
	}

	if c.Catalog.FetchTimeout <= 0 {
		return errors.New("FETCH_TIMEOUT must be positive")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}

	return time.ParseDuration(v)
}
