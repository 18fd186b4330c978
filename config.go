package client

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultEnvFile is the dotenv file read by [LoadConfig] when no files are named.
const DefaultEnvFile = ".env"

// Config holds the connection settings for a [Client]. It is read once by
// [New] and never modified afterwards.
type Config struct {
	// URL is the API base URL. Request paths are appended to it verbatim.
	URL string `envconfig:"URL" required:"true"`

	// ClientID is sent in the clientId header of every request.
	ClientID string `envconfig:"CLIENT_ID" required:"true"`

	// APIKey is sent as "Basic <APIKey>" in the Authorization header.
	APIKey string `envconfig:"API_KEY" required:"true"`
}

// Validate checks that all fields are set and that URL is an absolute URL.
func (c Config) Validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return errors.New("base URL must be set")
	}

	if strings.TrimSpace(c.ClientID) == "" {
		return errors.New("client ID must be set")
	}

	if strings.TrimSpace(c.APIKey) == "" {
		return errors.New("API key must be set")
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base URL %q must be absolute", c.URL)
	}

	return nil
}

// LoadConfig reads URL, CLIENT_ID and API_KEY from the environment. The named
// dotenv files (or [DefaultEnvFile] if none are given) are loaded first;
// missing files are skipped and variables already present in the environment
// take precedence over file values.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
