// Package config loads configuration for both binaries.
//
// The API server (cmd/schools-api) reads a YAML file whose path comes from,
// in priority order:
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The CLI client (cmd/schools) only reads environment variables, see
// LoadClient.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the API server configuration.
// Every field maps to a key in the YAML file and can be overridden by the
// corresponding environment variable.
//
// env-required:"true" makes the server refuse to start when a value is
// missing rather than run with a wrong default.
type Config struct {
	// Env controls log format and verbosity: "dev", "staging" or "prod".
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// StoragePath is the filesystem path to the SQLite .db file.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`

	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8000".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
}

// ClientConfig is the CLI client configuration.
type ClientConfig struct {
	Env string `env:"ENV" env-default:"dev"`

	// APIBaseURL is where the schools API is served; the client appends
	// /api/schools/... to it.
	APIBaseURL string `env:"SCHOOLS_API_URL" env-default:"http://localhost:8000"`
}

// MustLoad reads, validates, and returns the server config. It exits the
// process on any failure, so a returned config is always valid.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

// Load reads the server config from the YAML file at path, then applies
// environment overrides and env-required checks.
func Load(path string) (*Config, error) {
	// Checked up front for a clearer message than "open: no such file".
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}

// LoadClient reads the client config from the environment, falling back to
// defaults for unset variables.
func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read client config: %w", err)
	}
	return &cfg, nil
}
