// Package config loads the corrector configuration from YAML with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/cours-de-latin/corrector"
	"github.com/cours-de-latin/corrector/badgerstore"
	"github.com/cours-de-latin/corrector/internal/logging"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DfltServerAddr             = "localhost:8080"
	DfltServerReadTimeoutSecs  = 10
	DfltServerWriteTimeoutSecs = 30
	DfltDictDir                = "dictionaries"
	DfltBadgerPath             = "lexicon.badger"
	DfltLogLevel               = "info"

	StoreFile   = "file"
	StoreBadger = "badger"
)

// Config holds the whole configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Lexicon LexiconConfig `yaml:"lexicon"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the REST API.
type ServerConfig struct {
	Addr             string   `yaml:"addr"`
	ReadTimeoutSecs  int      `yaml:"read_timeout_secs"`
	WriteTimeoutSecs int      `yaml:"write_timeout_secs"`
	CORSOrigins      []string `yaml:"cors_origins"`
	// Watch reloads the lexicon when its files change (file store only).
	Watch bool `yaml:"watch"`
}

// LexiconConfig says where the tables live and how verbs are read.
type LexiconConfig struct {
	Store         string   `yaml:"store"` // file, badger
	DictDir       string   `yaml:"dict_dir"`
	BadgerPath    string   `yaml:"badger_path"`
	FutureMarkers []string `yaml:"future_markers"`
}

// LoggingConfig configures internal/logging.
type LoggingConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:             DfltServerAddr,
			ReadTimeoutSecs:  DfltServerReadTimeoutSecs,
			WriteTimeoutSecs: DfltServerWriteTimeoutSecs,
			CORSOrigins:      []string{"*"},
		},
		Lexicon: LexiconConfig{
			Store:         StoreFile,
			DictDir:       DfltDictDir,
			BadgerPath:    DfltBadgerPath,
			FutureMarkers: append([]string(nil), corrector.DefaultFutureMarkers...),
		},
		Logging: LoggingConfig{
			Level: DfltLogLevel,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
// Environment variables are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file into the environment.
// Variables that are already set win. A missing file is ignored.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CORRECTOR_DICT_DIR"); v != "" {
		c.Lexicon.DictDir = v
	}
	if v := os.Getenv("CORRECTOR_STORE"); v != "" {
		c.Lexicon.Store = v
	}
	if v := os.Getenv("CORRECTOR_BADGER_PATH"); v != "" {
		c.Lexicon.BadgerPath = v
	}
	if v := os.Getenv("CORRECTOR_FUTURE_MARKERS"); v != "" {
		var markers []string
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				markers = append(markers, m)
			}
		}
		c.Lexicon.FutureMarkers = markers
	}
	if v := os.Getenv("CORRECTOR_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("CORRECTOR_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CORRECTOR_LOG_PATH"); v != "" {
		c.Logging.Path = v
	}
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Lexicon.Store {
	case StoreFile:
		if c.Lexicon.DictDir == "" {
			return errors.New("lexicon.dict_dir must be set for the file store")
		}
	case StoreBadger:
		if c.Lexicon.BadgerPath == "" {
			return errors.New("lexicon.badger_path must be set for the badger store")
		}
	default:
		return fmt.Errorf("unknown lexicon store %q", c.Lexicon.Store)
	}
	for _, m := range c.Lexicon.FutureMarkers {
		if strings.TrimSpace(m) == "" {
			return errors.New("lexicon.future_markers must not contain empty markers")
		}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Server.ReadTimeoutSecs < 0 || c.Server.WriteTimeoutSecs < 0 {
		return errors.New("server timeouts must not be negative")
	}
	return nil
}

// CorrectorOptions returns the options derived from the lexicon section.
func (c *LexiconConfig) CorrectorOptions() []corrector.Option {
	if len(c.FutureMarkers) == 0 {
		return nil
	}
	return []corrector.Option{corrector.WithFutureMarkers(c.FutureMarkers...)}
}

// OpenStore opens the configured lexicon store. The returned close
// function must be called when the store is no longer needed.
func (c *LexiconConfig) OpenStore() (corrector.Store, func() error, error) {
	switch c.Store {
	case StoreBadger:
		s, err := badgerstore.Open(c.BadgerPath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case StoreFile:
		return corrector.FileStore{Dir: c.DictDir}, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown lexicon store %q", c.Store)
	}
}
