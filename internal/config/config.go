package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/artdash/internal/collection"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load
const (
	EnvBaseURL     = "MET_API_BASE_URL"
	EnvDepartments = "ARTDASH_DEPARTMENTS"
	EnvSampleSize  = "ARTDASH_SAMPLE_SIZE"
	EnvFallbackIDs = "ARTDASH_FALLBACK_IDS"
	EnvHTTPTimeout = "ARTDASH_HTTP_TIMEOUT"
	EnvLogLevel    = "ARTDASH_LOG_LEVEL"
)

// Config holds the settings shared by every command
type Config struct {
	BaseURL     string        `yaml:"base_url"`
	Departments []int         `yaml:"departments"`
	SampleSize  int           `yaml:"sample_size"`
	FallbackIDs []int         `yaml:"fallback_ids"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	LogLevel    string        `yaml:"log_level"`
}

// Default returns the dashboard's stock configuration
func Default() *Config {
	return &Config{
		BaseURL:     collection.DefaultBaseURL,
		Departments: append([]int(nil), collection.DefaultDepartments...),
		SampleSize:  collection.DefaultSampleSize,
		FallbackIDs: append([]int(nil), collection.FallbackObjectIDs...),
		HTTPTimeout: 30 * time.Second,
		LogLevel:    "info",
	}
}

// Load builds the configuration from defaults, an optional YAML file, then the
// environment. Later sources win. The result is not validated, since callers
// may still apply flag overrides; call Validate once they have.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvDepartments); v != "" {
		ids, err := ParseIDs(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDepartments, err)
		}
		c.Departments = ids
	}
	if v := os.Getenv(EnvSampleSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSampleSize, err)
		}
		c.SampleSize = n
	}
	if v := os.Getenv(EnvFallbackIDs); v != "" {
		ids, err := ParseIDs(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvFallbackIDs, err)
		}
		c.FallbackIDs = ids
	}
	if v := os.Getenv(EnvHTTPTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvHTTPTimeout, err)
		}
		c.HTTPTimeout = d
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate rejects settings the loader cannot work with
func (c *Config) Validate() error {
	if c.SampleSize <= 0 {
		return fmt.Errorf("sample size must be positive, got %d", c.SampleSize)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must not be negative, got %s", c.HTTPTimeout)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Request converts the configuration into a loader request
func (c *Config) Request() collection.Request {
	return collection.Request{
		Departments: c.Departments,
		SampleSize:  c.SampleSize,
		FallbackIDs: c.FallbackIDs,
	}
}

// ParseIDs parses a comma separated list of integer identifiers
func ParseIDs(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid identifier %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseLevel maps a level name to a slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported log level: %s", level)
	}
}

// SetupLogging installs a text handler on stderr at the configured level
func (c *Config) SetupLogging() {
	level, _ := ParseLevel(c.LogLevel)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
