// Package config loads and persists sharesout settings from
// $SHARESOUT_HOME/config.yaml (default ~/.sharesout/config.yaml), with
// environment variable overrides applied on top.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultBaseURL    = "https://data.sec.gov"
	DefaultRelayURL   = "https://api.allorigins.win/raw"
	DefaultUserAgent  = "sharesout/1.0 (shares outstanding viewer)"
	DefaultCutoffYear = 2020
	DefaultLocale     = "en"
	DefaultAddr       = ":8080"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"

	configFileName = "config.yaml"
)

// Environment variables that override the config file.
const (
	EnvHome        = "SHARESOUT_HOME"
	EnvBaseURL     = "SHARESOUT_API_BASE"
	EnvRelayURL    = "SHARESOUT_RELAY_URL"
	EnvUserAgent   = "SHARESOUT_USER_AGENT"
	EnvDefaultData = "SHARESOUT_DEFAULT_DATA"
	EnvAddr        = "SHARESOUT_ADDR"
	EnvLogLevel    = "SHARESOUT_LOG_LEVEL"
	EnvLogFormat   = "SHARESOUT_LOG_FORMAT"
)

// ErrUnknownKey is returned by Get and Set for keys outside the schema.
var ErrUnknownKey = errors.New("unknown configuration key")

// Config is the full sharesout configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
	loadErr    error
}

// APIConfig controls how disclosures are fetched.
type APIConfig struct {
	// BaseURL is the filings API host.
	BaseURL string `yaml:"base_url"`
	// RelayURL forwards requests; empty requests the filings API directly.
	RelayURL  string `yaml:"relay_url"`
	UserAgent string `yaml:"user_agent"`
	// Timeout in seconds; 0 leaves the transport defaults.
	Timeout int `yaml:"timeout"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (a APIConfig) TimeoutDuration() time.Duration {
	return time.Duration(a.Timeout) * time.Second
}

// DisplayConfig controls reduction and formatting.
type DisplayConfig struct {
	CutoffYear int    `yaml:"cutoff_year"`
	Locale     string `yaml:"locale"`
	// DefaultData is a path or URL of the default dataset; empty uses the bundled one.
	DefaultData string `yaml:"default_data"`
}

// ServerConfig controls the page server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// NewDefault returns a Config holding only built-in defaults.
func NewDefault() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   DefaultBaseURL,
			RelayURL:  DefaultRelayURL,
			UserAgent: DefaultUserAgent,
		},
		Display: DisplayConfig{
			CutoffYear: DefaultCutoffYear,
			Locale:     DefaultLocale,
		},
		Server: ServerConfig{Addr: DefaultAddr},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// New returns the defaults overlaid with the config file (if present) and the
// environment. A broken config file does not fail New; see LoadError.
func New() *Config {
	cfg := NewDefault()
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = FilePath(dir)
	}
	if cfg.configPath != "" {
		if err := cfg.loadFile(cfg.configPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			cfg.loadErr = err
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// FilePath returns the config file location inside dir.
func FilePath(dir string) string {
	return filepath.Join(dir, configFileName)
}

// Load reads path over the defaults and applies the environment.
func Load(path string) (*Config, error) {
	cfg := NewDefault()
	cfg.configPath = path
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	overrides := []struct {
		env string
		dst *string
	}{
		{EnvBaseURL, &c.API.BaseURL},
		{EnvRelayURL, &c.API.RelayURL},
		{EnvUserAgent, &c.API.UserAgent},
		{EnvDefaultData, &c.Display.DefaultData},
		{EnvAddr, &c.Server.Addr},
		{EnvLogLevel, &c.Logging.Level},
		{EnvLogFormat, &c.Logging.Format},
	}
	for _, o := range overrides {
		if v, ok := lookup(o.env); ok {
			*o.dst = v
		}
	}
}

// LoadError returns the error hit while reading the config file in New, if any.
func (c *Config) LoadError() error {
	return c.loadErr
}

// ConfigPath returns the file Save writes to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no configuration path set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.loadErr != nil {
		return c.loadErr
	}
	var errs []error
	if err := validateURL("api.base_url", c.API.BaseURL, false); err != nil {
		errs = append(errs, err)
	}
	if err := validateURL("api.relay_url", c.API.RelayURL, true); err != nil {
		errs = append(errs, err)
	}
	if c.API.Timeout < 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be >= 0, got %d", c.API.Timeout))
	}
	if c.Display.CutoffYear < 0 {
		errs = append(errs, fmt.Errorf("display.cutoff_year must be >= 0, got %d", c.Display.CutoffYear))
	}
	if strings.TrimSpace(c.Display.Locale) == "" {
		errs = append(errs, errors.New("display.locale must not be empty"))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

func validateURL(key, raw string, allowEmpty bool) error {
	if raw == "" {
		if allowEmpty {
			return nil
		}
		return fmt.Errorf("%s must not be empty", key)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", key, raw)
	}
	return nil
}

// Keys lists every settable key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(fieldTable(NewDefault())))
	for k := range fieldTable(NewDefault()) {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "api.relay_url".
func (c *Config) Get(key string) (string, error) {
	f, ok := fieldTable(c)[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if f.s != nil {
		return *f.s, nil
	}
	return strconv.Itoa(*f.i), nil
}

// Set assigns a dotted key from its string form.
func (c *Config) Set(key, value string) error {
	f, ok := fieldTable(c)[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if f.s != nil {
		*f.s = value
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s expects an integer: %w", key, err)
	}
	*f.i = n
	return nil
}

// List returns every key with its current value.
func (c *Config) List() map[string]string {
	out := make(map[string]string)
	for _, k := range Keys() {
		v, _ := c.Get(k)
		out[k] = v
	}
	return out
}

type field struct {
	s *string
	i *int
}

func fieldTable(c *Config) map[string]field {
	return map[string]field{
		"api.base_url":         {s: &c.API.BaseURL},
		"api.relay_url":        {s: &c.API.RelayURL},
		"api.user_agent":       {s: &c.API.UserAgent},
		"api.timeout":          {i: &c.API.Timeout},
		"display.cutoff_year":  {i: &c.Display.CutoffYear},
		"display.locale":       {s: &c.Display.Locale},
		"display.default_data": {s: &c.Display.DefaultData},
		"server.addr":          {s: &c.Server.Addr},
		"logging.level":        {s: &c.Logging.Level},
		"logging.format":       {s: &c.Logging.Format},
		"logging.file":         {s: &c.Logging.File},
	}
}
