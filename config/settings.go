// Package config provides configuration structures for the phrase search service.
// Settings are read from an optional YAML file, then overridden by environment
// variables, then by command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Default values applied by ApplyDefaults.
const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 10000
	DefaultDBPath      = "epstein_index.db"
	DefaultSampleLimit = 3
	DefaultWindow      = 120
	DefaultLocator     = "dataset"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Host         string  `yaml:"host" json:"host"`
	Port         int     `yaml:"port" json:"port"`
	RateLimit    float64 `yaml:"rateLimit" json:"rate_limit"`       // Requests per second per client IP; 0 disables limiting
	RateBurst    int     `yaml:"rateBurst" json:"rate_burst"`       // Burst allowed above RateLimit
	AllowOrigins string  `yaml:"allowOrigins" json:"allow_origins"` // Value of Access-Control-Allow-Origin
}

// SearchSettings configures result shaping.
type SearchSettings struct {
	SampleLimit int `yaml:"sampleLimit" json:"sample_limit"` // Samples kept per file in "sample" mode
	Window      int `yaml:"window" json:"window"`            // Fallback snippet window, in characters on each side of a match
}

// LocatorSettings selects how sample URLs are derived.
type LocatorSettings struct {
	Kind    string `yaml:"kind" json:"kind"`         // "dataset" or "none"
	BaseURL string `yaml:"baseURL" json:"base_url"` // Archive root for the dataset locator
}

// LogSettings configures zerolog output.
type LogSettings struct {
	Level  string `yaml:"level" json:"level"`   // trace, debug, info, warn, error
	Format string `yaml:"format" json:"format"` // "console" or "json"
}

// Settings is the complete service configuration.
type Settings struct {
	DBPath  string          `yaml:"db" json:"db"`
	Server  ServerSettings  `yaml:"server" json:"server"`
	Search  SearchSettings  `yaml:"search" json:"search"`
	Locator LocatorSettings `yaml:"locator" json:"locator"`
	Log     LogSettings     `yaml:"log" json:"log"`
}

// Load reads settings from the YAML file at path (skipped when path is empty),
// applies environment overrides and fills in defaults.
func Load(path string) (Settings, error) {
	var s Settings
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &s); err != nil {
			return Settings{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return Settings{}, err
	}
	s.ApplyDefaults()
	return s, nil
}

// ApplyEnv overrides settings from PHRASE_SEARCH_* environment variables.
// lookup is os.LookupEnv outside of tests.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PHRASE_SEARCH_DB"); ok && v != "" {
		s.DBPath = v
	}
	if v, ok := lookup("PHRASE_SEARCH_HOST"); ok && v != "" {
		s.Server.Host = v
	}
	if v, ok := lookup("PHRASE_SEARCH_PORT"); ok && v != "" {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("PHRASE_SEARCH_PORT: %w", err)
		}
		s.Server.Port = port
	}
	if v, ok := lookup("PHRASE_SEARCH_LOCATOR"); ok && v != "" {
		s.Locator.Kind = v
	}
	if v, ok := lookup("PHRASE_SEARCH_LOG_LEVEL"); ok && v != "" {
		s.Log.Level = v
	}
	return nil
}

// ApplyDefaults sets default values for any unset fields.
func (s *Settings) ApplyDefaults() {
	if s.DBPath == "" {
		s.DBPath = DefaultDBPath
	}
	if s.Server.Host == "" {
		s.Server.Host = DefaultHost
	}
	if s.Server.Port == 0 {
		s.Server.Port = DefaultPort
	}
	if s.Server.RateLimit > 0 && s.Server.RateBurst <= 0 {
		s.Server.RateBurst = int(s.Server.RateLimit) + 1
	}
	if s.Server.AllowOrigins == "" {
		s.Server.AllowOrigins = "*"
	}
	if s.Search.SampleLimit <= 0 {
		s.Search.SampleLimit = DefaultSampleLimit
	}
	if s.Search.Window <= 0 {
		s.Search.Window = DefaultWindow
	}
	if s.Locator.Kind == "" {
		s.Locator.Kind = DefaultLocator
	}
	if s.Log.Level == "" {
		s.Log.Level = DefaultLogLevel
	}
	if s.Log.Format == "" {
		s.Log.Format = DefaultLogFormat
	}
}

// Validate returns a list of problems with the settings, empty when valid.
func (s *Settings) Validate() []string {
	var problems []string

	if strings.TrimSpace(s.DBPath) == "" {
		problems = append(problems, "db path cannot be empty")
	}
	if s.Server.Port < 1 || s.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server port %d is out of range", s.Server.Port))
	}
	if s.Server.RateLimit < 0 {
		problems = append(problems, "server rate limit cannot be negative")
	}
	if s.Search.SampleLimit < 1 {
		problems = append(problems, "search sample limit must be at least 1")
	}
	if s.Search.Window < 1 {
		problems = append(problems, "search window must be at least 1")
	}
	switch s.Locator.Kind {
	case "dataset", "none":
	default:
		problems = append(problems, fmt.Sprintf("unknown locator kind '%s' (valid: dataset, none)", s.Locator.Kind))
	}
	switch s.Log.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("unknown log format '%s' (valid: console, json)", s.Log.Format))
	}

	return problems
}

// Err joins the Validate problems into one error, or returns nil.
func (s *Settings) Err() error {
	problems := s.Validate()
	if len(problems) == 0 {
		return nil
	}
	return errors.New("invalid configuration: " + strings.Join(problems, "; "))
}

// Addr returns the host:port the server listens on.
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Server.Host, s.Server.Port)
}
