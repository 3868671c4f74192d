// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"libraryfront/internal/query"
)

// Duration parses YAML values like "5m" into a time.Duration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Staleness holds the per-kind cache windows.
type Staleness struct {
	Books       Duration `yaml:"books"`
	Recommended Duration `yaml:"recommended"`
	MyLoans     Duration `yaml:"my_loans"`
	Default     Duration `yaml:"default"`
}

// Config is the client configuration, loaded from an optional YAML file
// with environment-variable overrides on top.
type Config struct {
	BaseURL   string    `yaml:"base_url"`
	Timeout   Duration  `yaml:"timeout"`
	TokenPath string    `yaml:"token_path"`
	Staleness Staleness `yaml:"staleness"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:   "http://localhost:8095",
		Timeout:   Duration(10 * time.Second),
		TokenPath: defaultTokenPath(),
		Staleness: Staleness{
			Books:       Duration(5 * time.Minute),
			Recommended: Duration(10 * time.Minute),
			MyLoans:     Duration(2 * time.Minute),
			Default:     Duration(5 * time.Minute),
		},
	}
}

// Load reads the YAML file at path when it exists, then applies
// environment overrides. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	fromEnv(&cfg)
	return cfg, nil
}

func fromEnv(cfg *Config) {
	if v, ok := os.LookupEnv("LIBRARYFRONT_BASE_URL"); ok {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv("LIBRARYFRONT_TOKEN_PATH"); ok {
		cfg.TokenPath = v
	}
	if v, ok := os.LookupEnv("LIBRARYFRONT_TIMEOUT"); ok {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = Duration(parsed)
		}
	}
}

// Windows renders the staleness settings as query-client windows. Book
// details are always refetched and are not configurable.
func (c Config) Windows() map[query.Kind]time.Duration {
	return map[query.Kind]time.Duration{
		query.KindBooks:            c.Staleness.Books.Std(),
		query.KindRecommendedBooks: c.Staleness.Recommended.Std(),
		query.KindMyLoans:          c.Staleness.MyLoans.Std(),
		query.KindBook:             0,
	}
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".libraryfront_token"
	}
	return filepath.Join(dir, "libraryfront", "token")
}
