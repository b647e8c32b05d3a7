// Package config loads application settings from environment
// variables and an optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every tunable the application reads at startup.
type Config struct {
	// APIKey is the OpenRouter-compatible API credential. Empty means
	// AI generation is disabled and local fallback serves everything.
	APIKey string `mapstructure:"api_key"`
	// Model is the model identifier sent with each request.
	Model string `mapstructure:"model"`
	// BaseURL overrides the API endpoint for compatible providers.
	BaseURL string `mapstructure:"base_url"`

	// Grade is the child's school grade.
	Grade int `mapstructure:"grade"`
	// Interests personalize question themes, comma separated in the
	// environment.
	Interests []string `mapstructure:"-"`

	// DBPath is the SQLite database location. Empty uses the XDG
	// default.
	DBPath string `mapstructure:"db_path"`

	// PacingDelay spaces out AI requests.
	PacingDelay time.Duration `mapstructure:"pacing_delay"`

	// LogLevel sets logging verbosity: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from KIDSKILLS_* environment variables and,
// when present, a kidskills.yaml config file in the working directory
// or $HOME/.config/kidskills/.
func Load() (Config, error) {
	v := viper.New()

	// Every key needs a default so AutomaticEnv can resolve it during
	// Unmarshal.
	v.SetDefault("api_key", "")
	v.SetDefault("model", "")
	v.SetDefault("base_url", "")
	v.SetDefault("grade", 3)
	v.SetDefault("interests", "")
	v.SetDefault("db_path", "")
	v.SetDefault("pacing_delay", time.Second)
	v.SetDefault("log_level", "warn")

	v.SetConfigName("kidskills")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/kidskills")

	v.SetEnvPrefix("KIDSKILLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; anything else is a real problem.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// Viper does not split env strings into slices.
	cfg.Interests = splitList(v.GetString("interests"))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if c.Grade < 1 || c.Grade > 8 {
		return fmt.Errorf("grade %d out of range 1-8", c.Grade)
	}
	if c.PacingDelay < 0 {
		return fmt.Errorf("pacing delay must not be negative")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// HasCredential reports whether AI generation is available.
func (c Config) HasCredential() bool {
	return c.APIKey != ""
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
