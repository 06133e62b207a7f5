package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lululau/daycal/internal/calendar"
	"github.com/lululau/daycal/internal/locale"
	"github.com/lululau/daycal/internal/status"
)

// ErrInvalidLocale is returned when lang names an unsupported language.
var ErrInvalidLocale = errors.New("lang must be ru or en")

// Config represents application configuration
type Config struct {
	Lang    string    `mapstructure:"lang"`
	NoColor bool      `mapstructure:"no_color"`
	Busy    []string  `mapstructure:"busy"`
	Days    []string  `mapstructure:"days"` // YYYY-MM-DD=busy|free
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig controls the diagnostic log. The interactive UI owns the terminal,
// so logs only go to a file.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// New returns a viper instance with defaults and search paths set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("lang", "")
	v.SetDefault("no_color", false)
	v.SetDefault("busy", []string{})
	v.SetDefault("days", []string{})
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("daycal")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (if any) into v and unmarshals the result.
// A missing default config file is not an error; an explicit path must exist.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "daycal"))
		}
		v.AddConfigPath("$HOME/.daycal")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Lang != "" && !locale.Supported(c.Lang) {
		return fmt.Errorf("%w, got %q", ErrInvalidLocale, c.Lang)
	}
	if _, err := c.Records(); err != nil {
		return err
	}
	return nil
}

// Records parses the busy list followed by the days list. Later entries for
// the same date win once applied to a store.
func (c *Config) Records() ([]status.Record, error) {
	records := make([]status.Record, 0, len(c.Busy)+len(c.Days))
	for _, s := range c.Busy {
		d, err := calendar.ParseDay(s)
		if err != nil {
			return nil, fmt.Errorf("busy: %w", err)
		}
		records = append(records, status.Record{Day: d, Status: status.Busy})
	}
	for _, s := range c.Days {
		rec, err := status.ParseRecord(s)
		if err != nil {
			return nil, fmt.Errorf("days: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Locale resolves the configured language, falling back to the environment.
func (c *Config) Locale() *locale.Locale {
	if c.Lang != "" {
		return locale.Match(c.Lang)
	}
	return locale.FromEnv()
}
