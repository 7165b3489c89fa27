// Package config loads gyoji settings from a .gyoji.yaml file and GYOJI_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // timezone names resolve without a system zoneinfo

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/gyoji/pkg/locale"
	"tableflip.dev/gyoji/pkg/timeutil"
)

// EnvConfigPath names an extra directory searched for .gyoji.yaml.
const EnvConfigPath = "GYOJI_CONFIG_PATH"

// EventConfig is an event listed in the config file.
type EventConfig struct {
	Title       string `mapstructure:"title"`
	Date        string `mapstructure:"date"`
	Category    string `mapstructure:"category"`
	Location    string `mapstructure:"location"`
	Description string `mapstructure:"description"`
}

// LogConfig controls zerolog.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Config is the effective configuration.
type Config struct {
	// WeekStart is the first grid column: a weekday name or 0..6 (0 = Sunday).
	WeekStart string `mapstructure:"week_start"`
	// Locale selects labels: "ja" (default) or "en".
	Locale string `mapstructure:"locale"`
	// Timezone is the IANA zone that decides what today is. Empty means local.
	Timezone string `mapstructure:"timezone"`
	// Demo seeds the sample school events around today.
	Demo bool `mapstructure:"demo"`
	// ICS is a calendar file imported at start-up.
	ICS string `mapstructure:"ics"`
	// Events are added at start-up.
	Events []EventConfig `mapstructure:"events"`
	Log    LogConfig     `mapstructure:"log"`

	// Source is the config file that was read, if any.
	Source string `mapstructure:"-"`
}

// Load reads configuration. When path is empty the file .gyoji.yaml is
// searched in $GYOJI_CONFIG_PATH, the working directory and the home
// directory; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GYOJI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("config: expand %q: %w", path, err)
		}
		v.SetConfigFile(expanded)
	} else {
		v.SetConfigName(".gyoji")
		v.SetConfigType("yaml")
		if override := os.Getenv(EnvConfigPath); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("week_start", "sunday")
	v.SetDefault("locale", "ja")
	v.SetDefault("timezone", "")
	v.SetDefault("demo", false)
	v.SetDefault("ics", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Normalize fills blanks, expands ~ in paths, and rejects values that
// cannot be interpreted.
func (c *Config) Normalize() error {
	if strings.TrimSpace(c.WeekStart) == "" {
		c.WeekStart = "sunday"
	}
	if _, err := c.WeekStartDay(); err != nil {
		return fmt.Errorf("config: week_start: %w", err)
	}
	if _, ok := locale.Lookup(c.Locale); !ok {
		return fmt.Errorf("config: unknown locale %q", c.Locale)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("config: timezone: %w", err)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	var err error
	if c.ICS, err = homedir.Expand(c.ICS); err != nil {
		return fmt.Errorf("config: ics: %w", err)
	}
	if c.Log.File, err = homedir.Expand(c.Log.File); err != nil {
		return fmt.Errorf("config: log.file: %w", err)
	}
	return nil
}

// WeekStartDay parses WeekStart.
func (c *Config) WeekStartDay() (time.Weekday, error) {
	return timeutil.ParseWeekday(c.WeekStart)
}

// Location resolves Timezone; empty means time.Local.
func (c *Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Labels returns the configured locale.
func (c *Config) Labels() locale.Locale {
	l, _ := locale.Lookup(c.Locale)
	return l
}
