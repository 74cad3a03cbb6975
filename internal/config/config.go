// Package config resolves the generator settings from defaults, an optional
// config file, SITE_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. SITE_OUTPUT_DIR.
const EnvPrefix = "SITE"

// Config holds the resolved settings for the build, deploy and serve commands.
type Config struct {
	ContentFile     string        `mapstructure:"content_file"`
	TeamCSV         string        `mapstructure:"team_csv"`
	OutputDir       string        `mapstructure:"output_dir"`
	StaticDir       string        `mapstructure:"static_dir"`
	LogoPath        string        `mapstructure:"logo_path"`
	AnalyticsID     string        `mapstructure:"analytics_id"`
	Bucket          string        `mapstructure:"bucket"`
	ListenAddr      string        `mapstructure:"listen_addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

var defaults = map[string]any{
	"content_file":     "content/site.yaml",
	"team_csv":         "",
	"output_dir":       "public",
	"static_dir":       "static",
	"logo_path":        "",
	"analytics_id":     "",
	"bucket":           "",
	"listen_addr":      ":8080",
	"shutdown_timeout": 15 * time.Second,
}

// New returns a viper instance carrying the defaults and environment binding.
// Callers bind their flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configFile (or site.config.yaml in the working directory when
// empty) into v and decodes the result. A missing default config file is not
// an error; a missing explicit one is.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("site.config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.OutputDir == "" {
		return errors.New("output dir is required")
	}
	if c.ListenAddr == "" {
		return errors.New("listen address is required")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	return nil
}
