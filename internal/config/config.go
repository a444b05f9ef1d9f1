package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all server configuration.
type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Backend struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"backend"`

	Session struct {
		Secret string
		TTL    time.Duration `mapstructure:"ttl"`
	} `mapstructure:"session"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

// Load reads configuration from the given file, with STOCKDESK_* environment
// variables taking precedence. An empty path loads from environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("STOCKDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "prod")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("backend.timeout", 10*time.Second)
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("metrics.enabled", true)

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("reading config: %w", err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("parsing config: %w", err)
	}

	if c.Backend.BaseURL == "" {
		return c, fmt.Errorf("backend.base_url is required")
	}
	return c, nil
}
