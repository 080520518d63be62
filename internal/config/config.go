package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Data DataConfig
	UI   UIConfig
}

// DataConfig holds persistence settings.
type DataConfig struct {
	DBPath      string `mapstructure:"db_path"`
	RecentLimit int    `mapstructure:"recent_limit"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
}

// Load reads configuration from file and env. Env var overrides use prefix
// APPFRAME_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("data.db_path", filepath.Join(os.Getenv("HOME"), ".local", "share", "appframe", "session.db"))
	v.SetDefault("data.recent_limit", 10)
	v.SetDefault("ui.theme", "dark")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("APPFRAME_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "appframe"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("APPFRAME")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Data.RecentLimit < 1 {
		c.Data.RecentLimit = 10
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed.
func Save(cfg Config) error {
	path := os.Getenv("APPFRAME_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "appframe", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("data.db_path", cfg.Data.DBPath)
	v.Set("data.recent_limit", cfg.Data.RecentLimit)
	v.Set("ui.theme", cfg.UI.Theme)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
