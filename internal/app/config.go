package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Defaults holds the values flags fall back to when they are not given.
type Defaults struct {
	Format    string   `mapstructure:"format"`
	Omit      []string `mapstructure:"omit"`
	Roots     bool     `mapstructure:"roots"`
	Timestamp bool     `mapstructure:"timestamp"`
	Preview   bool     `mapstructure:"preview"`
	NoColor   bool     `mapstructure:"no_color"`
}

// LoadDefaults reads defaults from the config file and the environment.
// Env var overrides use prefix KINDOF_. A missing config file is not an
// error unless KINDOF_CONFIG names it explicitly.
func LoadDefaults() (Defaults, error) {
	v := viper.New()

	// default values
	v.SetDefault("format", "")
	v.SetDefault("omit", []string{})
	v.SetDefault("roots", false)
	v.SetDefault("timestamp", false)
	v.SetDefault("preview", false)
	v.SetDefault("no_color", false)

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("KINDOF_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KINDOF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Defaults{}, fmt.Errorf("read config: %w", err)
		}
	}

	var d Defaults
	if err := v.Unmarshal(&d); err != nil {
		return Defaults{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return d, nil
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "kindof")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "kindof")
}
