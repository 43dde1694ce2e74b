package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log      LogConfig
	Activity ActivityConfig
	UI       UIConfig
}

// LogConfig holds logger settings. An empty File discards log output.
type LogConfig struct {
	Level string
	File  string
}

// ActivityConfig holds activity log settings.
type ActivityConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title string
}

// DefaultPath is the config file used when neither an explicit path nor
// COREHUB_CONFIG is set.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "corehub", "config.toml")
}

// Load reads configuration from path (or COREHUB_CONFIG, or DefaultPath) and
// the environment. Env var overrides use prefix COREHUB_. A missing file is
// not an error unless it was named explicitly.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("activity.path", ":memory:")
	v.SetDefault("ui.title", "CoreHub App")

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("COREHUB_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("COREHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("stat config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
