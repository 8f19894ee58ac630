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
	Window WindowConfig
	Editor EditorConfig
	UI     UIConfig
	Log    LogConfig
}

// WindowConfig holds the OS window settings.
type WindowConfig struct {
	Width      int
	Height     int
	Title      string
	TargetFPS  int `mapstructure:"target_fps"`
	Fullscreen bool
}

// EditorConfig holds editor host settings.
type EditorConfig struct {
	AlwaysActive  bool `mapstructure:"always_active"`
	StartActive   bool `mapstructure:"start_active"`
	DefaultLayout bool `mapstructure:"default_layout"`
}

// UIConfig holds font paths for the editor theme. Empty means the raylib font.
type UIConfig struct {
	Font     string
	BoldFont string `mapstructure:"bold_font"`
}

type LogConfig struct {
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix DOCKEDITOR_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("window.width", 1600)
	v.SetDefault("window.height", 900)
	v.SetDefault("window.title", "dockeditor")
	v.SetDefault("window.target_fps", 60)
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("editor.always_active", false)
	v.SetDefault("editor.start_active", true)
	v.SetDefault("editor.default_layout", true)
	v.SetDefault("ui.font", "")
	v.SetDefault("ui.bold_font", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DOCKEDITOR_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "dockeditor"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DOCKEDITOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; a broken one is not.
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return Config{}, fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return c, nil
}
