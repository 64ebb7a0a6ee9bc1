// Package config loads packq configuration from defaults, an optional
// config file, and PACKQ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "packq"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// Output formats accepted by output.format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the resolved packq configuration.
type Config struct {
	UI     UIConfig
	Output OutputConfig
}

// UIConfig controls terminal presentation.
type UIConfig struct {
	Color   bool // styled output
	Verbose bool // diagnostic logging
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format string // FormatText or FormatJSON
}

// Default returns the built-in configuration, used when no file or
// environment overrides apply.
func Default() *Config {
	return &Config{
		UI:     UIConfig{Color: true},
		Output: OutputConfig{Format: FormatText},
	}
}

// ConfigDir returns the packq configuration directory:
// $XDG_CONFIG_HOME/packq, defaulting to ~/.config/packq.
func ConfigDir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName), nil
}

// Load resolves the configuration. Resolution order, lowest to highest
// precedence: built-in defaults, the config file, PACKQ_* environment
// variables. If path is empty the default config file location is used and
// a missing file is not an error; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("ui.color", true)
	v.SetDefault("ui.verbose", false)
	v.SetDefault("output.format", FormatText)

	// Environment: PACKQ_UI_COLOR, PACKQ_OUTPUT_FORMAT, ...
	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		dir, err := ConfigDir()
		if err == nil {
			v.SetConfigName(ConfigFileName)
			v.SetConfigType(ConfigFileExt)
			v.AddConfigPath(dir)
			if err := v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return nil, fmt.Errorf("read config: %w", err)
				}
			}
		}
	}

	cfg := &Config{
		UI: UIConfig{
			Color:   v.GetBool("ui.color"),
			Verbose: v.GetBool("ui.verbose"),
		},
		Output: OutputConfig{
			Format: v.GetString("output.format"),
		},
	}

	switch cfg.Output.Format {
	case FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("invalid output.format %q (want %q or %q)",
			cfg.Output.Format, FormatText, FormatJSON)
	}
	return cfg, nil
}
