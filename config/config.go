// Package config loads pipeforge configuration.
//
// Configuration is resolved in precedence order: defaults, then a
// pipeforge.toml found by walking up from the working directory, then
// PIPEFORGE_* environment variables. CLI flags override all of it at the
// command layer.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pipeforge/pipeforge/errors"
	"github.com/spf13/viper"
)

// ConfigFileName is the project-level configuration file searched for by
// walking up the directory tree.
const ConfigFileName = "pipeforge.toml"

// Config is the pipeforge configuration tree.
type Config struct {
	Publish PublishConfig `mapstructure:"publish"`
	Loader  LoaderConfig  `mapstructure:"loader"`
}

// PublishConfig controls the publish run.
type PublishConfig struct {
	// FailIfChanged turns any Created/Changed classification into a run
	// failure. Used by CI verification steps.
	FailIfChanged bool `mapstructure:"fail_if_changed"`

	// Root, when set, is the directory the run switches to before
	// publishing, so relative target paths resolve against it.
	Root string `mapstructure:"root"`
}

// LoaderConfig controls compiled-artifact loading.
type LoaderConfig struct {
	// Required lists sibling artifact file names that must be loadable
	// from the primary artifact's directory before the primary is opened.
	Required []string `mapstructure:"required"`
}

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the pipeforge configuration using Viper. The result is cached
// for the lifetime of the process.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path, bypassing the
// upward search. Used by tests and the --config flag.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	return &config, nil
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("PIPEFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		// Missing or unreadable project config is not an error: defaults
		// plus environment are a complete configuration.
		_ = v.ReadInConfig()
	}

	viperInstance = v
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("publish.fail_if_changed", false)
	v.SetDefault("publish.root", "")
	v.SetDefault("loader.required", []string{})
}

// findProjectConfig searches for pipeforge.toml by walking up the directory
// tree from the working directory. Returns the first hit, or "".
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
