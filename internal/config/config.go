// Package config resolves process configuration.
//
// The root directory is the only load-bearing setting: every path the
// server reads or writes derives from it. It is resolved once here and
// injected into each component at construction time — no package-level
// globals, so tests point each store at a throwaway root.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	// EnvRoot names the environment variable holding the root directory.
	EnvRoot = "MEALPLANPATH"
	// EnvLogLevel names the environment variable for the log level.
	EnvLogLevel = "MEALPLAN_LOG_LEVEL"
)

// Config holds the resolved settings for one server process.
type Config struct {
	// Root is the directory all meal plan, dish, and grocery files
	// live under.
	Root string
	// LogLevel is the stderr log verbosity (debug, info, warn, error).
	LogLevel string
}

// Load resolves configuration from the environment. The root defaults
// to the current working directory when MEALPLANPATH is unset, matching
// single-user local use.
func Load() (Config, error) {
	v := viper.New()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("getting working directory: %w", err)
	}
	v.SetDefault("root", cwd)
	v.SetDefault("log_level", "info")

	if err := v.BindEnv("root", EnvRoot); err != nil {
		return Config{}, fmt.Errorf("binding %s: %w", EnvRoot, err)
	}
	if err := v.BindEnv("log_level", EnvLogLevel); err != nil {
		return Config{}, fmt.Errorf("binding %s: %w", EnvLogLevel, err)
	}

	return Config{
		Root:     v.GetString("root"),
		LogLevel: v.GetString("log_level"),
	}, nil
}
