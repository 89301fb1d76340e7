package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/windcss/windc"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file >
// defaults. It must be called after cobra parses flags (in PreRunE or
// RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".windc.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (WINDC_* prefix)
	if err := k.Load(env.Provider("WINDC_", ".", func(s string) string {
		// WINDC_BUILD_SOURCE -> build.source
		// WINDC_LINT_STRICT -> lint.strict
		// WINDC_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "WINDC_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfigFromKoanf constructs the library's Config struct from koanf
// state.
func buildConfigFromKoanf() windc.Config {
	config := windc.Config{
		SourceDir: getStringWithFallback("source", "build.source", "web"),
		Output:    getStringWithFallback("output", "build.output", "dist/windc.css"),
		Workers:   getIntWithFallback("workers", "build.workers", 0),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
	}

	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("build.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = defaultIncludes()
	}

	return config
}

// lintConfigFromKoanf constructs the library's LintConfig struct from koanf
// state.
func lintConfigFromKoanf() windc.LintConfig {
	var includes []string
	if paths := k.Strings("include"); len(paths) > 0 {
		includes = paths
	} else if paths := k.Strings("lint.include"); len(paths) > 0 {
		includes = paths
	} else if paths := k.Strings("build.include"); len(paths) > 0 {
		includes = paths
	} else {
		includes = defaultIncludes()
	}

	return windc.LintConfig{
		SourceDir: getStringWithFallback("source", "build.source", "web"),
		Includes:  includes,
		Strict:    getBoolWithFallback("strict", "lint.strict", false),
		MaxIssues: getIntWithFallback("max-issues", "lint.max-issues", 0),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
	}
}

func defaultIncludes() []string {
	return []string{
		"**/*.html",
		"**/*.templ",
		"**/*.vue",
		"**/*.svelte",
		"**/*.jsx",
		"**/*.tsx",
	}
}

// getStringWithFallback checks the flag key first, then the config file
// key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key,
// then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key,
// then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
