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
	"github.com/yacobolo/cssunify"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssunify.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
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

	// 2. Environment variables (CSSUNIFY_* prefix)
	if err := k.Load(env.Provider("CSSUNIFY_", ".", func(s string) string {
		// CSSUNIFY_DESTINATION -> destination
		// CSSUNIFY_TOOL -> tool
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSUNIFY_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildRunConfig constructs the library's Config struct from koanf state.
// Flag names and config file keys coincide, so each option reads from a
// single key; zero values defer to the library defaults.
func buildRunConfig() cssunify.Config {
	return cssunify.Config{
		OutputRoot:  getString("root", "."),
		Files:       k.Strings("files"),
		Exclude:     k.Strings("exclude"),
		Destination: k.String("destination"),
		Media:       k.Strings("media"),
		Timeout:     k.Int("timeout"),
		Tool:        k.String("tool"),
		Concurrency: k.Int("concurrency"),
		Verbose:     getBool("verbose", false),
	}
}

// getString returns the configured string or the default when unset/empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the configured bool or the default when the key is absent.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}
