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
	"github.com/yacobolo/clampgen"
	"github.com/yacobolo/clampgen/internal/clamp"
)

const defaultConfigFile = ".clampgen.yaml"

var (
	k = koanf.New(".")

	// configFile is the config path last loaded, used to locate inline table rows
	configFile = defaultConfigFile
)

// defaultSources is where table files are looked up when nothing is configured
var defaultSources = []string{"tokens/**/*.clamp.yaml"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	configFile = configPath

	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CLAMPGEN_* prefix)
	if err := k.Load(env.Provider("CLAMPGEN_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable onto a config key. The first underscore
// separates the section, the rest become hyphens:
//
//	CLAMPGEN_GENERATE_MIN_VIEWPORT -> generate.min-viewport
//	CLAMPGEN_CHECK_STRICT          -> check.strict
//	CLAMPGEN_VERBOSE               -> verbose
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "CLAMPGEN_"))
	key = strings.Replace(key, "_", ".", 1)
	return strings.ReplaceAll(key, "_", "-")
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() (clampgen.Config, error) {
	rows, err := inlineRows()
	if err != nil {
		return clampgen.Config{}, err
	}

	layout, err := clamp.ParseLayout(getStringWithFallback("layout", "generate.layout", string(clamp.LayoutCombined)))
	if err != nil {
		return clampgen.Config{}, err
	}

	config := clampgen.Config{
		Sources:        getStringsWithFallback("source", "generate.sources", defaultSources),
		Rows:           rows,
		OutputDir:      getStringWithFallback("output-dir", "generate.output-dir", "web/styles"),
		ThemeFile:      getStringWithFallback("theme-file", "generate.theme-file", clampgen.DefaultThemeFile),
		TokensFile:     getStringWithFallback("tokens-file", "generate.tokens-file", clampgen.DefaultTokensFile),
		Layout:         layout,
		MinViewport:    getFloat64WithFallback("min-viewport", "generate.min-viewport", clamp.DefaultMinViewport),
		MaxViewport:    getFloat64WithFallback("max-viewport", "generate.max-viewport", clamp.DefaultMaxViewport),
		RootFontPx:     getFloat64WithFallback("root-font", "generate.root-font", clamp.DefaultRootFontPx),
		StrictViewport: getBoolWithFallback("strict-viewport", "generate.strict-viewport", false),
		Fix:            getBoolWithFallback("fix", "generate.fix", false),
		Verify:         getBoolWithFallback("verify", "generate.verify", true),
		DryRun:         getBoolWithFallback("dry-run", "generate.dry-run", false),
		Verbose:        getBoolWithFallback("verbose", "verbose", false),
	}

	return config, nil
}

// buildCheckConfig constructs the library's CheckConfig struct from koanf state.
// Viewport and root font settings are shared with generate.
func buildCheckConfig() (clampgen.CheckConfig, error) {
	rows, err := inlineRows()
	if err != nil {
		return clampgen.CheckConfig{}, err
	}

	return clampgen.CheckConfig{
		Sources:     getStringsWithFallback("source", "generate.sources", defaultSources),
		Rows:        rows,
		ConfigFile:  configFile,
		MinViewport: getFloat64WithFallback("min-viewport", "generate.min-viewport", clamp.DefaultMinViewport),
		MaxViewport: getFloat64WithFallback("max-viewport", "generate.max-viewport", clamp.DefaultMaxViewport),
		RootFontPx:  getFloat64WithFallback("root-font", "generate.root-font", clamp.DefaultRootFontPx),
		Verbose:     getBoolWithFallback("verbose", "verbose", false),
		Strict:      getBoolWithFallback("strict", "check.strict", false),
	}, nil
}

// inlineRows reads the tables declared directly in the config file
func inlineRows() ([]clamp.RawRow, error) {
	rows, err := clampgen.TablesFromKoanf(k, configFile)
	if err != nil {
		return nil, fmt.Errorf("loading inline tables: %w", err)
	}
	return rows, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
