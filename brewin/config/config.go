package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	EnvVar      = "BREWIN_CONFIG"
	DefaultFile = "brewin.yaml"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Config struct {
	// Logs every scope change, declaration and call
	Trace    bool   `yaml:"trace"`
	LogLevel string `yaml:"log_level"`
	// 0 disables the limit
	MaxCallDepth uint      `yaml:"max_call_depth"`
	Color        ColorMode `yaml:"color"`
	// Terminates the `inputi` prompt with a newline instead of reading on the same line
	InputPromptNewline bool `yaml:"input_prompt_newline"`
}

func Defaults() *Config {
	return &Config{
		Trace:              false,
		LogLevel:           "warn",
		MaxCallDepth:       10000,
		Color:              ColorAuto,
		InputPromptNewline: false,
	}
}

// Reads the configuration from `configPath`.
// Without an explicit path, the file named by BREWIN_CONFIG or ./brewin.yaml is used.
// If none of these exist, the defaults are returned.
func Load(configPath string, getenv func(string) string) (*Config, error) {
	path, found, err := resolveConfigPath(configPath, getenv)
	if err != nil {
		return nil, err
	}
	if !found {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func resolveConfigPath(explicit string, getenv func(string) string) (string, bool, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", false, fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, true, nil
	}

	if envPath := getenv(EnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", false, fmt.Errorf("%s file not found: %s", EnvVar, envPath)
		}
		return envPath, true, nil
	}

	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile, true, nil
	}

	return "", false, nil
}

// Checks the configuration after CLI overrides have been applied.
func Validate(cfg *Config) error {
	var errs []string

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("invalid log_level: %q", cfg.LogLevel))
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Sprintf("invalid color: %q (must be auto, always or never)", cfg.Color))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// The effective log level, `trace` takes precedence over `log_level`.
func (self Config) Level() zerolog.Level {
	if self.Trace {
		return zerolog.TraceLevel
	}

	level, err := zerolog.ParseLevel(self.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return level
}
