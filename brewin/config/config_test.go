package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "brewin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func noEnv(string) string { return "" }

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
trace: true
max_call_depth: 64
color: never
input_prompt_newline: true
`)

	cfg, err := Load(path, noEnv)
	require.NoError(t, err)

	assert.True(t, cfg.Trace)
	assert.Equal(t, uint(64), cfg.MaxCallDepth)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.True(t, cfg.InputPromptNewline)
	// untouched keys keep their default
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, zerolog.TraceLevel, cfg.Level())
}

func TestLoadFromEnvironment(t *testing.T) {
	path := writeConfig(t, "log_level: debug\n")

	getenv := func(key string) string {
		if key == EnvVar {
			return path
		}
		return ""
	}

	cfg, err := Load("", getenv)
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), noEnv)
	assert.ErrorContains(t, err, "config file not found")

	getenv := func(string) string { return "/does/not/exist.yaml" }
	_, err = Load("", getenv)
	assert.ErrorContains(t, err, EnvVar)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{name: "malformed yaml", content: "trace: [", message: "failed to parse config"},
		{name: "wrong type", content: "max_call_depth: lots", message: "failed to parse config"},
		{name: "bad level", content: "log_level: loud", message: "invalid log_level"},
		{name: "bad color", content: "color: sometimes", message: "invalid color"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, test.content), noEnv)
			assert.ErrorContains(t, err, test.message)
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
	assert.Equal(t, ColorAuto, cfg.Color)

	cfg.LogLevel = ""
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}
