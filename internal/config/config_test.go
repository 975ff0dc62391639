package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, rest, err := Load(Flags("advert"), []string{"ads.json"})
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, []string{"ads.json"}, rest)
}

func TestLoad_Flags(t *testing.T) {
	cfg, rest, err := Load(Flags("advert"), []string{
		"--color-code", "33",
		"--currency", "$",
		"--log-level", "debug",
		"--no-color",
		"--dump",
		"a.json", "b.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, 33, cfg.ColorCode)
	assert.Equal(t, "$", cfg.Currency)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Dump)
	assert.Equal(t, []string{"a.json", "b.yaml"}, rest)
}

func TestLoad_EnvAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advert.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color_code: 34\ncurrency: EUR\n"), 0o644))

	t.Setenv("ADVERT_CURRENCY", "USD")

	cfg, _, err := Load(Flags("advert"), []string{"--config", path})
	require.NoError(t, err)

	assert.Equal(t, 34, cfg.ColorCode)
	assert.Equal(t, "USD", cfg.Currency, "env overrides the config file")

	cfg, _, err = Load(Flags("advert"), []string{"--config", path, "--currency", "GBP"})
	require.NoError(t, err)
	assert.Equal(t, "GBP", cfg.Currency, "flags override env")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"color code too big", []string{"--color-code", "300"}, "colorcode must be at most 107"},
		{"bad log level", []string{"--log-level", "loud"}, "loglevel must be one of"},
		{"empty currency", []string{"--currency", ""}, "currency is required"},
		{"missing config file", []string{"--config", "/nonexistent/advert.yaml"}, "v.ReadInConfig"},
		{"unknown flag", []string{"--nope"}, "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(Flags("advert"), tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
