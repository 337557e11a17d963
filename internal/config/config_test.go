package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/stylerun/run"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storyedit.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, run.Style{FontFamily: "Bebas Neue", Color: "#FF3B30"}, cfg.DefaultStyle())
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
placeholder = "Write something"
fonts = [" Mono ", "Serif", "Mono", ""]
palette = ["#000000", "#ffffff"]
default_color = "#ffffff"

[submit]
base_url = "http://localhost:8788"
timeout = "2s"

[log]
level = "debug"
file = "/tmp/storyedit.log"
no_color = true
`))
	require.NoError(t, err)

	assert.Equal(t, "Write something", cfg.Placeholder)
	assert.Equal(t, []string{"Mono", "Serif"}, cfg.Fonts)
	assert.Equal(t, "Mono", cfg.DefaultFont)
	assert.Equal(t, "#ffffff", cfg.DefaultColor)
	assert.Equal(t, "http://localhost:8788", cfg.Submit.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Submit.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/storyedit.log", cfg.Log.File)
	assert.True(t, cfg.Log.NoColor)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "syntax", body: "fonts = [", want: "load config"},
		{name: "unknown key", body: `colour = "red"`, want: "unknown key"},
		{name: "bad timeout", body: "[submit]\ntimeout = \"soon\"", want: "submit.timeout"},
		{name: "bad color", body: `palette = ["red"]`, want: "not a hex color"},
		{name: "empty fonts", body: `fonts = []`, want: "at least one font"},
		{name: "default font missing", body: `default_font = "Comic"`, want: "default_font"},
		{name: "bad level", body: "[log]\nlevel = \"loud\"", want: "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
