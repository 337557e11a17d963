package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		" DEBUG ":  zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"disabled": zerolog.Disabled,
	}
	for in, want := range tests {
		got, ok := ParseLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "loud"} {
		_, ok := ParseLevel(in)
		assert.False(t, ok, in)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:     "debug",
		EnvLogTimestamp: "false",
		EnvLogNoColor:   "nope",
	}
	opts := DefaultOptions(ProfileRuntime, nil)
	applyEnv(&opts, func(k string) string { return env[k] })

	assert.Equal(t, zerolog.DebugLevel, opts.Level)
	assert.False(t, opts.Timestamp)
	assert.False(t, opts.NoColor)
}

func TestApplyEnv_Process(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	opts := DefaultOptions(ProfileRuntime, nil)
	ApplyEnv(&opts)
	assert.Equal(t, zerolog.ErrorLevel, opts.Level)
}

func TestConfigure(t *testing.T) {
	var buf bytes.Buffer
	logger := Configure(DefaultOptions(ProfileTest, &buf))

	logger.Debug().Int("runs", 2).Msg("edit applied")
	logger.Trace().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "edit applied")
	assert.Contains(t, out, "app=stylerun")
	assert.Contains(t, out, "runs=2")
	assert.NotContains(t, out, "hidden")
}

func TestConfigure_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions(ProfileRuntime, &buf)
	opts.NoColor = true
	logger := Configure(opts)

	logger.Debug().Msg("quiet")
	logger.Info().Msg("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stylerun.log")
	f, err := OpenFile(path)
	require.NoError(t, err)

	opts := DefaultOptions(ProfileTest, f)
	logger := Configure(opts)
	logger.Info().Msg("to file")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	_, err = OpenFile(filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.Error(t, err)
}
