package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/buglloc/pipescape/internal/config"
	"github.com/buglloc/pipescape/internal/escaper"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	fpath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(fpath, []byte(body), 0o600))
	return fpath
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, config.NewConfig(), cfg)

	runtime, err := cfg.NewRuntime()
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, runtime.LogLevel())
	require.Equal(t, escaper.StyleCompat, runtime.NewEscaper().Style())
	require.Equal(t, config.DefaultSample, runtime.DemoSample())
}

func TestLoadFile(t *testing.T) {
	fpath := writeConfig(t, `
log:
  level: debug
escaper:
  style: short
demo:
  sample: "a|b"
`)

	cfg, err := config.LoadConfig(fpath)
	require.NoError(t, err)

	runtime, err := cfg.NewRuntime()
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, runtime.LogLevel())
	require.Equal(t, escaper.StyleShort, runtime.NewEscaper().Style())
	require.Equal(t, "a|b", runtime.DemoSample())
	require.Equal(t, `a\tb|c`, runtime.NewEncoder().Join([]string{"a\tb", "c"}))
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("PE_ESCAPER_STYLE", "short")
	t.Setenv("PE_LOG_LEVEL", "warn")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, escaper.StyleShort, cfg.Escaper.Style)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFileOverridesEnv(t *testing.T) {
	t.Setenv("PE_ESCAPER_STYLE", "short")
	fpath := writeConfig(t, `
escaper:
  style: compat
`)

	cfg, err := config.LoadConfig(fpath)
	require.NoError(t, err)
	require.Equal(t, escaper.StyleCompat, cfg.Escaper.Style)
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "style",
			body: "escaper:\n  style: json\n",
		},
		{
			name: "yaml",
			body: "escaper: [",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tc.body))
			require.Error(t, err)
		})
	}

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Log.Level = "loud"
	cfg.Escaper.Style = "json"

	_, err := cfg.NewRuntime()
	require.Error(t, err)
	require.ErrorContains(t, err, "log:")
	require.ErrorContains(t, err, "escaper:")
}

func TestRuntimeStyleCase(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Escaper.Style = "SHORT"

	runtime, err := cfg.NewRuntime()
	require.NoError(t, err)
	require.Equal(t, escaper.StyleShort, runtime.NewEscaper().Style())
	require.Equal(t, `a\tb`, runtime.NewEscaper().Escape("a\tb"))
}

func TestEmptyDemoSample(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Demo.Sample = ""

	runtime, err := cfg.NewRuntime()
	require.NoError(t, err)
	require.Equal(t, config.DefaultSample, runtime.DemoSample())
	require.Equal(t, "a|b", runtime.NewEncoder().Join([]string{"a", "b"}))
}
