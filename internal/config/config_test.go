package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	require.Zero(t, cfg.API.Timeout, "no timeout unless configured")
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "1/2/2006", cfg.UI.DateLayout)
	require.Equal(t, 40, cfg.UI.TruncateAt)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: http://api.internal:3000/api
  timeout: 5s
server:
  addr: ":9090"
ui:
  truncate_at: 12
`), 0o644))

	t.Setenv("STOREMAN_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "http://api.internal:3000/api", cfg.API.BaseURL)
	require.Equal(t, 5*time.Second, cfg.API.Timeout)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, 12, cfg.UI.TruncateAt)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(viper.New(), "does-not-exist.yaml")
	require.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg := Config{
		API:    APIConfig{BaseURL: "not a url"},
		Server: ServerConfig{Addr: ":8080"},
		UI:     UIConfig{DateLayout: "1/2/2006", TruncateAt: 10},
	}
	require.Error(t, cfg.Validate())

	cfg.API.BaseURL = DefaultBaseURL
	require.NoError(t, cfg.Validate())

	cfg.Log.Level = "verbose"
	require.Error(t, cfg.Validate())
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
