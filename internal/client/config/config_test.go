package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.ServerBaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "mailpilot.db", c.DatabasePath)
}

func TestParseJson_OverlaysOnlyProvidedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	data, err := json.Marshal(map[string]any{
		"server_base_url": "https://api.example.com",
		"request_timeout": "30s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"mailpilot", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://api.example.com", c.ServerBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	// untouched fields keep their defaults
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "mailpilot.db", c.DatabasePath)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("MAILPILOT_SERVER_URL", "https://env.example.com")
	t.Setenv("MAILPILOT_REQUEST_TIMEOUT", "7s")
	t.Setenv("MAILPILOT_DATABASE_PATH", "/tmp/env.db")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://env.example.com", c.ServerBaseURL)
	assert.Equal(t, 7*time.Second, c.RequestTimeout)
	assert.Equal(t, "/tmp/env.db", c.DatabasePath)
}

func TestParseEnv_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("MAILPILOT_REQUEST_TIMEOUT", "soon")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 15*time.Second, c.RequestTimeout)
}

func TestParseFlags_Overlays(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"mailpilot", "-a", "https://flag.example.com", "-t", "60", "-d", "flag.db"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "https://flag.example.com", c.ServerBaseURL)
	assert.Equal(t, 60*time.Second, c.RequestTimeout)
	assert.Equal(t, "flag.db", c.DatabasePath)
}
