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

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeConfigFile(t, `{
		"app": {"log_level": "error", "bcrypt_cost": 12, "version": "2.0.0"},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"shutdown_timeout": 1000000000,
			"allowed_origins": ["http://app.example"]
		},
		"storage": {"db": {"dsn": "mongodb://localhost:27017", "name": "auth_test"}}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://app.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.DSN)
	assert.Equal(t, "auth_test", cfg.Storage.DB.Name)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := writeConfigFile(t, `{"server": `)

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := writeConfigFile(t, `{"server": {"request_timeout": "forever"}}`)

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))

	var back Duration
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d, back)
}

func TestDuration_UnmarshalRejectsBool(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
