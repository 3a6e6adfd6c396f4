package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmuck/wirekit/internal/testutil/testlog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inspectd.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadInspectorConfigAppliesDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, "")

	cfg, err := LoadInspectorConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultName, cfg.Name)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.MaxBodyBytes)
	assert.Empty(t, cfg.AuthToken)
}

func TestLoadInspectorConfigReadsFields(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
name = "inspect-lab"
addr = ":8088"
advertise_host = "inspect.example.com"
advertise_port = 8088
cors_origins = ["https://lab.example.com"]
auth_token = "hunter2"
max_body_bytes = 1024
data_dir = "/var/lib/wirekit"
`)

	cfg, err := LoadInspectorConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "inspect-lab", cfg.Name)
	assert.Equal(t, ":8088", cfg.Addr)
	assert.Equal(t, []string{"https://lab.example.com"}, cfg.CorsOrigins)
	assert.Equal(t, "hunter2", cfg.AuthToken)
	assert.Equal(t, int64(1024), cfg.MaxBodyBytes)
	assert.Equal(t, "/var/lib/wirekit", cfg.DataDir)
	assert.Equal(t, "inspect.example.com:8088", cfg.Endpoint())
}

func TestLoadInspectorConfigMissingFile(t *testing.T) {
	testlog.Start(t)
	_, err := LoadInspectorConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestValidateInspectorConfigRejectsBadValues(t *testing.T) {
	testlog.Start(t)
	base := DefaultInspectorConfig()

	bad := base
	bad.Name = "  "
	assert.Error(t, ValidateInspectorConfig(bad))

	bad = base
	bad.MaxBodyBytes = -1
	assert.Error(t, ValidateInspectorConfig(bad))

	bad = base
	bad.AdvertiseHost = "-bad-.example"
	assert.Error(t, ValidateInspectorConfig(bad))

	bad = base
	bad.AdvertiseHost = "inspect.example.com"
	bad.AdvertisePort = 70000
	assert.Error(t, ValidateInspectorConfig(bad))

	bad = base
	bad.AdvertisePort = 8088
	assert.Error(t, ValidateInspectorConfig(bad), "port without host")
}

func TestEndpointFormatsDefaults(t *testing.T) {
	testlog.Start(t)
	cfg := DefaultInspectorConfig()
	assert.Empty(t, cfg.Endpoint())

	cfg.AdvertiseHost = "inspect.example.com"
	assert.Equal(t, "inspect.example.com", cfg.Endpoint(), "port 80 is implied and dropped")

	cfg.AdvertisePort = 9400
	assert.Equal(t, "inspect.example.com:9400", cfg.Endpoint())
}

func TestWriteTemplateLoadsBack(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteTemplate(path, "inspector", false))
	cfg, err := LoadInspectorConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultName, cfg.Name)
	assert.Equal(t, "inspect.local:9400", cfg.Endpoint())

	assert.Error(t, WriteTemplate(path, "inspector", false), "refuses to overwrite")
	assert.NoError(t, WriteTemplate(path, "inspector", true))
}

func TestTemplateUnknownKind(t *testing.T) {
	testlog.Start(t)
	_, err := Template("collector")
	require.Error(t, err)
}
