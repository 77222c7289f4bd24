// internal/config/load_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, dir, iface, body string) {
	t.Helper()
	path := filepath.Join(dir, iface+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), "wg0")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultInterval, cfg.Interval)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultRestartCommand, cfg.RestartCommand)
	assert.Empty(t, cfg.PreRestartCommand)
	assert.Empty(t, cfg.PostRestartCommand)
}

func TestLoad_PartialFileKeepsDefaultsForAbsentKeys(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "wg0", "interval: 10\npre_restart_command: logger stall\n")

	cfg, err := Load(dir, "wg0")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Interval)
	assert.Equal(t, "logger stall", cfg.PreRestartCommand)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultRestartCommand, cfg.RestartCommand)
}

func TestLoad_FullFile(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "wg0", `
interval: 5
timeout: 30
pre_restart_command: ip link show $WG_INTERFACE
restart_command: systemctl restart wg-quick@$WG_INTERFACE
post_restart_command: logger restarted $WG_INTERFACE
`)

	cfg, err := Load(dir, "wg0")
	require.NoError(t, err)

	assert.Equal(t, Config{
		Interval:           5,
		Timeout:            30,
		PreRestartCommand:  "ip link show $WG_INTERFACE",
		RestartCommand:     "systemctl restart wg-quick@$WG_INTERFACE",
		PostRestartCommand: "logger restarted $WG_INTERFACE",
	}, cfg)
}

func TestLoad_PerInterfaceFileResolution(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "wg0", "interval: 5\n")
	writeConf(t, dir, "wg1", "interval: 7\n")

	cfg0, err := Load(dir, "wg0")
	require.NoError(t, err)
	cfg1, err := Load(dir, "wg1")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg0.Interval)
	assert.Equal(t, 7, cfg1.Interval)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "wg0", "interval: [this is\nnot: valid: yaml\n")

	_, err := Load(dir, "wg0")
	assert.Error(t, err)
}
