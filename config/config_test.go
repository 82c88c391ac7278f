package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	assert.NoError(t, err)

	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "127.0.0.1:8179", c.Web.Addr)

	opening, err := c.Opening()
	assert.NoError(t, err)
	assert.Equal(t, "-35.00", opening.StringFixed(2))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
data_dir: /var/lib/poultry
opening_balance: "-243.30"
log_level: debug
web:
  addr: 127.0.0.1:9000
`
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	c, err := Load(path)
	assert.NoError(t, err)

	assert.Equal(t, "/var/lib/poultry", c.DataDir)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "127.0.0.1:9000", c.Web.Addr)

	opening, err := c.Opening()
	assert.NoError(t, err)
	assert.Equal(t, "-243.30", opening.StringFixed(2))
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidOpeningBalance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(`opening_balance: "lots"`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LEDGER_DATA_DIR", "/tmp/elsewhere")

	c, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere", c.DataDir)
}
