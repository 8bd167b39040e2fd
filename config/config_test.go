package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moricef/ARM-SARSAT-SGB/t018"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "beacon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadEPIRBConfig(t *testing.T) {
	path := writeTempConfig(t, `
beacon_type: EPIRB
country_code: 227
serial_number: 13398
test_mode: true
position_set: true
latitude: 43.2
longitude: 5.4
sps: 16
`)

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, t018.BeaconEPIRB, loaded.Beacon.BeaconType)
	assert.Equal(t, uint16(227), loaded.Beacon.CountryCode)
	assert.Equal(t, t018.ModeTest, loaded.Beacon.TestMode)
	assert.True(t, loaded.Beacon.Position.Valid)
	assert.Equal(t, 16, loaded.SPS)
}

func TestLoadDefaultsSPSWhenUnset(t *testing.T) {
	path := writeTempConfig(t, "beacon_type: PLB\n")
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, loaded.SPS)
}

func TestLoadClampsLowSPS(t *testing.T) {
	path := writeTempConfig(t, "beacon_type: PLB\nsps: 2\n")
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, loaded.SPS)
}

func TestLoadRejectsUnknownBeaconType(t *testing.T) {
	path := writeTempConfig(t, "beacon_type: BOGUS\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsUnknownRotatingField(t *testing.T) {
	path := writeTempConfig(t, "beacon_type: PLB\nrotating_field: BOGUS\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
