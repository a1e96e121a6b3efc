package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/lnk/pkg/config"
	"github.com/arthur-debert/lnk/pkg/errors"
	"github.com/arthur-debert/lnk/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Each test points XDG_CONFIG_HOME at a temp dir so no real user config
// leaks in, and clears the environment variables it does not exercise.

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv(config.EnvVersionControl, "")
	t.Setenv(config.EnvBackupSuffix, "")
	return tmp
}

func writeConfig(t *testing.T, configHome, content string) {
	t.Helper()
	dir := filepath.Join(configHome, "lnk")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))
}

func TestLoad_NoConfigAnywhere(t *testing.T) {
	isolate(t)

	d, err := config.Load()
	require.NoError(t, err)
	assert.Empty(t, d.BackupControl)
	assert.Empty(t, d.Suffix)

	_, set, merr := d.BackupMode()
	require.NoError(t, merr)
	assert.False(t, set)
}

func TestLoad_FromFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "backup = \"numbered\"\nsuffix = \".orig\"\n")

	d, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "numbered", d.BackupControl)
	assert.Equal(t, ".orig", d.Suffix)

	mode, set, merr := d.BackupMode()
	require.NoError(t, merr)
	assert.True(t, set)
	assert.Equal(t, types.BackupNumbered, mode)
}

func TestLoad_EnvironmentBeatsFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "backup = \"numbered\"\nsuffix = \".orig\"\n")
	t.Setenv(config.EnvVersionControl, "simple")
	t.Setenv(config.EnvBackupSuffix, ".bak")

	d, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "simple", d.BackupControl)
	assert.Equal(t, ".bak", d.Suffix)
}

func TestLoad_InvalidBackupKeyword(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvVersionControl, "forever")

	// A junk keyword must not break invocations that never consult it;
	// the error surfaces only when the backup mode is asked for.
	d, err := config.Load()
	require.NoError(t, err)

	_, _, merr := d.BackupMode()
	require.Error(t, merr)
	assert.True(t, errors.IsErrorCode(merr, errors.ErrInvalidBackupControl))
}

func TestLoad_InvalidTOML(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "backup = [broken\n")

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
