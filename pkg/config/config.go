// Package config supplies user defaults for link options. Two sources
// feed it, in increasing precedence: an XDG-located TOML file
// (lnk/config.toml) and the classic environment variables
// VERSION_CONTROL and SIMPLE_BACKUP_SUFFIX. Command-line flags always
// win over both.
package config

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/lnk/pkg/errors"
	"github.com/arthur-debert/lnk/pkg/logging"
	"github.com/arthur-debert/lnk/pkg/types"
)

const (
	// EnvVersionControl selects the backup method used when backups are
	// requested without an explicit method (-b).
	EnvVersionControl = "VERSION_CONTROL"
	// EnvBackupSuffix overrides the simple backup suffix.
	EnvBackupSuffix = "SIMPLE_BACKUP_SUFFIX"

	configRelPath = "lnk/config.toml"
)

// fileConfig is the on-disk TOML shape.
type fileConfig struct {
	Backup string `toml:"backup"`
	Suffix string `toml:"suffix"`
}

// Defaults are the resolved user defaults. Empty fields mean "not set";
// the built-in defaults then apply.
type Defaults struct {
	BackupControl string
	Suffix        string
}

// BackupMode returns the parsed backup control and whether one was set.
// The keyword is validated here, not in Load, so a stale VERSION_CONTROL
// only matters when -b actually consults it.
func (d Defaults) BackupMode() (types.BackupMode, bool, error) {
	if d.BackupControl == "" {
		return types.NoBackup, false, nil
	}
	mode, err := types.ParseBackupControl(d.BackupControl)
	if err != nil {
		return types.NoBackup, false, errors.Newf(errors.ErrInvalidBackupControl,
			"invalid argument '%s' for 'backup method'", d.BackupControl)
	}
	return mode, true, nil
}

// Load reads the config file (if present) and the environment.
// A missing file is not an error; an unreadable or invalid one is.
func Load() (Defaults, error) {
	log := logging.GetLogger("config")
	var d Defaults

	// xdg caches its base directories at init; re-read them so tests
	// (and long-lived shells that tweak XDG_CONFIG_HOME) see the
	// current environment.
	xdg.Reload()

	if path, err := xdg.SearchConfigFile(configRelPath); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return d, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file '%s'", path)
		}
		var fc fileConfig
		if err := toml.Unmarshal(data, &fc); err != nil {
			return d, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file '%s'", path)
		}
		d.BackupControl = fc.Backup
		d.Suffix = fc.Suffix
		log.Debug().Str("path", path).Str("backup", fc.Backup).Str("suffix", fc.Suffix).Msg("config file loaded")
	}

	if v := os.Getenv(EnvVersionControl); v != "" {
		d.BackupControl = v
	}
	if v := os.Getenv(EnvBackupSuffix); v != "" {
		d.Suffix = v
	}

	return d, nil
}
