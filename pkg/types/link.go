package types

import (
	"fmt"
)

// OverwriteMode controls what happens when the destination of a link
// already exists.
type OverwriteMode int

const (
	// NoClobber never touches an existing destination. The pair is
	// skipped and reported as a success.
	NoClobber OverwriteMode = iota
	// Interactive asks for confirmation before replacing the destination.
	Interactive
	// Force replaces the destination without asking.
	Force
)

func (m OverwriteMode) String() string {
	switch m {
	case NoClobber:
		return "no-clobber"
	case Interactive:
		return "interactive"
	case Force:
		return "force"
	default:
		return fmt.Sprintf("overwrite(%d)", int(m))
	}
}

// BackupMode controls whether and how a replaced destination is preserved.
type BackupMode int

const (
	// NoBackup discards the replaced destination.
	NoBackup BackupMode = iota
	// BackupSimple appends the suffix to the destination name.
	BackupSimple
	// BackupNumbered uses the first free ".~N~" slot.
	BackupNumbered
	// BackupExisting continues a numbered series if one was started,
	// otherwise behaves like BackupSimple.
	BackupExisting
)

func (m BackupMode) String() string {
	switch m {
	case NoBackup:
		return "none"
	case BackupSimple:
		return "simple"
	case BackupNumbered:
		return "numbered"
	case BackupExisting:
		return "existing"
	default:
		return fmt.Sprintf("backup(%d)", int(m))
	}
}

// ParseBackupControl maps a --backup / VERSION_CONTROL keyword to a
// BackupMode. The keyword set matches the GNU backup control vocabulary.
func ParseBackupControl(s string) (BackupMode, error) {
	switch s {
	case "simple", "never":
		return BackupSimple, nil
	case "numbered", "t":
		return BackupNumbered, nil
	case "existing", "nil":
		return BackupExisting, nil
	case "none", "off":
		return NoBackup, nil
	default:
		return NoBackup, fmt.Errorf("invalid argument %q for 'backup method'", s)
	}
}

// DefaultBackupSuffix is used by simple backups unless overridden by
// -S/--suffix or SIMPLE_BACKUP_SUFFIX.
const DefaultBackupSuffix = "~"

// LinkOptions is the parsed configuration for one run. It is built once
// from flags, config file and environment, and is read-only afterwards.
type LinkOptions struct {
	Overwrite   OverwriteMode
	Backup      BackupMode
	Suffix      string
	TargetDir   string // explicit destination directory (-t); empty if unset
	NoTargetDir bool   // -T: the second operand is always a literal name
	Symbolic    bool
	Verbose     bool
	DryRun      bool
}

// DefaultLinkOptions returns the built-in defaults: hard links, never
// overwrite, no backups, suffix "~".
func DefaultLinkOptions() LinkOptions {
	return LinkOptions{
		Overwrite: NoClobber,
		Backup:    NoBackup,
		Suffix:    DefaultBackupSuffix,
	}
}

// LinkPair is one (source, destination) unit of work. Pairs are produced
// by the resolver and consumed exactly once; nothing is shared between them.
type LinkPair struct {
	Source      string
	Destination string
}

// LinkStatus describes the outcome of one pair.
type LinkStatus string

const (
	// StatusCreated means the link was made.
	StatusCreated LinkStatus = "created"
	// StatusSkipped means an existing destination was left alone
	// (no-clobber, or a declined interactive prompt). Skips count as
	// successes.
	StatusSkipped LinkStatus = "skipped"
	// StatusFailed means the filesystem rejected some step of the
	// transaction.
	StatusFailed LinkStatus = "failed"
	// StatusPlanned is reported in dry-run mode instead of touching
	// the filesystem.
	StatusPlanned LinkStatus = "planned"
)

// LinkResult is the reported outcome of one pair.
type LinkResult struct {
	Source      string     `yaml:"source"`
	Destination string     `yaml:"destination"`
	Status      LinkStatus `yaml:"status"`
	Symbolic    bool       `yaml:"symbolic"`
	BackupPath  string     `yaml:"backup,omitempty"`
	Error       string     `yaml:"error,omitempty"`
}

// Failed reports whether this pair counts against the exit status.
func (r LinkResult) Failed() bool {
	return r.Status == StatusFailed
}
