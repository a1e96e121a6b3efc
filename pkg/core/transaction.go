package core

import (
	"github.com/arthur-debert/lnk/pkg/errors"
	"github.com/arthur-debert/lnk/pkg/logging"
	"github.com/arthur-debert/lnk/pkg/types"
)

// ConfirmFunc asks whether an existing destination may be replaced.
// It blocks until an answer is available.
type ConfirmFunc func(destination string) bool

// Transact performs one link creation. The sequence is: link-aware
// existence check, overwrite decision, backup-or-remove of the old
// destination, link creation. A skipped pair (no-clobber, or a declined
// prompt) is a success, not an error.
//
// The returned error, when non-nil, is the typed cause; the result
// carries the same information in reportable form.
func Transact(fsys types.FS, pair types.LinkPair, opts types.LinkOptions, confirm ConfirmFunc) (types.LinkResult, error) {
	log := logging.GetLogger("core.transaction")

	res := types.LinkResult{
		Source:      pair.Source,
		Destination: pair.Destination,
		Symbolic:    opts.Symbolic,
	}

	if info, lerr := fsys.Lstat(pair.Destination); lerr == nil {
		switch opts.Overwrite {
		case types.NoClobber:
			log.Debug().Str("destination", pair.Destination).Msg("destination exists, not clobbering")
			res.Status = types.StatusSkipped
			return res, nil
		case types.Interactive:
			if confirm == nil || !confirm(pair.Destination) {
				log.Debug().Str("destination", pair.Destination).Msg("overwrite declined")
				res.Status = types.StatusSkipped
				return res, nil
			}
		case types.Force:
		}

		// Directories are never replaced, not even under force; only
		// file entries (including symlinks to directories) can be
		// removed or renamed aside.
		if info.IsDir() {
			return fail(&res, errors.Newf(errors.ErrRemoveFailed,
				"cannot link '%s' to '%s': cannot overwrite directory",
				pair.Destination, pair.Source))
		}

		// The overwrite is going ahead. With a backup mode active the
		// old destination is renamed aside instead of removed, so it
		// survives the replacement.
		if bp := backupPath(fsys, pair.Destination, opts); bp != "" {
			if err := fsys.Rename(pair.Destination, bp); err != nil {
				return fail(&res, errors.Wrapf(err, errors.ErrBackupFailed,
					"cannot link '%s' to '%s'", pair.Destination, pair.Source).
					WithDetail("backup", bp))
			}
			res.BackupPath = bp
		} else {
			if err := fsys.Remove(pair.Destination); err != nil {
				return fail(&res, errors.Wrapf(err, errors.ErrRemoveFailed,
					"cannot link '%s' to '%s'", pair.Destination, pair.Source))
			}
		}
	}

	// A symbolic link stores the source text verbatim and may dangle;
	// a hard link needs the source to exist.
	var err error
	if opts.Symbolic {
		err = fsys.Symlink(pair.Source, pair.Destination)
	} else {
		err = fsys.Link(pair.Source, pair.Destination)
	}
	if err != nil {
		return fail(&res, errors.Wrapf(err, errors.ErrLinkFailed,
			"cannot link '%s' to '%s'", pair.Destination, pair.Source))
	}

	log.Debug().
		Str("source", pair.Source).
		Str("destination", pair.Destination).
		Bool("symbolic", opts.Symbolic).
		Str("backup", res.BackupPath).
		Msg("link created")

	res.Status = types.StatusCreated
	return res, nil
}

func fail(res *types.LinkResult, err *errors.LnkError) (types.LinkResult, error) {
	res.Status = types.StatusFailed
	res.Error = err.Error()
	return *res, err
}
