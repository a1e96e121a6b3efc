package core

import (
	"path/filepath"

	"github.com/arthur-debert/lnk/pkg/errors"
	"github.com/arthur-debert/lnk/pkg/logging"
	"github.com/arthur-debert/lnk/pkg/types"
)

// Resolve reduces the positional operands to (source, destination) pairs.
//
// The four invocation forms are tried in priority order:
//
//  1. -t DIR was given: every operand is a source, DIR is the destination
//     directory.
//  2. a single operand: link it into the current directory.
//  3. more than two operands, or the last operand is an existing
//     directory (and -T was not given): link everything into the last
//     operand.
//  4. otherwise exactly two operands: source and literal link name.
func Resolve(fsys types.FS, paths []string, opts types.LinkOptions) ([]types.LinkPair, error) {
	log := logging.GetLogger("core.resolver")

	if len(paths) == 0 {
		return nil, errors.New(errors.ErrMissingOperand, "missing file operand")
	}

	if opts.TargetDir != "" {
		log.Debug().Str("targetDir", opts.TargetDir).Int("sources", len(paths)).Msg("resolved to target-directory form")
		return pairsInDir(fsys, paths, opts.TargetDir)
	}

	if !opts.NoTargetDir {
		if len(paths) == 1 {
			log.Debug().Str("source", paths[0]).Msg("resolved to current-directory form")
			return pairsInDir(fsys, paths, ".")
		}
		last := paths[len(paths)-1]
		if len(paths) > 2 || isDir(fsys, last) {
			log.Debug().Str("targetDir", last).Int("sources", len(paths)-1).Msg("resolved to trailing-directory form")
			return pairsInDir(fsys, paths[:len(paths)-1], last)
		}
	}

	// Literal two-operand form. With -T the operand count may be wrong.
	if len(paths) == 1 {
		return nil, errors.Newf(errors.ErrMissingDestination,
			"missing destination file operand after '%s'", paths[0])
	}
	if len(paths) > 2 {
		return nil, errors.Newf(errors.ErrExtraOperand, "extra operand '%s'", paths[2])
	}

	log.Debug().Str("source", paths[0]).Str("destination", paths[1]).Msg("resolved to literal form")
	return []types.LinkPair{{Source: paths[0], Destination: paths[1]}}, nil
}

// pairsInDir places one link per source under dir, named after the
// source's basename.
func pairsInDir(fsys types.FS, sources []string, dir string) ([]types.LinkPair, error) {
	if !isDir(fsys, dir) {
		return nil, errors.Newf(errors.ErrNotADirectory, "target '%s' is not a directory", dir)
	}

	pairs := make([]types.LinkPair, 0, len(sources))
	for _, src := range sources {
		pairs = append(pairs, types.LinkPair{
			Source:      src,
			Destination: filepath.Join(dir, destName(src)),
		})
	}
	return pairs, nil
}

// destName returns the final path component of src. Sources like "." or
// ".." have no extractable basename; the full source text is used, which
// collides with an existing entry and fails at link creation. That
// matches GNU ln, which reports EEXIST for these.
func destName(src string) string {
	base := filepath.Base(src)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return src
	}
	return base
}

// isDir follows symlinks, so a symlink to a directory counts.
func isDir(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}
