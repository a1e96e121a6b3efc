package core

import (
	stderrors "errors"

	"github.com/arthur-debert/lnk/pkg/logging"
	"github.com/arthur-debert/lnk/pkg/types"
)

// ErrPartialFailure is returned by Run when at least one pair failed.
// The individual failures have already been reported pair by pair, so
// callers normally translate this into a non-zero exit without printing
// it again.
var ErrPartialFailure = stderrors.New("some links could not be created")

// Request carries everything one Run needs. Confirm is only consulted in
// interactive mode; Report, when set, is called once per pair as soon as
// its outcome is known.
type Request struct {
	FS      types.FS
	Paths   []string
	Options types.LinkOptions
	Confirm ConfirmFunc
	Report  func(types.LinkResult)
}

// Run resolves the invocation and processes every pair sequentially.
// One pair's failure never aborts the remaining pairs; the aggregate
// error only says whether everything succeeded. Resolution errors are
// returned as-is since no filesystem action has happened yet.
func Run(req Request) ([]types.LinkResult, error) {
	log := logging.GetLogger("core.run")

	pairs, err := Resolve(req.FS, req.Paths, req.Options)
	if err != nil {
		return nil, err
	}

	results := make([]types.LinkResult, 0, len(pairs))
	allSuccessful := true
	for _, pair := range pairs {
		var res types.LinkResult
		if req.Options.DryRun {
			res = types.LinkResult{
				Source:      pair.Source,
				Destination: pair.Destination,
				Symbolic:    req.Options.Symbolic,
				Status:      types.StatusPlanned,
			}
		} else {
			res, _ = Transact(req.FS, pair, req.Options, req.Confirm)
		}
		if res.Failed() {
			allSuccessful = false
		}
		if req.Report != nil {
			req.Report(res)
		}
		results = append(results, res)
	}

	log.Debug().Int("pairs", len(pairs)).Bool("allSuccessful", allSuccessful).Msg("run finished")

	if !allSuccessful {
		return results, ErrPartialFailure
	}
	return results, nil
}
