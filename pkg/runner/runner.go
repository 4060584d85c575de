package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/tagcheck/internal/logging"
)

// Runner validates many files using a Checker.
type Runner struct {
	Checker Checker
}

// New creates a Runner around checker.
func New(checker Checker) *Runner {
	return &Runner{Checker: checker}
}

// Run discovers files under opts.Paths and checks them with up to opts.Jobs
// workers (NumCPU when zero).
//
// Files are validated independently, so the worker count never changes the
// findings, and outcomes come back in path order. File-level failures are
// recorded on their outcome rather than returned. A cancelled context stops
// the run; the partial result is returned with the context error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	outcomes := make([]*FileOutcome, len(files))

	var group errgroup.Group
	group.SetLimit(jobs)
	for i, path := range files {
		if ctx.Err() != nil {
			break
		}
		group.Go(func() error {
			if ctx.Err() == nil {
				outcomes[i] = r.check(ctx, path)
			}
			return nil
		})
	}
	_ = group.Wait()

	result := NewResult()
	for _, outcome := range outcomes {
		if outcome != nil {
			result.Add(*outcome)
		}
	}
	result.Stats.FilesDiscovered = len(files)

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

func (r *Runner) check(ctx context.Context, path string) *FileOutcome {
	logger := logging.FromContext(ctx)

	fr, err := r.Checker.CheckFile(ctx, path)
	if err != nil {
		logger.Debug("file failed", logging.FieldPath, path, logging.FieldError, err)
		return &FileOutcome{Path: path, Error: err}
	}

	logger.Debug("file checked",
		logging.FieldPath, path,
		logging.FieldKind, fr.Kind,
		logging.FieldBytes, fr.Size,
		logging.FieldTags, fr.Tags,
	)
	return &FileOutcome{Path: path, Result: fr}
}
