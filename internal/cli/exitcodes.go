package cli

import (
	"errors"

	"github.com/yaklabco/tagcheck/internal/configloader"
	"github.com/yaklabco/tagcheck/pkg/fsutil"
	"github.com/yaklabco/tagcheck/pkg/source"
)

// Exit codes for tagcheck.
const (
	// ExitSuccess indicates no nesting defects were found.
	ExitSuccess = 0

	// ExitIssues indicates at least one diagnostic was reported.
	ExitIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 2

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates a file could not be read or decoded.
	ExitIOError = 74
)

var (
	// ErrIssuesFound is returned when diagnostics were reported.
	ErrIssuesFound = errors.New("tag nesting issues found")

	// ErrUsage is returned for invalid command-line usage.
	ErrUsage = errors.New("invalid usage")
)

// ExitCodeForError maps an error returned by a command to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitIssues
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, source.ErrDecode),
		errors.Is(err, source.ErrUnknownEncoding):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
