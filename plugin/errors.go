package plugin

import (
	"github.com/cockroachdb/errors"
)

// Failure kinds carried in the envelope's code field. Every failure is
// terminal: a stage marks its error with the matching sentinel and the
// pipeline boundary classifies it exactly once. Anything unmarked reports
// as "error".
var (
	// ErrInput marks empty or unparsable standard-input payloads.
	ErrInput = errors.New("input")
	// ErrParams marks missing or malformed request parameters.
	ErrParams = errors.New("params")
	// ErrEnv marks a missing API key when one is required.
	ErrEnv = errors.New("env")
	// ErrJSON marks a demanded-but-absent JSON response.
	ErrJSON = errors.New("json")
)

// kindCatchAll is the code for failures no stage anticipated, including
// network errors and timeout cancellation.
const kindCatchAll = "error"

// fail marks err as belonging to kind.
func fail(kind error, err error) error {
	return errors.Mark(err, kind)
}

// failf creates a new error of the given kind.
func failf(kind error, format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), kind)
}

// kindOf maps a pipeline error to its envelope code string.
func kindOf(err error) string {
	switch {
	case errors.Is(err, ErrInput):
		return "input"
	case errors.Is(err, ErrParams):
		return "params"
	case errors.Is(err, ErrEnv):
		return "env"
	case errors.Is(err, ErrJSON):
		return "json"
	default:
		return kindCatchAll
	}
}
