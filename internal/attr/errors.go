package attr

import "errors"

var (
	ErrTruncated           = errors.New("attr: stream ended before list terminator")
	ErrTypeMismatch        = errors.New("attr: value does not match expected kind")
	ErrUnexpectedAttribute = errors.New("attr: attribute does not match expectation")
	ErrMissingSeparator    = errors.New("attr: record has no field separator")
)
