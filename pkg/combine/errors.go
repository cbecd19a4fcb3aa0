package combine

import "errors"

// Error classes returned by the combiner. Callers match them with errors.Is;
// the wrapped error carries the path and the underlying cause.
var (
	ErrUsage             = errors.New("invalid usage")
	ErrNotFound          = errors.New("not found")
	ErrAccess            = errors.New("access denied")
	ErrWrite             = errors.New("write failed")
	ErrDecode            = errors.New("invalid text encoding")
	ErrOpenerUnavailable = errors.New("no default file opener available")
)
