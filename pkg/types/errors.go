package types

import "errors"

// Standard errors. Layers wrap these with fmt.Errorf("...: %w", ...) and
// callers classify with errors.Is. A failure never changes kind on the way
// up: a storage fault stays ErrDatabase and is never reported as ErrNotFound.
var (
	// ErrNotFound reports a lookup miss: no entry with the requested id,
	// or a most-recent lookup against an empty history.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput reports malformed caller input, such as an
	// unrecognized content type string or an empty search query.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDatabase reports a storage fault: disk error, corruption,
	// lock-wait expiry, or an unrecognized on-disk content type.
	ErrDatabase = errors.New("database error")

	// ErrClipboard reports a platform clipboard failure.
	ErrClipboard = errors.New("clipboard error")

	// ErrEmptyClipboard reports that the platform clipboard held an
	// empty string when a store was requested.
	ErrEmptyClipboard = errors.New("clipboard is empty")
)
