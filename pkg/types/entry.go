package types

import "fmt"

// ContentType classifies a clip entry's content. It determines display
// masking and how the entry is represented in the search index.
type ContentType string

// Recognized content types. The on-disk column stores the same strings.
const (
	ContentTypeText     ContentType = "text"
	ContentTypePassword ContentType = "password"
)

// ParseContentType maps the literal strings "text" and "password" to their
// ContentType. Anything else returns ErrInvalidInput; there is no silent
// fallback, since a mistyped flag must not store a password as plain text.
func ParseContentType(s string) (ContentType, error) {
	switch s {
	case string(ContentTypeText):
		return ContentTypeText, nil
	case string(ContentTypePassword):
		return ContentTypePassword, nil
	default:
		return "", fmt.Errorf("%w: unknown content type %q (expected \"text\" or \"password\")", ErrInvalidInput, s)
	}
}

// String returns the canonical lowercase form. ParseContentType(ct.String())
// is the identity for both recognized types.
func (ct ContentType) String() string {
	return string(ct)
}

// ClipEntry is one captured clipboard snapshot.
//
// ID is assigned by storage on insert and immutable thereafter; ordering by
// ID descending is the history's newest-first order. Content is never the
// empty string. Label is the only field that may change after creation.
type ClipEntry struct {
	ID          int64
	Content     string
	ContentType ContentType
	ByteSize    int64  // UTF-8 byte length of Content at capture time
	CreatedAt   string // RFC 3339 UTC, assigned at insert
	Label       *string
}

// LabelOrEmpty returns the label, or "" when none is set.
func (e *ClipEntry) LabelOrEmpty() string {
	if e.Label == nil {
		return ""
	}
	return *e.Label
}
