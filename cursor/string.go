package cursor

import (
	"fmt"
	"strings"
)

// KindString tags the raw form of string cursors.
const KindString = "string"

// StringCursor wraps an opaque caller-supplied key, such as a primary key
// or a NoSQL continuation token. The value is carried verbatim and never
// validated.
type StringCursor struct {
	// Value is the opaque key.
	Value string
}

// NewStringCursor creates a string cursor.
func NewStringCursor(value string) StringCursor {
	return StringCursor{Value: value}
}

// Raw returns "string||<value>".
func (c StringCursor) Raw() string {
	return KindString + Delimiter + c.Value
}

// FromParts rebuilds a string cursor from its decoded segments. Everything
// after the kind tag is the value, rejoined so keys containing the
// delimiter survive a round trip.
func (StringCursor) FromParts(_ string, parts []string) (StringCursor, error) {
	if len(parts) < 2 {
		return StringCursor{}, fmt.Errorf("%w: expected at least 2 segments, got %d", ErrInvalidCursor, len(parts))
	}
	if parts[0] != KindString {
		return StringCursor{}, fmt.Errorf("%w: unexpected kind %q", ErrInvalidCursor, parts[0])
	}
	return StringCursor{Value: strings.Join(parts[1:], Delimiter)}, nil
}

// String returns the raw form.
func (c StringCursor) String() string {
	return c.Raw()
}
