package cursor

import (
	"fmt"
	"strconv"
)

// KindOffset tags the raw form of offset cursors.
const KindOffset = "offset"

// OffsetCursor marks a position by its zero-based index in the result set.
// The cursor points at the item itself: callers resuming from an `after`
// cursor must skip to Offset + 1.
type OffsetCursor struct {
	// Offset is the zero-based index of the item this cursor points at.
	Offset int

	// First is the requested page size at the time the cursor was issued,
	// if any.
	First *int
}

// NewOffsetCursor creates an offset cursor.
func NewOffsetCursor(offset int, first *int) OffsetCursor {
	return OffsetCursor{Offset: offset, First: first}
}

// Raw returns "offset||<offset>||<first>", omitting the trailing segment
// when First is absent.
func (c OffsetCursor) Raw() string {
	if c.First != nil {
		return fmt.Sprintf("%s%s%d%s%d", KindOffset, Delimiter, c.Offset, Delimiter, *c.First)
	}
	return fmt.Sprintf("%s%s%d", KindOffset, Delimiter, c.Offset)
}

// FromParts rebuilds an offset cursor from its decoded segments. A token
// with the wrong segment count or kind tag is an error. An unparsable or
// negative offset silently falls back to 0 and an unparsable first becomes
// absent: a slightly mangled token degrades to the first page instead of
// failing the whole query.
func (OffsetCursor) FromParts(_ string, parts []string) (OffsetCursor, error) {
	if len(parts) != 2 && len(parts) != 3 {
		return OffsetCursor{}, fmt.Errorf("%w: expected 2 or 3 segments, got %d", ErrInvalidCursor, len(parts))
	}
	if parts[0] != KindOffset {
		return OffsetCursor{}, fmt.Errorf("%w: unexpected kind %q", ErrInvalidCursor, parts[0])
	}

	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		offset = 0
	}

	var first *int
	if len(parts) == 3 {
		if f, err := strconv.Atoi(parts[2]); err == nil {
			first = &f
		}
	}

	return OffsetCursor{Offset: offset, First: first}, nil
}

// String returns the raw form.
func (c OffsetCursor) String() string {
	return c.Raw()
}
