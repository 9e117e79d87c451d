package cursor

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Delimiter separates the segments of a cursor's raw form. Two characters
// to avoid colliding with typical field values.
const Delimiter = "||"

// Cursor is an opaque token marking a position within an ordered result set.
type Cursor interface {
	// Raw returns the delimited raw form, e.g. "offset||1||10".
	Raw() string
}

// Decodable is satisfied by cursor types that can reconstruct themselves
// from a decoded wire token. FromParts receives the full raw string and its
// delimiter-split segments (kind tag first) and must return a typed error,
// never panic, on malformed input.
type Decodable[T Cursor] interface {
	Cursor
	FromParts(raw string, parts []string) (T, error)
}

// Encode returns the wire form of c: URL-safe base64 of its raw form.
func Encode(c Cursor) string {
	return base64.URLEncoding.EncodeToString([]byte(c.Raw()))
}

// Decode parses a wire token into a concrete cursor type:
//
//	c, err := cursor.Decode[cursor.OffsetCursor]("b2Zmc2V0fHwxfHwxMA==")
func Decode[T Decodable[T]](encoded string) (T, error) {
	var zero T
	raw, parts, err := decodeRaw(encoded)
	if err != nil {
		return zero, err
	}
	return zero.FromParts(raw, parts)
}

// DecodeAny parses a wire token into whichever built-in cursor kind its
// kind tag names. Custom cursor kinds must use Decode with their concrete
// type instead.
func DecodeAny(encoded string) (Cursor, error) {
	raw, parts, err := decodeRaw(encoded)
	if err != nil {
		return nil, err
	}
	switch parts[0] {
	case KindOffset:
		c, err := OffsetCursor{}.FromParts(raw, parts)
		if err != nil {
			return nil, err
		}
		return c, nil
	case KindString:
		c, err := StringCursor{}.FromParts(raw, parts)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidCursor, parts[0])
}

// decodeRaw reverses Encode: base64-decode, validate UTF-8, split segments.
// Unpadded input is tolerated.
func decodeRaw(encoded string) (string, []string, error) {
	b, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		b, err = base64.RawURLEncoding.DecodeString(encoded)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
		}
	}
	if !utf8.Valid(b) {
		return "", nil, ErrInvalidUTF8
	}
	raw := string(b)
	return raw, strings.Split(raw, Delimiter), nil
}
