// Package cursor provides opaque pagination cursors for Relay style
// connection APIs.
//
// A cursor marks a position within an ordered result set. On the wire it is
// an opaque, URL-safe base64 string; decoded, it is a delimited raw form of
// `<kind>||<field>||<field>...`. Clients must treat the encoded form as
// opaque and never construct it by hand.
//
// # Built-in Cursors
//
// Two cursor kinds are provided:
//
//   - OffsetCursor: a numeric index into the result set, for stores that
//     support LIMIT/OFFSET style slicing
//   - StringCursor: an opaque caller-supplied key, for stores whose native
//     continuation token is a string (NoSQL continuation tokens, primary
//     keys, etc.)
//
// # Encoding and Decoding
//
// Encode a cursor into its wire form:
//
//	c := cursor.OffsetCursor{Offset: 1, First: types.ToPointer(10)}
//	token := cursor.Encode(c) // "b2Zmc2V0fHwxfHwxMA=="
//
// Decode a wire token back into a concrete cursor type:
//
//	c, err := cursor.Decode[cursor.OffsetCursor](token)
//	if err != nil {
//	    // invalid base64, invalid UTF-8, or malformed segments
//	}
//
// Decoding accepts both padded and unpadded base64 input. All failure paths
// return typed errors; decoding never panics.
//
// # Custom Cursors
//
// Implement your own cursor kind by satisfying Decodable on a value type:
//
//	type TimeCursor struct{ At time.Time }
//
//	func (c TimeCursor) Raw() string { ... }
//	func (TimeCursor) FromParts(raw string, parts []string) (TimeCursor, error) { ... }
package cursor
