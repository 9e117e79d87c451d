package cursor

import "errors"

var (
	// ErrInvalidCursor indicates a wrong number of delimited segments or a
	// kind tag that does not match the target cursor type.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrInvalidBase64 indicates a malformed base64 payload.
	ErrInvalidBase64 = errors.New("invalid base64 payload")

	// ErrInvalidUTF8 indicates that the decoded payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("payload is not valid UTF-8")
)
