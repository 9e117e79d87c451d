package identifier

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Delimiter separates the kind discriminator from the raw ID.
const Delimiter = "::"

var (
	// ErrInvalidIdentifier indicates a token without a kind discriminator.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidBase64 indicates a malformed base64 payload.
	ErrInvalidBase64 = errors.New("invalid base64 payload")

	// ErrInvalidUTF8 indicates that the decoded payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("payload is not valid UTF-8")
)

// Identifier is a type-discriminated Relay node ID.
type Identifier struct {
	// ID is the raw identifier, for example a primary key.
	ID string `json:"id"`

	// Kind discriminates the node type, for example "user".
	Kind string `json:"kind"`
}

// New creates an identifier.
func New(id, kind string) Identifier {
	return Identifier{ID: id, Kind: kind}
}

// Raw returns "<kind>::<id>".
func (i Identifier) Raw() string {
	return i.Kind + Delimiter + i.ID
}

// Encode returns the URL-safe base64 wire form of the identifier.
func (i Identifier) Encode() string {
	return base64.URLEncoding.EncodeToString([]byte(i.Raw()))
}

// String returns the raw form.
func (i Identifier) String() string {
	return i.Raw()
}

// Parse decodes a wire token into an identifier. IDs containing the
// delimiter survive a round trip; only the first occurrence splits kind
// from ID. Unpadded base64 input is tolerated.
func Parse(encoded string) (Identifier, error) {
	b, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		b, err = base64.RawURLEncoding.DecodeString(encoded)
		if err != nil {
			return Identifier{}, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
		}
	}
	if !utf8.Valid(b) {
		return Identifier{}, ErrInvalidUTF8
	}

	kind, id, found := strings.Cut(string(b), Delimiter)
	if !found || kind == "" {
		return Identifier{}, fmt.Errorf("%w: missing kind discriminator", ErrInvalidIdentifier)
	}
	return Identifier{ID: id, Kind: kind}, nil
}
