// Package identifier provides type-discriminated Relay node identifiers.
//
// Relay requires nodes to carry a globally unique ID. It is often useful
// to encode the node's type into that ID so a single `node(id:)` lookup
// can route to the right store. An Identifier pairs a raw ID with a kind
// discriminator and encodes to an opaque, URL-safe base64 token of the
// form `<kind>::<id>`.
//
//	id := identifier.New("123", "user")
//	token := id.Encode() // "dXNlcjo6MTIz"
//
//	parsed, err := identifier.Parse(token)
//	// parsed.Kind == "user", parsed.ID == "123"
//
// Use of identifiers is entirely optional; connections and cursors do not
// depend on them.
package identifier
