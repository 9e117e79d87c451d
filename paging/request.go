package paging

import "github.com/ncobase/relay/cursor"

// PageRequest carries the first/after arguments of a paginated query.
// Built by the caller from incoming query arguments and consumed read-only
// by cursor providers.
type PageRequest struct {
	// First is the requested page size.
	First *int `json:"first,omitempty" form:"first"`

	// After is the encoded cursor to resume from. The page starts one item
	// past the position it marks.
	After *string `json:"after,omitempty" form:"after"`
}

// NewPageRequest builds a request from a page size and an optional decoded
// cursor, encoding the cursor into its wire form.
func NewPageRequest(first *int, after cursor.Cursor) *PageRequest {
	pr := &PageRequest{First: first}
	if after != nil {
		encoded := cursor.Encode(after)
		pr.After = &encoded
	}
	return pr
}

// ParsedCursor decodes the After token of pr into a concrete cursor type.
// ok is false when there is no request or no After token. A malformed
// token returns a decode error from the cursor package.
func ParsedCursor[T cursor.Decodable[T]](pr *PageRequest) (c T, ok bool, err error) {
	if pr == nil || pr.After == nil {
		return c, false, nil
	}
	c, err = cursor.Decode[T](*pr.After)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return c, true, nil
}

// Metadata is the per-resolution state a cursor provider works from. It is
// constructed fresh for every resolution and never mutated.
type Metadata struct {
	// TotalCount is the total number of items in the result set, not the
	// page size.
	TotalCount int

	// Request is the incoming page request, if any.
	Request *PageRequest
}

// NewMetadata creates pagination metadata for one resolution.
func NewMetadata(totalCount int, req *PageRequest) Metadata {
	return Metadata{TotalCount: totalCount, Request: req}
}
