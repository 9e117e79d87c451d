package paging

// PageInfo summarizes the boundaries of a page per the Relay connection
// specification. Always derived by a CursorProvider, never hand-built.
type PageInfo struct {
	// HasNextPage indicates whether a page follows this one.
	HasNextPage bool `json:"hasNextPage"`

	// HasPrevPage indicates whether a page precedes this one.
	HasPrevPage bool `json:"hasPrevPage"`

	// StartCursor is the encoded cursor of the first item in the page, nil
	// when the page is empty.
	StartCursor *string `json:"startCursor,omitempty"`

	// EndCursor is the encoded cursor of the last item in the page, nil
	// when the page is empty. Feed it back as `after` to request the next
	// page.
	EndCursor *string `json:"endCursor,omitempty"`
}
