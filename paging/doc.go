// Package paging derives Relay connection pagination metadata from a page
// of results: per-item cursors, PageInfo boundaries, and the generic
// Connection/Edge response shapes.
//
// The package only describes the page it is given. The caller remains
// responsible for slicing the underlying data set according to first/after
// before building the connection; nothing here fetches or filters data.
//
// # Basic Usage
//
// Build a page request from incoming query arguments, slice your data set
// accordingly, then assemble the connection:
//
//	req := &paging.PageRequest{First: first, After: after}
//
//	nodes, total := queryLocations(req) // caller-side slicing
//
//	conn := paging.NewConnection(nodes, total, paging.OffsetProvider[Location]{}, req)
//	// conn.Count, conn.Edges, conn.PageInfo are ready to serialize
//
// # Cursor Providers
//
// A CursorProvider turns a page of items into cursors and PageInfo. Two
// implementations are built in, with materially different boundary
// policies:
//
//   - OffsetProvider: for stores that know their total count and support
//     COUNT plus LIMIT/OFFSET. Next/previous page flags are computed from
//     offset arithmetic against the total.
//   - KeyedProvider: for stores whose native continuation token is an
//     opaque key (NoSQL). A previous page is assumed whenever `after` was
//     supplied, and any non-empty page reports a next page: the only
//     reliable end-of-pagination signal is an empty result page.
//
// Implement CursorProvider yourself for anything else, for example
// timestamp keyset pagination.
//
// # Degradation on Malformed Cursors
//
// The offset provider treats an undecodable `after` token as "start from
// the beginning" rather than failing the query. Pagination degrades to
// page zero; it does not error. Use ParsedCursor directly if you want to
// surface decode failures to the client instead.
package paging
