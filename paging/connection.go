package paging

import "github.com/ncobase/relay/cursor"

// Edge pairs a node with the cursor pointing at it.
type Edge[T any] struct {
	Node   T       `json:"node"`
	Cursor *string `json:"cursor,omitempty"`
}

// NewEdge creates an edge, encoding the cursor into its wire form.
func NewEdge[T any](node T, c cursor.Cursor) Edge[T] {
	encoded := cursor.Encode(c)
	return Edge[T]{Node: node, Cursor: &encoded}
}

// Connection is the full paginated response shape: the total count of the
// result set, one edge per node in input order, and the page boundaries.
type Connection[T any] struct {
	// Count is the total number of items in the result set, not the page
	// size.
	Count int `json:"count"`

	// Edges holds one edge per node, in the same order as the input.
	Edges []Edge[T] `json:"edges"`

	// PageInfo describes the boundaries of this page.
	PageInfo PageInfo `json:"pageInfo"`
}

// NewConnection assembles a connection from a page of nodes. The nodes
// must already be sliced according to the request; assembly is a pure
// function that only describes the page it is given.
func NewConnection[T any](nodes []T, totalItems int, provider CursorProvider[T], req *PageRequest) Connection[T] {
	meta := NewMetadata(totalItems, req)

	edges := make([]Edge[T], 0, len(nodes))
	for i, node := range nodes {
		edges = append(edges, NewEdge(node, provider.CursorForItem(meta, i, node)))
	}

	return Connection[T]{
		Count:    totalItems,
		Edges:    edges,
		PageInfo: provider.PageInfo(meta, nodes),
	}
}
