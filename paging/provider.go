package paging

import "github.com/ncobase/relay/cursor"

// CursorProvider generates a cursor for any item of a page and derives the
// complete PageInfo for the page, given the pagination metadata of the
// current resolution.
type CursorProvider[T any] interface {
	// CursorForItem builds the cursor for the item at idx within the page.
	CursorForItem(meta Metadata, idx int, item T) cursor.Cursor

	// PageInfo derives the PageInfo for the page of items.
	PageInfo(meta Metadata, items []T) PageInfo
}

// Keyed is implemented by item types that expose a stable string key
// uniquely identifying the item for continuation purposes. Required by
// KeyedProvider.
type Keyed interface {
	CursorKey() string
}
