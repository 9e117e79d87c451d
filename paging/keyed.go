package paging

import "github.com/ncobase/relay/cursor"

// KeyedProvider issues opaque string cursors taken from each item's own
// key, for stores whose continuation token is a key rather than an offset
// (DynamoDB, MongoDB and similar).
//
// Boundary policy: a previous page is assumed whenever `after` was
// supplied, and any non-empty page reports a next page. The only reliable
// end-of-pagination signal is an empty result page. Read that again - a
// full final page still reports hasNextPage, and the page after it will be
// empty. This can be unexpected to a lot of frontends.
type KeyedProvider[T Keyed] struct{}

// CursorForItem wraps the item's own key; metadata and index are not
// consulted.
func (KeyedProvider[T]) CursorForItem(_ Metadata, _ int, item T) cursor.Cursor {
	return cursor.StringCursor{Value: item.CursorKey()}
}

// PageInfo derives page boundaries from the presence of `after` and the
// emptiness of the page.
func (p KeyedProvider[T]) PageInfo(meta Metadata, items []T) PageInfo {
	info := PageInfo{
		HasPrevPage: meta.Request != nil && meta.Request.After != nil,
		HasNextPage: len(items) > 0,
	}

	if len(items) == 0 {
		return info
	}

	last := len(items) - 1
	start := cursor.Encode(p.CursorForItem(meta, 0, items[0]))
	end := cursor.Encode(p.CursorForItem(meta, last, items[last]))
	info.StartCursor = &start
	info.EndCursor = &end
	return info
}
