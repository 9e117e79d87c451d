package paging

import "github.com/ncobase/relay/cursor"

// OffsetProvider issues offset cursors for stores that know their total
// item count up front and slice with LIMIT/OFFSET.
//
// A malformed or missing `after` token resolves to the zero cursor, so
// pagination degrades to the first page rather than failing the query.
type OffsetProvider[T any] struct{}

// CursorForItem returns an offset cursor for the item at idx. When the
// request carried a decodable `after` cursor the base offset is advanced
// by one: that cursor points at the last seen item and the page starts one
// past it.
func (OffsetProvider[T]) CursorForItem(meta Metadata, idx int, _ T) cursor.Cursor {
	current, adjust := currentOffsetCursor(meta)
	return cursor.OffsetCursor{
		Offset: current.Offset + adjust + idx,
		First:  current.First,
	}
}

// PageInfo derives page boundaries from offset arithmetic against the
// total count.
//
// Without a page request, or without a requested page size, the entire
// result set was asked for and there is no next page regardless of any
// mismatch between the total count and the page length.
func (p OffsetProvider[T]) PageInfo(meta Metadata, items []T) PageInfo {
	current, _ := currentOffsetCursor(meta)

	hasNext := false
	if meta.Request != nil && meta.Request.First != nil {
		hasNext = current.Offset+*meta.Request.First < meta.TotalCount
	}

	info := PageInfo{
		HasPrevPage: current.Offset > 0,
		HasNextPage: hasNext,
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

// currentOffsetCursor resolves the cursor the request is positioned at.
// adjust is 1 only when an `after` cursor was present and decoded; absent
// or undecodable cursors resolve to the default zero cursor with no
// adjustment.
func currentOffsetCursor(meta Metadata) (current cursor.OffsetCursor, adjust int) {
	c, ok, err := ParsedCursor[cursor.OffsetCursor](meta.Request)
	if err != nil || !ok {
		return cursor.OffsetCursor{}, 0
	}
	return c, 1
}
