package paging

import (
	"testing"

	"github.com/ncobase/relay/cursor"
	"github.com/ncobase/relay/types"
)

func TestOffsetProviderNoRequest(t *testing.T) {
	p := OffsetProvider[string]{}
	meta := NewMetadata(100, nil)
	items := []string{"a", "b", "c"}

	info := p.PageInfo(meta, items)

	// Without a request the full set was asked for; the total count does
	// not imply a next page even though it exceeds the page length.
	if info.HasNextPage {
		t.Error("HasNextPage = true, want false")
	}
	if info.HasPrevPage {
		t.Error("HasPrevPage = true, want false")
	}
	if info.StartCursor == nil || *info.StartCursor != "b2Zmc2V0fHww" {
		t.Errorf("StartCursor = %v, want %q", info.StartCursor, "b2Zmc2V0fHww")
	}
}

func TestOffsetProviderFirstPage(t *testing.T) {
	p := OffsetProvider[string]{}
	req := &PageRequest{First: types.ToPointer(5)}
	meta := NewMetadata(13, req)
	items := []string{"n0", "n1", "n2", "n3", "n4"}

	info := p.PageInfo(meta, items)

	if !info.HasNextPage {
		t.Error("HasNextPage = false, want true")
	}
	if info.HasPrevPage {
		t.Error("HasPrevPage = true, want false")
	}
	if info.StartCursor == nil || *info.StartCursor != "b2Zmc2V0fHww" {
		t.Errorf("StartCursor = %v, want %q", info.StartCursor, "b2Zmc2V0fHww")
	}
	if info.EndCursor == nil || *info.EndCursor != "b2Zmc2V0fHw0" {
		t.Errorf("EndCursor = %v, want %q", info.EndCursor, "b2Zmc2V0fHw0")
	}
}

// TestOffsetProviderWalk pages through a 13-item set five at a time,
// feeding each page's end cursor back as the next request's after token.
func TestOffsetProviderWalk(t *testing.T) {
	p := OffsetProvider[int]{}

	pages := []struct {
		name        string
		items       []int
		wantStart   string
		wantEnd     string
		wantHasNext bool
		wantHasPrev bool
	}{
		{"page one", []int{0, 1, 2, 3, 4}, "b2Zmc2V0fHww", "b2Zmc2V0fHw0", true, false},
		{"page two", []int{5, 6, 7, 8, 9}, "b2Zmc2V0fHw1", "b2Zmc2V0fHw5", true, true},
		{"page three", []int{10, 11, 12}, "b2Zmc2V0fHwxMA==", "b2Zmc2V0fHwxMg==", false, true},
	}

	var after *string
	for _, page := range pages {
		t.Run(page.name, func(t *testing.T) {
			req := &PageRequest{First: types.ToPointer(5), After: after}
			meta := NewMetadata(13, req)

			info := p.PageInfo(meta, page.items)

			if info.HasNextPage != page.wantHasNext {
				t.Errorf("HasNextPage = %v, want %v", info.HasNextPage, page.wantHasNext)
			}
			if info.HasPrevPage != page.wantHasPrev {
				t.Errorf("HasPrevPage = %v, want %v", info.HasPrevPage, page.wantHasPrev)
			}
			if info.StartCursor == nil || *info.StartCursor != page.wantStart {
				t.Errorf("StartCursor = %v, want %q", info.StartCursor, page.wantStart)
			}
			if info.EndCursor == nil || *info.EndCursor != page.wantEnd {
				t.Errorf("EndCursor = %v, want %q", info.EndCursor, page.wantEnd)
			}

			after = info.EndCursor
		})
	}
}

func TestOffsetProviderMalformedAfter(t *testing.T) {
	p := OffsetProvider[string]{}
	req := &PageRequest{First: types.ToPointer(5), After: types.ToPointer("!!!garbage!!!")}
	meta := NewMetadata(13, req)
	items := []string{"a", "b"}

	info := p.PageInfo(meta, items)

	// Undecodable after degrades to the first page: no adjustment, no
	// previous page.
	if info.HasPrevPage {
		t.Error("HasPrevPage = true, want false")
	}
	if !info.HasNextPage {
		t.Error("HasNextPage = false, want true")
	}
	if info.StartCursor == nil || *info.StartCursor != "b2Zmc2V0fHww" {
		t.Errorf("StartCursor = %v, want %q", info.StartCursor, "b2Zmc2V0fHww")
	}
}

func TestOffsetProviderEmptyPage(t *testing.T) {
	p := OffsetProvider[string]{}
	after := cursor.Encode(cursor.OffsetCursor{Offset: 12})
	req := &PageRequest{First: types.ToPointer(5), After: &after}
	meta := NewMetadata(13, req)

	info := p.PageInfo(meta, nil)

	if info.StartCursor != nil {
		t.Errorf("StartCursor = %q, want nil", *info.StartCursor)
	}
	if info.EndCursor != nil {
		t.Errorf("EndCursor = %q, want nil", *info.EndCursor)
	}
	if info.HasNextPage {
		t.Error("HasNextPage = true, want false")
	}
	if !info.HasPrevPage {
		t.Error("HasPrevPage = false, want true")
	}
}

func TestOffsetProviderCursorForItem(t *testing.T) {
	p := OffsetProvider[string]{}

	// First page: item index is the offset.
	meta := NewMetadata(13, &PageRequest{First: types.ToPointer(5)})
	c := p.CursorForItem(meta, 3, "x")
	oc, ok := c.(cursor.OffsetCursor)
	if !ok {
		t.Fatalf("CursorForItem() = %T, want cursor.OffsetCursor", c)
	}
	if oc.Offset != 3 {
		t.Errorf("Offset = %d, want 3", oc.Offset)
	}

	// Continuation: after points at item 4, so the page starts at 5.
	after := cursor.Encode(cursor.OffsetCursor{Offset: 4})
	meta = NewMetadata(13, &PageRequest{First: types.ToPointer(5), After: &after})
	oc = p.CursorForItem(meta, 2, "x").(cursor.OffsetCursor)
	if oc.Offset != 7 {
		t.Errorf("Offset = %d, want 7", oc.Offset)
	}
}
