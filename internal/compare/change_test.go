package compare

import (
	"testing"

	"github.com/docudiff/docudiff/internal/geometry"
)

func TestChangeIndexInsertionOrder(t *testing.T) {
	ci := NewChangeIndex()
	ci.Put("10,20", &ChangeOperation{Deleted: true, DeleteText: "a"})
	ci.Put("30,40", &ChangeOperation{Inserted: true, InsertText: "b"})
	ci.Put("10,20", &ChangeOperation{Inserted: true, InsertText: "c"})

	if ci.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", ci.Len())
	}
	keys := ci.Keys()
	if keys[0] != "10,20" || keys[1] != "30,40" {
		t.Errorf("insertion order broken: %v", keys)
	}
	if got := ci.At(0); got.DeleteText != "a" || got.InsertText != "c" {
		t.Errorf("merge lost data: %+v", got)
	}
	if ci.At(2) != nil || ci.At(-1) != nil {
		t.Error("out-of-range At should return nil")
	}
}

func TestChangeIndexAnnotationIDUnion(t *testing.T) {
	ci := NewChangeIndex()
	ci.Put("1,1", &ChangeOperation{Deleted: true, AnnotationIDs: []string{"x", "y"}})
	ci.Put("1,1", &ChangeOperation{Inserted: true, AnnotationIDs: []string{"y", "z"}})

	got := ci.Get("1,1").AnnotationIDs
	if len(got) != 3 {
		t.Fatalf("expected id set union of size 3, got %v", got)
	}
}

// Keys carry no page component: the same origin on two pages collides in
// a merged index and folds into one entry. This mirrors the shipped
// behavior; see DESIGN.md.
func TestMergeFromPreservesCrossPageCollision(t *testing.T) {
	rect := geometry.Rect{Left: 10, Top: 20, Width: 40, Height: 12}

	page0 := NewChangeIndex()
	page0.Put(rect.Key(), &ChangeOperation{Deleted: true, DeleteText: "p0", Page: 0, OriginalRect: rect})

	page1 := NewChangeIndex()
	page1.Put(rect.Key(), &ChangeOperation{Inserted: true, InsertText: "p1", Page: 1, ChangedRect: rect})

	global := NewChangeIndex()
	global.MergeFrom(page0)
	global.MergeFrom(page1)

	if global.Len() != 1 {
		t.Fatalf("expected colliding keys to share one entry, got %d", global.Len())
	}
	c := global.Get("10,20")
	if c.Page != 0 {
		t.Errorf("first writer should keep the entry's page, got %d", c.Page)
	}
	if c.DeleteText != "p0" || c.InsertText != "p1" {
		t.Errorf("merge should union fields: %+v", c)
	}
}
