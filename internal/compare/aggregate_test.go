package compare

import (
	"context"
	"testing"

	"github.com/docudiff/docudiff/internal/engine"
	"github.com/docudiff/docudiff/internal/engine/enginetest"
	"github.com/docudiff/docudiff/internal/geometry"
)

func newAggregator() (*Aggregator, *enginetest.FakeView, *enginetest.FakeView) {
	orig := enginetest.NewFakeView("original", 3)
	chg := enginetest.NewFakeView("changed", 3)
	return &Aggregator{Original: orig, Changed: chg}, orig, chg
}

func TestReplacementMergesDeleteAndInsert(t *testing.T) {
	agg, orig, chg := newAggregator()

	ops := []engine.Operation{
		{Kind: engine.OpDelete, Text: "old text", OriginalRect: geometry.Rect{Left: 10, Top: 20, Width: 50, Height: 12}},
		{Kind: engine.OpInsert, Text: "new words", ChangedRect: geometry.Rect{Left: 10, Top: 20, Width: 60, Height: 12}},
	}

	index, err := agg.ProcessPage(ops, 0)
	if err != nil {
		t.Fatalf("ProcessPage failed: %v", err)
	}

	if index.Len() != 1 {
		t.Fatalf("expected exactly one change entry, got %d", index.Len())
	}
	c := index.Get("10,20")
	if c == nil {
		t.Fatal("expected entry at key 10,20")
	}
	if c.DeleteText != "old text" || c.InsertText != "new words" {
		t.Errorf("unexpected texts: %q / %q", c.DeleteText, c.InsertText)
	}
	if !c.Deleted || !c.Inserted {
		t.Errorf("expected both flags true, got del=%v ins=%v", c.Deleted, c.Inserted)
	}
	if len(c.AnnotationIDs) != 2 {
		t.Errorf("expected two annotation ids, got %d", len(c.AnnotationIDs))
	}
	if len(orig.Annotations) != 1 || len(chg.Annotations) != 1 {
		t.Errorf("expected one highlight per view, got %d/%d", len(orig.Annotations), len(chg.Annotations))
	}
}

func TestHighlightColors(t *testing.T) {
	agg, orig, chg := newAggregator()

	ops := []engine.Operation{
		{Kind: engine.OpDelete, Text: "gone", OriginalRect: geometry.Rect{Left: 5, Top: 5, Width: 10, Height: 10}},
		{Kind: engine.OpInsert, Text: "added", ChangedRect: geometry.Rect{Left: 50, Top: 60, Width: 10, Height: 10}},
	}
	if _, err := agg.ProcessPage(ops, 1); err != nil {
		t.Fatalf("ProcessPage failed: %v", err)
	}

	for _, a := range orig.Annotations {
		if a.Color != DeleteColor {
			t.Errorf("delete highlight color = %+v, want %+v", a.Color, DeleteColor)
		}
		if a.Type != engine.AnnotationHighlight {
			t.Errorf("expected highlight annotation, got %s", a.Type)
		}
	}
	for _, a := range chg.Annotations {
		if a.Color != InsertColor {
			t.Errorf("insert highlight color = %+v, want %+v", a.Color, InsertColor)
		}
	}
}

func TestStandaloneOperations(t *testing.T) {
	agg, _, _ := newAggregator()

	ops := []engine.Operation{
		{Kind: engine.OpDelete, Text: "only deleted", OriginalRect: geometry.Rect{Left: 30, Top: 40, Width: 20, Height: 12}},
	}
	index, err := agg.ProcessPage(ops, 0)
	if err != nil {
		t.Fatalf("ProcessPage failed: %v", err)
	}
	c := index.Get("30,40")
	if c == nil {
		t.Fatal("expected entry at 30,40")
	}
	if !c.Deleted || c.Inserted {
		t.Errorf("expected delete-only flags, got del=%v ins=%v", c.Deleted, c.Inserted)
	}
	if len(c.AnnotationIDs) != 1 {
		t.Errorf("expected one annotation id, got %d", len(c.AnnotationIDs))
	}

	ops = []engine.Operation{
		{Kind: engine.OpInsert, Text: "only inserted", ChangedRect: geometry.Rect{Left: 70, Top: 80, Width: 20, Height: 12}},
	}
	index, err = agg.ProcessPage(ops, 0)
	if err != nil {
		t.Fatalf("ProcessPage failed: %v", err)
	}
	c = index.Get("70,80")
	if c == nil {
		t.Fatal("expected entry at 70,80")
	}
	if c.Deleted || !c.Inserted {
		t.Errorf("expected insert-only flags, got del=%v ins=%v", c.Deleted, c.Inserted)
	}
}

func TestInsertAfterDeleteAtSameKeyMergesNonDestructively(t *testing.T) {
	agg, _, _ := newAggregator()

	// Insert separated from the delete by another delete, so the pair rule
	// does not fire; both land at the same coordinate key.
	rect := geometry.Rect{Left: 12, Top: 34, Width: 40, Height: 12}
	ops := []engine.Operation{
		{Kind: engine.OpDelete, Text: "dropped", OriginalRect: rect},
		{Kind: engine.OpDelete, Text: "elsewhere", OriginalRect: geometry.Rect{Left: 200, Top: 300, Width: 40, Height: 12}},
		{Kind: engine.OpInsert, Text: "reworded", ChangedRect: rect},
	}
	index, err := agg.ProcessPage(ops, 0)
	if err != nil {
		t.Fatalf("ProcessPage failed: %v", err)
	}

	c := index.Get("12,34")
	if c == nil {
		t.Fatal("expected merged entry at 12,34")
	}
	if c.DeleteText != "dropped" || c.InsertText != "reworded" {
		t.Errorf("merge lost fields: %q / %q", c.DeleteText, c.InsertText)
	}
	if !c.Deleted || !c.Inserted {
		t.Errorf("expected both flags after merge, got del=%v ins=%v", c.Deleted, c.Inserted)
	}
	// One highlight id from the delete, one from the insert.
	if len(c.AnnotationIDs) != 2 {
		t.Errorf("expected union of annotation ids, got %v", c.AnnotationIDs)
	}
}

func TestEqualOperationsAreFilteredByDriver(t *testing.T) {
	eng := enginetest.NewFakeEngine(1)
	eng.Results[0] = engine.CompareResult{Hunks: []engine.Hunk{{
		Operations: []engine.Operation{
			{Kind: engine.OpEqual, Text: "unchanged context"},
			{Kind: engine.OpDelete, Text: "removed", OriginalRect: geometry.Rect{Left: 1, Top: 2, Width: 3, Height: 4}},
			{Kind: engine.OpEqual, Text: "more context"},
		},
	}}}

	d := &Driver{Engine: eng, OriginalPath: "a.pdf", ChangedPath: "b.pdf"}
	ops, err := d.ComparePage(context.Background(), 0)
	if err != nil {
		t.Fatalf("ComparePage failed: %v", err)
	}
	if len(ops) != 1 || ops[0].Kind != engine.OpDelete {
		t.Fatalf("expected equal ops filtered out, got %+v", ops)
	}
	if eng.Requests[0].ContextWords != DefaultContextWords {
		t.Errorf("expected default context window %d, got %d", DefaultContextWords, eng.Requests[0].ContextWords)
	}
}

func TestMissingHunkCollectionSkipsPage(t *testing.T) {
	eng := enginetest.NewFakeEngine(1)
	// No scripted result for page 0: the zero CompareResult has nil hunks.
	d := &Driver{Engine: eng, OriginalPath: "a.pdf", ChangedPath: "b.pdf"}
	ops, err := d.ComparePage(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected silent skip, got error: %v", err)
	}
	if len(ops) != 0 {
		t.Errorf("expected zero operations, got %d", len(ops))
	}
}

func TestSelectionBorderLifecycle(t *testing.T) {
	orig := enginetest.NewFakeView("original", 1)
	chg := enginetest.NewFakeView("changed", 1)
	sel := &Selection{Original: orig, Changed: chg}

	first := &ChangeOperation{
		Deleted:      true,
		Inserted:     true,
		Page:         0,
		OriginalRect: geometry.Rect{Left: 10, Top: 20, Width: 50, Height: 12},
		ChangedRect:  geometry.Rect{Left: 10, Top: 20, Width: 60, Height: 12},
	}
	if err := sel.Apply(first); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(sel.BorderIDs()) != 2 {
		t.Fatalf("expected two borders, got %d", len(sel.BorderIDs()))
	}

	// The border is stroke-only, selection colored, expanded by 3.
	for _, a := range orig.Annotations {
		if a.Type != engine.AnnotationRectangle || !a.StrokeOnly {
			t.Errorf("expected stroke-only rectangle, got %+v", a)
		}
		if a.Color != SelectionColor {
			t.Errorf("border color = %+v, want %+v", a.Color, SelectionColor)
		}
		if a.Rect.Left != 7 || a.Rect.Top != 17 || a.Rect.Width != 56 || a.Rect.Height != 18 {
			t.Errorf("border rect not expanded by %v: %+v", BorderPadding, a.Rect)
		}
	}

	second := &ChangeOperation{
		Inserted:    true,
		Page:        0,
		ChangedRect: geometry.Rect{Left: 100, Top: 200, Width: 30, Height: 12},
	}
	if err := sel.Apply(second); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(sel.BorderIDs()) != 1 {
		t.Errorf("expected one border after re-selection, got %d", len(sel.BorderIDs()))
	}
	// Previous borders were deleted from their owning views; the delete
	// against the other view returned not-found and was ignored.
	if len(orig.Annotations) != 0 {
		t.Errorf("expected old border removed from original view, %d left", len(orig.Annotations))
	}
	if len(chg.Annotations) != 1 {
		t.Errorf("expected exactly the new border in changed view, got %d", len(chg.Annotations))
	}
}
