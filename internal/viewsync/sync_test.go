package viewsync

import (
	"testing"

	"github.com/docudiff/docudiff/internal/engine"
	"github.com/docudiff/docudiff/internal/engine/enginetest"
)

func newPair() (*Synchronizer, *enginetest.FakeView, *enginetest.FakeView) {
	orig := enginetest.NewFakeView("original", 5)
	chg := enginetest.NewFakeView("changed", 5)
	s := NewSynchronizer(orig, chg, ImmediateScheduler{})
	return s, orig, chg
}

func TestScrollOffsetsCopied(t *testing.T) {
	s, orig, chg := newPair()

	orig.Container.SetOffsets(12, 340)
	s.HandleEvent(FromOriginal, engine.PageScrolled{})

	if l, top := chg.Container.Offsets(); l != 12 || top != 340 {
		t.Errorf("offsets not copied, got (%v,%v)", l, top)
	}

	// And the other direction.
	chg.Container.SetOffsets(0, 99)
	s.HandleEvent(FromChanged, engine.PageScrolled{})
	if _, top := orig.Container.Offsets(); top != 99 {
		t.Errorf("reverse sync failed, top=%v", top)
	}
}

func TestPageDifferenceWinsOverOffsets(t *testing.T) {
	s, orig, chg := newPair()

	orig.ViewSt = engine.ViewState{Page: 3, Zoom: 1.0}
	orig.Container.SetOffsets(0, 500)
	s.HandleEvent(FromOriginal, engine.PageChanged{Page: 3})

	if chg.ViewSt.Page != 3 {
		t.Errorf("target page not updated, got %d", chg.ViewSt.Page)
	}
	// Page navigation resets scroll on its own; offsets must not be copied
	// in the same pass.
	if _, top := chg.Container.Offsets(); top != 0 {
		t.Errorf("offsets copied during page navigation, top=%v", top)
	}
}

func TestZoomCopiedWhenPagesAgree(t *testing.T) {
	s, orig, chg := newPair()

	orig.ViewSt = engine.ViewState{Page: 0, Zoom: 1.5}
	s.HandleEvent(FromOriginal, engine.ZoomChanged{Zoom: 1.5})

	if chg.ViewSt.Zoom != 1.5 {
		t.Errorf("zoom not copied, got %v", chg.ViewSt.Zoom)
	}
}

func TestUnlockedIgnoresEvents(t *testing.T) {
	s, orig, chg := newPair()
	s.SetLocked(false)

	orig.ViewSt = engine.ViewState{Page: 2, Zoom: 2.0}
	orig.Container.SetOffsets(5, 50)
	s.HandleEvent(FromOriginal, engine.PageChanged{Page: 2})
	s.HandleEvent(FromOriginal, engine.PageScrolled{})

	if chg.ViewSt.Page != 0 || chg.ViewSt.Zoom != 1.0 {
		t.Errorf("unlocked sync mutated counterpart state: %+v", chg.ViewSt)
	}
	if l, top := chg.Container.Offsets(); l != 0 || top != 0 {
		t.Errorf("unlocked sync mutated counterpart offsets: (%v,%v)", l, top)
	}

	s.SetLocked(true)
	s.HandleEvent(FromOriginal, engine.PageChanged{Page: 2})
	if chg.ViewSt.Page != 2 {
		t.Errorf("relocking should resume sync, page=%d", chg.ViewSt.Page)
	}
}

// echoView fires a counterpart event whenever its state is set, the way a
// live engine view would once rendering catches up. The guard must absorb
// that echo within the same pass.
type echoView struct {
	*enginetest.FakeView
	echo func()
}

func (v *echoView) SetState(s engine.ViewState) {
	v.FakeView.SetState(s)
	if v.echo != nil {
		v.echo()
	}
}

func TestSyncDoesNotRecurse(t *testing.T) {
	orig := enginetest.NewFakeView("original", 5)
	chg := &echoView{FakeView: enginetest.NewFakeView("changed", 5)}
	s := NewSynchronizer(orig, chg, ImmediateScheduler{})

	passes := 0
	chg.echo = func() {
		passes++
		if passes > 3 {
			t.Fatal("runaway sync recursion")
		}
		s.HandleEvent(FromChanged, engine.PageChanged{Page: chg.ViewSt.Page})
	}

	orig.ViewSt = engine.ViewState{Page: 4, Zoom: 1.0}
	s.HandleEvent(FromOriginal, engine.PageChanged{Page: 4})

	if passes != 1 {
		t.Errorf("expected the echoed event to be swallowed once, got %d passes", passes)
	}
	if len(orig.StateLog) != 0 {
		t.Errorf("echo mutated the source view: %v", orig.StateLog)
	}
}

func TestScrollCoalescedPerFramePerDirection(t *testing.T) {
	orig := enginetest.NewFakeView("original", 5)
	chg := enginetest.NewFakeView("changed", 5)
	sched := &ManualScheduler{}
	s := NewSynchronizer(orig, chg, sched)

	for i := 0; i < 10; i++ {
		s.HandleEvent(FromOriginal, engine.PageScrolled{})
	}
	if sched.Pending() != 1 {
		t.Errorf("expected one queued sync for the direction, got %d", sched.Pending())
	}

	// The other direction gets its own slot.
	s.HandleEvent(FromChanged, engine.PageScrolled{})
	if sched.Pending() != 2 {
		t.Errorf("expected one queued sync per direction, got %d", sched.Pending())
	}

	orig.Container.SetOffsets(0, 123)
	sched.Flush()
	if _, top := chg.Container.Offsets(); top != 123 {
		t.Errorf("flushed sync did not copy offsets, top=%v", top)
	}

	// After the frame flush, new scroll events schedule again.
	s.HandleEvent(FromOriginal, engine.PageScrolled{})
	if sched.Pending() != 1 {
		t.Errorf("coalescing flag not cleared after flush, pending=%d", sched.Pending())
	}
}

func TestScrollToPageSumsPrecedingHeights(t *testing.T) {
	v := enginetest.NewFakeView("original", 5)
	v.ViewSt = engine.ViewState{Page: 0, Zoom: 1.5}

	if err := ScrollToPage(v, 2, 40); err != nil {
		t.Fatalf("ScrollToPage failed: %v", err)
	}

	// Two preceding 792pt pages at 1.5 zoom plus a gap each, plus offset.
	want := 2*(792*1.5+PageGap) + 40
	if len(v.Container.SmoothTargets) != 1 || v.Container.SmoothTargets[0] != want {
		t.Errorf("smooth scroll target = %v, want %v", v.Container.SmoothTargets, want)
	}
	if v.ViewSt.Page != 2 {
		t.Errorf("page state not set explicitly, got %d", v.ViewSt.Page)
	}
	if v.ViewSt.Zoom != 1.5 {
		t.Errorf("zoom must be preserved, got %v", v.ViewSt.Zoom)
	}
}
