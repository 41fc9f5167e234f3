// Package viewsync keeps the two document views aligned in page, zoom and
// scroll offset without feedback loops.
package viewsync

import (
	"github.com/docudiff/docudiff/internal/engine"
	"github.com/docudiff/docudiff/pkg/logging"
)

// Direction identifies which view an event came from.
type Direction int

const (
	FromOriginal Direction = iota
	FromChanged
)

func (d Direction) String() string {
	if d == FromOriginal {
		return "original"
	}
	return "changed"
}

// syncState is the reentrancy guard. Events arriving while a pass is
// active are ignored, so copying state to the counterpart view can never
// trigger a second pass.
type syncState int

const (
	syncIdle syncState = iota
	syncActive
)

// Synchronizer mirrors page, zoom and scroll state between the original
// and changed views, bidirectionally, subject to a user-togglable lock.
type Synchronizer struct {
	Original engine.View
	Changed  engine.View

	scheduler FrameScheduler
	state     syncState
	locked    bool

	// pendingFrame coalesces scroll syncs to one per frame per direction.
	pendingFrame [2]bool
}

// NewSynchronizer returns a locked synchronizer using the given frame
// scheduler.
func NewSynchronizer(original, changed engine.View, scheduler FrameScheduler) *Synchronizer {
	if scheduler == nil {
		scheduler = ImmediateScheduler{}
	}
	return &Synchronizer{
		Original:  original,
		Changed:   changed,
		scheduler: scheduler,
		locked:    true,
	}
}

// Attach subscribes the synchronizer to both views' events.
func (s *Synchronizer) Attach() {
	s.Original.Subscribe(func(ev engine.Event) { s.HandleEvent(FromOriginal, ev) })
	s.Changed.Subscribe(func(ev engine.Event) { s.HandleEvent(FromChanged, ev) })
}

// SetLocked toggles synchronization. While unlocked, events from either
// view leave the counterpart untouched.
func (s *Synchronizer) SetLocked(locked bool) { s.locked = locked }

// Locked reports the current lock state.
func (s *Synchronizer) Locked() bool { return s.locked }

// HandleEvent reacts to a scroll, page-change or zoom-change event from
// one view. Scroll events are deferred to the next frame, at most one
// per direction; page and zoom changes synchronize immediately.
func (s *Synchronizer) HandleEvent(source Direction, ev engine.Event) {
	switch ev.(type) {
	case engine.PageScrolled:
		if s.pendingFrame[source] {
			return
		}
		s.pendingFrame[source] = true
		s.scheduler.Schedule(func() {
			s.pendingFrame[source] = false
			s.syncPass(source)
		})
	case engine.PageChanged, engine.ZoomChanged:
		s.syncPass(source)
	}
}

// syncPass copies the source view's state onto the target. Page index
// wins first: a page navigation implicitly resets scroll, so zoom and
// offsets are only copied when the pages already agree.
func (s *Synchronizer) syncPass(source Direction) {
	if !s.locked || s.state == syncActive {
		return
	}
	s.state = syncActive
	defer func() { s.state = syncIdle }()

	src, dst := s.Original, s.Changed
	if source == FromChanged {
		src, dst = s.Changed, s.Original
	}

	srcState := src.State()
	dstState := dst.State()

	if srcState.Page != dstState.Page {
		dst.SetState(dstState.WithPage(srcState.Page))
		return
	}

	if srcState.Zoom != dstState.Zoom {
		dst.SetState(dstState.WithZoom(srcState.Zoom))
	}

	srcC := src.ScrollContainer()
	dstC := dst.ScrollContainer()
	if srcC == nil || dstC == nil {
		logging.Component("viewsync").Warnf("scroll container missing (%s view not rendered yet), skipping offset sync", source)
		return
	}
	left, top := srcC.Offsets()
	dstC.SetOffsets(left, top)
}
