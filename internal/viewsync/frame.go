package viewsync

// FrameScheduler abstracts "run this on the next rendering frame". The
// browser front end maps it onto requestAnimationFrame; tests and the CLI
// run callbacks immediately or flush them by hand.
type FrameScheduler interface {
	Schedule(fn func())
}

// ImmediateScheduler runs callbacks synchronously. Used where no real
// rendering loop exists.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Schedule(fn func()) { fn() }

// ManualScheduler queues callbacks until Flush is called, standing in for
// the frame boundary in tests.
type ManualScheduler struct {
	queue []func()
}

func (m *ManualScheduler) Schedule(fn func()) {
	m.queue = append(m.queue, fn)
}

// Pending returns the number of queued callbacks.
func (m *ManualScheduler) Pending() int { return len(m.queue) }

// Flush runs and drains everything queued so far.
func (m *ManualScheduler) Flush() {
	q := m.queue
	m.queue = nil
	for _, fn := range q {
		fn()
	}
}
