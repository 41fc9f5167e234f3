package engine

// Event is a notification from one view instance. Concrete types below.
type Event interface {
	isEvent()
}

// PageScrolled fires when the user scrolls the view's container.
type PageScrolled struct{}

// PageChanged fires when the view's current page index changes.
type PageChanged struct {
	Page int
}

// ZoomChanged fires when the view's zoom factor changes.
type ZoomChanged struct {
	Zoom float64
}

// AnnotationClicked fires when the user clicks an annotation in the view.
type AnnotationClicked struct {
	ID string
}

func (PageScrolled) isEvent()      {}
func (PageChanged) isEvent()       {}
func (ZoomChanged) isEvent()       {}
func (AnnotationClicked) isEvent() {}

// EventHandler receives events from a view.
type EventHandler func(Event)
