// Package engine defines the narrow adapter interface this application
// needs from a PDF rendering/comparison engine. The viewer core only ever
// talks to these interfaces, so it can run against the bundled local
// engine or a fake in tests.
package engine

import (
	"context"
	"errors"

	"github.com/docudiff/docudiff/internal/geometry"
)

// ErrAnnotationNotFound is returned by DeleteAnnotation when the id does
// not belong to this view. Callers that hold ids from both views delete
// against each view in turn and ignore this error.
var ErrAnnotationNotFound = errors.New("annotation not found")

// AnnotationType selects the kind of markup drawn on a page.
type AnnotationType string

const (
	AnnotationHighlight AnnotationType = "highlight"
	AnnotationRectangle AnnotationType = "rectangle"
)

// Color is an opaque RGB color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Annotation describes one piece of page markup to create.
type Annotation struct {
	Type  AnnotationType `json:"type"`
	Page  int            `json:"page"`
	Rect  geometry.Rect  `json:"rect"`
	Color Color          `json:"color"`
	// StrokeOnly draws the outline without filling (selection borders).
	StrokeOnly  bool    `json:"stroke_only"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
}

// ViewState is the engine's display state for one view instance. Values
// are copied, never mutated in place; use WithPage/WithZoom to derive an
// updated state.
type ViewState struct {
	Page int     `json:"page"`
	Zoom float64 `json:"zoom"`
}

// WithPage returns a copy of the state on a different page.
func (s ViewState) WithPage(page int) ViewState {
	s.Page = page
	return s
}

// WithZoom returns a copy of the state at a different zoom factor.
func (s ViewState) WithZoom(zoom float64) ViewState {
	s.Zoom = zoom
	return s
}

// PageInfo carries the dimensions of one page in page points.
type PageInfo struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ScrollContainer is the scrollable element backing a view. It may not
// exist until the engine has rendered at least once.
type ScrollContainer interface {
	Offsets() (left, top float64)
	SetOffsets(left, top float64)
	SmoothScrollTo(top float64)
}

// View is one rendered document viewport.
type View interface {
	Unload()
	State() ViewState
	SetState(ViewState)
	PageCount() int
	PageInfo(page int) (PageInfo, error)
	CreateAnnotation(a Annotation) (string, error)
	DeleteAnnotation(id string) error
	// ScrollContainer returns nil until the view has rendered.
	ScrollContainer() ScrollContainer
	Subscribe(h EventHandler)
}

// Engine loads documents into views and runs text comparisons.
type Engine interface {
	LoadDocument(ctx context.Context, path, containerID string) (View, error)
	Compare(ctx context.Context, req CompareRequest) (CompareResult, error)
}
