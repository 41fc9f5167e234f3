// Package enginetest provides in-memory fakes of the engine interfaces
// for driving the viewer core in tests.
package enginetest

import (
	"context"
	"fmt"

	"github.com/docudiff/docudiff/internal/engine"
)

// FakeScrollContainer records offsets written to it.
type FakeScrollContainer struct {
	Left, Top     float64
	SmoothTargets []float64
}

func (c *FakeScrollContainer) Offsets() (float64, float64) { return c.Left, c.Top }

func (c *FakeScrollContainer) SetOffsets(left, top float64) {
	c.Left = left
	c.Top = top
}

func (c *FakeScrollContainer) SmoothScrollTo(top float64) {
	c.Top = top
	c.SmoothTargets = append(c.SmoothTargets, top)
}

// FakeView is a scriptable engine.View.
type FakeView struct {
	Name     string
	Pages    int
	Infos    map[int]engine.PageInfo
	ViewSt   engine.ViewState
	StateLog []engine.ViewState

	Annotations map[string]engine.Annotation
	Deleted     []string
	nextID      int

	Container *FakeScrollContainer
	Unloaded  bool

	handlers []engine.EventHandler
}

// NewFakeView returns a view with the given page count, 612x792 pages,
// zoom 1.0 and a live scroll container.
func NewFakeView(name string, pages int) *FakeView {
	infos := make(map[int]engine.PageInfo, pages)
	for i := 0; i < pages; i++ {
		infos[i] = engine.PageInfo{Width: 612, Height: 792}
	}
	return &FakeView{
		Name:        name,
		Pages:       pages,
		Infos:       infos,
		ViewSt:      engine.ViewState{Page: 0, Zoom: 1.0},
		Annotations: make(map[string]engine.Annotation),
		Container:   &FakeScrollContainer{},
	}
}

func (v *FakeView) Unload()                 { v.Unloaded = true }
func (v *FakeView) State() engine.ViewState { return v.ViewSt }

func (v *FakeView) SetState(s engine.ViewState) {
	v.ViewSt = s
	v.StateLog = append(v.StateLog, s)
}

func (v *FakeView) PageCount() int { return v.Pages }

func (v *FakeView) PageInfo(page int) (engine.PageInfo, error) {
	info, ok := v.Infos[page]
	if !ok {
		return engine.PageInfo{}, fmt.Errorf("no such page: %d", page)
	}
	return info, nil
}

func (v *FakeView) CreateAnnotation(a engine.Annotation) (string, error) {
	v.nextID++
	id := fmt.Sprintf("%s-annot-%d", v.Name, v.nextID)
	v.Annotations[id] = a
	return id, nil
}

func (v *FakeView) DeleteAnnotation(id string) error {
	if _, ok := v.Annotations[id]; !ok {
		return engine.ErrAnnotationNotFound
	}
	delete(v.Annotations, id)
	v.Deleted = append(v.Deleted, id)
	return nil
}

func (v *FakeView) ScrollContainer() engine.ScrollContainer {
	if v.Container == nil {
		return nil
	}
	return v.Container
}

func (v *FakeView) Subscribe(h engine.EventHandler) {
	v.handlers = append(v.handlers, h)
}

// Fire delivers an event to all subscribers, as the engine would.
func (v *FakeView) Fire(ev engine.Event) {
	for _, h := range v.handlers {
		h(ev)
	}
}

// FakeEngine serves scripted comparison results keyed by page index.
type FakeEngine struct {
	PagesPerDoc int
	Results     map[int]engine.CompareResult
	CompareErr  error
	Loaded      []*FakeView
	Requests    []engine.CompareRequest
}

func NewFakeEngine(pages int) *FakeEngine {
	return &FakeEngine{
		PagesPerDoc: pages,
		Results:     make(map[int]engine.CompareResult),
	}
}

func (e *FakeEngine) LoadDocument(ctx context.Context, path, containerID string) (engine.View, error) {
	v := NewFakeView(containerID, e.PagesPerDoc)
	e.Loaded = append(e.Loaded, v)
	return v, nil
}

func (e *FakeEngine) Compare(ctx context.Context, req engine.CompareRequest) (engine.CompareResult, error) {
	e.Requests = append(e.Requests, req)
	if e.CompareErr != nil {
		return engine.CompareResult{}, e.CompareErr
	}
	return e.Results[req.Page], nil
}
