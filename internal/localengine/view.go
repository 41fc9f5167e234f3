package localengine

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"rsc.io/pdf"

	"github.com/docudiff/docudiff/internal/engine"
)

// memScrollContainer mirrors the browser pane's scroll offsets on the
// server side so the synchronizer has a container to read and write.
type memScrollContainer struct {
	mu        sync.Mutex
	left, top float64
}

func (c *memScrollContainer) Offsets() (float64, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left, c.top
}

func (c *memScrollContainer) SetOffsets(left, top float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left = left
	c.top = top
}

func (c *memScrollContainer) SmoothScrollTo(top float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.top = top
}

// View is one loaded document. Annotations live in memory for the
// lifetime of the load; ids are uuids.
type View struct {
	mu          sync.Mutex
	reader      *pdf.Reader
	path        string
	containerID string
	state       engine.ViewState
	annots      map[string]engine.Annotation
	container   *memScrollContainer
	handlers    []engine.EventHandler
	unloaded    bool
}

func newView(reader *pdf.Reader, path, containerID string) *View {
	return &View{
		reader:      reader,
		path:        path,
		containerID: containerID,
		state:       engine.ViewState{Page: 0, Zoom: 1.0},
		annots:      make(map[string]engine.Annotation),
		container:   &memScrollContainer{},
	}
}

func (v *View) Unload() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.unloaded = true
	v.annots = make(map[string]engine.Annotation)
	v.handlers = nil
}

func (v *View) State() engine.ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View) SetState(s engine.ViewState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = s
}

func (v *View) PageCount() int {
	return v.reader.NumPage()
}

func (v *View) PageInfo(page int) (engine.PageInfo, error) {
	if page < 0 || page >= v.reader.NumPage() {
		return engine.PageInfo{}, fmt.Errorf("no such page: %d", page)
	}
	w, h := pageSize(v.reader.Page(page + 1))
	return engine.PageInfo{Width: w, Height: h}, nil
}

func (v *View) CreateAnnotation(a engine.Annotation) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.unloaded {
		return "", fmt.Errorf("view %s is unloaded", v.containerID)
	}
	id := uuid.New().String()
	v.annots[id] = a
	return id, nil
}

func (v *View) DeleteAnnotation(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.annots[id]; !ok {
		return engine.ErrAnnotationNotFound
	}
	delete(v.annots, id)
	return nil
}

// Annotations returns a snapshot of the live annotations keyed by id,
// for rendering overlays in the browser.
func (v *View) Annotations() map[string]engine.Annotation {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[string]engine.Annotation, len(v.annots))
	for id, a := range v.annots {
		out[id] = a
	}
	return out
}

func (v *View) ScrollContainer() engine.ScrollContainer {
	return v.container
}

func (v *View) Subscribe(h engine.EventHandler) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.handlers = append(v.handlers, h)
}

// Dispatch delivers an event coming from the browser front end to all
// subscribers.
func (v *View) Dispatch(ev engine.Event) {
	v.mu.Lock()
	handlers := append([]engine.EventHandler(nil), v.handlers...)
	v.mu.Unlock()
	for _, h := range handlers {
		h(ev)
	}
}
