// Package controller owns one comparison run: the two views, the global
// change index, the annotation lookup and the current selection.
package controller

import (
	"context"
	"fmt"

	"github.com/docudiff/docudiff/internal/compare"
	"github.com/docudiff/docudiff/internal/engine"
	"github.com/docudiff/docudiff/internal/viewsync"
	"github.com/docudiff/docudiff/pkg/logging"
)

// Controller orchestrates the comparison of one document pair and the
// sidebar interaction over its changes. All accumulated state (change
// index, annotation lookup, selection) belongs to the current run and is
// rebuilt whenever CompareDocuments is invoked again.
type Controller struct {
	Engine       engine.Engine
	OriginalPath string
	ChangedPath  string
	ContextWords int
	Scheduler    viewsync.FrameScheduler

	OriginalView engine.View
	ChangedView  engine.View
	Sync         *viewsync.Synchronizer

	changes   *compare.ChangeIndex
	ordered   []*compare.ChangeOperation
	lookup    map[string]int
	selection *compare.Selection
	selected  int
}

// New returns a controller for the given document pair.
func New(eng engine.Engine, originalPath, changedPath string, contextWords int, scheduler viewsync.FrameScheduler) *Controller {
	return &Controller{
		Engine:       eng,
		OriginalPath: originalPath,
		ChangedPath:  changedPath,
		ContextWords: contextWords,
		Scheduler:    scheduler,
		selected:     -1,
	}
}

// CompareDocuments loads both documents, compares every page in sequence
// and rebuilds the change index and annotation lookup. Any previously
// loaded views are unloaded first.
func (c *Controller) CompareDocuments(ctx context.Context) error {
	log := logging.Component("controller")

	if c.OriginalView != nil {
		c.OriginalView.Unload()
	}
	if c.ChangedView != nil {
		c.ChangedView.Unload()
	}

	var err error
	c.OriginalView, err = c.Engine.LoadDocument(ctx, c.OriginalPath, "original-view")
	if err != nil {
		return fmt.Errorf("load original document: %v", err)
	}
	c.ChangedView, err = c.Engine.LoadDocument(ctx, c.ChangedPath, "changed-view")
	if err != nil {
		return fmt.Errorf("load changed document: %v", err)
	}

	c.Sync = viewsync.NewSynchronizer(c.OriginalView, c.ChangedView, c.Scheduler)
	c.Sync.Attach()
	c.OriginalView.Subscribe(c.annotationClickHandler())
	c.ChangedView.Subscribe(c.annotationClickHandler())

	c.changes = compare.NewChangeIndex()
	c.selection = &compare.Selection{Original: c.OriginalView, Changed: c.ChangedView}
	c.selected = -1

	driver := &compare.Driver{
		Engine:       c.Engine,
		OriginalPath: c.OriginalPath,
		ChangedPath:  c.ChangedPath,
		ContextWords: c.ContextWords,
	}
	agg := &compare.Aggregator{Original: c.OriginalView, Changed: c.ChangedView}

	pages := c.OriginalView.PageCount()
	if n := c.ChangedView.PageCount(); n > pages {
		pages = n
	}

	// Pages are processed strictly one at a time.
	for page := 0; page < pages; page++ {
		ops, err := driver.ComparePage(ctx, page)
		if err != nil {
			return err
		}
		if len(ops) == 0 {
			continue
		}
		pageIndex, err := agg.ProcessPage(ops, page)
		if err != nil {
			return err
		}
		c.changes.MergeFrom(pageIndex)
	}

	c.rebuildLookup()
	log.Infof("comparison complete: %d pages, %d changes", pages, c.changes.Len())
	return nil
}

// rebuildLookup flattens the change index in insertion order and maps
// every annotation id back to its change's position.
func (c *Controller) rebuildLookup() {
	c.ordered = c.changes.Flatten()
	c.lookup = make(map[string]int)
	for i, ch := range c.ordered {
		for _, id := range ch.AnnotationIDs {
			c.lookup[id] = i
		}
	}
}

// ChangeCount returns the number of changes in the current run.
func (c *Controller) ChangeCount() int { return len(c.ordered) }

// SelectedIndex returns the focused change index, or -1.
func (c *Controller) SelectedIndex() int { return c.selected }

// Change returns the i-th change in sidebar order, or nil.
func (c *Controller) Change(i int) *compare.ChangeOperation {
	if i < 0 || i >= len(c.ordered) {
		return nil
	}
	return c.ordered[i]
}

// Select focuses the i-th change: scrolls both views to its page and
// moves the selection border there.
func (c *Controller) Select(i int) error {
	ch := c.Change(i)
	if ch == nil {
		return fmt.Errorf("change index out of range: %d", i)
	}
	c.selected = i

	if err := viewsync.ScrollToPage(c.OriginalView, ch.Page, scrollOffsetFor(c.OriginalView, ch.OriginalRect.Top)); err != nil {
		return err
	}
	if err := viewsync.ScrollToPage(c.ChangedView, ch.Page, scrollOffsetFor(c.ChangedView, ch.ChangedRect.Top)); err != nil {
		return err
	}
	return c.selection.Apply(ch)
}

// SelectAnnotation focuses the change owning the clicked annotation, if
// any.
func (c *Controller) SelectAnnotation(id string) error {
	i, ok := c.lookup[id]
	if !ok {
		return nil
	}
	return c.Select(i)
}

// Next advances the selection; at the last change it is a no-op.
func (c *Controller) Next() error {
	if len(c.ordered) == 0 {
		return nil
	}
	if c.selected >= len(c.ordered)-1 {
		return nil
	}
	return c.Select(c.selected + 1)
}

// Prev moves the selection back; at index 0 it is a no-op.
func (c *Controller) Prev() error {
	if c.selected <= 0 {
		return nil
	}
	return c.Select(c.selected - 1)
}

func (c *Controller) annotationClickHandler() engine.EventHandler {
	return func(ev engine.Event) {
		if click, ok := ev.(engine.AnnotationClicked); ok {
			if err := c.SelectAnnotation(click.ID); err != nil {
				logging.Component("controller").Warnf("select annotation %s: %v", click.ID, err)
			}
		}
	}
}

// scrollOffsetFor positions the change a bit below the pane top. A zero
// rect (the change has no geometry on this side) scrolls to the page top.
func scrollOffsetFor(v engine.View, rectTop float64) float64 {
	const margin = 40
	off := (rectTop - margin) * v.State().Zoom
	if off < 0 {
		return 0
	}
	return off
}
