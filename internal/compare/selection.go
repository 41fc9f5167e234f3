package compare

import (
	"errors"
	"fmt"

	"github.com/docudiff/docudiff/internal/engine"
	"github.com/docudiff/docudiff/internal/geometry"
	"github.com/docudiff/docudiff/pkg/logging"
)

// Selection draws the border around the currently focused change and
// owns the border annotations so they can be removed when the focus
// moves on.
type Selection struct {
	Original engine.View
	Changed  engine.View

	borderIDs []string
}

// Clear deletes the previous selection's border annotations. Each id
// lives in exactly one of the two views, so deletion is attempted against
// both and a not-found answer is expected and ignored.
func (s *Selection) Clear() {
	for _, id := range s.borderIDs {
		for _, v := range []engine.View{s.Original, s.Changed} {
			if v == nil {
				continue
			}
			if err := v.DeleteAnnotation(id); err != nil && !errors.Is(err, engine.ErrAnnotationNotFound) {
				logging.Component("compare").Warnf("delete selection border %s: %v", id, err)
			}
		}
	}
	s.borderIDs = nil
}

// Apply moves the selection border to the given change: clears the old
// border, then draws a stroke-only rectangle around each rect the change
// carries, expanded by BorderPadding on every side.
func (s *Selection) Apply(c *ChangeOperation) error {
	s.Clear()
	if c == nil {
		return nil
	}

	if c.Deleted && !c.OriginalRect.IsZero() {
		id, err := s.Original.CreateAnnotation(borderAnnotation(c.Page, c.OriginalRect))
		if err != nil {
			return fmt.Errorf("create selection border: %v", err)
		}
		s.borderIDs = append(s.borderIDs, id)
	}
	if c.Inserted && !c.ChangedRect.IsZero() {
		id, err := s.Changed.CreateAnnotation(borderAnnotation(c.Page, c.ChangedRect))
		if err != nil {
			return fmt.Errorf("create selection border: %v", err)
		}
		s.borderIDs = append(s.borderIDs, id)
	}
	return nil
}

// BorderIDs returns the live border annotation ids.
func (s *Selection) BorderIDs() []string {
	return append([]string(nil), s.borderIDs...)
}

func borderAnnotation(page int, r geometry.Rect) engine.Annotation {
	return engine.Annotation{
		Type:        engine.AnnotationRectangle,
		Page:        page,
		Rect:        r.Expand(BorderPadding),
		Color:       SelectionColor,
		StrokeOnly:  true,
		StrokeWidth: 2,
	}
}
