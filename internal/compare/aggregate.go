package compare

import (
	"fmt"

	"github.com/docudiff/docudiff/internal/engine"
)

// Highlight colors are fixed to match the comparison UI.
var (
	DeleteColor    = engine.Color{R: 255, G: 201, B: 203}
	InsertColor    = engine.Color{R: 192, G: 216, B: 239}
	SelectionColor = engine.Color{R: 59, G: 130, B: 246}
)

// BorderPadding is how far the selection border extends beyond the
// highlighted rectangle, in page points.
const BorderPadding = 3.0

// Aggregator turns the filtered operation sequence of one page into a
// ChangeIndex and creates the matching highlight annotations in the two
// views.
type Aggregator struct {
	Original engine.View
	Changed  engine.View
}

// ProcessPage walks ops with a cursor. A delete immediately followed by
// an insert is one replacement entry; everything else is a standalone
// delete or insert merged into any entry already at its coordinate key.
func (a *Aggregator) ProcessPage(ops []engine.Operation, page int) (*ChangeIndex, error) {
	index := NewChangeIndex()

	i := 0
	for i < len(ops) {
		op := ops[i]

		if op.Kind == engine.OpDelete && i+1 < len(ops) && ops[i+1].Kind == engine.OpInsert {
			if err := a.addReplacement(index, op, ops[i+1], page); err != nil {
				return nil, err
			}
			i += 2
			continue
		}

		if err := a.addSingle(index, op, page); err != nil {
			return nil, err
		}
		i++
	}

	return index, nil
}

func (a *Aggregator) addReplacement(index *ChangeIndex, del, ins engine.Operation, page int) error {
	delID, err := a.Original.CreateAnnotation(engine.Annotation{
		Type:  engine.AnnotationHighlight,
		Page:  page,
		Rect:  del.OriginalRect,
		Color: DeleteColor,
	})
	if err != nil {
		return fmt.Errorf("create delete highlight: %v", err)
	}
	insID, err := a.Changed.CreateAnnotation(engine.Annotation{
		Type:  engine.AnnotationHighlight,
		Page:  page,
		Rect:  ins.ChangedRect,
		Color: InsertColor,
	})
	if err != nil {
		return fmt.Errorf("create insert highlight: %v", err)
	}

	index.Put(del.OriginalRect.Key(), &ChangeOperation{
		DeleteText:    del.Text,
		InsertText:    ins.Text,
		Deleted:       true,
		Inserted:      true,
		Page:          page,
		OriginalRect:  del.OriginalRect,
		ChangedRect:   ins.ChangedRect,
		AnnotationIDs: []string{delID, insID},
	})
	return nil
}

func (a *Aggregator) addSingle(index *ChangeIndex, op engine.Operation, page int) error {
	switch op.Kind {
	case engine.OpDelete:
		id, err := a.Original.CreateAnnotation(engine.Annotation{
			Type:  engine.AnnotationHighlight,
			Page:  page,
			Rect:  op.OriginalRect,
			Color: DeleteColor,
		})
		if err != nil {
			return fmt.Errorf("create delete highlight: %v", err)
		}
		index.Put(op.OriginalRect.Key(), &ChangeOperation{
			DeleteText:    op.Text,
			Deleted:       true,
			Page:          page,
			OriginalRect:  op.OriginalRect,
			AnnotationIDs: []string{id},
		})

	case engine.OpInsert:
		id, err := a.Changed.CreateAnnotation(engine.Annotation{
			Type:  engine.AnnotationHighlight,
			Page:  page,
			Rect:  op.ChangedRect,
			Color: InsertColor,
		})
		if err != nil {
			return fmt.Errorf("create insert highlight: %v", err)
		}
		index.Put(op.ChangedRect.Key(), &ChangeOperation{
			InsertText:    op.Text,
			Inserted:      true,
			Page:          page,
			ChangedRect:   op.ChangedRect,
			AnnotationIDs: []string{id},
		})
	}
	return nil
}
