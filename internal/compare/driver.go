package compare

import (
	"context"
	"fmt"

	"github.com/docudiff/docudiff/internal/engine"
	"github.com/docudiff/docudiff/pkg/logging"
)

// DefaultContextWords is the window of surrounding context requested per
// change when the caller does not override it.
const DefaultContextWords = 100

// Driver asks the engine for a per-page text comparison and flattens the
// answer into the operation sequence the aggregator consumes.
type Driver struct {
	Engine       engine.Engine
	OriginalPath string
	ChangedPath  string
	ContextWords int
}

// ComparePage runs the comparison for one page and returns its delete and
// insert operations in order. Equal operations are dropped here. A result
// without the expected hunk collection contributes zero changes; the page
// is skipped with a warning rather than failing the run.
func (d *Driver) ComparePage(ctx context.Context, page int) ([]engine.Operation, error) {
	words := d.ContextWords
	if words <= 0 {
		words = DefaultContextWords
	}

	result, err := d.Engine.Compare(ctx, engine.CompareRequest{
		OriginalPath: d.OriginalPath,
		ChangedPath:  d.ChangedPath,
		Page:         page,
		ContextWords: words,
	})
	if err != nil {
		return nil, fmt.Errorf("compare page %d: %v", page, err)
	}

	if result.Hunks == nil {
		logging.Component("compare").Warnf("page %d: comparison result carries no hunks, skipping", page)
		return nil, nil
	}

	var ops []engine.Operation
	for _, hunk := range result.Hunks {
		for _, op := range hunk.Operations {
			if op.Kind == engine.OpEqual {
				continue
			}
			ops = append(ops, op)
		}
	}
	return ops, nil
}
