package viewsync

import (
	"fmt"

	"github.com/docudiff/docudiff/internal/engine"
	"github.com/docudiff/docudiff/pkg/logging"
)

// PageGap is the rendered gap between consecutive pages, in pixels.
const PageGap = 16.0

// ScrollToPage navigates a view to an absolute offset: the summed
// rendered heights of all preceding pages (scaled by the current zoom)
// plus the inter-page gap, plus offsetPx into the target page. The
// view-state page is set explicitly as well, so pager controls stay
// consistent before rendering catches up with the scroll.
func ScrollToPage(v engine.View, page int, offsetPx float64) error {
	state := v.State()

	top := 0.0
	for p := 0; p < page; p++ {
		info, err := v.PageInfo(p)
		if err != nil {
			return fmt.Errorf("page info for page %d: %v", p, err)
		}
		top += info.Height*state.Zoom + PageGap
	}
	top += offsetPx

	if c := v.ScrollContainer(); c != nil {
		c.SmoothScrollTo(top)
	} else {
		logging.Component("viewsync").Warn("scroll container missing, page set without scrolling")
	}

	v.SetState(state.WithPage(page))
	return nil
}
