package localengine

import (
	"sort"
	"strings"

	"rsc.io/pdf"

	"github.com/docudiff/docudiff/internal/geometry"
)

// word is one positioned word on a page, in top-left page coordinates.
type word struct {
	text string
	rect geometry.Rect
}

// lineTolerance is how far apart two baselines can be (in points) and
// still count as the same text line.
const lineTolerance = 2.0

// mediaBox walks the page tree upwards until it finds a MediaBox.
func mediaBox(p pdf.Page) pdf.Value {
	v := p.V
	for !v.IsNull() {
		if mb := v.Key("MediaBox"); !mb.IsNull() {
			return mb
		}
		v = v.Key("Parent")
	}
	return pdf.Value{}
}

// pageSize returns the page dimensions in points, defaulting to US
// Letter when the page carries no MediaBox.
func pageSize(p pdf.Page) (width, height float64) {
	mb := mediaBox(p)
	if mb.IsNull() || mb.Len() < 4 {
		return 612, 792
	}
	x0 := mb.Index(0).Float64()
	y0 := mb.Index(1).Float64()
	x1 := mb.Index(2).Float64()
	y1 := mb.Index(3).Float64()
	return x1 - x0, y1 - y0
}

// extractWords pulls the positioned words of one page (0-based index).
// Glyph runs are sorted into reading order, split on spaces, and clustered
// into words; the y axis is flipped so rectangles use top-left origins.
func extractWords(r *pdf.Reader, page int) []word {
	if page < 0 || page >= r.NumPage() {
		return nil
	}
	p := r.Page(page + 1)
	if p.V.IsNull() {
		return nil
	}
	_, pageHeight := pageSize(p)

	texts := p.Content().Text
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if diff := sorted[i].Y - sorted[j].Y; diff > lineTolerance || diff < -lineTolerance {
			return sorted[i].Y > sorted[j].Y // higher on the page first
		}
		return sorted[i].X < sorted[j].X
	})

	var words []word
	var cur strings.Builder
	var curRect geometry.Rect
	var lastEnd, lastY float64

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		words = append(words, word{text: cur.String(), rect: curRect})
		cur.Reset()
		curRect = geometry.Rect{}
	}

	for _, t := range sorted {
		if t.S == "" {
			continue
		}
		newLine := cur.Len() > 0 && (t.Y-lastY > lineTolerance || lastY-t.Y > lineTolerance)
		// A gap wider than a third of the font size separates words even
		// without an explicit space glyph.
		gap := cur.Len() > 0 && !newLine && t.X-lastEnd > t.FontSize/3
		if newLine || gap {
			flush()
		}

		top := pageHeight - t.Y - t.FontSize
		perRune := t.W
		runes := []rune(t.S)
		if len(runes) > 0 {
			perRune = t.W / float64(len(runes))
		}

		x := t.X
		for _, g := range runes {
			if g == ' ' || g == '\t' || g == '\n' {
				flush()
				x += perRune
				continue
			}
			if cur.Len() == 0 {
				curRect = geometry.Rect{Left: x, Top: top, Width: 0, Height: t.FontSize}
			}
			cur.WriteRune(g)
			x += perRune
			curRect = curRect.Union(geometry.Rect{Left: curRect.Left, Top: top, Width: x - curRect.Left, Height: t.FontSize})
		}
		lastEnd = t.X + t.W
		lastY = t.Y
	}
	flush()

	return words
}
