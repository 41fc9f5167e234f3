package geometry

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle in a page-local coordinate space,
// origin at the top-left, units in page points.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether the rectangle carries no geometry at all.
func (r Rect) IsZero() bool {
	return r.Left == 0 && r.Top == 0 && r.Width == 0 && r.Height == 0
}

// Key builds the coordinate key for the rectangle: the rounded (x,y)
// origin joined with a comma. Changes at the same text-block origin map
// to the same key.
func (r Rect) Key() string {
	return fmt.Sprintf("%d,%d", int(math.Round(r.Left)), int(math.Round(r.Top)))
}

// Expand grows the rectangle by d units on each side.
func (r Rect) Expand(d float64) Rect {
	return Rect{
		Left:   r.Left - d,
		Top:    r.Top - d,
		Width:  r.Width + 2*d,
		Height: r.Height + 2*d,
	}
}

// Scale multiplies all components by z (used when mapping page points to
// rendered pixels at the current zoom).
func (r Rect) Scale(z float64) Rect {
	return Rect{
		Left:   r.Left * z,
		Top:    r.Top * z,
		Width:  r.Width * z,
		Height: r.Height * z,
	}
}

// Union returns the smallest rectangle covering both r and other. A zero
// rectangle acts as the identity.
func (r Rect) Union(other Rect) Rect {
	if r.IsZero() {
		return other
	}
	if other.IsZero() {
		return r
	}
	left := math.Min(r.Left, other.Left)
	top := math.Min(r.Top, other.Top)
	right := math.Max(r.Left+r.Width, other.Left+other.Width)
	bottom := math.Max(r.Top+r.Height, other.Top+other.Height)
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}
