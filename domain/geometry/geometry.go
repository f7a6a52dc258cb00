package geometry

import (
	"image"
	"math"
)

// Point is a position in logical (DPI independent) units.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Size is an extent in logical units.
type Size struct {
	W float64
	H float64
}

// Rect is an axis-aligned rectangle in logical units. Every Rect produced by
// Normalize or the methods below satisfies Min <= Max on both axes; callers
// must not hand-build rects that violate that.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Normalize returns the rectangle spanned by two arbitrary points, such as the
// start and end of a drag in any direction. p1 == p2 yields a zero-area rect.
func Normalize(p1, p2 Point) Rect {
	return Rect{
		MinX: math.Min(p1.X, p2.X),
		MinY: math.Min(p1.Y, p2.Y),
		MaxX: math.Max(p1.X, p2.X),
		MaxY: math.Max(p1.Y, p2.Y),
	}
}

// FromPosSize builds a Rect from a top-left position and a size. Negative
// sizes are normalized the same way a reversed drag is.
func FromPosSize(pos Point, size Size) Rect {
	return Normalize(pos, Point{X: pos.X + size.W, Y: pos.Y + size.H})
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }
func (r Rect) Area() float64   { return r.Width() * r.Height() }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Contains reports whether p lies inside r. The minimum edges are inclusive
// and the maximum edges exclusive, so a point on a shared edge between two
// adjacent rectangles hits exactly one of them.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

// Scale multiplies every coordinate by the per-axis factors, converting
// logical coordinates to physical pixels under DPI scaling.
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{MinX: r.MinX * sx, MinY: r.MinY * sy, MaxX: r.MaxX * sx, MaxY: r.MaxY * sy}
}

// Translate shifts the rectangle by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Inflate grows the rectangle by d on every side. Used to widen hit areas for
// stroked shapes. Negative d shrinks; the result is re-normalized so it never
// inverts.
func (r Rect) Inflate(d float64) Rect {
	return Normalize(
		Point{X: r.MinX - d, Y: r.MinY - d},
		Point{X: r.MaxX + d, Y: r.MaxY + d},
	)
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Pixels converts a physical-coordinate rectangle to integer pixel bounds.
// Each coordinate rounds half away from zero (math.Round); this is the single
// place fractional DPI results meet the pixel grid, so cropping and
// compositing agree on the same rule.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Round(r.MinX)), int(math.Round(r.MinY)),
		int(math.Round(r.MaxX)), int(math.Round(r.MaxY)),
	)
}

// FromImageRect converts integer pixel bounds back to a Rect.
func FromImageRect(ir image.Rectangle) Rect {
	return Rect{
		MinX: float64(ir.Min.X), MinY: float64(ir.Min.Y),
		MaxX: float64(ir.Max.X), MaxY: float64(ir.Max.Y),
	}
}
