package bgeo

import (
	"fmt"
	"math"
)

// Circle represents a circle with a center point and a radius.
type Circle struct {
	Center Point
	Radius float32
}

// ClosestPoint returns the point on the circle's perimeter nearest to pt.
func (c Circle) ClosestPoint(pt Point) Point {
	return ClosestPointOnCircle(c.Center.X, c.Center.Y, c.Radius, pt.X, pt.Y)
}

// Intersects reports whether c and o intersect, including exact tangency.
func (c Circle) Intersects(o Circle) bool {
	return CirclesIntersect(c.Center.X, c.Center.Y, c.Radius, o.Center.X, o.Center.Y, o.Radius)
}

// Intersect returns the intersection points of c and o. See
// [IntersectCircles].
func (c Circle) Intersect(o Circle) ([2]Point, int) {
	return IntersectCircles(c.Center.X, c.Center.Y, c.Radius, o.Center.X, o.Center.Y, o.Radius)
}

// Contains reports whether pt lies strictly inside the circle. Points on
// the perimeter are not contained.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius
}

func (c Circle) Area() float32 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Circumference() float32 {
	return abs32(2 * math.Pi * c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(float64(c.Radius), 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || c.Radius != c.Radius
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(%v, %g)", c.Center, c.Radius)
}

// ClosestPointOnCircle returns the point on the perimeter of the circle
// with center (cx, cy) and radius r that is nearest to the point (px, py):
// the center offset by r along the normalized center-to-point direction.
//
// If the point coincides with the center the direction is undefined, and
// the point on the perimeter at angle 0, (cx+r, cy), is returned.
func ClosestPointOnCircle(cx, cy, r, px, py float32) Point {
	dx := px - cx
	dy := py - cy
	d := hypot32(dx, dy)
	if d < Epsilon {
		return Pt(cx+r, cy)
	}
	return Pt(cx+dx/d*r, cy+dy/d*r)
}

// CirclesIntersect reports whether the circle with center (ax, ay) and
// radius ar intersects the circle with center (bx, by) and radius br.
// Tangent circles intersect; a circle strictly containing the other does
// not. The comparison allows Epsilon slack at both ends of the range, so
// exact tangency is always detected.
func CirclesIntersect(ax, ay, ar, bx, by, br float32) bool {
	d := hypot32(bx-ax, by-ay)
	return d <= ar+br+Epsilon && d+Epsilon >= abs32(ar-br)
}

// IntersectCircles returns the intersection points of the circle with
// center (ax, ay) and radius ar and the circle with center (bx, by) and
// radius br, along with the number of points found: 2 if the circles
// intersect, 0 otherwise. Tangent circles yield two coincident points.
//
// Circles with coincident centers report no intersection, even when their
// radii are equal.
func IntersectCircles(ax, ay, ar, bx, by, br float32) ([2]Point, int) {
	dx := bx - ax
	dy := by - ay
	d := hypot32(dx, dy)

	if !CirclesIntersect(ax, ay, ar, bx, by, br) || d < Epsilon {
		return [2]Point{}, 0
	}

	// Radical line construction: w is the signed distance from the first
	// center to the radical line along the center-to-center axis, h the
	// half-chord length.
	w := (ar*ar - br*br + d*d) / (2 * d)
	h := sqrt32(max(ar*ar-w*w, 0))
	axis := Pt(ax+dx*(w/d), ay+dy*(w/d))
	offset := Vec(dx, dy).Perp().Mul(h / d)

	return [2]Point{
		axis.Translate(offset),
		axis.Translate(offset.Negate()),
	}, 2
}
