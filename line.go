package bgeo

import (
	"fmt"
)

// Line represents a finite line segment from P0 to P1. The direction
// matters for [Line.Divide] and [Line.Eval]; all distance and intersection
// queries treat both directions alike.
type Line struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

// Length returns the length of the segment.
func (l Line) Length() float32 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval evaluates the segment at t, with t = 0 at P0 and t = 1 at P1.
func (l Line) Eval(t float32) Point {
	return l.P0.Lerp(l.P1, t)
}

// Midpoint returns the midpoint of the segment.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// Subdivide splits the segment in half.
func (l Line) Subdivide() (Line, Line) {
	mid := l.Midpoint()
	return Line{l.P0, mid}, Line{mid, l.P1}
}

// ClosestPoint returns the point on the segment nearest to pt.
func (l Line) ClosestPoint(pt Point) Point {
	return ClosestPointOnSegment(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, pt.X, pt.Y)
}

// Distance returns the distance from pt to its closest point on the
// segment.
func (l Line) Distance(pt Point) float32 {
	return SegmentDistance(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, pt.X, pt.Y)
}

// DistanceSquared returns the squared distance from pt to its closest
// point on the segment.
func (l Line) DistanceSquared(pt Point) float32 {
	return SegmentDistanceSquared(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, pt.X, pt.Y)
}

// Intersect returns the intersection point of the two segments, if any.
// See [IntersectSegments].
func (l Line) Intersect(o Line) (Point, bool) {
	return IntersectSegments(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, o.P0.X, o.P0.Y, o.P1.X, o.P1.Y)
}

// IntersectCircle returns the intersection points of the segment and the
// circle. See [IntersectSegmentCircle].
func (l Line) IntersectCircle(c Circle) ([2]Point, int, error) {
	return IntersectSegmentCircle(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, c.Center.X, c.Center.Y, c.Radius)
}

// DistanceToCenter returns the distance from the segment to the circle's
// center. It is not clamped by the radius.
func (l Line) DistanceToCenter(c Circle) float32 {
	return SegmentDistanceToCenter(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, c.Center.X, c.Center.Y)
}

// DistanceToCenterSquared returns the squared distance from the segment to
// the circle's center.
func (l Line) DistanceToCenterSquared(c Circle) float32 {
	return SegmentDistanceToCenterSquared(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, c.Center.X, c.Center.Y)
}

// DistanceToCircle returns the distance from the segment to the circle's
// perimeter. It is zero iff the segment touches or crosses the perimeter.
func (l Line) DistanceToCircle(c Circle) float32 {
	return SegmentDistanceToCircle(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, c.Center.X, c.Center.Y, c.Radius)
}

// DistanceToCircleSquared returns the squared distance from the segment to
// the circle's perimeter.
func (l Line) DistanceToCircleSquared(c Circle) float32 {
	return SegmentDistanceToCircleSquared(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, c.Center.X, c.Center.Y, c.Radius)
}

// Divide divides the segment into n equal parts. See [DivideSegment].
func (l Line) Divide(n int) ([]Point, error) {
	return DivideSegment(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, n)
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%v, %v)", l.P0, l.P1)
}

// ClosestPointOnSegment returns the point on the segment from (ax, ay) to
// (bx, by) that is nearest to the point (px, py). The projection of the
// point onto the segment's supporting line is clamped to the segment. A
// degenerate segment, whose endpoints coincide within [Epsilon], yields
// (ax, ay).
func ClosestPointOnSegment(ax, ay, bx, by, px, py float32) Point {
	dx := bx - ax
	dy := by - ay
	if nearZero(dx) && nearZero(dy) {
		return Pt(ax, ay)
	}

	// Scalar projection of (p-a) onto (b-a), as a fraction of the
	// segment's length.
	u := ((px-ax)*dx + (py-ay)*dy) / (dx*dx + dy*dy)
	if u < 0 {
		return Pt(ax, ay)
	}
	if u > 1 {
		return Pt(bx, by)
	}
	return Pt(ax+u*dx, ay+u*dy)
}

// SegmentDistanceSquared returns the squared distance between the segment
// from (ax, ay) to (bx, by) and the point (px, py).
func SegmentDistanceSquared(ax, ay, bx, by, px, py float32) float32 {
	return ClosestPointOnSegment(ax, ay, bx, by, px, py).DistanceSquared(Pt(px, py))
}

// SegmentDistance returns the distance between the segment from (ax, ay)
// to (bx, by) and the point (px, py).
func SegmentDistance(ax, ay, bx, by, px, py float32) float32 {
	return sqrt32(SegmentDistanceSquared(ax, ay, bx, by, px, py))
}

// IntersectSegments returns the intersection point of the segment from
// (ax, ay) to (bx, by) and the segment from (cx, cy) to (dx, dy), and
// whether one exists. Parallel segments never intersect, including
// collinear segments that overlap.
func IntersectSegments(ax, ay, bx, by, cx, cy, dx, dy float32) (Point, bool) {
	det := (dy-cy)*(bx-ax) - (dx-cx)*(by-ay)
	if abs32(det) < Epsilon {
		// Parallel (or nearly so).
		return Point{}, false
	}

	// Positions of the intersection of the supporting lines along each
	// segment; both must fall inside [0, 1].
	ma := ((dx-cx)*(ay-cy) - (dy-cy)*(ax-cx)) / det
	mb := ((bx-ax)*(ay-cy) - (by-ay)*(ax-cx)) / det
	if ma < 0 || ma > 1 || mb < 0 || mb > 1 {
		return Point{}, false
	}

	return Pt(ax+ma*(bx-ax), ay+ma*(by-ay)), true
}

// IntersectSegmentCircle returns the intersection points of the segment
// from (ax, ay) to (bx, by) and the circle with center (cx, cy) and radius
// r, along with the number of points found: 0, 1, or 2. A segment entirely
// inside the circle does not intersect it. When the segment crosses the
// perimeter once, the single crossing is returned; when it crosses twice,
// the crossing further along the segment's direction comes first.
//
// A degenerate segment yields no intersection. A radius that is not
// positive is an error wrapping [ErrInvalidArgument].
func IntersectSegmentCircle(ax, ay, bx, by, cx, cy, r float32) ([2]Point, int, error) {
	if r <= 0 {
		return [2]Point{}, 0, fmt.Errorf("circle radius must be positive, got %g: %w", r, ErrInvalidArgument)
	}
	if ax == bx && ay == by {
		return [2]Point{}, 0, nil
	}

	rr := r * r
	aInside := (cx-ax)*(cx-ax)+(cy-ay)*(cy-ay) < rr
	bInside := (cx-bx)*(cx-bx)+(cy-by)*(cy-by) < rr
	if aInside && bInside {
		return [2]Point{}, 0, nil
	}

	// Unit direction of the segment and the projected length of the
	// center onto it, measured from (ax, ay).
	seg := Vec(bx-ax, by-ay)
	sl := seg.Hypot()
	dir := seg.Div(sl)
	pl := dir.Dot(Vec(cx-ax, cy-ay))

	// The closest point on the supporting line falls beyond an endpoint
	// that is outside the circle; the segment stops short.
	if (pl < 0 && !aInside) || (pl > sl && !bInside) {
		return [2]Point{}, 0, nil
	}

	closest := Pt(ax, ay).Translate(dir.Mul(pl))
	h2 := rr - closest.DistanceSquared(Pt(cx, cy))
	if h2 < 0 {
		return [2]Point{}, 0, nil
	}

	// The crossings sit at distance h from the closest point, along the
	// segment in both directions (Pythagoras).
	h := sqrt32(h2)
	forward := closest.Translate(dir.Mul(h))
	backward := closest.Translate(dir.Mul(-h))

	switch {
	case aInside:
		return [2]Point{forward}, 1, nil
	case bInside:
		return [2]Point{backward}, 1, nil
	default:
		return [2]Point{forward, backward}, 2, nil
	}
}

// SegmentDistanceToCenter returns the distance between the segment from
// (ax, ay) to (bx, by) and the circle center (cx, cy).
func SegmentDistanceToCenter(ax, ay, bx, by, cx, cy float32) float32 {
	return sqrt32(SegmentDistanceToCenterSquared(ax, ay, bx, by, cx, cy))
}

// SegmentDistanceToCenterSquared returns the squared distance between the
// segment from (ax, ay) to (bx, by) and the circle center (cx, cy).
func SegmentDistanceToCenterSquared(ax, ay, bx, by, cx, cy float32) float32 {
	return ClosestPointOnSegment(ax, ay, bx, by, cx, cy).DistanceSquared(Pt(cx, cy))
}

// SegmentDistanceToCircle returns the distance between the segment from
// (ax, ay) to (bx, by) and the perimeter of the circle with center
// (cx, cy) and radius r.
func SegmentDistanceToCircle(ax, ay, bx, by, cx, cy, r float32) float32 {
	return abs32(SegmentDistanceToCenter(ax, ay, bx, by, cx, cy) - r)
}

// SegmentDistanceToCircleSquared returns the squared distance between the
// segment from (ax, ay) to (bx, by) and the perimeter of the circle with
// center (cx, cy) and radius r. It squares the unsigned perimeter
// distance; it is not distanceToCenter² − r².
func SegmentDistanceToCircleSquared(ax, ay, bx, by, cx, cy, r float32) float32 {
	d := SegmentDistanceToCircle(ax, ay, bx, by, cx, cy, r)
	return d * d
}

// DivideSegment divides the segment from (ax, ay) to (bx, by) into n equal
// parts, returning the n+1 division points from (ax, ay) to (bx, by)
// inclusive. A part count below 1 is an error wrapping
// [ErrInvalidArgument].
func DivideSegment(ax, ay, bx, by float32, n int) ([]Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("number of parts must be at least 1, got %d: %w", n, ErrInvalidArgument)
	}

	l := Line{Pt(ax, ay), Pt(bx, by)}
	points := make([]Point, n+1)
	for i := range points {
		points[i] = l.Eval(float32(i) / float32(n))
	}
	return points, nil
}
