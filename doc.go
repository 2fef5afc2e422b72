// Package bgeo provides closed-form routines for basic 2D geometry on
// circles and line segments. It was designed to serve the needs of
// creative-coding sketches that answer a handful of geometric questions
// per frame, but the routines are general enough to be useful elsewhere.
//
// # Shapes
//
// The package is built around two value types, [Circle] and [Line], over a
// shared [Point] and [Vec2] foundation. A Line is always a finite segment,
// never an infinite line.
//
// Each operation exists in two forms: a package-level function taking raw
// coordinates, such as [IntersectSegmentCircle], and a method on the value
// type, such as [Line.IntersectCircle], that forwards to it. The methods
// are for callers holding shapes; the functions are for callers holding
// coordinates, as sketch code usually does.
//
// # Operations
//
// We provide the following queries:
//
//   - Closest point on a circle or segment to an external point (see
//     [ClosestPointOnCircle], [ClosestPointOnSegment])
//   - Point-to-segment distance (see [SegmentDistance])
//   - Circle-circle intersection (see [IntersectCircles])
//   - Segment-segment intersection (see [IntersectSegments])
//   - Segment-circle intersection and distance (see
//     [IntersectSegmentCircle], [SegmentDistanceToCircle])
//   - Uniform segment subdivision (see [DivideSegment])
//
// # Precision and tolerance
//
// All geometry is single-precision. Near-zero quantities are compared
// against the fixed [Epsilon] tolerance; results are accurate to a few
// float32 ulps and no robustness beyond that is attempted. Non-finite
// inputs are not validated and propagate NaN through the arithmetic.
//
// Intersection queries report valid absence through a count or boolean.
// Only arguments outside an operation's domain, such as a non-positive
// radius, produce an error, which wraps [ErrInvalidArgument].
//
// All operations are pure functions of their inputs and are safe for
// concurrent use.
package bgeo
