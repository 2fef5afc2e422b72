package bgeo_test

import (
	"fmt"

	"github.com/Ale-/bgeo"
)

func ExampleIntersectSegmentCircle() {
	// A horizontal segment passing straight through a circle.
	pts, n, err := bgeo.IntersectSegmentCircle(0, 0, 10, 0, 5, 0, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(pts[:n])
	// Output:
	// [(8, 0) (2, 0)]
}

func ExampleLine_Divide() {
	l := bgeo.Line{P0: bgeo.Pt(0, 0), P1: bgeo.Pt(10, 0)}
	pts, err := l.Divide(4)
	if err != nil {
		panic(err)
	}
	fmt.Println(pts)
	// Output:
	// [(0, 0) (2.5, 0) (5, 0) (7.5, 0) (10, 0)]
}

func ExampleCircle_Intersect() {
	a := bgeo.Circle{Center: bgeo.Pt(0, 0), Radius: 5}
	b := bgeo.Circle{Center: bgeo.Pt(8, 0), Radius: 5}
	pts, n := a.Intersect(b)
	fmt.Println(pts[:n])
	// Output:
	// [(4, 3) (4, -3)]
}
