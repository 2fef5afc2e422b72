package bgeo

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, 4), Pt(4, 5).Sub(Pt(1, 1)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, 4)
	diff(t, a, a.Lerp(b, 0))
	diff(t, b, a.Lerp(b, 1))
	diff(t, Pt(5, 2), a.Lerp(b, 0.5))
	diff(t, a.Midpoint(b), a.Lerp(b, 0.5))
}

func TestVec2Products(t *testing.T) {
	v := Vec(3, 4)
	o := Vec(-4, 3)
	if d := v.Dot(o); d != 0 {
		t.Errorf("got dot product %v, want 0", d)
	}
	if c := v.Cross(o); c != 25 {
		t.Errorf("got cross product %v, want 25", c)
	}
	diff(t, o, v.Perp())
}

func TestVec2Normalize(t *testing.T) {
	n := Vec(3, 4).Normalize()
	diff(t, Vec(0.6, 0.8), n, cmpopts.EquateApprox(0, 1e-6))
	if h := n.Hypot(); abs32(h-1) > Epsilon {
		t.Errorf("got magnitude %v, want 1", h)
	}

	if !Vec(0, 0).Normalize().IsNaN() {
		t.Error("normalizing the zero vector should produce NaN")
	}
}

func TestPointIsInf(t *testing.T) {
	if Pt(0, 0).IsInf() {
		t.Error("point is infinite but shouldn't be")
	}
	if !Pt(float32(math.Inf(1)), 0).IsInf() {
		t.Error("point is finite but shouldn't be")
	}
	if !Pt(0, float32(math.NaN())).IsNaN() {
		t.Error("point is not NaN but should be")
	}
}
