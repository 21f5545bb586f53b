package svgcut

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func TestCubicBez_EvalEndpoints(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(1, 2), P2: Pt(3, 2), P3: Pt(4, 0)}

	if !pointsEqual(c.Eval(0), c.P0, epsilon) {
		t.Errorf("Eval(0) = %v, want %v", c.Eval(0), c.P0)
	}
	if !pointsEqual(c.Eval(1), c.P3, epsilon) {
		t.Errorf("Eval(1) = %v, want %v", c.Eval(1), c.P3)
	}
}

func TestCubicBez_Subdivide(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(1, 3), P2: Pt(5, 3), P3: Pt(6, 0)}
	left, right := c.Subdivide()

	if !pointsEqual(left.P0, c.P0, epsilon) {
		t.Errorf("left start = %v, want %v", left.P0, c.P0)
	}
	if !pointsEqual(right.P3, c.P3, epsilon) {
		t.Errorf("right end = %v, want %v", right.P3, c.P3)
	}

	mid := c.Eval(0.5)
	if !pointsEqual(left.P3, mid, epsilon) {
		t.Errorf("left end = %v, want curve midpoint %v", left.P3, mid)
	}
	if !pointsEqual(right.P0, mid, epsilon) {
		t.Errorf("right start = %v, want curve midpoint %v", right.P0, mid)
	}

	// Both halves trace the same curve.
	for _, tt := range []float64{0.1, 0.25, 0.4} {
		want := c.Eval(tt)
		got := left.Eval(tt * 2)
		if !pointsEqual(got, want, 1e-9) {
			t.Errorf("left.Eval(%v) = %v, want %v", tt*2, got, want)
		}
	}
}

func TestQuadBez_Raise(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(2, 4), P2: Pt(4, 0)}
	c := q.Raise()

	if !pointsEqual(c.P0, q.P0, epsilon) || !pointsEqual(c.P3, q.P2, epsilon) {
		t.Fatalf("Raise endpoints = %v..%v, want %v..%v", c.P0, c.P3, q.P0, q.P2)
	}

	// The raised cubic is an exact representation of the quadratic.
	for _, tt := range []float64{0, 0.2, 0.5, 0.7, 1} {
		want := q.Eval(tt)
		got := c.Eval(tt)
		if !pointsEqual(got, want, 1e-9) {
			t.Errorf("raised.Eval(%v) = %v, want %v", tt, got, want)
		}
	}
}

func TestRect_Center(t *testing.T) {
	r := NewRect(Pt(2, 4), Pt(10, 8))
	if !pointsEqual(r.Center(), Pt(6, 6), epsilon) {
		t.Errorf("Center() = %v, want (6, 6)", r.Center())
	}
}

func TestRect_UnionGrows(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(1, 1)).Union(NewRect(Pt(5, -2), Pt(5, -2)))
	if !pointsEqual(r.Min, Pt(0, -2), epsilon) || !pointsEqual(r.Max, Pt(5, 1), epsilon) {
		t.Errorf("Union = %v, want Min(0,-2) Max(5,1)", r)
	}
}
