package svgcut

import (
	"math"
	"testing"
)

// polylineDistance returns the distance from p to the nearest segment
// of the polyline.
func polylineDistance(p Point, line []Point) float64 {
	best := math.Inf(1)
	for i := 1; i < len(line); i++ {
		if d := DistanceToSegment(p, line[i-1], line[i]); d < best {
			best = d
		}
	}
	return best
}

func TestFlattenCubic_DeviationBound(t *testing.T) {
	curves := []struct {
		name string
		c    CubicBez
	}{
		{"arch", CubicBez{P0: Pt(0, 0), P1: Pt(10, 40), P2: Pt(30, 40), P3: Pt(40, 0)}},
		{"s-curve", CubicBez{P0: Pt(0, 0), P1: Pt(50, 0), P2: Pt(0, 20), P3: Pt(50, 20)}},
		{"loop", CubicBez{P0: Pt(0, 0), P1: Pt(60, 30), P2: Pt(-20, 30), P3: Pt(40, 0)}},
	}
	deviations := []float64{0.5, 0.1, 0.01}

	for _, tc := range curves {
		for _, dev := range deviations {
			pts := FlattenCubic(tc.c, dev)
			if len(pts) < 2 {
				t.Fatalf("%s dev=%v: got %d points, want >= 2", tc.name, dev, len(pts))
			}
			if !pointsEqual(pts[0], tc.c.P0, epsilon) || !pointsEqual(pts[len(pts)-1], tc.c.P3, epsilon) {
				t.Errorf("%s dev=%v: endpoints %v..%v, want %v..%v",
					tc.name, dev, pts[0], pts[len(pts)-1], tc.c.P0, tc.c.P3)
			}
			// Every point on the true curve must lie within the
			// deviation of the output polyline.
			for i := 0; i <= 1000; i++ {
				u := float64(i) / 1000
				if d := polylineDistance(tc.c.Eval(u), pts); d > dev*(1+1e-9) {
					t.Fatalf("%s dev=%v: curve point at t=%v is %v from polyline", tc.name, dev, u, d)
				}
			}
		}
	}
}

func TestFlattenCubic_LooserDeviationFewerPoints(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(10, 40), P2: Pt(30, 40), P3: Pt(40, 0)}
	fine := FlattenCubic(c, 0.01)
	coarse := FlattenCubic(c, 1.0)
	if len(coarse) >= len(fine) {
		t.Errorf("coarse flattening has %d points, fine has %d; want fewer", len(coarse), len(fine))
	}
}

func TestFlattenCubic_Degenerate(t *testing.T) {
	p := Pt(3, 7)
	pts := FlattenCubic(CubicBez{P0: p, P1: p, P2: p, P3: p}, 0.1)
	if len(pts) != 2 {
		t.Fatalf("got %d points, want exactly 2", len(pts))
	}
	if !pointsEqual(pts[0], p, epsilon) || !pointsEqual(pts[1], p, epsilon) {
		t.Errorf("got %v, want two copies of %v", pts, p)
	}
}

func TestFlattenCubic_NoConsecutiveDuplicates(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(10, 40), P2: Pt(30, 40), P3: Pt(40, 0)}
	pts := FlattenCubic(c, 0.05)
	for i := 1; i < len(pts); i++ {
		if pointsEqual(pts[i-1], pts[i], 1e-12) {
			t.Fatalf("duplicate consecutive point at %d: %v", i, pts[i])
		}
	}
}

func TestFlattenQuad_MatchesQuadratic(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(10, 20), P2: Pt(20, 0)}
	pts := FlattenQuad(q, 0.05)

	if !pointsEqual(pts[0], q.P0, epsilon) || !pointsEqual(pts[len(pts)-1], q.P2, epsilon) {
		t.Fatalf("endpoints %v..%v, want %v..%v", pts[0], pts[len(pts)-1], q.P0, q.P2)
	}
	for i := 0; i <= 200; i++ {
		u := float64(i) / 200
		if d := polylineDistance(q.Eval(u), pts); d > 0.05*(1+1e-9) {
			t.Fatalf("quad point at t=%v is %v from polyline", u, d)
		}
	}
}

func TestDistanceToSegment(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"perpendicular", Pt(5, 3), Pt(0, 0), Pt(10, 0), 3},
		{"beyond start", Pt(-4, 0), Pt(0, 0), Pt(10, 0), 4},
		{"beyond end", Pt(13, 4), Pt(0, 0), Pt(10, 0), 5},
		{"degenerate segment", Pt(3, 4), Pt(0, 0), Pt(0, 0), 5},
		{"on segment", Pt(5, 0), Pt(0, 0), Pt(10, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceToSegment(tt.p, tt.a, tt.b)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("DistanceToSegment = %v, want %v", got, tt.want)
			}
		})
	}
}
