package svgcut

import (
	"testing"
)

func TestExtract_OneSubpathPerMove(t *testing.T) {
	src := SourcePath{
		Transform: Identity(),
		Commands: []PathCommand{
			MoveTo{Point: Pt(0, 0)},
			LineTo{Point: Pt(10, 0)},
			MoveTo{Point: Pt(20, 0)},
			LineTo{Point: Pt(30, 0)},
			MoveTo{Point: Pt(40, 0)},
			LineTo{Point: Pt(50, 0)},
		},
	}

	subs := Extractor{}.Extract(src)
	if len(subs) != 3 {
		t.Fatalf("got %d subpaths, want 3 (one per move)", len(subs))
	}
	for i, s := range subs {
		if len(s) != 2 {
			t.Errorf("subpath %d has %d points, want 2", i, len(s))
		}
	}
}

func TestExtract_LineCommands(t *testing.T) {
	src := SourcePath{
		Transform: Identity(),
		Commands: []PathCommand{
			MoveTo{Point: Pt(1, 1)},
			LineTo{Point: Pt(5, 1)},
			HLineTo{X: 9},
			VLineTo{Y: 4},
			ClosePath{},
		},
	}

	subs := Extractor{}.Extract(src)
	if len(subs) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(subs))
	}
	want := Subpath{Pt(1, 1), Pt(5, 1), Pt(9, 1), Pt(9, 4), Pt(1, 1)}
	if len(subs[0]) != len(want) {
		t.Fatalf("got %d points, want %d: %v", len(subs[0]), len(want), subs[0])
	}
	for i := range want {
		if !pointsEqual(subs[0][i], want[i], epsilon) {
			t.Errorf("point %d = %v, want %v", i, subs[0][i], want[i])
		}
	}
}

func TestExtract_TransformAndUnitScale(t *testing.T) {
	src := SourcePath{
		Transform: Translate(10, 20),
		Commands: []PathCommand{
			MoveTo{Point: Pt(0, 0)},
			LineTo{Point: Pt(4, 0)},
		},
	}

	// Transform first, then divide by the unit scale.
	subs := Extractor{UnitScale: 2}.Extract(src)
	if len(subs) != 1 || len(subs[0]) != 2 {
		t.Fatalf("unexpected extraction result: %v", subs)
	}
	if !pointsEqual(subs[0][0], Pt(5, 10), epsilon) {
		t.Errorf("start = %v, want (5, 10)", subs[0][0])
	}
	if !pointsEqual(subs[0][1], Pt(7, 10), epsilon) {
		t.Errorf("end = %v, want (7, 10)", subs[0][1])
	}
}

func TestExtract_RotatedHLine(t *testing.T) {
	// H/V coordinates live in path space; the transform applies to
	// the completed point.
	src := SourcePath{
		Transform: Scale(1, -1),
		Commands: []PathCommand{
			MoveTo{Point: Pt(0, 2)},
			HLineTo{X: 6},
		},
	}
	subs := Extractor{}.Extract(src)
	if !pointsEqual(subs[0][1], Pt(6, -2), epsilon) {
		t.Errorf("point = %v, want (6, -2)", subs[0][1])
	}
}

func TestExtract_CubicFlattened(t *testing.T) {
	src := SourcePath{
		Transform: Identity(),
		Commands: []PathCommand{
			MoveTo{Point: Pt(0, 0)},
			CubicTo{Control1: Pt(10, 40), Control2: Pt(30, 40), Point: Pt(40, 0)},
		},
	}

	subs := Extractor{Deviation: 0.1}.Extract(src)
	if len(subs) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(subs))
	}
	pts := subs[0]
	if len(pts) < 4 {
		t.Fatalf("curve flattened to %d points, want several", len(pts))
	}
	if !pointsEqual(pts[0], Pt(0, 0), epsilon) || !pointsEqual(pts[len(pts)-1], Pt(40, 0), epsilon) {
		t.Errorf("endpoints %v..%v, want (0,0)..(40,0)", pts[0], pts[len(pts)-1])
	}
}

func TestExtract_SmoothCubicReflection(t *testing.T) {
	// An S command after a C must behave exactly like the explicit
	// cubic whose first control point is the previous second control
	// point reflected through the join.
	smooth := SourcePath{
		Transform: Identity(),
		Commands: []PathCommand{
			MoveTo{Point: Pt(0, 0)},
			CubicTo{Control1: Pt(5, 10), Control2: Pt(15, 10), Point: Pt(20, 0)},
			SmoothCubicTo{Control2: Pt(35, -10), Point: Pt(40, 0)},
		},
	}
	explicit := SourcePath{
		Transform: Identity(),
		Commands: []PathCommand{
			MoveTo{Point: Pt(0, 0)},
			CubicTo{Control1: Pt(5, 10), Control2: Pt(15, 10), Point: Pt(20, 0)},
			// Reflection of (15,10) through (20,0) is (25,-10).
			CubicTo{Control1: Pt(25, -10), Control2: Pt(35, -10), Point: Pt(40, 0)},
		},
	}

	got := Extractor{}.Extract(smooth)
	want := Extractor{}.Extract(explicit)
	if len(got) != 1 || len(want) != 1 || len(got[0]) != len(want[0]) {
		t.Fatalf("point counts differ: got %d, want %d", len(got[0]), len(want[0]))
	}
	for i := range want[0] {
		if !pointsEqual(got[0][i], want[0][i], epsilon) {
			t.Errorf("point %d = %v, want %v", i, got[0][i], want[0][i])
		}
	}
}

func TestExtract_SmoothWithoutPriorControl(t *testing.T) {
	// With no prior curve, the smooth control collapses onto the
	// current point (zero-length handle).
	smooth := SourcePath{
		Transform: Identity(),
		Commands: []PathCommand{
			MoveTo{Point: Pt(0, 0)},
			SmoothQuadTo{Point: Pt(10, 0)},
		},
	}
	subs := Extractor{}.Extract(smooth)
	// Control == start makes the quadratic a straight segment.
	pts := subs[0]
	for _, p := range pts {
		if p.Y != 0 {
			t.Fatalf("expected straight segment on y=0, got %v", pts)
		}
	}
	if !pointsEqual(pts[len(pts)-1], Pt(10, 0), epsilon) {
		t.Errorf("end = %v, want (10, 0)", pts[len(pts)-1])
	}
}

func TestExtract_ArcLinearSteps(t *testing.T) {
	src := SourcePath{
		Transform: Identity(),
		Commands: []PathCommand{
			MoveTo{Point: Pt(0, 0)},
			ArcTo{RX: 5, RY: 5, Point: Pt(10, 0)},
		},
	}

	subs := Extractor{ArcSteps: 5}.Extract(src)
	pts := subs[0]
	if len(pts) != 6 {
		t.Fatalf("got %d points, want 1 start + 5 steps", len(pts))
	}
	for i, p := range pts {
		want := Pt(float64(i)*2, 0)
		if !pointsEqual(p, want, epsilon) {
			t.Errorf("step %d = %v, want %v", i, p, want)
		}
	}
}

func TestExtract_DegenerateTransformSkipped(t *testing.T) {
	src := SourcePath{
		Transform: Scale(0, 0),
		Commands: []PathCommand{
			MoveTo{Point: Pt(0, 0)},
			LineTo{Point: Pt(10, 0)},
		},
	}
	if subs := (Extractor{}).Extract(src); subs != nil {
		t.Errorf("got %v, want nil for degenerate transform", subs)
	}
}

func TestExtract_DoesNotMutateSource(t *testing.T) {
	cmds := []PathCommand{
		MoveTo{Point: Pt(1, 2)},
		LineTo{Point: Pt(3, 4)},
	}
	src := SourcePath{Transform: Translate(5, 5), Commands: cmds}
	Extractor{UnitScale: 10}.Extract(src)

	if cmds[0].(MoveTo).Point != Pt(1, 2) || cmds[1].(LineTo).Point != Pt(3, 4) {
		t.Errorf("source commands were mutated: %v", cmds)
	}
}
