package svgcut

import "testing"

func toolpathEqual(t *testing.T, got Toolpath, want []Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("toolpath has %d points, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !pointsEqual(got[i], want[i], epsilon) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStitch_SingleSubpathUnchanged(t *testing.T) {
	sub := Subpath{Pt(0, 0), Pt(5, 5), Pt(10, 0)}
	tps := Stitch([]Subpath{sub}, 0.3)

	if len(tps) != 1 {
		t.Fatalf("got %d toolpaths, want 1", len(tps))
	}
	toolpathEqual(t, tps[0], sub)
}

func TestStitch_GapJoins(t *testing.T) {
	// Gap of 0.1 is within tolerance but above the dedup epsilon, so
	// no point is dropped.
	a := Subpath{Pt(0, 0), Pt(10, 0)}
	b := Subpath{Pt(10.1, 0), Pt(20, 0)}
	tps := Stitch([]Subpath{a, b}, 0.3)

	if len(tps) != 1 {
		t.Fatalf("got %d toolpaths, want 1", len(tps))
	}
	toolpathEqual(t, tps[0], []Point{Pt(0, 0), Pt(10, 0), Pt(10.1, 0), Pt(20, 0)})
}

func TestStitch_ToleranceBoundary(t *testing.T) {
	a := Subpath{Pt(0, 0), Pt(10, 0)}

	t.Run("exactly at tolerance stays split", func(t *testing.T) {
		b := Subpath{Pt(10.3, 0), Pt(20, 0)}
		if tps := Stitch([]Subpath{a, b}, 0.3); len(tps) != 2 {
			t.Errorf("got %d toolpaths, want 2 (strict inequality)", len(tps))
		}
	})

	t.Run("just inside tolerance joins", func(t *testing.T) {
		b := Subpath{Pt(10.3-1e-9, 0), Pt(20, 0)}
		if tps := Stitch([]Subpath{a, b}, 0.3); len(tps) != 1 {
			t.Errorf("got %d toolpaths, want 1", len(tps))
		}
	})
}

func TestStitch_ReversesWhenEndIsNearer(t *testing.T) {
	a := Subpath{Pt(0, 0), Pt(10, 0)}
	b := Subpath{Pt(20, 0), Pt(10.1, 0)} // authored backwards
	tps := Stitch([]Subpath{a, b}, 0.3)

	if len(tps) != 1 {
		t.Fatalf("got %d toolpaths, want 1", len(tps))
	}
	toolpathEqual(t, tps[0], []Point{Pt(0, 0), Pt(10, 0), Pt(10.1, 0), Pt(20, 0)})
}

func TestStitch_DedupesCoincidentJoin(t *testing.T) {
	a := Subpath{Pt(0, 0), Pt(10, 0)}
	b := Subpath{Pt(10, 0), Pt(20, 0)} // shares the join point exactly
	tps := Stitch([]Subpath{a, b}, 0.3)

	if len(tps) != 1 {
		t.Fatalf("got %d toolpaths, want 1", len(tps))
	}
	toolpathEqual(t, tps[0], []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)})
}

func TestStitch_DropsUndrawableSubpaths(t *testing.T) {
	tps := Stitch([]Subpath{
		{Pt(50, 50)}, // single point, no drawable segment
		{Pt(0, 0), Pt(10, 0)},
		{}, // empty
	}, 0.3)

	if len(tps) != 1 {
		t.Fatalf("got %d toolpaths, want 1", len(tps))
	}
	toolpathEqual(t, tps[0], []Point{Pt(0, 0), Pt(10, 0)})
}

func TestStitch_SeedsWithLongestSubpath(t *testing.T) {
	short := Subpath{Pt(100, 100), Pt(101, 100)}
	long := Subpath{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	tps := Stitch([]Subpath{short, long}, 0.3)

	if len(tps) != 2 {
		t.Fatalf("got %d toolpaths, want 2", len(tps))
	}
	if len(tps[0]) != len(long) {
		t.Errorf("first toolpath has %d points, want the longest subpath first (%d)", len(tps[0]), len(long))
	}
}

func TestStitch_DeterministicAcrossInputOrder(t *testing.T) {
	subs := []Subpath{
		{Pt(0, 0), Pt(10, 0)},
		{Pt(10.1, 0), Pt(20, 0)},
		{Pt(30, 5), Pt(40, 5)},
		{Pt(20.1, 0), Pt(25, 0)},
	}
	shuffled := []Subpath{subs[2], subs[0], subs[3], subs[1]}

	a := Stitch(subs, 0.3)
	b := Stitch(shuffled, 0.3)
	if len(a) != len(b) {
		t.Fatalf("toolpath counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		toolpathEqual(t, b[i], a[i])
	}
}

func TestStitch_PreservesInternalOrder(t *testing.T) {
	a := Subpath{Pt(0, 0), Pt(3, 1), Pt(6, -1), Pt(10, 0)}
	b := Subpath{Pt(10.1, 0), Pt(12, 3), Pt(15, 0)}
	tps := Stitch([]Subpath{a, b}, 0.3)

	if len(tps) != 1 {
		t.Fatalf("got %d toolpaths, want 1", len(tps))
	}
	want := append(append([]Point{}, a...), b...)
	toolpathEqual(t, tps[0], want)
}

func TestStitch_EmptyInput(t *testing.T) {
	if tps := Stitch(nil, 0.3); tps != nil {
		t.Errorf("got %v, want nil", tps)
	}
}
