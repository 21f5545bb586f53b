package svgcut

import "sort"

const (
	// DefaultStitchTolerance is the default maximum endpoint gap, in
	// working-area units, treated as a continuous join rather than a
	// break.
	DefaultStitchTolerance = 0.3

	// JoinEpsilon is the near-zero gap below which the duplicated
	// leading point of a joined subpath is dropped. Replaces the
	// original's implicit floating-point equality check.
	JoinEpsilon = 1e-6
)

// Stitch merges same-role subpaths into the fewest continuous
// toolpaths a greedy nearest-endpoint chain can reach.
//
// Input subpaths are first sorted by their first point (x, then y) so
// output order is reproducible for identical input. Each chain is
// seeded with the remaining subpath holding the most points, then
// repeatedly extended with the pool subpath whose nearest endpoint is
// strictly within tolerance of the chain's last point, reversed when
// its end rather than its start was nearer. A chain ends when no pool
// subpath is close enough.
//
// Stitching never fabricates geometry beyond the direct join between
// the chosen endpoints, and preserves each subpath's internal point
// order except for the single flip decision. Subpaths with fewer than
// two points carry no drawable segment and are dropped.
func Stitch(subpaths []Subpath, tolerance float64) []Toolpath {
	if tolerance <= 0 {
		tolerance = DefaultStitchTolerance
	}

	pool := make([]Subpath, 0, len(subpaths))
	for _, s := range subpaths {
		if len(s) >= 2 {
			pool = append(pool, s)
		}
	}
	if len(pool) == 0 {
		return nil
	}

	sort.Slice(pool, func(i, j int) bool {
		a, b := pool[i][0], pool[j][0]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	// Seed chains with the longest fragments to avoid starting from
	// tiny slivers. Stable sort keeps the positional order above as
	// the tie-break.
	sort.SliceStable(pool, func(i, j int) bool {
		return len(pool[i]) > len(pool[j])
	})

	var toolpaths []Toolpath
	for len(pool) > 0 {
		chain := append(Toolpath(nil), pool[0]...)
		pool = pool[1:]

		for len(pool) > 0 {
			idx, dist, reverse := nearestEndpoint(pool, chain[len(chain)-1])
			if dist >= tolerance {
				break
			}
			next := pool[idx]
			pool = append(pool[:idx], pool[idx+1:]...)
			if reverse {
				next = reversed(next)
			}
			if next[0].Distance(chain[len(chain)-1]) < JoinEpsilon {
				next = next[1:]
			}
			chain = append(chain, next...)
		}

		toolpaths = append(toolpaths, chain)
	}
	return toolpaths
}

// nearestEndpoint scans the pool for the subpath whose start or end
// point is closest to last. Ties go to the first candidate seen in
// pool order; a subpath's end point wins over its own start only by
// being strictly closer. reverse is true when the end point won.
func nearestEndpoint(pool []Subpath, last Point) (idx int, dist float64, reverse bool) {
	idx = -1
	for i, s := range pool {
		dStart := s[0].Distance(last)
		dEnd := s[len(s)-1].Distance(last)
		if idx < 0 || dStart < dist {
			idx, dist, reverse = i, dStart, false
		}
		if dEnd < dist {
			idx, dist, reverse = i, dEnd, true
		}
	}
	return idx, dist, reverse
}

// reversed returns a reversed copy; the input subpath is shared
// immutable data and is never flipped in place.
func reversed(s Subpath) Subpath {
	out := make(Subpath, len(s))
	for i, p := range s {
		out[len(s)-1-i] = p
	}
	return out
}
