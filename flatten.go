package svgcut

// DefaultDeviation is the default maximum chordal error, in
// working-area units, when flattening a curve to line segments. Small
// enough to be mechanically negligible on a cutting bed; callers can
// trade accuracy for point count through the deviation parameter.
const DefaultDeviation = 0.1

// FlattenCubic converts a cubic Bezier into a polyline whose chordal
// error stays within deviation. The result starts at c.P0 and ends at
// c.P3; shared subdivision midpoints appear once. A degenerate curve
// (all control points equal) returns exactly the two endpoints.
func FlattenCubic(c CubicBez, deviation float64) []Point {
	if deviation <= 0 {
		deviation = DefaultDeviation
	}
	points := make([]Point, 0, 8)
	points = append(points, c.P0)
	flattenCubicRec(c, deviation, &points)
	return points
}

// FlattenQuad converts a quadratic Bezier into a polyline by raising
// it to its exact cubic representation and flattening that.
func FlattenQuad(q QuadBez, deviation float64) []Point {
	return FlattenCubic(q.Raise(), deviation)
}

// flattenCubicRec recursively subdivides until both interior control
// points sit within deviation of the start-end chord, then emits the
// segment's end point.
func flattenCubicRec(c CubicBez, deviation float64, points *[]Point) {
	d1 := DistanceToSegment(c.P1, c.P0, c.P3)
	d2 := DistanceToSegment(c.P2, c.P0, c.P3)

	if d1 < deviation && d2 < deviation {
		*points = append(*points, c.P3)
		return
	}

	left, right := c.Subdivide()
	flattenCubicRec(left, deviation, points)
	flattenCubicRec(right, deviation, points)
}

// DistanceToSegment returns the distance from point p to the line
// segment (a, b). The projection parameter is clamped to the segment,
// so endpoints bound the result.
func DistanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLenSq := ab.Dot(ab)

	if abLenSq < 1e-20 {
		// Segment is a point.
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / abLenSq
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	return p.Distance(a.Add(ab.Mul(t)))
}
