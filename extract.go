package svgcut

// DefaultArcSteps is the number of evenly spaced linear interpolation
// steps used to approximate an elliptical arc command. Arcs are not
// modeled as true ellipses; substituting real arc flattening behind
// ArcTo is an equivalent-or-better alternative.
const DefaultArcSteps = 5

// Extractor walks a source path's command sequence and produces the
// polylines it draws, one Subpath per pen-down run. Zero values fall
// back to DefaultDeviation, DefaultArcSteps and a unit scale of 1.
type Extractor struct {
	// Deviation is the maximum chordal error for curve flattening,
	// in working-area units.
	Deviation float64
	// ArcSteps is the number of line steps per arc command.
	ArcSteps int
	// UnitScale is the divisor converting document units to
	// working-area units (document units per millimeter).
	UnitScale float64
}

// Extract converts one source path into subpaths. Each MoveTo starts a
// new subpath; curved commands are flattened; ClosePath repeats the
// subpath's first point. The composed transform is applied and every
// coordinate divided by the unit scale. Paths with a degenerate
// transform are skipped with a warning rather than aborting the run.
// The source path is never mutated.
func (e Extractor) Extract(src SourcePath) []Subpath {
	deviation := e.Deviation
	if deviation <= 0 {
		deviation = DefaultDeviation
	}
	arcSteps := e.ArcSteps
	if arcSteps <= 0 {
		arcSteps = DefaultArcSteps
	}
	scale := e.UnitScale
	if scale <= 0 {
		scale = 1
	}

	if src.Transform.IsDegenerate() {
		Logger().Warn("skipping path with degenerate transform")
		return nil
	}

	// toWork maps a path-space point into working-area units.
	toWork := func(p Point) Point {
		return src.Transform.TransformPoint(p).Div(scale)
	}

	var (
		subpaths []Subpath
		current  Subpath
		cur      Point  // current point in path space, for H/V
		start    Point  // current subpath start in path space
		last     Point  // current point in working space
		lastCtrl *Point // final control point of the previous curve
	)

	flush := func() {
		if len(current) >= 1 {
			subpaths = append(subpaths, current)
		}
		current = nil
	}

	// reflectCtrl returns the first control point for a smooth curve
	// command: the previous control point mirrored through the
	// current point, or the current point itself (a zero-length
	// handle) when the previous segment left no control point.
	reflectCtrl := func() Point {
		if lastCtrl == nil {
			return last
		}
		return Point{X: 2*last.X - lastCtrl.X, Y: 2*last.Y - lastCtrl.Y}
	}

	appendCurve := func(c CubicBez) {
		pts := FlattenCubic(c, deviation)
		current = append(current, pts[1:]...) // start point is already in the subpath
	}

	for _, cmd := range src.Commands {
		switch c := cmd.(type) {
		case MoveTo:
			flush()
			cur = c.Point
			start = cur
			last = toWork(cur)
			current = Subpath{last}
			lastCtrl = nil

		case LineTo:
			cur = c.Point
			last = toWork(cur)
			current = append(current, last)
			lastCtrl = nil

		case HLineTo:
			cur = Point{X: c.X, Y: cur.Y}
			last = toWork(cur)
			current = append(current, last)
			lastCtrl = nil

		case VLineTo:
			cur = Point{X: cur.X, Y: c.Y}
			last = toWork(cur)
			current = append(current, last)
			lastCtrl = nil

		case CubicTo:
			ctrl2 := toWork(c.Control2)
			end := toWork(c.Point)
			appendCurve(CubicBez{P0: last, P1: toWork(c.Control1), P2: ctrl2, P3: end})
			cur = c.Point
			last = end
			lastCtrl = &ctrl2

		case SmoothCubicTo:
			ctrl1 := reflectCtrl()
			ctrl2 := toWork(c.Control2)
			end := toWork(c.Point)
			appendCurve(CubicBez{P0: last, P1: ctrl1, P2: ctrl2, P3: end})
			cur = c.Point
			last = end
			lastCtrl = &ctrl2

		case QuadTo:
			ctrl := toWork(c.Control)
			end := toWork(c.Point)
			appendCurve(QuadBez{P0: last, P1: ctrl, P2: end}.Raise())
			cur = c.Point
			last = end
			lastCtrl = &ctrl

		case SmoothQuadTo:
			ctrl := reflectCtrl()
			end := toWork(c.Point)
			appendCurve(QuadBez{P0: last, P1: ctrl, P2: end}.Raise())
			cur = c.Point
			last = end
			lastCtrl = &ctrl

		case ArcTo:
			end := toWork(c.Point)
			for i := 1; i <= arcSteps; i++ {
				t := float64(i) / float64(arcSteps)
				current = append(current, last.Lerp(end, t))
			}
			cur = c.Point
			last = end
			lastCtrl = nil

		case ClosePath:
			if len(current) > 0 {
				current = append(current, current[0])
				cur = start
				last = current[0]
			}
			lastCtrl = nil

		default:
			Logger().Warn("skipping unsupported path command")
		}
	}
	flush()

	return subpaths
}
