package svgcut

// PathCommand represents a single drawing command of a source path.
// All coordinates are absolute, in the path's own coordinate space;
// the Extractor applies the composed transform and unit scale.
type PathCommand interface {
	isPathCommand()
}

// MoveTo starts a new subpath at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathCommand() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathCommand() {}

// HLineTo draws a horizontal line to an x coordinate.
type HLineTo struct {
	X float64
}

func (HLineTo) isPathCommand() {}

// VLineTo draws a vertical line to a y coordinate.
type VLineTo struct {
	Y float64
}

func (VLineTo) isPathCommand() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathCommand() {}

// SmoothCubicTo draws a cubic Bezier whose first control point is the
// reflection of the previous segment's final control point through the
// current point (or the current point itself when there is none).
type SmoothCubicTo struct {
	Control2 Point
	Point    Point
}

func (SmoothCubicTo) isPathCommand() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathCommand() {}

// SmoothQuadTo draws a quadratic Bezier whose control point is the
// reflection of the previous segment's control point through the
// current point (or the current point itself when there is none).
type SmoothQuadTo struct {
	Point Point
}

func (SmoothQuadTo) isPathCommand() {}

// ArcTo draws an elliptical arc to a point. Radii and flags are kept
// for callers that substitute true arc flattening; the built-in
// extractor approximates the arc with evenly spaced line steps.
type ArcTo struct {
	RX, RY    float64
	XRotation float64
	LargeArc  bool
	Sweep     bool
	Point     Point
}

func (ArcTo) isPathCommand() {}

// ClosePath closes the current subpath back to its first point.
type ClosePath struct{}

func (ClosePath) isPathCommand() {}

// SourcePath is one selectable path object as supplied by the host
// document: its stroke color (nil when the path has no stroke), its
// absolute command sequence, and the composed transform into the
// common drawing space.
type SourcePath struct {
	Stroke    *RGB
	Commands  []PathCommand
	Transform Matrix
}
