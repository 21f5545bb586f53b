package svgcut

import "fmt"

// WorkingArea is the rectangular travel envelope of the target
// machine, in working-area units. Margin shrinks the safe envelope to
// [Margin, dimension-Margin] on each axis.
type WorkingArea struct {
	Width  float64
	Height float64
	Margin float64
}

// Validate reports whether the working area is usable. Non-positive
// dimensions are a caller precondition violation and fail before the
// pipeline runs.
func (w WorkingArea) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("working area dimensions must be positive, got %gx%g", w.Width, w.Height)
	}
	if w.Margin < 0 {
		return fmt.Errorf("working area margin must not be negative, got %g", w.Margin)
	}
	if 2*w.Margin >= w.Width || 2*w.Margin >= w.Height {
		return fmt.Errorf("margin %g leaves no usable area on a %gx%g bed", w.Margin, w.Width, w.Height)
	}
	return nil
}

// contains reports whether p lies inside the safe envelope.
func (w WorkingArea) contains(p Point) bool {
	return p.X >= w.Margin && p.X <= w.Width-w.Margin &&
		p.Y >= w.Margin && p.Y <= w.Height-w.Margin
}

// PlacementReport describes the outcome of placing a toolpath set on
// the bed. Out-of-bounds geometry is reportable data, not an error;
// the abort-versus-warn policy belongs to the caller.
type PlacementReport struct {
	// Placed is false when the input held no points and no
	// translation was computed.
	Placed bool
	// Offset is the rigid translation that was applied.
	Offset Point
	// OutOfBounds lists every translated point outside the safe
	// envelope, in toolpath order (cut before score).
	OutOfBounds []Point
}

// InBounds reports whether every placed point stayed inside the safe
// envelope.
func (r PlacementReport) InBounds() bool {
	return len(r.OutOfBounds) == 0
}

// Place translates the combined cut and score geometry so that its
// bounding box is centered on the working area, and records every
// translated point that falls outside the margin envelope. The
// translation is rigid and uniform across both roles; the input set is
// not modified. An empty set is returned unchanged with Placed=false.
func Place(set ToolpathSet, area WorkingArea) (ToolpathSet, PlacementReport) {
	bounds, ok := set.Bounds()
	if !ok {
		return set, PlacementReport{}
	}

	offset := Point{
		X: (area.Width-bounds.Width())/2 - bounds.Min.X,
		Y: (area.Height-bounds.Height())/2 - bounds.Min.Y,
	}
	placed := set.Translate(offset)

	report := PlacementReport{Placed: true, Offset: offset}
	for _, group := range [][]Toolpath{placed.Cut, placed.Score} {
		for _, tp := range group {
			for _, p := range tp {
				if !area.contains(p) {
					report.OutOfBounds = append(report.OutOfBounds, p)
				}
			}
		}
	}
	return placed, report
}
