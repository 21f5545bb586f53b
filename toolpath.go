package svgcut

// Subpath is one continuous authored stroke: an ordered, non-empty
// point sequence as produced by extraction. Closed subpaths repeat the
// first point as the last. Immutable value data once extracted.
type Subpath []Point

// Toolpath is one continuous tool-down pass: the point run of one or
// more subpaths stitched end to end. Adjacent stitched subpaths are
// expected, not guaranteed, to be contiguous within the stitch
// tolerance.
type Toolpath []Point

// ToolpathSet groups the final toolpaths by role. It is the unit
// handed to the code-generation collaborator.
type ToolpathSet struct {
	Cut   []Toolpath
	Score []Toolpath
}

// IsEmpty reports whether the set contains no points at all.
func (s ToolpathSet) IsEmpty() bool {
	for _, tp := range s.Cut {
		if len(tp) > 0 {
			return false
		}
	}
	for _, tp := range s.Score {
		if len(tp) > 0 {
			return false
		}
	}
	return true
}

// Bounds returns the axis-aligned bounding box over every point of
// every toolpath of both roles. ok is false when the set is empty.
func (s ToolpathSet) Bounds() (bounds Rect, ok bool) {
	for _, group := range [][]Toolpath{s.Cut, s.Score} {
		for _, tp := range group {
			for _, p := range tp {
				if !ok {
					bounds = NewRect(p, p)
					ok = true
					continue
				}
				bounds = bounds.Union(NewRect(p, p))
			}
		}
	}
	return bounds, ok
}

// Translate returns a new set with offset added to every point. The
// receiver is not modified.
func (s ToolpathSet) Translate(offset Point) ToolpathSet {
	return ToolpathSet{
		Cut:   translateGroup(s.Cut, offset),
		Score: translateGroup(s.Score, offset),
	}
}

func translateGroup(group []Toolpath, offset Point) []Toolpath {
	if group == nil {
		return nil
	}
	out := make([]Toolpath, len(group))
	for i, tp := range group {
		moved := make(Toolpath, len(tp))
		for j, p := range tp {
			moved[j] = p.Add(offset)
		}
		out[i] = moved
	}
	return out
}
