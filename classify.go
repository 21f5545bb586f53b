package svgcut

import "fmt"

// Role determines the machine behavior for a toolpath: cutting all the
// way through, or scoring the surface. Assigned per source path before
// extraction; immutable afterward.
type Role int

const (
	// RoleCut is assigned to near-black strokes.
	RoleCut Role = iota
	// RoleScore is assigned to strongly red strokes.
	RoleScore
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleCut:
		return "cut"
	case RoleScore:
		return "score"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// RGB is a stroke color with 0-255 channels.
type RGB struct {
	R, G, B uint8
}

// Classification thresholds. Deliberately simple two-bucket logic, not
// a general color-distance classifier.
const (
	cutChannelMax = 20  // all channels below this: cut
	scoreRedMin   = 200 // red above this and
	scoreOtherMax = 50  // green and blue below this: score
)

// Classify maps a stroke color to a role. The second return value is
// false when the path carries no stroke or a color outside both
// buckets; such paths are excluded from toolpath generation, which is
// not an error.
func Classify(stroke *RGB) (Role, bool) {
	if stroke == nil {
		return 0, false
	}
	if stroke.R < cutChannelMax && stroke.G < cutChannelMax && stroke.B < cutChannelMax {
		return RoleCut, true
	}
	if stroke.R > scoreRedMin && stroke.G < scoreOtherMax && stroke.B < scoreOtherMax {
		return RoleScore, true
	}
	return 0, false
}
