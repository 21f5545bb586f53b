// Package svg decodes SVG documents into svgcut source paths.
//
// It implements the host-document side of the pipeline: each drawable
// element becomes a [svgcut.SourcePath] carrying its stroke color, its
// absolute command sequence, and the transform composed from every
// enclosing group. Decoding is best effort: elements with unparsable
// data are skipped with a warning, never aborting the document.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/svgcut/svgcut"
)

// Document is a decoded SVG document.
type Document struct {
	XMLName xml.Name `xml:"svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Group
}

// Group is a container element. Groups nest and each level may carry
// its own transform.
type Group struct {
	Transform string     `xml:"transform,attr"`
	Groups    []Group    `xml:"g"`
	Paths     []Path     `xml:"path"`
	Polylines []Polyline `xml:"polyline"`
	Polygons  []Polyline `xml:"polygon"`
	Lines     []Line     `xml:"line"`
}

// Path is a path element with raw attribute data.
type Path struct {
	D         string `xml:"d,attr"`
	Stroke    string `xml:"stroke,attr"`
	Style     string `xml:"style,attr"`
	Transform string `xml:"transform,attr"`
}

// Polyline is a polyline or polygon element; polygons close back to
// their first point.
type Polyline struct {
	Points    string `xml:"points,attr"`
	Stroke    string `xml:"stroke,attr"`
	Style     string `xml:"style,attr"`
	Transform string `xml:"transform,attr"`
}

// Line is a single line segment element.
type Line struct {
	X1        float64 `xml:"x1,attr"`
	Y1        float64 `xml:"y1,attr"`
	X2        float64 `xml:"x2,attr"`
	Y2        float64 `xml:"y2,attr"`
	Stroke    string  `xml:"stroke,attr"`
	Style     string  `xml:"style,attr"`
	Transform string  `xml:"transform,attr"`
}

// Parse decodes an SVG document from r.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding svg: %w", err)
	}
	return &doc, nil
}

// ParseString decodes an SVG document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// SourcePaths flattens the document tree into source paths with
// composed transforms, in document order.
func (d *Document) SourcePaths() []svgcut.SourcePath {
	return collect(d.Group, svgcut.Identity())
}

func collect(g Group, parent svgcut.Matrix) []svgcut.SourcePath {
	base := composeTransform(parent, g.Transform)

	var out []svgcut.SourcePath
	for _, p := range g.Paths {
		cmds, err := ParsePathData(p.D)
		if err != nil {
			svgcut.Logger().Warn("skipping unparsable path", "error", err)
			continue
		}
		out = append(out, svgcut.SourcePath{
			Stroke:    strokeColor(p.Stroke, p.Style),
			Commands:  cmds,
			Transform: composeTransform(base, p.Transform),
		})
	}
	for _, closed := range []bool{false, true} {
		polys := g.Polylines
		if closed {
			polys = g.Polygons
		}
		for _, p := range polys {
			cmds, err := polyCommands(p.Points, closed)
			if err != nil {
				svgcut.Logger().Warn("skipping unparsable points list", "error", err)
				continue
			}
			out = append(out, svgcut.SourcePath{
				Stroke:    strokeColor(p.Stroke, p.Style),
				Commands:  cmds,
				Transform: composeTransform(base, p.Transform),
			})
		}
	}
	for _, l := range g.Lines {
		out = append(out, svgcut.SourcePath{
			Stroke: strokeColor(l.Stroke, l.Style),
			Commands: []svgcut.PathCommand{
				svgcut.MoveTo{Point: svgcut.Pt(l.X1, l.Y1)},
				svgcut.LineTo{Point: svgcut.Pt(l.X2, l.Y2)},
			},
			Transform: composeTransform(base, l.Transform),
		})
	}
	for _, child := range g.Groups {
		out = append(out, collect(child, base)...)
	}
	return out
}

func composeTransform(parent svgcut.Matrix, attr string) svgcut.Matrix {
	if strings.TrimSpace(attr) == "" {
		return parent
	}
	m, err := ParseTransform(attr)
	if err != nil {
		svgcut.Logger().Warn("ignoring unparsable transform", "transform", attr, "error", err)
		return parent
	}
	return parent.Multiply(m)
}

// polyCommands turns a points list into move/line commands, closing
// the loop for polygons.
func polyCommands(points string, closed bool) ([]svgcut.PathCommand, error) {
	fields := strings.FieldsFunc(points, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) < 4 || len(fields)%2 != 0 {
		return nil, fmt.Errorf("points list has %d values, want an even count of at least 4", len(fields))
	}

	cmds := make([]svgcut.PathCommand, 0, len(fields)/2+1)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("bad x value %q: %w", fields[i], err)
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad y value %q: %w", fields[i+1], err)
		}
		if i == 0 {
			cmds = append(cmds, svgcut.MoveTo{Point: svgcut.Pt(x, y)})
		} else {
			cmds = append(cmds, svgcut.LineTo{Point: svgcut.Pt(x, y)})
		}
	}
	if closed {
		cmds = append(cmds, svgcut.ClosePath{})
	}
	return cmds, nil
}

// millimetersPerUnit converts CSS absolute units to millimeters.
var millimetersPerUnit = map[string]float64{
	"mm": 1,
	"cm": 10,
	"in": 25.4,
	"pt": 25.4 / 72,
	"pc": 25.4 / 6,
	"px": 25.4 / 96,
	"":   25.4 / 96, // unitless means CSS pixels
}

// UnitScale returns the divisor converting document units to
// millimeters (document units per mm), derived from the width and
// viewBox attributes. Without usable attributes it falls back to the
// CSS pixel density of 96 dpi.
func (d *Document) UnitScale() float64 {
	const pxPerMM = 96.0 / 25.4

	value, unit, err := splitLength(d.Width)
	if err != nil || value <= 0 {
		return pxPerMM
	}
	mmPerUnit, ok := millimetersPerUnit[unit]
	if !ok {
		return pxPerMM
	}
	widthMM := value * mmPerUnit

	if vb := strings.Fields(d.ViewBox); len(vb) == 4 {
		if vbWidth, err := strconv.ParseFloat(vb[2], 64); err == nil && vbWidth > 0 {
			return vbWidth / widthMM
		}
	}
	// No viewBox: user units are the width units themselves.
	return 1 / mmPerUnit
}

// splitLength splits "105mm" into (105, "mm").
func splitLength(s string) (float64, string, error) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c >= '0' && c <= '9' || c == '.' {
			break
		}
		i--
	}
	value, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, "", fmt.Errorf("bad length %q: %w", s, err)
	}
	return value, strings.TrimSpace(s[i:]), nil
}
