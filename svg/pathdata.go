package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/svgcut/svgcut"
)

// ParsePathData parses a path `d` attribute into absolute svgcut
// commands. Relative commands are normalized against the running
// current point, and implicit command repetition (coordinates after a
// completed command) is honored, including the moveto-becomes-lineto
// rule.
func ParsePathData(d string) ([]svgcut.PathCommand, error) {
	p := &dataParser{src: d}

	var (
		cmds  []svgcut.PathCommand
		cur   svgcut.Point
		start svgcut.Point
	)

	for {
		p.skipSeparators()
		if p.done() {
			return cmds, nil
		}
		op := p.src[p.pos]
		if !isCommandLetter(op) {
			return nil, fmt.Errorf("path data: expected command at offset %d, got %q", p.pos, string(op))
		}
		p.pos++
		rel := op >= 'a' && op <= 'z'
		upper := op &^ 0x20 // ASCII uppercase

		// A command letter is followed by one or more parameter
		// groups; each extra group repeats the command.
		first := true
		for first || p.hasNumber() {
			first = false
			switch upper {
			case 'M':
				pt, err := p.point(rel, cur)
				if err != nil {
					return nil, err
				}
				cmds = append(cmds, svgcut.MoveTo{Point: pt})
				cur, start = pt, pt
				// Subsequent pairs are implicit linetos.
				for p.hasNumber() {
					pt, err := p.point(rel, cur)
					if err != nil {
						return nil, err
					}
					cmds = append(cmds, svgcut.LineTo{Point: pt})
					cur = pt
				}

			case 'L':
				pt, err := p.point(rel, cur)
				if err != nil {
					return nil, err
				}
				cmds = append(cmds, svgcut.LineTo{Point: pt})
				cur = pt

			case 'H':
				x, err := p.number()
				if err != nil {
					return nil, err
				}
				if rel {
					x += cur.X
				}
				cmds = append(cmds, svgcut.HLineTo{X: x})
				cur.X = x

			case 'V':
				y, err := p.number()
				if err != nil {
					return nil, err
				}
				if rel {
					y += cur.Y
				}
				cmds = append(cmds, svgcut.VLineTo{Y: y})
				cur.Y = y

			case 'C':
				c1, err := p.point(rel, cur)
				if err != nil {
					return nil, err
				}
				c2, err := p.point(rel, cur)
				if err != nil {
					return nil, err
				}
				pt, err := p.point(rel, cur)
				if err != nil {
					return nil, err
				}
				cmds = append(cmds, svgcut.CubicTo{Control1: c1, Control2: c2, Point: pt})
				cur = pt

			case 'S':
				c2, err := p.point(rel, cur)
				if err != nil {
					return nil, err
				}
				pt, err := p.point(rel, cur)
				if err != nil {
					return nil, err
				}
				cmds = append(cmds, svgcut.SmoothCubicTo{Control2: c2, Point: pt})
				cur = pt

			case 'Q':
				c, err := p.point(rel, cur)
				if err != nil {
					return nil, err
				}
				pt, err := p.point(rel, cur)
				if err != nil {
					return nil, err
				}
				cmds = append(cmds, svgcut.QuadTo{Control: c, Point: pt})
				cur = pt

			case 'T':
				pt, err := p.point(rel, cur)
				if err != nil {
					return nil, err
				}
				cmds = append(cmds, svgcut.SmoothQuadTo{Point: pt})
				cur = pt

			case 'A':
				rx, err := p.number()
				if err != nil {
					return nil, err
				}
				ry, err := p.number()
				if err != nil {
					return nil, err
				}
				rot, err := p.number()
				if err != nil {
					return nil, err
				}
				large, err := p.flag()
				if err != nil {
					return nil, err
				}
				sweep, err := p.flag()
				if err != nil {
					return nil, err
				}
				pt, err := p.point(rel, cur)
				if err != nil {
					return nil, err
				}
				cmds = append(cmds, svgcut.ArcTo{
					RX: rx, RY: ry, XRotation: rot,
					LargeArc: large, Sweep: sweep, Point: pt,
				})
				cur = pt

			case 'Z':
				cmds = append(cmds, svgcut.ClosePath{})
				cur = start
				// Z takes no parameters; leave the repeat loop.
				first = false

			default:
				return nil, fmt.Errorf("path data: unsupported command %q", string(op))
			}
			if upper == 'Z' || upper == 'M' {
				break
			}
		}
	}
}

func isCommandLetter(c byte) bool {
	switch c &^ 0x20 {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}

// dataParser is a cursor over path data text.
type dataParser struct {
	src string
	pos int
}

func (p *dataParser) done() bool {
	return p.pos >= len(p.src)
}

func (p *dataParser) skipSeparators() {
	for !p.done() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

// hasNumber reports whether the next token starts a number.
func (p *dataParser) hasNumber() bool {
	p.skipSeparators()
	if p.done() {
		return false
	}
	c := p.src[p.pos]
	return c >= '0' && c <= '9' || c == '-' || c == '+' || c == '.'
}

func (p *dataParser) number() (float64, error) {
	p.skipSeparators()
	begin := p.pos
	if !p.done() && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
		p.pos++
	}
	seenDot := false
	for !p.done() {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			p.pos++
			continue
		}
		if (c == 'e' || c == 'E') && p.pos > begin {
			// Exponent: consume sign and digits.
			p.pos++
			if !p.done() && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
				p.pos++
			}
			for !p.done() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
				p.pos++
			}
		}
		break
	}
	if p.pos == begin {
		return 0, fmt.Errorf("path data: expected number at offset %d", begin)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(p.src[begin:p.pos]), 64)
	if err != nil {
		return 0, fmt.Errorf("path data: bad number %q: %w", p.src[begin:p.pos], err)
	}
	return v, nil
}

// flag reads an arc flag, which is a bare 0 or 1 possibly run
// together with the following number.
func (p *dataParser) flag() (bool, error) {
	p.skipSeparators()
	if p.done() {
		return false, fmt.Errorf("path data: expected flag at offset %d", p.pos)
	}
	switch p.src[p.pos] {
	case '0':
		p.pos++
		return false, nil
	case '1':
		p.pos++
		return true, nil
	}
	return false, fmt.Errorf("path data: bad flag %q at offset %d", string(p.src[p.pos]), p.pos)
}

func (p *dataParser) point(rel bool, cur svgcut.Point) (svgcut.Point, error) {
	x, err := p.number()
	if err != nil {
		return svgcut.Point{}, err
	}
	y, err := p.number()
	if err != nil {
		return svgcut.Point{}, err
	}
	pt := svgcut.Pt(x, y)
	if rel {
		pt = pt.Add(cur)
	}
	return pt, nil
}
