package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/svgcut/svgcut"
)

// ParseTransform parses an SVG transform attribute into a single
// composed matrix. Operations are applied left to right, matching SVG
// semantics. Supported: matrix, translate, scale, rotate (with
// optional center), skewX, skewY.
func ParseTransform(attr string) (svgcut.Matrix, error) {
	m := svgcut.Identity()
	p := &dataParser{src: attr}

	for {
		p.skipSeparators()
		if p.done() {
			return m, nil
		}

		name := p.ident()
		if name == "" {
			return m, fmt.Errorf("transform: expected operation at offset %d", p.pos)
		}
		args, err := p.argList()
		if err != nil {
			return m, fmt.Errorf("transform %s: %w", name, err)
		}

		op, err := transformOp(name, args)
		if err != nil {
			return m, err
		}
		m = m.Multiply(op)
	}
}

func transformOp(name string, args []float64) (svgcut.Matrix, error) {
	switch strings.ToLower(name) {
	case "matrix":
		if len(args) != 6 {
			return svgcut.Matrix{}, fmt.Errorf("transform matrix: got %d arguments, want 6", len(args))
		}
		// SVG matrix(a b c d e f) is column-major:
		//   | a c e |
		//   | b d f |
		return svgcut.Matrix{
			A: args[0], B: args[2], C: args[4],
			D: args[1], E: args[3], F: args[5],
		}, nil

	case "translate":
		switch len(args) {
		case 1:
			return svgcut.Translate(args[0], 0), nil
		case 2:
			return svgcut.Translate(args[0], args[1]), nil
		}
		return svgcut.Matrix{}, fmt.Errorf("transform translate: got %d arguments, want 1 or 2", len(args))

	case "scale":
		switch len(args) {
		case 1:
			return svgcut.Scale(args[0], args[0]), nil
		case 2:
			return svgcut.Scale(args[0], args[1]), nil
		}
		return svgcut.Matrix{}, fmt.Errorf("transform scale: got %d arguments, want 1 or 2", len(args))

	case "rotate":
		switch len(args) {
		case 1:
			return svgcut.Rotate(args[0] * math.Pi / 180), nil
		case 3:
			// Rotation about (cx, cy): translate, rotate, translate back.
			rot := svgcut.Rotate(args[0] * math.Pi / 180)
			return svgcut.Translate(args[1], args[2]).
				Multiply(rot).
				Multiply(svgcut.Translate(-args[1], -args[2])), nil
		}
		return svgcut.Matrix{}, fmt.Errorf("transform rotate: got %d arguments, want 1 or 3", len(args))

	case "skewx":
		if len(args) != 1 {
			return svgcut.Matrix{}, fmt.Errorf("transform skewX: got %d arguments, want 1", len(args))
		}
		return svgcut.Shear(math.Tan(args[0]*math.Pi/180), 0), nil

	case "skewy":
		if len(args) != 1 {
			return svgcut.Matrix{}, fmt.Errorf("transform skewY: got %d arguments, want 1", len(args))
		}
		return svgcut.Shear(0, math.Tan(args[0]*math.Pi/180)), nil
	}
	return svgcut.Matrix{}, fmt.Errorf("transform: unsupported operation %q", name)
}

// ident reads a lowercase/uppercase identifier.
func (p *dataParser) ident() string {
	begin := p.pos
	for !p.done() {
		c := p.src[p.pos]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			p.pos++
			continue
		}
		break
	}
	return p.src[begin:p.pos]
}

// argList reads a parenthesized, comma or space separated number list.
func (p *dataParser) argList() ([]float64, error) {
	p.skipSeparators()
	if p.done() || p.src[p.pos] != '(' {
		return nil, fmt.Errorf("expected '(' at offset %d", p.pos)
	}
	p.pos++

	var args []float64
	for {
		p.skipSeparators()
		if p.done() {
			return nil, fmt.Errorf("unterminated argument list")
		}
		if p.src[p.pos] == ')' {
			p.pos++
			return args, nil
		}
		v, err := p.number()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
}
