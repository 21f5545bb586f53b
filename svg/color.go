package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/svgcut/svgcut"
)

// namedColors covers the keywords line-art authoring tools commonly
// emit for stroke colors. Anything else must be written numerically.
var namedColors = map[string]svgcut.RGB{
	"black":   {R: 0, G: 0, B: 0},
	"white":   {R: 255, G: 255, B: 255},
	"red":     {R: 255, G: 0, B: 0},
	"green":   {R: 0, G: 128, B: 0},
	"blue":    {R: 0, G: 0, B: 255},
	"yellow":  {R: 255, G: 255, B: 0},
	"magenta": {R: 255, G: 0, B: 255},
	"cyan":    {R: 0, G: 255, B: 255},
}

// strokeColor resolves a drawable element's stroke from its stroke
// attribute, falling back to the style property list. A missing or
// "none" stroke yields nil, which the classifier discards.
func strokeColor(strokeAttr, styleAttr string) *svgcut.RGB {
	s := strings.TrimSpace(strokeAttr)
	if s == "" {
		s = styleProperty(styleAttr, "stroke")
	}
	if s == "" || strings.EqualFold(s, "none") {
		return nil
	}
	rgb, err := ParseColor(s)
	if err != nil {
		svgcut.Logger().Warn("ignoring unparsable stroke color", "stroke", s, "error", err)
		return nil
	}
	return rgb
}

// styleProperty extracts one property value from a style attribute
// like "stroke:#000000;stroke-width:2;fill:none".
func styleProperty(style, key string) string {
	for _, part := range strings.Split(style, ";") {
		kv := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(kv) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(kv[0]), key) {
			return strings.TrimSpace(kv[1])
		}
	}
	return ""
}

// ParseColor parses #rgb, #rrggbb, rgb(r,g,b) and the common color
// keywords.
func ParseColor(s string) (*svgcut.RGB, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if c, ok := namedColors[s]; ok {
		return &svgcut.RGB{R: c.R, G: c.G, B: c.B}, nil
	}

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3:
			r, err1 := strconv.ParseUint(strings.Repeat(string(hex[0]), 2), 16, 8)
			g, err2 := strconv.ParseUint(strings.Repeat(string(hex[1]), 2), 16, 8)
			b, err3 := strconv.ParseUint(strings.Repeat(string(hex[2]), 2), 16, 8)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("bad hex color %q", s)
			}
			return &svgcut.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
		case 6:
			r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
			g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
			b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("bad hex color %q", s)
			}
			return &svgcut.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
		}
		return nil, fmt.Errorf("bad hex color length %q", s)
	}

	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("bad rgb() color %q", s)
		}
		var ch [3]uint8
		for i, part := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
			if err != nil {
				return nil, fmt.Errorf("bad rgb() channel %q: %w", part, err)
			}
			ch[i] = uint8(v)
		}
		return &svgcut.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	}

	return nil, fmt.Errorf("unsupported color %q", s)
}
