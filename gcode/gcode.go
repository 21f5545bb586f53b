// Package gcode turns toolpath sets into numeric-control programs.
//
// The emitter writes absolute-coordinate G-code: rapid (G0) travel
// moves between toolpaths and feed (G1) moves along them, with the
// tool raised and lowered around every pass. Two Z styles are
// supported, a servo-driven blade (angle command plus settle delay)
// and a stepper axis (absolute heights). Program start and end come
// from user templates with {placeholder} expansion.
package gcode

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/svgcut/svgcut"
	"github.com/svgcut/svgcut/config"
)

// Stats summarizes an emitted program.
type Stats struct {
	CutPasses   int
	ScorePasses int

	// Distances in mm.
	CutDistance    float64
	ScoreDistance  float64
	TravelDistance float64

	Lines     int
	Estimated time.Duration
}

// Generator emits G-code for one machine profile.
type Generator struct {
	settings config.Settings
}

// New returns a generator for the profile, rejecting profiles the
// emitter cannot honor.
func New(settings config.Settings) (*Generator, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("gcode: %w", err)
	}
	return &Generator{settings: settings}, nil
}

// Generate emits a complete program for the placed toolpath set.
// Score passes run before cut passes so finished pieces are not
// dislodged before their surface work is done.
func (g *Generator) Generate(set svgcut.ToolpathSet) (string, Stats, error) {
	if set.IsEmpty() {
		return "", Stats{}, fmt.Errorf("gcode: no toolpaths to emit")
	}

	e := &emitter{settings: g.settings}
	e.raw(g.expand(g.settings.StartGcode))

	for _, tp := range set.Score {
		e.pass(tp, passScore)
	}
	for _, tp := range set.Cut {
		e.pass(tp, passCut)
	}

	e.toolUp()
	e.raw(g.expand(g.settings.EndGcode))

	stats := e.stats
	stats.CutPasses = len(set.Cut)
	stats.ScorePasses = len(set.Score)
	stats.Lines = e.lines
	stats.Estimated = g.estimate(stats)

	svgcut.Logger().Info("gcode generated",
		"cutPasses", stats.CutPasses,
		"scorePasses", stats.ScorePasses,
		"lines", stats.Lines,
		"estimated", stats.Estimated)

	return e.out.String(), stats, nil
}

// expand substitutes {placeholder} tokens in a template with profile
// values. Unknown placeholders pass through untouched.
func (g *Generator) expand(template string) string {
	s := g.settings
	repl := strings.NewReplacer(
		"{servo_travel}", num(s.ServoTravel),
		"{servo_cut}", num(s.ServoCut),
		"{servo_score}", num(s.ServoScore),
		"{servo_delay}", num(s.ServoDelay),
		"{spindle_speed}", num(s.SpindleSpeed),
		"{travel_speed}", num(s.TravelSpeed),
		"{cutting_speed}", num(s.CuttingSpeed),
		"{scoring_speed}", num(s.ScoringSpeed),
		"{bed_width}", num(s.BedWidth),
		"{bed_height}", num(s.BedHeight),
	)
	return repl.Replace(template)
}

// estimate derives a run time from pass distances at effective speeds
// plus the servo settle delays around every pass.
func (g *Generator) estimate(st Stats) time.Duration {
	s := g.settings
	scale := s.SpeedOverride / 100

	seconds := st.TravelDistance / (s.TravelSpeed * scale)
	seconds += st.CutDistance / (s.CuttingSpeed * scale)
	seconds += st.ScoreDistance / (s.ScoringSpeed * scale)
	if s.ZMode == config.ZModeServo {
		passes := st.CutPasses + st.ScorePasses
		seconds += float64(2*passes) * s.ServoDelay / 1000
	}
	return time.Duration(seconds * float64(time.Second))
}

type passKind int

const (
	passCut passKind = iota
	passScore
)

// emitter accumulates program text and running distance totals. It
// tracks the head position to charge travel distance correctly.
type emitter struct {
	settings config.Settings
	out      strings.Builder
	lines    int
	stats    Stats

	pos    svgcut.Point
	hasPos bool
	toolIs passKind
	isDown bool
}

func (e *emitter) pass(tp svgcut.Toolpath, kind passKind) {
	if len(tp) == 0 {
		return
	}
	s := e.settings

	first := e.offset(tp[0])
	e.toolUp()
	e.linef("G0 X%s Y%s F%s", coord(first.X), coord(first.Y), num(e.feed(s.TravelSpeed)))
	if e.hasPos {
		e.stats.TravelDistance += e.pos.Distance(first)
	}
	e.pos, e.hasPos = first, true

	e.toolDown(kind)

	speed := s.CuttingSpeed
	if kind == passScore {
		speed = s.ScoringSpeed
	}
	for _, p := range tp[1:] {
		pt := e.offset(p)
		e.linef("G1 X%s Y%s F%s", coord(pt.X), coord(pt.Y), num(e.feed(speed)))
		d := e.pos.Distance(pt)
		if kind == passScore {
			e.stats.ScoreDistance += d
		} else {
			e.stats.CutDistance += d
		}
		e.pos = pt
	}
}

func (e *emitter) toolDown(kind passKind) {
	if e.isDown && e.toolIs == kind {
		return
	}
	s := e.settings
	switch s.ZMode {
	case config.ZModeServo:
		angle := s.ServoCut
		if kind == passScore {
			angle = s.ServoScore
		}
		e.linef("M3 S%s", num(angle))
		e.linef("G4 P%s", num(s.ServoDelay))
	case config.ZModeStepper:
		height := s.ZStepperCutHeight
		if kind == passScore {
			height = s.ZStepperScoreHeight
		}
		e.linef("G1 Z%s F%s", coord(height), num(e.feed(s.TravelSpeed)))
	}
	e.isDown = true
	e.toolIs = kind
}

func (e *emitter) toolUp() {
	if !e.isDown {
		return
	}
	s := e.settings
	switch s.ZMode {
	case config.ZModeServo:
		e.linef("M3 S%s", num(s.ServoTravel))
		e.linef("G4 P%s", num(s.ServoDelay))
	case config.ZModeStepper:
		e.linef("G0 Z%s", coord(s.ZStepperTravelHeight))
	}
	e.isDown = false
}

// feed converts a mm/s speed to a feed rate in mm/min with the
// override percentage applied.
func (e *emitter) feed(mmPerSec float64) float64 {
	return mmPerSec * 60 * e.settings.SpeedOverride / 100
}

func (e *emitter) offset(p svgcut.Point) svgcut.Point {
	return svgcut.Pt(p.X+e.settings.ToolOffsetX, p.Y+e.settings.ToolOffsetY)
}

func (e *emitter) linef(format string, args ...any) {
	fmt.Fprintf(&e.out, format, args...)
	e.out.WriteByte('\n')
	e.lines++
}

// raw writes a template block verbatim, ensuring a trailing newline.
func (e *emitter) raw(block string) {
	block = strings.TrimRight(block, "\n")
	if block == "" {
		return
	}
	e.out.WriteString(block)
	e.out.WriteByte('\n')
	e.lines += strings.Count(block, "\n") + 1
}

// coord formats a coordinate to 3 decimal places, trimming trailing
// zeros.
func coord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// num formats a settings value compactly.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
