// Package config persists machine settings as a YAML file holding a
// last-used section and a default section. A missing file yields the
// built-in defaults, so first runs need no setup.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/svgcut/svgcut"
)

// ZMode selects how the machine moves the tool between travel and
// engagement height.
type ZMode string

const (
	// ZModeServo drops the tool with a servo angle command (M3 S)
	// followed by a settle delay.
	ZModeServo ZMode = "servo"
	// ZModeStepper moves a stepper Z axis to an absolute height.
	ZModeStepper ZMode = "stepper"
)

// Settings is one complete machine profile.
type Settings struct {
	BedWidth     float64 `yaml:"bed_width"`
	BedHeight    float64 `yaml:"bed_height"`
	SafetyMargin float64 `yaml:"safety_margin"`

	// Servo Z positions are angles in degrees, the delay is the
	// settle time in milliseconds.
	ServoScore  float64 `yaml:"servo_score"`
	ServoCut    float64 `yaml:"servo_cut"`
	ServoTravel float64 `yaml:"servo_travel"`
	ServoDelay  float64 `yaml:"servo_delay"`

	ToolOffsetX  float64 `yaml:"tool_offset_x"`
	ToolOffsetY  float64 `yaml:"tool_offset_y"`
	ToolDiameter float64 `yaml:"tool_diameter"`

	// Speeds are mm/s.
	TravelSpeed  float64 `yaml:"travel_speed"`
	CuttingSpeed float64 `yaml:"cutting_speed"`
	ScoringSpeed float64 `yaml:"scoring_speed"`

	// SpeedOverride scales every feed rate, in percent.
	SpeedOverride float64 `yaml:"speed_override"`

	ZMode ZMode `yaml:"z_mode"`

	// Stepper Z heights in mm.
	ZStepperCutHeight    float64 `yaml:"z_stepper_cut_height"`
	ZStepperScoreHeight  float64 `yaml:"z_stepper_score_height"`
	ZStepperTravelHeight float64 `yaml:"z_stepper_travel_height"`

	SpindleSpeed float64 `yaml:"spindle_speed"`

	StartGcode string `yaml:"start_gcode"`
	EndGcode   string `yaml:"end_gcode"`
}

// File is the on-disk document: the last-used profile plus the profile
// restored by a reset.
type File struct {
	Last    Settings `yaml:"last"`
	Default Settings `yaml:"default"`
}

const defaultStartGcode = `; Start G-code
G21 ; Set units to mm
G90 ; Use absolute coordinates
G28 ; Home all axes
M3 S{servo_travel}
G4 P{servo_delay}`

const defaultEndGcode = `; End G-code
M3 S{servo_travel}
G4 P{servo_delay}
G0 X0 Y0
M2 ; Program end`

// Defaults returns the built-in machine profile.
func Defaults() Settings {
	return Settings{
		BedWidth:     300,
		BedHeight:    200,
		SafetyMargin: 5,

		ServoScore:  60,
		ServoCut:    45,
		ServoTravel: 120,
		ServoDelay:  200,

		ToolOffsetX:  0,
		ToolOffsetY:  0,
		ToolDiameter: 1,

		TravelSpeed:   3000,
		CuttingSpeed:  1500,
		ScoringSpeed:  800,
		SpeedOverride: 100,

		ZMode:                ZModeServo,
		ZStepperCutHeight:    -2.0,
		ZStepperScoreHeight:  -0.5,
		ZStepperTravelHeight: 5.0,

		SpindleSpeed: 10000,

		StartGcode: defaultStartGcode,
		EndGcode:   defaultEndGcode,
	}
}

// Load reads a settings file. A missing file is not an error: both
// sections come back as the built-in defaults.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &File{Last: Defaults(), Default: Defaults()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	f := File{Last: Defaults(), Default: Defaults()}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return &f, nil
}

// Save writes the settings file, creating parent directories as
// needed.
func (f *File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating settings directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// Validate checks the profile for values the emitter cannot work with.
func (s *Settings) Validate() error {
	if err := s.WorkingArea().Validate(); err != nil {
		return err
	}
	if s.TravelSpeed <= 0 || s.CuttingSpeed <= 0 || s.ScoringSpeed <= 0 {
		return fmt.Errorf("speeds must be positive, got travel=%g cut=%g score=%g",
			s.TravelSpeed, s.CuttingSpeed, s.ScoringSpeed)
	}
	if s.SpeedOverride <= 0 {
		return fmt.Errorf("speed override must be positive, got %g%%", s.SpeedOverride)
	}
	switch s.ZMode {
	case ZModeServo:
		if s.ServoDelay < 0 {
			return fmt.Errorf("servo delay must be non-negative, got %gms", s.ServoDelay)
		}
	case ZModeStepper:
		if s.ZStepperTravelHeight <= s.ZStepperCutHeight {
			return fmt.Errorf("stepper travel height %g must be above cut height %g",
				s.ZStepperTravelHeight, s.ZStepperCutHeight)
		}
	default:
		return fmt.Errorf("unknown z mode %q", s.ZMode)
	}
	return nil
}

// WorkingArea returns the bed geometry as pipeline input.
func (s *Settings) WorkingArea() svgcut.WorkingArea {
	return svgcut.WorkingArea{
		Width:  s.BedWidth,
		Height: s.BedHeight,
		Margin: s.SafetyMargin,
	}
}
