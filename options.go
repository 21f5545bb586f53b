package svgcut

// Option configures a Pipeline during creation.
//
// Example:
//
//	pipe, err := svgcut.NewPipeline(area,
//	    svgcut.WithDeviation(0.05),
//	    svgcut.WithStitchTolerance(0.5),
//	)
type Option func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	deviation float64
	tolerance float64
	arcSteps  int
	unitScale float64
}

// defaultPipelineOptions returns the documented defaults.
func defaultPipelineOptions() pipelineOptions {
	return pipelineOptions{
		deviation: DefaultDeviation,
		tolerance: DefaultStitchTolerance,
		arcSteps:  DefaultArcSteps,
		unitScale: 1,
	}
}

// WithDeviation sets the maximum chordal error for curve flattening,
// in working-area units. Values <= 0 keep the default.
func WithDeviation(d float64) Option {
	return func(o *pipelineOptions) {
		if d > 0 {
			o.deviation = d
		}
	}
}

// WithStitchTolerance sets the maximum endpoint gap treated as a
// continuous join, in working-area units. Values <= 0 keep the
// default.
func WithStitchTolerance(t float64) Option {
	return func(o *pipelineOptions) {
		if t > 0 {
			o.tolerance = t
		}
	}
}

// WithArcSteps sets the number of linear interpolation steps per arc
// command. Values <= 0 keep the default.
func WithArcSteps(n int) Option {
	return func(o *pipelineOptions) {
		if n > 0 {
			o.arcSteps = n
		}
	}
}

// WithUnitScale sets the divisor converting document units to
// working-area units (document units per millimeter). Values <= 0
// keep the default of 1.
func WithUnitScale(s float64) Option {
	return func(o *pipelineOptions) {
		if s > 0 {
			o.unitScale = s
		}
	}
}
