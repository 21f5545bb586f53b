package svgcut

import (
	"runtime"
	"sync"
)

// Pipeline runs the full conversion: role classification, parallel
// per-path extraction, per-role stitching, and bed placement. A
// Pipeline holds only configuration and is safe for concurrent use;
// each Run takes an immutable snapshot of its input and shares no
// state with other runs.
type Pipeline struct {
	area WorkingArea
	opts pipelineOptions
}

// Result is the output of one pipeline run: the placed toolpath set
// and the placement report with any out-of-bounds diagnostics.
type Result struct {
	Set    ToolpathSet
	Report PlacementReport
}

// NewPipeline creates a pipeline for the given working area. The area
// is validated up front; geometry stages themselves never fail.
func NewPipeline(area WorkingArea, opts ...Option) (*Pipeline, error) {
	if err := area.Validate(); err != nil {
		return nil, err
	}
	o := defaultPipelineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{area: area, opts: o}, nil
}

// Run converts the selected source paths into a centered,
// bounds-checked toolpath set. Paths whose stroke color matches
// neither role are excluded; an empty selection yields an empty set
// with Report.Placed=false, which is a normal terminal state rather
// than an error.
func (p *Pipeline) Run(paths []SourcePath) Result {
	type job struct {
		role Role
		src  SourcePath
	}

	var jobs []job
	for _, src := range paths {
		role, ok := Classify(src.Stroke)
		if !ok {
			continue
		}
		jobs = append(jobs, job{role: role, src: src})
	}

	// Extraction is independent per path; fan out across workers and
	// collect by index so the result order matches the input order.
	extracted := make([][]Subpath, len(jobs))
	extractor := Extractor{
		Deviation: p.opts.deviation,
		ArcSteps:  p.opts.arcSteps,
		UnitScale: p.opts.unitScale,
	}
	workers := min(runtime.GOMAXPROCS(0), len(jobs))
	if workers > 1 {
		var wg sync.WaitGroup
		next := make(chan int)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range next {
					extracted[i] = extractor.Extract(jobs[i].src)
				}
			}()
		}
		for i := range jobs {
			next <- i
		}
		close(next)
		wg.Wait()
	} else {
		for i := range jobs {
			extracted[i] = extractor.Extract(jobs[i].src)
		}
	}

	var cutSubs, scoreSubs []Subpath
	for i, j := range jobs {
		switch j.role {
		case RoleCut:
			cutSubs = append(cutSubs, extracted[i]...)
		case RoleScore:
			scoreSubs = append(scoreSubs, extracted[i]...)
		}
	}

	Logger().Debug("extracted subpaths",
		"paths", len(jobs), "cut", len(cutSubs), "score", len(scoreSubs))

	// The two role pools are disjoint, so stitch them concurrently.
	var set ToolpathSet
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		set.Cut = Stitch(cutSubs, p.opts.tolerance)
	}()
	go func() {
		defer wg.Done()
		set.Score = Stitch(scoreSubs, p.opts.tolerance)
	}()
	wg.Wait()

	placed, report := Place(set, p.area)
	if !report.Placed {
		Logger().Info("nothing to place", "paths", len(paths))
	} else if !report.InBounds() {
		Logger().Warn("geometry extends outside the safe envelope",
			"points", len(report.OutOfBounds))
	}

	return Result{Set: placed, Report: report}
}
