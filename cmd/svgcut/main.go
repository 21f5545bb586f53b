// Command svgcut converts SVG line art into cutter G-code.
//
// Black strokes become cut passes and red strokes become score
// passes. The drawing is centered on the machine bed and emitted as a
// G-code program, optionally alongside a PNG preview of the placed
// toolpaths.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/svgcut/svgcut"
	"github.com/svgcut/svgcut/config"
	"github.com/svgcut/svgcut/gcode"
	"github.com/svgcut/svgcut/preview"
	"github.com/svgcut/svgcut/svg"
)

func main() {
	var (
		in          = flag.String("in", "", "input SVG file (required)")
		out         = flag.String("out", "output.gcode", "output G-code file")
		settingsRef = flag.String("settings", "", "machine settings YAML file")
		previewOut  = flag.String("preview", "", "optional PNG preview file")

		bedWidth  = flag.Float64("bed-width", 0, "override bed width in mm")
		bedHeight = flag.Float64("bed-height", 0, "override bed height in mm")
		margin    = flag.Float64("margin", -1, "override safety margin in mm")
		deviation = flag.Float64("deviation", svgcut.DefaultDeviation, "curve flattening deviation in mm")
		tolerance = flag.Float64("tolerance", svgcut.DefaultStitchTolerance, "endpoint stitch tolerance in mm")

		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	svgcut.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*in, *out, *settingsRef, *previewOut, *bedWidth, *bedHeight, *margin, *deviation, *tolerance); err != nil {
		log.Fatal(err)
	}
}

func run(in, out, settingsPath, previewOut string, bedWidth, bedHeight, margin, deviation, tolerance float64) error {
	settings := config.Defaults()
	if settingsPath != "" {
		file, err := config.Load(settingsPath)
		if err != nil {
			return err
		}
		settings = file.Last
	}
	if bedWidth > 0 {
		settings.BedWidth = bedWidth
	}
	if bedHeight > 0 {
		settings.BedHeight = bedHeight
	}
	if margin >= 0 {
		settings.SafetyMargin = margin
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	doc, err := svg.Parse(f)
	if err != nil {
		return err
	}

	pipeline, err := svgcut.NewPipeline(settings.WorkingArea(),
		svgcut.WithDeviation(deviation),
		svgcut.WithStitchTolerance(tolerance),
		svgcut.WithUnitScale(doc.UnitScale()),
	)
	if err != nil {
		return err
	}

	result := pipeline.Run(doc.SourcePaths())
	if !result.Report.Placed {
		return fmt.Errorf("no cut or score strokes found in %s", in)
	}
	if !result.Report.InBounds() {
		fmt.Fprintf(os.Stderr, "warning: %d points fall outside the bed area\n", len(result.Report.OutOfBounds))
	}

	gen, err := gcode.New(settings)
	if err != nil {
		return err
	}
	program, stats, err := gen.Generate(result.Set)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, []byte(program), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Printf("%s: %d cut, %d score passes, %d lines, about %s\n",
		out, stats.CutPasses, stats.ScorePasses, stats.Lines, stats.Estimated.Round(time.Second))

	if previewOut != "" {
		img, err := preview.Render(result.Set, settings.WorkingArea(), 900, 600)
		if err != nil {
			return err
		}
		pf, err := os.Create(previewOut)
		if err != nil {
			return fmt.Errorf("creating preview: %w", err)
		}
		defer pf.Close()
		if err := png.Encode(pf, img); err != nil {
			return fmt.Errorf("encoding preview: %w", err)
		}
	}
	return nil
}
