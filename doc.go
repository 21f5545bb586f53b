// Package svgcut converts vector line-art into machine-ready toolpaths.
//
// # Overview
//
// The pipeline takes selected source paths (stroke color, absolute path
// commands, a composed transform), classifies each path as a cut or
// score pass by stroke color, flattens curves into polylines within a
// bounded deviation, stitches the resulting fragments into the fewest
// continuous toolpaths a greedy nearest-endpoint chain can reach, and
// centers the combined result on a rectangular working area with a
// safety-margin bounds check.
//
// # Quick Start
//
//	import "github.com/svgcut/svgcut"
//
//	pipe, _ := svgcut.NewPipeline(svgcut.WorkingArea{Width: 300, Height: 200, Margin: 5})
//	res := pipe.Run(paths)
//	// res.Set holds centered cut and score toolpaths,
//	// res.Report lists any out-of-bounds points.
//
// # Collaborators
//
// Sibling packages build on the core: svg decodes SVG documents into
// source paths, gcode emits numeric-control code from the final
// toolpath set, config persists machine settings, and preview renders
// a raster image of the bed and toolpaths.
//
// # Coordinate System
//
// All coordinates inside the pipeline are working-area units
// (millimeters by convention):
//   - Origin (0,0) at the working-area corner
//   - X increases right
//   - Y increases down, matching SVG document space
//
// The pipeline is stateless between runs and never mutates its input.
package svgcut
