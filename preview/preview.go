// Package preview renders a toolpath set onto the machine bed as a
// raster image: the bed as a light rectangle with a 50 mm grid, cut
// passes in black and score passes in red.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/svgcut/svgcut"
)

// gridStep is the bed grid spacing in mm.
const gridStep = 50

var (
	bedFill   = color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	bedBorder = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	gridLine  = color.RGBA{R: 0xb3, G: 0xb3, B: 0xb3, A: 0xff}
	cutLine   = color.RGBA{A: 0xff}
	scoreLine = color.RGBA{R: 0xff, A: 0xff}
)

// Render draws the placed toolpath set over the working area into a
// width x height image. The bed is scaled to fit with a small border
// and kept centered.
func Render(set svgcut.ToolpathSet, area svgcut.WorkingArea, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("preview: invalid image size %dx%d", width, height)
	}
	if err := area.Validate(); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scale := math.Min(float64(width)/area.Width, float64(height)/area.Height) * 0.9
	c := canvas{
		img:     img,
		scale:   scale,
		offsetX: (float64(width) - area.Width*scale) / 2,
		offsetY: (float64(height) - area.Height*scale) / 2,
	}

	c.fillRect(0, 0, area.Width, area.Height, bedFill)
	c.drawGrid(area)
	c.strokeRect(0, 0, area.Width, area.Height, 2, bedBorder)

	for _, tp := range set.Cut {
		c.strokePolyline(tp, 1.5, cutLine)
	}
	for _, tp := range set.Score {
		c.strokePolyline(tp, 1.5, scoreLine)
	}
	return img, nil
}

// canvas maps bed millimeters to image pixels.
type canvas struct {
	img     *image.RGBA
	scale   float64
	offsetX float64
	offsetY float64
}

func (c *canvas) toPixel(p svgcut.Point) (float32, float32) {
	return float32(c.offsetX + p.X*c.scale), float32(c.offsetY + p.Y*c.scale)
}

func (c *canvas) drawGrid(area svgcut.WorkingArea) {
	for x := float64(gridStep); x < area.Width; x += gridStep {
		c.strokeSegments([][2]svgcut.Point{
			{svgcut.Pt(x, 0), svgcut.Pt(x, area.Height)},
		}, 1, gridLine)
	}
	for y := float64(gridStep); y < area.Height; y += gridStep {
		c.strokeSegments([][2]svgcut.Point{
			{svgcut.Pt(0, y), svgcut.Pt(area.Width, y)},
		}, 1, gridLine)
	}
}

func (c *canvas) fillRect(x, y, w, h float64, col color.Color) {
	r := vector.NewRasterizer(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	x0, y0 := c.toPixel(svgcut.Pt(x, y))
	x1, y1 := c.toPixel(svgcut.Pt(x+w, y+h))
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.ClosePath()
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *canvas) strokeRect(x, y, w, h float64, width float64, col color.Color) {
	c.strokeSegments([][2]svgcut.Point{
		{svgcut.Pt(x, y), svgcut.Pt(x+w, y)},
		{svgcut.Pt(x+w, y), svgcut.Pt(x+w, y+h)},
		{svgcut.Pt(x+w, y+h), svgcut.Pt(x, y+h)},
		{svgcut.Pt(x, y+h), svgcut.Pt(x, y)},
	}, width, col)
}

func (c *canvas) strokePolyline(tp svgcut.Toolpath, width float64, col color.Color) {
	if len(tp) < 2 {
		return
	}
	segs := make([][2]svgcut.Point, 0, len(tp)-1)
	for i := 1; i < len(tp); i++ {
		segs = append(segs, [2]svgcut.Point{tp[i-1], tp[i]})
	}
	c.strokeSegments(segs, width, col)
}

// strokeSegments rasterizes each segment as a filled quad offset half
// the stroke width to either side.
func (c *canvas) strokeSegments(segs [][2]svgcut.Point, width float64, col color.Color) {
	r := vector.NewRasterizer(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	half := float32(width / 2)

	drawn := false
	for _, seg := range segs {
		ax, ay := c.toPixel(seg[0])
		bx, by := c.toPixel(seg[1])
		dx, dy := bx-ax, by-ay
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0 {
			continue
		}
		// Unit normal scaled to half the stroke width.
		nx := -dy / length * half
		ny := dx / length * half

		r.MoveTo(ax+nx, ay+ny)
		r.LineTo(bx+nx, by+ny)
		r.LineTo(bx-nx, by-ny)
		r.LineTo(ax-nx, ay-ny)
		r.ClosePath()
		drawn = true
	}
	if drawn {
		r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	}
}
