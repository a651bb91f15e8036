// Package icon draws the application icon: a blue bezel around a white
// clock face with hour markers and three hands.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"
)

// Size is the edge length the geometry below is designed for.
const Size = 512

var (
	bezelColor  = color.NRGBA{R: 38, G: 89, B: 217, A: 255}
	rimColor    = color.NRGBA{R: 51, G: 102, B: 230, A: 255}
	faceColor   = color.NRGBA{R: 247, G: 247, B: 255, A: 255}
	markerColor = color.NRGBA{R: 51, G: 51, B: 77, A: 255}
	handColor   = color.NRGBA{R: 38, G: 38, B: 64, A: 255}
	accentColor = color.NRGBA{R: 230, G: 64, B: 51, A: 255}
)

// bezier handle length for a quarter circle
const kappa = 0.5522847498

// painter rasterizes filled paths onto an RGBA image scaled from the
// Size×Size design grid.
type painter struct {
	dst   *image.RGBA
	scale float32
	r     *vector.Rasterizer
}

// Draw renders the icon at size×size pixels.
func Draw(size int) *image.RGBA {
	if size <= 0 {
		size = Size
	}
	p := &painter{
		dst:   image.NewRGBA(image.Rect(0, 0, size, size)),
		scale: float32(size) / Size,
		r:     vector.NewRasterizer(size, size),
	}

	const center = Size / 2
	const radius = Size/2 - 20

	p.shadow(center, center+8, radius, 20, 0.3)
	p.circle(center, center, radius, bezelColor)
	p.circle(center, center, radius-20, rimColor)
	p.circle(center, center, radius-50, faceColor)

	for i := 0; i < 12; i++ {
		major := i%3 == 0
		inner, width := float32(radius-80), float32(3)
		if major {
			inner, width = radius-90, 6
		}
		x1, y1 := clockPoint(center, float64(i)/12, inner)
		x2, y2 := clockPoint(center, float64(i)/12, radius-60)
		p.line(x1, y1, x2, y2, width, markerColor)
	}

	hx, hy := clockPoint(center, 10.0/12, 110)
	p.line(center, center, hx, hy, 10, handColor)
	mx, my := clockPoint(center, 10.0/60, 155)
	p.line(center, center, mx, my, 6, handColor)

	p.circle(center, center, 8, accentColor)
	tx, ty := clockPoint(center, 8.0/60+0.5, 30)
	sx, sy := clockPoint(center, 8.0/60, 165)
	p.line(tx, ty, sx, sy, 2.5, accentColor)

	return p.dst
}

// Encode writes the icon as PNG.
func Encode(w io.Writer, size int) error {
	if err := png.Encode(w, Draw(size)); err != nil {
		return fmt.Errorf("encode icon png: %w", err)
	}
	return nil
}

// WriteFile renders the icon and writes it to path, replacing any existing file.
func WriteFile(path string, size int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create icon file: %w", err)
	}
	if err := Encode(file, size); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close icon file: %w", err)
	}
	return nil
}

// clockPoint returns the point at radius from the center, turn of a full
// revolution clockwise from twelve o'clock.
func clockPoint(center float32, turn float64, radius float32) (float32, float32) {
	angle := 2 * math.Pi * turn
	return center + float32(math.Sin(angle))*radius, center - float32(math.Cos(angle))*radius
}

func (p *painter) fill(c color.Color) {
	p.r.DrawOp = draw.Over
	p.r.Draw(p.dst, p.dst.Bounds(), image.NewUniform(c), image.Point{})
	p.r.Reset(p.dst.Bounds().Dx(), p.dst.Bounds().Dy())
}

func (p *painter) addCircle(cx, cy, radius float32) {
	cx, cy, radius = cx*p.scale, cy*p.scale, radius*p.scale
	k := radius * kappa
	p.r.MoveTo(cx+radius, cy)
	p.r.CubeTo(cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
	p.r.CubeTo(cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
	p.r.CubeTo(cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
	p.r.CubeTo(cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
	p.r.ClosePath()
}

func (p *painter) circle(cx, cy, radius float32, c color.Color) {
	p.addCircle(cx, cy, radius)
	p.fill(c)
}

// line strokes a segment with round caps.
func (p *painter) line(x1, y1, x2, y2, width float32, c color.Color) {
	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	half := width / 2
	if length > 0 {
		nx, ny := -dy/length*half*p.scale, dx/length*half*p.scale
		ax, ay, bx, by := x1*p.scale, y1*p.scale, x2*p.scale, y2*p.scale
		// same winding as addCircle so the caps do not cancel the body
		p.r.MoveTo(ax-nx, ay-ny)
		p.r.LineTo(bx-nx, by-ny)
		p.r.LineTo(bx+nx, by+ny)
		p.r.LineTo(ax+nx, ay+ny)
		p.r.ClosePath()
	}
	p.addCircle(x1, y1, half)
	p.addCircle(x2, y2, half)
	p.fill(c)
}

// shadow approximates a blurred drop shadow with stacked translucent discs.
func (p *painter) shadow(cx, cy, radius, blur float32, opacity float64) {
	const steps = 10
	layer := uint8(255 * opacity / steps)
	for i := steps; i > 0; i-- {
		spread := blur * float32(i) / steps
		p.circle(cx, cy, radius+spread-blur/2, color.NRGBA{A: layer})
	}
}
