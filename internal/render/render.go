// Package render rasterizes a face.Plan into an image without any GUI
// toolkit. It backs the window icon and the headless snapshot command.
//
// Shapes are filled with golang.org/x/image/vector; numerals are drawn with
// the Go fonts through golang.org/x/image/font/opentype.
package render

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"clockface/internal/face"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic Bezier control points for a quarter circle.
const kappa = 0.5522847498

// shadowPasses approximates a blurred shadow with widening, faint copies.
const shadowPasses = 3

// Renderer draws plans. It caches parsed fonts and sized font faces and is
// not safe for concurrent use.
type Renderer struct {
	fonts *fontCache
	ras   *vector.Rasterizer
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{fonts: newFontCache()}
}

// Close releases cached font faces.
func (r *Renderer) Close() error {
	return r.fonts.close()
}

// Image renders plan onto a new transparent w x h image.
func (r *Renderer) Image(w, h int, plan face.Plan) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := r.Draw(dst, plan); err != nil {
		return nil, err
	}
	return dst, nil
}

// Draw renders plan onto dst in order, compositing over existing pixels.
func (r *Renderer) Draw(dst draw.Image, plan face.Plan) error {
	for _, p := range plan {
		switch p.Kind {
		case face.KindDisc:
			r.fill(dst, p.Fill, func(ras *vector.Rasterizer) {
				circle(ras, p.Center.X, p.Center.Y, p.Radius, false)
			})
		case face.KindRing:
			r.shadow(dst, p.Stroke, func(ras *vector.Rasterizer, dx, dy, grow float64) {
				ring(ras, p.Center.X+dx, p.Center.Y+dy, p.Radius, p.Stroke.Width+grow)
			})
			r.fill(dst, p.Stroke.Color, func(ras *vector.Rasterizer) {
				ring(ras, p.Center.X, p.Center.Y, p.Radius, p.Stroke.Width)
			})
		case face.KindSegment:
			r.shadow(dst, p.Stroke, func(ras *vector.Rasterizer, dx, dy, grow float64) {
				segment(ras, p.From.X+dx, p.From.Y+dy, p.To.X+dx, p.To.Y+dy, p.Stroke.Width+grow)
			})
			r.fill(dst, p.Stroke.Color, func(ras *vector.Rasterizer) {
				segment(ras, p.From.X, p.From.Y, p.To.X, p.To.Y, p.Stroke.Width)
			})
		case face.KindNumeral:
			if err := r.text(dst, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) rasterizer(b image.Rectangle) *vector.Rasterizer {
	if r.ras == nil {
		r.ras = vector.NewRasterizer(b.Dx(), b.Dy())
	} else {
		r.ras.Reset(b.Dx(), b.Dy())
	}
	return r.ras
}

func (r *Renderer) fill(dst draw.Image, c face.ARGB, path func(*vector.Rasterizer)) {
	if c.A() == 0 {
		return
	}
	b := dst.Bounds()
	ras := r.rasterizer(b)
	path(ras)
	ras.Draw(dst, b, image.NewUniform(c), b.Min)
}

// shadow draws the stroke's shadow, if any, as a few offset copies that
// grow by the blur radius while their alpha shrinks.
func (r *Renderer) shadow(dst draw.Image, s face.Stroke, path func(ras *vector.Rasterizer, dx, dy, grow float64)) {
	sh := s.Shadow
	if sh == nil || sh.Color.A() == 0 {
		return
	}
	passAlpha := uint8(int(sh.Color.A()) / shadowPasses)
	c := face.NewARGB(passAlpha, sh.Color.R(), sh.Color.G(), sh.Color.B())
	for i := shadowPasses; i >= 1; i-- {
		grow := sh.Blur * float64(i) / shadowPasses
		r.fill(dst, c, func(ras *vector.Rasterizer) {
			path(ras, sh.DX, sh.DY, grow)
		})
	}
}

func (r *Renderer) text(dst draw.Image, p face.Primitive) error {
	if p.Size <= 0 || p.Fill.A() == 0 {
		return nil
	}
	ff, err := r.fonts.face(p.Font, p.Size)
	if err != nil {
		return err
	}
	advance := font.MeasureString(ff, p.Text)
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(p.Fill),
		Face: ff,
		Dot: fixed.Point26_6{
			X: toFixed(p.Center.X) - advance/2,
			Y: toFixed(p.Baseline),
		},
	}
	d.DrawString(p.Text)
	return nil
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// circle adds a closed circle; ccw reverses the winding so it can punch a
// hole into an enclosing circle.
func circle(ras *vector.Rasterizer, cx, cy, rad float64, ccw bool) {
	if rad <= 0 {
		return
	}
	k := rad * kappa
	x, y, r := float32(cx), float32(cy), float32(rad)
	kk := float32(k)
	if !ccw {
		ras.MoveTo(x+r, y)
		ras.CubeTo(x+r, y+kk, x+kk, y+r, x, y+r)
		ras.CubeTo(x-kk, y+r, x-r, y+kk, x-r, y)
		ras.CubeTo(x-r, y-kk, x-kk, y-r, x, y-r)
		ras.CubeTo(x+kk, y-r, x+r, y-kk, x+r, y)
	} else {
		ras.MoveTo(x+r, y)
		ras.CubeTo(x+r, y-kk, x+kk, y-r, x, y-r)
		ras.CubeTo(x-kk, y-r, x-r, y-kk, x-r, y)
		ras.CubeTo(x-r, y+kk, x-kk, y+r, x, y+r)
		ras.CubeTo(x+kk, y+r, x+r, y+kk, x+r, y)
	}
	ras.ClosePath()
}

// ring strokes a circle of radius rad centered on the path.
func ring(ras *vector.Rasterizer, cx, cy, rad, width float64) {
	half := width / 2
	circle(ras, cx, cy, rad+half, false)
	circle(ras, cx, cy, math.Max(rad-half, 0), true)
}

// segment strokes a line with round caps.
func segment(ras *vector.Rasterizer, x0, y0, x1, y1, width float64) {
	half := width / 2
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length > 0 {
		nx, ny := -dy/length*half, dx/length*half
		// Same winding as circle so the caps add instead of cancelling.
		ras.MoveTo(float32(x0-nx), float32(y0-ny))
		ras.LineTo(float32(x1-nx), float32(y1-ny))
		ras.LineTo(float32(x1+nx), float32(y1+ny))
		ras.LineTo(float32(x0+nx), float32(y0+ny))
		ras.ClosePath()
	}
	circle(ras, x0, y0, half, false)
	circle(ras, x1, y1, half, false)
}

// Snapshot renders a w x h face showing t in style s.
func Snapshot(w, h int, t face.TimeOfDay, s face.FaceStyle) (*image.RGBA, error) {
	r := NewRenderer()
	defer r.Close()
	return r.Image(w, h, face.Build(float64(w), float64(h), t, s))
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression, BufferPool: encoderBuffers}
	return enc.Encode(w, img)
}
