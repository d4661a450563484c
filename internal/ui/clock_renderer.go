package ui

import (
	"image/color"

	"clockface/internal/face"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// clockRenderer maps each primitive of a face.Plan onto one long-lived
// canvas object. Plans always have face.PlanLen entries in the same order,
// so index i is always the same part of the face.
type clockRenderer struct {
	clock *Clock

	prims   []fyne.CanvasObject
	shadows []fyne.CanvasObject // nil where the primitive has no shadow
	objects []fyne.CanvasObject

	plan face.Plan
}

func newClockRenderer(c *Clock) *clockRenderer {
	plan := face.Build(0, 0, c.time, c.style)
	r := &clockRenderer{
		clock:   c,
		prims:   make([]fyne.CanvasObject, len(plan)),
		shadows: make([]fyne.CanvasObject, len(plan)),
	}

	// Shadows go directly beneath their primitive.
	for i, p := range plan {
		if p.Stroke.Shadow != nil {
			r.shadows[i] = newPrimitiveObject(p.Kind)
			r.objects = append(r.objects, r.shadows[i])
		}
		r.prims[i] = newPrimitiveObject(p.Kind)
		r.objects = append(r.objects, r.prims[i])
	}
	r.update(c.Size())
	return r
}

func newPrimitiveObject(kind face.Kind) fyne.CanvasObject {
	switch kind {
	case face.KindSegment:
		return canvas.NewLine(color.Transparent)
	case face.KindNumeral:
		t := canvas.NewText("", color.Transparent)
		t.Alignment = fyne.TextAlignCenter
		return t
	default:
		return canvas.NewCircle(color.Transparent)
	}
}

func (r *clockRenderer) Layout(size fyne.Size) {
	r.update(size)
}

func (r *clockRenderer) MinSize() fyne.Size {
	return r.clock.MinSize()
}

func (r *clockRenderer) Refresh() {
	r.update(r.clock.Size())
	for _, o := range r.objects {
		canvas.Refresh(o)
	}
}

func (r *clockRenderer) Destroy() {}

func (r *clockRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// update rebuilds the plan for the area inside the padding and moves every
// object into place.
func (r *clockRenderer) update(size fyne.Size) {
	pad := r.clock.padding
	w := max(0, size.Width-2*pad)
	h := max(0, size.Height-2*pad)

	plan := face.Build(float64(w), float64(h), r.clock.time, r.clock.style)
	off := face.Point{X: float64(pad), Y: float64(pad)}
	for i, p := range plan {
		placePrimitive(r.prims[i], p, off)
		if sh := r.shadows[i]; sh != nil {
			placePrimitive(sh, shadowOf(p), off)
		}
	}
	r.plan = plan
}

// shadowOf turns p into its own shadow: shifted, recolored and widened by
// the blur radius, since canvas objects cannot blur.
func shadowOf(p face.Primitive) face.Primitive {
	s := p.Stroke.Shadow
	d := face.Point{X: s.DX, Y: s.DY}
	p.Center = p.Center.Add(d)
	p.From = p.From.Add(d)
	p.To = p.To.Add(d)
	p.Stroke = face.Stroke{Width: p.Stroke.Width + s.Blur, Color: s.Color}
	return p
}

func placePrimitive(obj fyne.CanvasObject, p face.Primitive, off face.Point) {
	switch o := obj.(type) {
	case *canvas.Circle:
		radius := p.Radius
		if p.Kind == face.KindRing {
			o.FillColor = color.Transparent
			o.StrokeColor = p.Stroke.Color
			o.StrokeWidth = float32(p.Stroke.Width)
			// The stroke is painted inside the bounds.
			radius += p.Stroke.Width / 2
		} else {
			o.FillColor = p.Fill
			o.StrokeWidth = 0
		}
		o.Move(toPos(p.Center.Add(off), -radius))
		o.Resize(fyne.NewSquareSize(float32(2 * radius)))

	case *canvas.Line:
		o.StrokeColor = p.Stroke.Color
		o.StrokeWidth = float32(p.Stroke.Width)
		o.Position1 = toPos(p.From.Add(off), 0)
		o.Position2 = toPos(p.To.Add(off), 0)

	case *canvas.Text:
		o.Text = p.Text
		o.Color = p.Fill
		o.TextSize = float32(p.Size)
		o.TextStyle = fyne.TextStyle{Bold: true, Monospace: p.Font == face.FontMonospace}
		sz := fyne.MeasureText(o.Text, o.TextSize, o.TextStyle)
		at := p.Center.Add(off)
		o.Move(fyne.NewPos(float32(at.X)-sz.Width/2, float32(at.Y)-sz.Height/2))
		o.Resize(sz)
	}
}

func toPos(p face.Point, shift float64) fyne.Position {
	return fyne.NewPos(float32(p.X+shift), float32(p.Y+shift))
}
