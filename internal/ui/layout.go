package ui

import (
	"clockface/internal/face"

	"fyne.io/fyne/v2"
)

const (
	defaultClockMinSize = 200

	// smallShare caps the small clock at 1/smallShare of the split axis.
	smallShare = 3
)

// facesLayout places the large clock, and the small one when present.
// The large clock gets exactly the space the small one leaves; the small
// clock takes its desired size, at most its share of the split axis.
// Faces sit side by side, or stacked when vertical is set.
type facesLayout struct {
	vertical bool
}

var _ fyne.Layout = (*facesLayout)(nil)

func measure(desired float32, spec face.MeasureSpec) float32 {
	return float32(face.Measure(float64(desired), spec))
}

func (l *facesLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	visible := visibleObjects(objects)
	if len(visible) == 0 {
		return
	}

	large := visible[0]
	if len(visible) == 1 {
		large.Move(fyne.NewPos(0, 0))
		large.Resize(size)
		return
	}

	small := visible[1]
	want := small.MinSize()
	if l.vertical {
		w := measure(want.Width, face.AtMostSpec(float64(size.Width)))
		h := measure(want.Height, face.AtMostSpec(float64(size.Height/smallShare)))
		edge := min(w, h)
		largeH := measure(0, face.ExactlySpec(float64(size.Height-edge)))

		large.Move(fyne.NewPos(0, 0))
		large.Resize(fyne.NewSize(size.Width, largeH))
		small.Move(fyne.NewPos((size.Width-edge)/2, largeH))
		small.Resize(fyne.NewSquareSize(edge))
		return
	}

	w := measure(want.Width, face.AtMostSpec(float64(size.Width/smallShare)))
	h := measure(want.Height, face.AtMostSpec(float64(size.Height)))
	edge := min(w, h)
	largeW := measure(0, face.ExactlySpec(float64(size.Width-edge)))

	large.Move(fyne.NewPos(0, 0))
	large.Resize(fyne.NewSize(largeW, size.Height))
	small.Move(fyne.NewPos(largeW, (size.Height-edge)/2))
	small.Resize(fyne.NewSquareSize(edge))
}

func (l *facesLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var total fyne.Size
	for _, o := range visibleObjects(objects) {
		m := o.MinSize()
		if l.vertical {
			total.Width = max(total.Width, m.Width)
			total.Height += m.Height
		} else {
			total.Width += m.Width
			total.Height = max(total.Height, m.Height)
		}
	}
	return total
}

func visibleObjects(objects []fyne.CanvasObject) []fyne.CanvasObject {
	out := make([]fyne.CanvasObject, 0, len(objects))
	for _, o := range objects {
		if o.Visible() {
			out = append(out, o)
		}
	}
	return out
}
