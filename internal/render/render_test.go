package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"clockface/internal/face"
)

func nrgbaAt(img *image.RGBA, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestSnapshot(t *testing.T) {
	style := face.DefaultStyle()
	img, err := Snapshot(200, 200, face.TimeOfDay{}, style)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("bounds = %v", b)
	}

	t.Run("outside the face is transparent", func(t *testing.T) {
		if c := nrgbaAt(img, 2, 2); c.A != 0 {
			t.Errorf("corner pixel = %+v, want transparent", c)
		}
	})

	t.Run("open face shows the background", func(t *testing.T) {
		// Between the hands (all pointing up at midnight) and numeral 3.
		if c := nrgbaAt(img, 130, 100); c != (color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
			t.Errorf("face pixel = %+v, want white", c)
		}
	})

	t.Run("hands are drawn", func(t *testing.T) {
		// The hour, minute and second hands all cover (100, 75) at 00:00:00.
		if c := nrgbaAt(img, 100, 75); c.R > 0x40 || c.A != 0xFF {
			t.Errorf("hand pixel = %+v, want near black", c)
		}
	})

	t.Run("bezel is drawn", func(t *testing.T) {
		// radius 80, bezel 8 wide: x = 180 is on the ring.
		if c := nrgbaAt(img, 180, 100); c.R > 0x40 || c.A != 0xFF {
			t.Errorf("bezel pixel = %+v, want near black", c)
		}
	})
}

func TestSnapshotBackgroundColor(t *testing.T) {
	style := face.DefaultStyle()
	style.Background = 0xFF3366CC

	img, err := Snapshot(200, 200, face.TimeOfDay{Hour: 6}, style)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	want := color.NRGBA{R: 0x33, G: 0x66, B: 0xCC, A: 0xFF}
	if c := nrgbaAt(img, 130, 100); c != want {
		t.Errorf("face pixel = %+v, want %+v", c, want)
	}
}

func TestRendererReuse(t *testing.T) {
	r := NewRenderer()
	defer r.Close()

	for _, font := range []string{face.FontSansSerif, face.FontMonospace, face.FontSerif, "nonexistent"} {
		style := face.DefaultStyle()
		style.NumeralFont = font
		if _, err := r.Image(120, 80, face.Build(120, 80, face.TimeOfDay{Hour: 9}, style)); err != nil {
			t.Fatalf("font %q: %v", font, err)
		}
	}

	if len(r.fonts.fonts) != 2 {
		t.Errorf("parsed %d fonts, want 2 (serif and unknown fall back)", len(r.fonts.fonts))
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if len(r.fonts.faces) != 0 {
		t.Error("Close should drop cached faces")
	}
}

func TestFamily(t *testing.T) {
	tests := map[string]string{
		face.FontSansSerif: face.FontSansSerif,
		face.FontMonospace: face.FontMonospace,
		face.FontSerif:     face.FontSansSerif,
		"":                 face.FontSansSerif,
	}
	for in, want := range tests {
		if got := family(in); got != want {
			t.Errorf("family(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	img, err := Snapshot(64, 48, face.TimeOfDay{Hour: 3, Minute: 15}, face.DefaultStyle())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("decoded bounds = %v", b)
	}

	t.Run("pooled buffers give identical output", func(t *testing.T) {
		var again bytes.Buffer
		if err := EncodePNG(&again, img); err != nil {
			t.Fatalf("EncodePNG: %v", err)
		}
		var first bytes.Buffer
		if err := EncodePNG(&first, img); err != nil {
			t.Fatalf("EncodePNG: %v", err)
		}
		if !bytes.Equal(first.Bytes(), again.Bytes()) {
			t.Error("re-encoding with a pooled buffer changed the output")
		}
	})
}

func TestZeroSizedPrimitives(t *testing.T) {
	r := NewRenderer()
	defer r.Close()

	plan := face.Plan{
		{Kind: face.KindDisc, Radius: 0, Fill: face.Black},
		{Kind: face.KindNumeral, Text: "1", Size: 0, Fill: face.Black},
		{Kind: face.KindSegment, Stroke: face.Stroke{Width: 2, Color: face.Transparent}},
	}
	img, err := r.Image(10, 10, plan)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if img.RGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d, %d) painted", x, y)
			}
		}
	}
}
