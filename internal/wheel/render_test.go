package wheel

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"
)

func pixelAt(img *image.RGBA, angle, dist float64) color.RGBA {
	c := float64(img.Bounds().Dx()) / 2
	x := int(math.Floor(c + dist*math.Cos(angle)))
	y := int(math.Floor(c + dist*math.Sin(angle)))
	return img.RGBAAt(x, y)
}

func TestRender_Idempotent(t *testing.T) {
	items := []string{"Pizza", "Sushi", "Tacos", "Curry"}
	st := DefaultStyle()
	for _, rot := range []float64{0, 1.234, 17.5} {
		a := Render(items, rot, st)
		b := Render(items, rot, st)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("rotation %v: two renders differ", rot)
		}
	}
}

func TestRender_Empty(t *testing.T) {
	st := DefaultStyle()
	img := Render(nil, 0, st)
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 400 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := pixelAt(img, math.Pi/2, 100); got != st.EmptyDisc {
		t.Errorf("disc pixel = %v; want %v", got, st.EmptyDisc)
	}
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("corner pixel = %v; want transparent", got)
	}

	// The prompt is painted with the prompt color somewhere on the center row band.
	found := false
	for y := 190; y < 210 && !found; y++ {
		for x := 100; x < 300; x++ {
			if img.RGBAAt(x, y) == st.EmptyText {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("empty prompt text not painted")
	}
}

func TestRender_SectorColors(t *testing.T) {
	st := DefaultStyle()
	st.Labels = false
	items := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	rot := 0.4
	img := Render(items, rot, st)
	a := AnglePerItem(len(items))
	for i := range items {
		start, _ := SectorBounds(i, len(items), rot)
		if got, want := pixelAt(img, start+a/2, 100), st.Palette.At(i); got != want {
			t.Errorf("sector %d pixel = %v; want %v", i, got, want)
		}
	}
}

func TestRender_HubAndRim(t *testing.T) {
	st := DefaultStyle()
	img := Render([]string{"x", "y"}, 0, st)
	if got := img.RGBAAt(200, 200); got != st.Hub {
		t.Errorf("center = %v; want hub %v", got, st.Hub)
	}
	if got := pixelAt(img, 0.3, 160); got.A != 0 {
		t.Errorf("outside rim = %v; want transparent", got)
	}
}

func TestRender_PointerPixelMatchesWinner(t *testing.T) {
	st := DefaultStyle()
	st.Labels = false
	for _, n := range []int{2, 3, 5, 7, 11} {
		items := make([]string, n)
		for i := range items {
			items[i] = string(rune('A' + i))
		}
		a := AnglePerItem(n)
		for _, rot := range []float64{0.3, 1.1, 2.5, 4.0, 7.7, 20.1, 33.3} {
			off := math.Mod(wrap(PointerAngle-rot), a)
			if off < 0.05 || a-off < 0.05 {
				continue
			}
			img := Render(items, rot, st)
			got := img.RGBAAt(200, 200-75)
			want := st.Palette.At(WinnerIndex(rot, n))
			if got != want {
				t.Errorf("n=%d rot=%v: pixel under pointer = %v; winner color %v", n, rot, got, want)
			}
		}
	}
}

func TestRender_LabelsArePainted(t *testing.T) {
	st := DefaultStyle()
	items := []string{"North", "South"}
	with := Render(items, 0.2, st)
	st.Labels = false
	without := Render(items, 0.2, st)
	if bytes.Equal(with.Pix, without.Pix) {
		t.Error("labels left no mark on the canvas")
	}
}

func TestRender_ZeroSize(t *testing.T) {
	st := DefaultStyle()
	st.Size = 0
	if img := Render([]string{"a"}, 0, st); img.Bounds().Dx() != 0 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestCompactStyle(t *testing.T) {
	st := CompactStyle(40, DefaultPalette())
	if st.Labels {
		t.Error("compact style draws labels")
	}
	if r := st.radius(); r != 19 {
		t.Errorf("radius = %v; want 19", r)
	}
}

func TestLabelPlacement(t *testing.T) {
	tests := []struct {
		mid      float64
		flipped  bool
		wantRot  float64
		wantLeft float64
	}{
		{0.2, false, 0.2, 140 - 35},
		{math.Pi, true, 2 * math.Pi, -140},
		{3 * math.Pi / 2, false, 3 * math.Pi / 2, 140 - 35},
		{TwoPi + 0.2, false, 0.2, 140 - 35},
	}
	for _, tt := range tests {
		rot, ox, flipped := labelPlacement(tt.mid, 140, 35)
		if flipped != tt.flipped || math.Abs(rot-tt.wantRot) > 1e-9 || ox != tt.wantLeft {
			t.Errorf("labelPlacement(%v) = %v, %v, %v; want %v, %v, %v",
				tt.mid, rot, ox, flipped, tt.wantRot, tt.wantLeft, tt.flipped)
		}
	}
}

func TestFitLabel(t *testing.T) {
	tests := []struct {
		label string
		maxW  float64
		want  string
	}{
		{"short", 126, "short"},
		{"a very long label that will not fit", 70, "a very lo~"},
		{"abc", 7, "~"},
		{"abc", 3, ""},
		{"🇫🇷🇩🇪🇮🇹", 14, "🇫🇷~"},
	}
	for _, tt := range tests {
		if got := fitLabel(tt.label, tt.maxW); got != tt.want {
			t.Errorf("fitLabel(%q, %v) = %q; want %q", tt.label, tt.maxW, got, tt.want)
		}
	}
}
