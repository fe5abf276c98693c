package wheel

import (
	"image"
	"image/color"
	"math"

	"github.com/rivo/uniseg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// EmptyPrompt is painted on a wheel with no items.
const EmptyPrompt = "Add items to fill the wheel"

// labelInset is the gap between a label's outer end and the rim.
const labelInset = 10

// Style controls everything Render paints besides the items themselves.
type Style struct {
	Size      int     // square canvas side in pixels
	Radius    float64 // wheel radius; clamped to fit the canvas
	HubRadius float64
	Labels    bool

	Palette   Palette
	Outline   color.RGBA
	Hub       color.RGBA
	EmptyDisc color.RGBA
	EmptyText color.RGBA
	LabelText color.RGBA
}

// DefaultStyle matches a 400px canvas with a 150px wheel.
func DefaultStyle() Style {
	return Style{
		Size:      400,
		Radius:    150,
		HubRadius: 10,
		Labels:    true,
		Palette:   DefaultPalette(),
		Outline:   color.RGBA{A: 0xff},
		Hub:       mustHex("#333"),
		EmptyDisc: mustHex("#ddd"),
		EmptyText: mustHex("#555"),
		LabelText: mustHex("#fff"),
	}
}

// CompactStyle is sized for terminal output: one pixel per column,
// no labels, a proportionally smaller hub.
func CompactStyle(cols int, p Palette) Style {
	s := DefaultStyle()
	s.Size = cols
	s.Radius = 0
	s.HubRadius = math.Max(1, float64(cols)/30)
	s.Labels = false
	s.Palette = p
	return s
}

func (s Style) radius() float64 {
	limit := float64(s.Size)/2 - 1
	if s.Radius <= 0 || s.Radius > limit {
		return limit
	}
	return s.Radius
}

// Render paints the wheel for items at the given rotation. The output
// depends only on its arguments, so redrawing every animation frame from
// scratch is always consistent.
func Render(items []string, rotation float64, st Style) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, st.Size, st.Size))
	if st.Size <= 0 {
		return img
	}
	cx, cy := float64(st.Size)/2, float64(st.Size)/2
	r := st.radius()

	if len(items) == 0 {
		fillDisc(img, cx, cy, r, st.EmptyDisc)
		if st.Labels {
			drawCentered(img, EmptyPrompt, cx, cy, st.EmptyText)
		}
		return img
	}

	paintSectors(img, len(items), rotation, cx, cy, r, st)
	if st.Labels {
		a := AnglePerItem(len(items))
		for i, label := range items {
			start, _ := SectorBounds(i, len(items), rotation)
			drawLabel(img, label, start+a/2, cx, cy, r, st)
		}
	}
	fillDisc(img, cx, cy, st.HubRadius, st.Hub)
	return img
}

// paintSectors fills every pixel inside the rim with its sector color and
// strokes the rim and the sector boundaries.
func paintSectors(img *image.RGBA, n int, rotation, cx, cy, r float64, st Style) {
	a := AnglePerItem(n)
	b := img.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			dx, dy := float64(px)+0.5-cx, float64(py)+0.5-cy
			d := math.Hypot(dx, dy)
			if d > r {
				continue
			}
			ang := math.Atan2(dy, dx)
			i := SectorAt(ang, rotation, n)
			c := st.Palette.At(i)
			t := wrap(ang-rotation) - float64(i)*a
			if d > r-1 || math.Min(t, a-t)*d < 0.75 {
				c = st.Outline
			}
			img.SetRGBA(px, py, c)
		}
	}
}

func fillDisc(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	b := img.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			dx, dy := float64(px)+0.5-cx, float64(py)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

var face = basicfont.Face7x13

func drawCentered(img *image.RGBA, text string, cx, cy float64, c color.RGBA) {
	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
	w := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: fixed.I(int(math.Round(cx))) - w/2,
		Y: fixed.I(int(math.Round(cy)) + 4),
	}
	d.DrawString(text)
}

// labelPlacement decides how a label at screen angle mid is laid out.
// The text is rotated by rot; its left edge sits at x offset ox along the
// rotated axis. Labels on the left half are turned half a revolution so
// they never read upside down, anchored at the rim instead of ending there.
func labelPlacement(mid, inner float64, width int) (rot, ox float64, flipped bool) {
	theta := wrap(mid)
	if theta > math.Pi/2 && theta < 3*math.Pi/2 {
		return theta + math.Pi, -inner, true
	}
	return theta, inner - float64(width), false
}

func drawLabel(img *image.RGBA, label string, mid, cx, cy, r float64, st Style) {
	inner := r - labelInset
	maxW := inner - st.HubRadius - 4
	text := fitLabel(label, maxW)
	if text == "" {
		return
	}

	ascent := face.Metrics().Ascent.Ceil()
	w := font.MeasureString(face, text).Ceil()
	src := image.NewRGBA(image.Rect(0, 0, w, face.Metrics().Height.Ceil()))
	d := &font.Drawer{Dst: src, Src: image.NewUniform(st.LabelText), Face: face, Dot: fixed.P(0, ascent)}
	d.DrawString(text)

	rot, ox, _ := labelPlacement(mid, inner, w)
	oy := float64(5 - ascent) // baseline 5px below the sector's mid line
	sin, cos := math.Sincos(rot)
	m := f64.Aff3{
		cos, -sin, cx + cos*ox - sin*oy,
		sin, cos, cy + sin*ox + cos*oy,
	}
	draw.ApproxBiLinear.Transform(img, m, src, src.Bounds(), draw.Over, nil)
}

// fitLabel keeps whole grapheme clusters while the text fits in maxW pixels,
// marking a cut with a trailing "~".
func fitLabel(label string, maxW float64) string {
	advance := face.Advance
	limit := int(maxW) / advance
	if limit <= 0 {
		return ""
	}
	if uniseg.GraphemeClusterCount(label) <= limit {
		return label
	}
	if limit == 1 {
		return "~"
	}
	out := make([]byte, 0, len(label))
	g := uniseg.NewGraphemes(label)
	for k := 0; k < limit-1 && g.Next(); k++ {
		out = append(out, g.Str()...)
	}
	return string(out) + "~"
}
