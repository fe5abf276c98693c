package wheel

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultColors is the sector palette, in cycling order.
var DefaultColors = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40", "#C9CBCF"}

// Palette is an ordered, non-empty list of sector colors.
// Item i gets color i mod Len on the wheel and in every other view.
type Palette struct {
	hex  []string
	rgba []color.RGBA
}

// ParsePalette validates hex colors ("#rgb" or "#rrggbb").
func ParsePalette(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return Palette{}, fmt.Errorf("palette: no colors")
	}
	p := Palette{hex: make([]string, 0, len(hexes)), rgba: make([]color.RGBA, 0, len(hexes))}
	for _, h := range hexes {
		c, err := parseHex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("palette: %w", err)
		}
		p.hex = append(p.hex, h)
		p.rgba = append(p.rgba, c)
	}
	return p, nil
}

// DefaultPalette returns the built-in seven-color palette.
func DefaultPalette() Palette {
	p, err := ParsePalette(DefaultColors)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Palette) Len() int { return len(p.rgba) }

// At returns the color for item index i.
func (p Palette) At(i int) color.RGBA {
	return p.rgba[cycle(i, len(p.rgba))]
}

// Hex returns the configured spelling of the color for item index i.
func (p Palette) Hex(i int) string {
	return p.hex[cycle(i, len(p.hex))]
}

func cycle(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func parseHex(h string) (color.RGBA, error) {
	c, err := colorful.Hex(h)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", h, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func mustHex(h string) color.RGBA {
	c, err := parseHex(h)
	if err != nil {
		panic(err)
	}
	return c
}
