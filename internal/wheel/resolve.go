package wheel

import "image/color"

// Result is the item resting under the pointer.
type Result struct {
	Index int
	Label string
	Color color.RGBA
	Hex   string
}

// Resolve maps a final rotation to the winning item and its sector color.
// It reports false for an empty wheel.
func Resolve(items []string, rotation float64, p Palette) (Result, bool) {
	i := WinnerIndex(rotation, len(items))
	if i < 0 {
		return Result{}, false
	}
	return Result{Index: i, Label: items[i], Color: p.At(i), Hex: p.Hex(i)}, true
}
