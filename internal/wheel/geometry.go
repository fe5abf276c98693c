package wheel

import "math"

// Angles are radians, measured from the positive x axis and growing
// clockwise on screen (y points down), the same convention the rasterizer
// and the resolver both use.

const TwoPi = 2 * math.Pi

// PointerAngle is where the fixed pointer sits: the top of the wheel.
const PointerAngle = 3 * math.Pi / 2

// AnglePerItem is the angular width of one sector, or 0 for an empty wheel.
func AnglePerItem(n int) float64 {
	if n <= 0 {
		return 0
	}
	return TwoPi / float64(n)
}

// SectorBounds returns the half-open span [start, end) of sector i.
func SectorBounds(i, n int, rotation float64) (start, end float64) {
	a := AnglePerItem(n)
	return float64(i)*a + rotation, float64(i+1)*a + rotation
}

// SectorAt returns the sector containing the screen angle, or -1 when n is 0.
func SectorAt(angle, rotation float64, n int) int {
	if n <= 0 {
		return -1
	}
	i := int(math.Floor(wrap(angle-rotation) / AnglePerItem(n)))
	if i >= n {
		i = n - 1
	}
	return i
}

// Normalize folds ((rotation mod 2π) + π/2) mod 2π into [0, 2π).
func Normalize(rotation float64) float64 {
	return wrap(wrap(rotation) + math.Pi/2)
}

// WinnerIndex returns the index of the sector resting under the pointer,
// or -1 for an empty wheel.
func WinnerIndex(rotation float64, n int) int {
	if n <= 0 {
		return -1
	}
	k := int(math.Floor(Normalize(rotation) / AnglePerItem(n)))
	return ((n-k-1)%n + n) % n
}

// wrap folds an angle into [0, 2π).
func wrap(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}
