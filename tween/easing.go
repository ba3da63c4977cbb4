package tween

import (
	"math"
	"strings"
)

func Linear(t float64) float64 { return t }

func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// ByName resolves a config easing identifier. Unknown names fall back to
// QuadInOut, the cinematic default.
func ByName(name string) Easing {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear":
		return Linear
	case "quad", "quad-in-out", "power2":
		return QuadInOut
	case "cubic", "cubic-in-out", "power3":
		return CubicInOut
	case "sine", "sine-in-out":
		return SineInOut
	default:
		return QuadInOut
	}
}
