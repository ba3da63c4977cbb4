// Package procgen produces the deterministic, seed-keyed backdrop art for
// each stage. Painting happens on a plain CPU raster so the same seed always
// yields the same pixels, on any machine, with no graphics context.
package procgen

import "math"

const (
	lcgMul = 9301
	lcgInc = 49297
	lcgMod = 233280
)

// Rand is a small linear-congruential generator. Identical seeds produce
// identical sequences, which is what makes stage backdrops reproducible.
type Rand struct {
	seed int64
}

func NewRand(seed int64) *Rand {
	s := seed % lcgMod
	if s < 0 {
		s += lcgMod
	}
	return &Rand{seed: s}
}

// Next returns the next value in [0, 1).
func (r *Rand) Next() float64 {
	r.seed = (r.seed*lcgMul + lcgInc) % lcgMod
	return float64(r.seed) / lcgMod
}

// Between maps the next value into [min, max).
func (r *Rand) Between(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// Int returns an integer in [min, max] inclusive.
func (r *Rand) Int(min, max int) int {
	v := int(math.Floor(r.Between(float64(min), float64(max+1))))
	if v > max {
		v = max
	}
	return v
}
