package procgen

import (
	"image/color"
	"math"
)

// Theme selects one of the backdrop styles.
type Theme string

const (
	ThemeSky             Theme = "sky"
	ThemeQuantum         Theme = "quantum"
	ThemeUnderwater      Theme = "underwater"
	ThemeUnderwaterMicro Theme = "underwater-micro"
)

// KnownTheme reports whether t names one of the backdrop styles.
func KnownTheme(t Theme) bool {
	_, ok := themeSeedMul[t]
	return ok
}

// Per-theme seed multipliers keep the same stage seed from producing the
// same art in two different themes.
var themeSeedMul = map[Theme]int64{
	ThemeSky:             12345,
	ThemeQuantum:         54321,
	ThemeUnderwater:      67890,
	ThemeUnderwaterMicro: 98765,
}

// RGB is a palette color with room for arithmetic before clamping.
type RGB struct {
	R int
	G int
	B int
}

func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}
}

// Luminance is the usual perceptual weighting.
func (c RGB) Luminance() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// Palette holds the named colors one backdrop is painted from.
type Palette struct {
	GradientTop    RGB
	GradientBottom RGB
	Base           RGB
	Accent         RGB
	Detail         RGB
}

const paletteCount = 5

var themePalettes = map[Theme][paletteCount]Palette{
	ThemeSky: {
		{GradientTop: RGB{110, 170, 235}, GradientBottom: RGB{215, 235, 250}, Base: RGB{140, 150, 175}, Accent: RGB{250, 250, 255}, Detail: RGB{90, 95, 120}},
		{GradientTop: RGB{130, 185, 240}, GradientBottom: RGB{235, 225, 205}, Base: RGB{155, 140, 160}, Accent: RGB{255, 240, 225}, Detail: RGB{100, 85, 105}},
		{GradientTop: RGB{95, 150, 220}, GradientBottom: RGB{200, 220, 245}, Base: RGB{120, 135, 170}, Accent: RGB{240, 248, 255}, Detail: RGB{80, 90, 115}},
		{GradientTop: RGB{150, 190, 235}, GradientBottom: RGB{250, 235, 215}, Base: RGB{165, 150, 150}, Accent: RGB{255, 250, 235}, Detail: RGB{110, 95, 95}},
		{GradientTop: RGB{120, 165, 225}, GradientBottom: RGB{225, 240, 250}, Base: RGB{130, 145, 165}, Accent: RGB{245, 250, 255}, Detail: RGB{85, 95, 110}},
	},
	ThemeQuantum: {
		{GradientTop: RGB{15, 10, 40}, GradientBottom: RGB{40, 20, 70}, Base: RGB{90, 60, 160}, Accent: RGB{170, 120, 255}, Detail: RGB{60, 40, 110}},
		{GradientTop: RGB{10, 20, 45}, GradientBottom: RGB{25, 45, 80}, Base: RGB{60, 100, 170}, Accent: RGB{120, 190, 255}, Detail: RGB{40, 70, 120}},
		{GradientTop: RGB{20, 10, 35}, GradientBottom: RGB{55, 25, 60}, Base: RGB{130, 60, 140}, Accent: RGB{230, 120, 220}, Detail: RGB{85, 40, 95}},
		{GradientTop: RGB{8, 25, 30}, GradientBottom: RGB{20, 55, 60}, Base: RGB{50, 130, 130}, Accent: RGB{110, 240, 220}, Detail: RGB{35, 90, 90}},
		{GradientTop: RGB{18, 15, 50}, GradientBottom: RGB{35, 30, 85}, Base: RGB{80, 80, 180}, Accent: RGB{150, 150, 255}, Detail: RGB{55, 55, 125}},
	},
	ThemeUnderwater: {
		{GradientTop: RGB{10, 45, 85}, GradientBottom: RGB{5, 20, 45}, Base: RGB{30, 90, 120}, Accent: RGB{120, 200, 210}, Detail: RGB{20, 60, 85}},
		{GradientTop: RGB{15, 55, 95}, GradientBottom: RGB{8, 25, 55}, Base: RGB{45, 110, 130}, Accent: RGB{150, 220, 215}, Detail: RGB{30, 75, 95}},
		{GradientTop: RGB{8, 40, 70}, GradientBottom: RGB{4, 15, 35}, Base: RGB{25, 80, 105}, Accent: RGB{100, 185, 195}, Detail: RGB{18, 55, 75}},
		{GradientTop: RGB{12, 50, 100}, GradientBottom: RGB{6, 22, 50}, Base: RGB{35, 95, 135}, Accent: RGB{130, 205, 225}, Detail: RGB{25, 65, 100}},
		{GradientTop: RGB{10, 48, 78}, GradientBottom: RGB{5, 18, 40}, Base: RGB{28, 85, 110}, Accent: RGB{115, 195, 200}, Detail: RGB{20, 58, 80}},
	},
	ThemeUnderwaterMicro: {
		{GradientTop: RGB{12, 30, 50}, GradientBottom: RGB{4, 12, 25}, Base: RGB{40, 85, 100}, Accent: RGB{140, 220, 200}, Detail: RGB{25, 55, 70}},
		{GradientTop: RGB{10, 35, 45}, GradientBottom: RGB{3, 14, 22}, Base: RGB{35, 95, 90}, Accent: RGB{120, 230, 190}, Detail: RGB{22, 62, 60}},
		{GradientTop: RGB{15, 28, 55}, GradientBottom: RGB{5, 10, 28}, Base: RGB{50, 80, 115}, Accent: RGB{150, 200, 230}, Detail: RGB{32, 52, 80}},
		{GradientTop: RGB{8, 32, 42}, GradientBottom: RGB{3, 12, 20}, Base: RGB{30, 88, 85}, Accent: RGB{110, 215, 185}, Detail: RGB{20, 58, 58}},
		{GradientTop: RGB{14, 26, 48}, GradientBottom: RGB{5, 11, 24}, Base: RGB{45, 75, 105}, Accent: RGB{135, 195, 215}, Detail: RGB{28, 48, 72}},
	},
}

// PaletteIndex is the base palette selected for a stage seed.
func PaletteIndex(seed int) int {
	idx := seed % paletteCount
	if idx < 0 {
		idx += paletteCount
	}
	return idx
}

// PaletteFor selects and perturbs the palette for a theme and stage seed.
// The perturbation draws from the same theme RNG stream the painters use,
// so a palette is only reproducible together with its backdrop.
func PaletteFor(theme Theme, seed int) Palette {
	return perturbPalette(theme, themePalettes[theme][PaletteIndex(seed)], themeRand(theme, seed))
}

func themeRand(theme Theme, seed int) *Rand {
	mul, ok := themeSeedMul[theme]
	if !ok {
		mul = 1
	}
	return NewRand(int64(seed) * mul)
}

// Luminance bands per role. Dark roles stay moody, light roles stay legible
// against them.
const (
	darkFloor = 18.0
	darkCeil  = 115.0
	lightMin  = 140.0
)

func perturbPalette(theme Theme, p Palette, r *Rand) Palette {
	dark := theme == ThemeUnderwater || theme == ThemeUnderwaterMicro || theme == ThemeQuantum
	if dark {
		p.GradientTop = perturbDark(r, p.GradientTop)
		p.GradientBottom = perturbDark(r, p.GradientBottom)
		p.Base = perturbDark(r, p.Base)
		p.Detail = perturbDark(r, p.Detail)
		p.Accent = perturbLight(r, p.Accent)
		return p
	}
	p.GradientTop = perturbLight(r, p.GradientTop)
	p.GradientBottom = perturbLight(r, p.GradientBottom)
	p.Base = perturbDark(r, p.Base)
	p.Detail = perturbDark(r, p.Detail)
	p.Accent = perturbLight(r, p.Accent)
	return p
}

// perturbDark keeps a color below the dark ceiling: colors already darker
// than the floor get lifted to stay visible, everything else jitters ±20 per
// channel.
func perturbDark(r *Rand, c RGB) RGB {
	l := c.Luminance()
	if l < darkFloor {
		scale := darkFloor / math.Max(l, 1)
		c = RGB{int(float64(c.R) * scale), int(float64(c.G) * scale), int(float64(c.B) * scale)}
	} else {
		c = RGB{
			c.R + int(r.Between(-20, 20)),
			c.G + int(r.Between(-20, 20)),
			c.B + int(r.Between(-20, 20)),
		}
	}
	c = clampRGB(c)
	if l2 := c.Luminance(); l2 > darkCeil {
		scale := darkCeil / l2
		c = clampRGB(RGB{int(float64(c.R) * scale), int(float64(c.G) * scale), int(float64(c.B) * scale)})
	}
	return c
}

// perturbLight keeps a color above the light floor: too-dark colors get
// lifted to the floor, everything else jitters ±30 per channel.
func perturbLight(r *Rand, c RGB) RGB {
	if l := c.Luminance(); l < lightMin {
		scale := lightMin / math.Max(l, 1)
		c = RGB{int(float64(c.R) * scale), int(float64(c.G) * scale), int(float64(c.B) * scale)}
	} else {
		c = RGB{
			c.R + int(r.Between(-30, 30)),
			c.G + int(r.Between(-30, 30)),
			c.B + int(r.Between(-30, 30)),
		}
	}
	return clampRGB(c)
}

func clampRGB(c RGB) RGB {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return v
	}
	return RGB{clamp(c.R), clamp(c.G), clamp(c.B)}
}
