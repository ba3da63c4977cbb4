package procgen

import "testing"

func TestPaletteIndex(t *testing.T) {
	cases := []struct {
		seed int
		want int
	}{
		{0, 0},
		{1, 1},
		{4, 4},
		{5, 0},
		{7, 2},
		{-1, 4},
	}

	for _, c := range cases {
		if got := PaletteIndex(c.seed); got != c.want {
			t.Fatalf("PaletteIndex(%d): expected %d, got %d", c.seed, c.want, got)
		}
	}
}

func TestKnownTheme(t *testing.T) {
	for _, theme := range []Theme{ThemeSky, ThemeQuantum, ThemeUnderwater, ThemeUnderwaterMicro} {
		if !KnownTheme(theme) {
			t.Fatalf("theme %q should be known", theme)
		}
	}
	if KnownTheme("volcano") {
		t.Fatalf("unknown theme accepted")
	}
}

func TestPaletteForDeterminism(t *testing.T) {
	for _, theme := range []Theme{ThemeSky, ThemeQuantum, ThemeUnderwater, ThemeUnderwaterMicro} {
		for seed := 1; seed <= 10; seed++ {
			a := PaletteFor(theme, seed)
			b := PaletteFor(theme, seed)
			if a != b {
				t.Fatalf("%s seed %d: palette not deterministic", theme, seed)
			}
		}
	}
}

func TestPaletteLuminanceBands(t *testing.T) {
	dark := []Theme{ThemeQuantum, ThemeUnderwater, ThemeUnderwaterMicro}
	for _, theme := range dark {
		for seed := 1; seed <= 25; seed++ {
			p := PaletteFor(theme, seed)
			for _, c := range []RGB{p.GradientTop, p.GradientBottom, p.Base, p.Detail} {
				if l := c.Luminance(); l > darkCeil {
					t.Fatalf("%s seed %d: dark role luminance %v above ceiling %v", theme, seed, l, darkCeil)
				}
			}
			// accents start at or get lifted to the light floor, then
			// jitter at most 30 per channel
			if l := p.Accent.Luminance(); l < lightMin-31 {
				t.Fatalf("%s seed %d: accent luminance %v below jitter band of floor %v", theme, seed, l, lightMin)
			}
		}
	}
}

func TestPaletteChannelsClamped(t *testing.T) {
	for _, theme := range []Theme{ThemeSky, ThemeQuantum, ThemeUnderwater, ThemeUnderwaterMicro} {
		for seed := 1; seed <= 25; seed++ {
			p := PaletteFor(theme, seed)
			for _, c := range []RGB{p.GradientTop, p.GradientBottom, p.Base, p.Accent, p.Detail} {
				if c.R < 0 || c.R > 255 || c.G < 0 || c.G > 255 || c.B < 0 || c.B > 255 {
					t.Fatalf("%s seed %d: channel out of range: %+v", theme, seed, c)
				}
			}
		}
	}
}

func TestThemeSeedMultipliersDistinct(t *testing.T) {
	// sky stage 1 must diverge from the other themes at the same stage
	skyFirst := themeRand(ThemeSky, 1).Next()
	for _, theme := range []Theme{ThemeQuantum, ThemeUnderwater, ThemeUnderwaterMicro} {
		if themeRand(theme, 1).Next() == skyFirst {
			t.Fatalf("theme %q shares sky's stream at stage 1", theme)
		}
	}
}
