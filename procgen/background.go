package procgen

import (
	"image"
	"math"
)

// Generator paints stage backdrops sized to the world bounds. Every
// decorative loop runs a fixed number of iterations, so cost depends only on
// the world dimensions, never on level content.
type Generator struct {
	WorldW int
	WorldH int
}

func NewGenerator(worldW, worldH int) *Generator {
	return &Generator{WorldW: worldW, WorldH: worldH}
}

// Paint renders the backdrop for a theme and stage seed into a fresh raster.
// Two calls with the same arguments produce identical pixels.
func (g *Generator) Paint(theme Theme, seed int) *image.RGBA {
	if g == nil || g.WorldW <= 0 || g.WorldH <= 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, g.WorldW, g.WorldH))
	r := themeRand(theme, seed)
	pal := perturbPalette(theme, themePalettes[theme][PaletteIndex(seed)], r)
	fillVGradient(img, pal.GradientTop, pal.GradientBottom)

	switch theme {
	case ThemeSky:
		g.paintSky(img, r, pal)
	case ThemeQuantum:
		g.paintQuantum(img, r, pal)
	case ThemeUnderwater:
		g.paintUnderwater(img, r, pal)
	case ThemeUnderwaterMicro:
		g.paintUnderwaterMicro(img, r, pal)
	}
	return img
}

// Sky, Quantum, Underwater and UnderwaterMicro are the per-theme entry
// points the scene tables bind to.
func (g *Generator) Sky(seed int) *image.RGBA        { return g.Paint(ThemeSky, seed) }
func (g *Generator) Quantum(seed int) *image.RGBA    { return g.Paint(ThemeQuantum, seed) }
func (g *Generator) Underwater(seed int) *image.RGBA { return g.Paint(ThemeUnderwater, seed) }
func (g *Generator) UnderwaterMicro(seed int) *image.RGBA {
	return g.Paint(ThemeUnderwaterMicro, seed)
}

func (g *Generator) paintSky(img *image.RGBA, r *Rand, pal Palette) {
	w := float64(g.WorldW)
	h := float64(g.WorldH)

	// three mountain ridges, back to front
	for ridge := 0; ridge < 3; ridge++ {
		baseY := h * (0.55 + 0.15*float64(ridge))
		alpha := 0.35 + 0.2*float64(ridge)
		col := pal.Detail
		if ridge == 0 {
			col = pal.Base
		}
		for peak := 0; peak < 7; peak++ {
			cx := r.Between(0, w)
			pw := r.Between(w*0.06, w*0.16)
			ph := r.Between(h*0.1, h*0.28)
			fillTriangle(img, cx-pw, baseY, cx+pw, baseY, cx, baseY-ph, col, alpha)
		}
		fillRect(img, 0, baseY, w, h-baseY, col, alpha)
	}

	// clouds
	for i := 0; i < 12; i++ {
		cx := r.Between(0, w)
		cy := r.Between(h*0.05, h*0.45)
		cr := r.Between(14, 42)
		for puff := 0; puff < 4; puff++ {
			fillCircle(img, cx+r.Between(-cr, cr), cy+r.Between(-cr*0.3, cr*0.3), cr*r.Between(0.5, 1), pal.Accent, 0.5)
		}
	}

	// bird flocks, small chevrons
	for flock := 0; flock < 3; flock++ {
		fx := r.Between(w*0.1, w*0.9)
		fy := r.Between(h*0.08, h*0.35)
		for b := 0; b < 5; b++ {
			bx := fx + r.Between(-40, 40)
			by := fy + r.Between(-15, 15)
			drawLine(img, bx-4, by, bx, by-3, 1, pal.Detail, 0.8)
			drawLine(img, bx, by-3, bx+4, by, 1, pal.Detail, 0.8)
		}
	}
}

func (g *Generator) paintQuantum(img *image.RGBA, r *Rand, pal Palette) {
	w := float64(g.WorldW)
	h := float64(g.WorldH)

	// node graph
	const nodeCount = 14
	var nx, ny [nodeCount]float64
	for i := 0; i < nodeCount; i++ {
		nx[i] = r.Between(w*0.05, w*0.95)
		ny[i] = r.Between(h*0.05, h*0.95)
	}
	for i := 0; i < nodeCount; i++ {
		j := (i + 1) % nodeCount
		k := (i + 3) % nodeCount
		drawLine(img, nx[i], ny[i], nx[j], ny[j], 1, pal.Detail, 0.35)
		drawLine(img, nx[i], ny[i], nx[k], ny[k], 1, pal.Detail, 0.2)
	}
	for i := 0; i < nodeCount; i++ {
		radius := r.Between(4, 11)
		fillCircle(img, nx[i], ny[i], radius, pal.Base, 0.8)
		fillCircle(img, nx[i], ny[i], radius*0.4, pal.Accent, 0.9)
	}

	// helix strand
	hx := r.Between(w*0.15, w*0.85)
	amp := r.Between(28, 60)
	wl := r.Between(80, 140)
	for step := 0; step < 60; step++ {
		y := h * float64(step) / 60
		phase := 2 * math.Pi * y / wl
		x1 := hx + amp*math.Sin(phase)
		x2 := hx - amp*math.Sin(phase)
		fillCircle(img, x1, y, 3, pal.Accent, 0.55)
		fillCircle(img, x2, y, 3, pal.Base, 0.55)
		if step%6 == 0 {
			drawLine(img, x1, y, x2, y, 1, pal.Detail, 0.45)
		}
	}

	// membrane rings
	for m := 0; m < 4; m++ {
		cx := r.Between(0, w)
		cy := r.Between(0, h)
		base := r.Between(24, 70)
		for ring := 0; ring < 3; ring++ {
			ringCircle(img, cx, cy, base+float64(ring)*9, 2, pal.Detail, 0.3)
		}
	}
}

func (g *Generator) paintUnderwater(img *image.RGBA, r *Rand, pal Palette) {
	w := float64(g.WorldW)
	h := float64(g.WorldH)

	// light rays from the surface
	for ray := 0; ray < 5; ray++ {
		topX := r.Between(0, w)
		spread := r.Between(20, 60)
		drift := r.Between(-80, 80)
		fillTriangle(img, topX, 0, topX+spread, 0, topX+drift, h*0.8, pal.Accent, 0.08)
	}

	// coral clusters on the floor
	for cluster := 0; cluster < 8; cluster++ {
		cx := r.Between(0, w)
		baseY := h - r.Between(0, h*0.08)
		for blob := 0; blob < 6; blob++ {
			fillCircle(img, cx+r.Between(-25, 25), baseY-r.Between(0, 40), r.Between(6, 18), pal.Base, 0.7)
		}
		fillCircle(img, cx, baseY-r.Between(10, 30), r.Between(4, 9), pal.Accent, 0.6)
	}

	// kelp strands
	for strand := 0; strand < 10; strand++ {
		kx := r.Between(0, w)
		height := r.Between(h*0.2, h*0.5)
		sway := r.Between(6, 18)
		wl := r.Between(40, 90)
		for seg := 0; seg < 40; seg++ {
			t := float64(seg) / 40
			y := h - t*height
			x := kx + sway*math.Sin(2*math.Pi*t*height/wl)
			fillCircle(img, x, y, 2.2, pal.Detail, 0.6)
		}
	}

	// fish schools
	for school := 0; school < 4; school++ {
		sx := r.Between(w*0.1, w*0.9)
		sy := r.Between(h*0.15, h*0.7)
		for fish := 0; fish < 8; fish++ {
			fx := sx + r.Between(-50, 50)
			fy := sy + r.Between(-25, 25)
			fillCircle(img, fx, fy, 2.5, pal.Accent, 0.75)
			fillTriangle(img, fx-2, fy, fx-6, fy-2, fx-6, fy+2, pal.Accent, 0.6)
		}
	}
}

func (g *Generator) paintUnderwaterMicro(img *image.RGBA, r *Rand, pal Palette) {
	w := float64(g.WorldW)
	h := float64(g.WorldH)

	// membrane blobs
	for blob := 0; blob < 6; blob++ {
		cx := r.Between(0, w)
		cy := r.Between(0, h)
		radius := r.Between(40, 110)
		fillCircle(img, cx, cy, radius, pal.Base, 0.18)
		ringCircle(img, cx, cy, radius, 3, pal.Detail, 0.4)
	}

	// drifting currents
	for cur := 0; cur < 5; cur++ {
		cy := r.Between(0, h)
		amp := r.Between(10, 35)
		wl := r.Between(120, 260)
		for seg := 0; seg < 50; seg++ {
			x := w * float64(seg) / 50
			y := cy + amp*math.Sin(2*math.Pi*x/wl)
			fillCircle(img, x, y, 1.5, pal.Detail, 0.35)
		}
	}

	// plankton
	for p := 0; p < 80; p++ {
		fillCircle(img, r.Between(0, w), r.Between(0, h), r.Between(0.8, 2.2), pal.Accent, 0.6)
	}

	// dense clusters
	for cl := 0; cl < 4; cl++ {
		cx := r.Between(0, w)
		cy := r.Between(0, h)
		for dot := 0; dot < 10; dot++ {
			fillCircle(img, cx+r.Between(-18, 18), cy+r.Between(-18, 18), r.Between(1, 3), pal.Accent, 0.5)
		}
	}
}
