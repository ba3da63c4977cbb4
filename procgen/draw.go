package procgen

import (
	"image"
	"math"
)

// Raster helpers for the backdrop painters. Everything blends in software on
// an *image.RGBA so generation stays deterministic and headless.

func blendPixel(img *image.RGBA, x, y int, c RGB, alpha float64) {
	if img == nil || alpha <= 0 {
		return
	}
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	i := img.PixOffset(x, y)
	pix := img.Pix[i : i+4 : i+4]
	pix[0] = uint8(float64(pix[0])*(1-alpha) + float64(c.R)*alpha)
	pix[1] = uint8(float64(pix[1])*(1-alpha) + float64(c.G)*alpha)
	pix[2] = uint8(float64(pix[2])*(1-alpha) + float64(c.B)*alpha)
	pix[3] = 0xff
}

// fillVGradient paints a vertical gradient across the whole image.
func fillVGradient(img *image.RGBA, top, bottom RGB) {
	if img == nil {
		return
	}
	b := img.Bounds()
	h := b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y-b.Min.Y) / float64(h-1)
		}
		row := RGB{
			int(float64(top.R) + t*float64(bottom.R-top.R)),
			int(float64(top.G) + t*float64(bottom.G-top.G)),
			int(float64(top.B) + t*float64(bottom.B-top.B)),
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			pix := img.Pix[i : i+4 : i+4]
			pix[0] = uint8(row.R)
			pix[1] = uint8(row.G)
			pix[2] = uint8(row.B)
			pix[3] = 0xff
		}
	}
}

func fillRect(img *image.RGBA, x, y, w, h float64, c RGB, alpha float64) {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := int(math.Ceil(x + w))
	y1 := int(math.Ceil(y + h))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			blendPixel(img, px, py, c, alpha)
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c RGB, alpha float64) {
	if r <= 0 {
		return
	}
	x0 := int(math.Floor(cx - r))
	x1 := int(math.Ceil(cx + r))
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))
	rr := r * r
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			if dx*dx+dy*dy <= rr {
				blendPixel(img, px, py, c, alpha)
			}
		}
	}
}

// ringCircle draws only the rim of a circle.
func ringCircle(img *image.RGBA, cx, cy, r, thickness float64, c RGB, alpha float64) {
	if r <= 0 || thickness <= 0 {
		return
	}
	inner := r - thickness
	if inner < 0 {
		inner = 0
	}
	x0 := int(math.Floor(cx - r))
	x1 := int(math.Ceil(cx + r))
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			d2 := dx*dx + dy*dy
			if d2 <= r*r && d2 >= inner*inner {
				blendPixel(img, px, py, c, alpha)
			}
		}
	}
}

// drawLine stamps circles along the segment so thick lines stay smooth.
func drawLine(img *image.RGBA, x0, y0, x1, y1, width float64, c RGB, alpha float64) {
	dx := x1 - x0
	dy := y1 - y0
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		fillCircle(img, x0, y0, width/2, c, alpha)
		return
	}
	steps := int(dist) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		fillCircle(img, x0+dx*t, y0+dy*t, math.Max(width/2, 0.5), c, alpha)
	}
}

// fillTriangle fills a triangle by scanline, used for mountain silhouettes
// and light rays.
func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 float64, c RGB, alpha float64) {
	minY := int(math.Floor(math.Min(y0, math.Min(y1, y2))))
	maxY := int(math.Ceil(math.Max(y0, math.Max(y1, y2))))
	edges := [3][4]float64{{x0, y0, x1, y1}, {x1, y1, x2, y2}, {x2, y2, x0, y0}}
	for py := minY; py <= maxY; py++ {
		fy := float64(py) + 0.5
		var xs []float64
		for _, e := range edges {
			ey0, ey1 := e[1], e[3]
			if (fy < ey0 && fy < ey1) || (fy >= ey0 && fy >= ey1) {
				continue
			}
			t := (fy - ey0) / (ey1 - ey0)
			xs = append(xs, e[0]+t*(e[2]-e[0]))
		}
		if len(xs) < 2 {
			continue
		}
		lo := math.Min(xs[0], xs[1])
		hi := math.Max(xs[0], xs[1])
		for px := int(math.Floor(lo)); px <= int(math.Ceil(hi)); px++ {
			if float64(px)+0.5 >= lo && float64(px)+0.5 <= hi {
				blendPixel(img, px, py, c, alpha)
			}
		}
	}
}
