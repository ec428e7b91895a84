package main

import (
	"github.com/lixenwraith/labyrinth/vmath"
)

// projection maps the world XY plane onto window pixels, +Y up
type projection struct {
	minX, maxY float64
	scale      float64
	offX, offY float64
}

// fit scales extent uniformly into a w*h area below a top strip, centered
func fit(extent vmath.Box, w, h, top int, margin float64) projection {
	size := extent.Size()
	availW := max(float64(w)-2*margin, 1)
	availH := max(float64(h-top)-2*margin, 1)

	scale := 1.0
	if size.X > 0 && size.Y > 0 {
		scale = min(availW/size.X, availH/size.Y)
	}

	return projection{
		minX:  extent.Min.X,
		maxY:  extent.Max.Y,
		scale: scale,
		offX:  margin + (availW-size.X*scale)/2,
		offY:  float64(top) + margin + (availH-size.Y*scale)/2,
	}
}

func (p projection) toScreen(x, y float64) (float32, float32) {
	return float32(p.offX + (x-p.minX)*p.scale), float32(p.offY + (p.maxY-y)*p.scale)
}

// rect returns the screen rectangle covering b's XY footprint
func (p projection) rect(b vmath.Box) (x, y, w, h float32) {
	x0, y0 := p.toScreen(b.Min.X, b.Max.Y)
	x1, y1 := p.toScreen(b.Max.X, b.Min.Y)
	return x0, y0, x1 - x0, y1 - y0
}

// extentOf is the union of all element bounds and opening regions
func extentOf(boxes []vmath.Box) vmath.Box {
	if len(boxes) == 0 {
		return vmath.Box{}
	}
	ext := boxes[0]
	for _, b := range boxes[1:] {
		ext.Min = ext.Min.Min(b.Min)
		ext.Max = ext.Max.Max(b.Max)
	}
	return ext
}
