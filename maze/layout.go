package maze

import (
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/vmath"
)

// DefaultPopulator spawns the standard uncarved layout
var DefaultPopulator Populator = PopulatorFunc(Layout)

// Layout enumerates every wall and corner of the uncarved grid.
// Corners come first, then walls, each scanned X-major.
// Walls sit on the cell pitch between anchors; the lattice point (i, j)
// of corners is the shared corner of cells (i-1, j-1) and (i, j).
func Layout(g *Grid, sizes Sizes) []Element {
	w, h := g.Width, g.Height
	elements := make([]Element, 0, (w+1)*(h+1)+2*w*h+w+h)

	add := func(kind ElementKind, slot core.Point, loc vmath.Vec3, yaw float64, size vmath.Vec3) {
		elements = append(elements, Element{
			ID:        len(elements),
			Kind:      kind,
			Slot:      slot,
			Transform: Transform{Location: loc, Yaw: yaw},
			Bounds:    vmath.BoxAt(loc, vmath.YawExtent(size, yaw)),
		})
	}

	lift := func(loc vmath.Vec3, size vmath.Vec3) vmath.Vec3 {
		loc.Z += (size.Z + sizes.Floor.Z) / 2
		return loc
	}

	for i := 0; i <= w; i++ {
		for j := 0; j <= h; j++ {
			loc := g.Anchor(float64(i)-0.5, float64(j)-0.5)
			slot := core.Point{X: 2 * i, Y: 2 * j}
			if i == 0 || j == 0 || i == w || j == h {
				add(OuterCorner, slot, lift(loc, sizes.OuterCorner), 0, sizes.OuterCorner)
			} else {
				add(InnerCorner, slot, lift(loc, sizes.InnerCorner), 0, sizes.InnerCorner)
			}
		}
	}

	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			fi, fj := float64(i), float64(j)
			sx, sy := 2*i+1, 2*j+1

			// Separates (i, j) from (i+1, j)
			if i != w-1 {
				add(InnerWall, core.Point{X: sx + 1, Y: sy},
					lift(g.Anchor(fi+0.5, fj), sizes.InnerWall), 90, sizes.InnerWall)
			}
			// Separates (i, j) from (i, j+1)
			if j != h-1 {
				add(InnerWall, core.Point{X: sx, Y: sy + 1},
					lift(g.Anchor(fi, fj+0.5), sizes.InnerWall), 180, sizes.InnerWall)
			}
			if i == 0 {
				add(OuterWall, core.Point{X: 0, Y: sy},
					lift(g.Anchor(-0.5, fj), sizes.OuterWall), -90, sizes.OuterWall)
			}
			if i == w-1 {
				add(OuterWall, core.Point{X: 2 * w, Y: sy},
					lift(g.Anchor(float64(w)-0.5, fj), sizes.OuterWall), 90, sizes.OuterWall)
			}
			if j == 0 {
				add(OuterWall, core.Point{X: sx, Y: 0},
					lift(g.Anchor(fi, -0.5), sizes.OuterWall), 0, sizes.OuterWall)
			}
			if j == h-1 {
				add(OuterWall, core.Point{X: sx, Y: 2 * h},
					lift(g.Anchor(fi, float64(h)-0.5), sizes.OuterWall), 180, sizes.OuterWall)
			}
		}
	}

	return elements
}
