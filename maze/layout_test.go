package maze

import (
	"testing"

	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/vmath"
)

func countKinds(elements []Element) map[ElementKind]int {
	counts := make(map[ElementKind]int)
	for _, e := range elements {
		counts[e.Kind]++
	}
	return counts
}

func TestLayout_Counts(t *testing.T) {
	for _, sz := range []struct{ w, h int }{{1, 1}, {3, 3}, {5, 2}, {8, 6}} {
		g := BuildGrid(sz.w, sz.h, DefaultSizes().Floor, vmath.Vec3{})
		counts := countKinds(Layout(g, DefaultSizes()))

		w, h := sz.w, sz.h
		if got, want := counts[InnerWall], (w-1)*h+w*(h-1); got != want {
			t.Errorf("%dx%d: expected %d inner walls, got %d", w, h, want, got)
		}
		if got, want := counts[OuterWall], 2*w+2*h; got != want {
			t.Errorf("%dx%d: expected %d outer walls, got %d", w, h, want, got)
		}
		if got, want := counts[InnerCorner], (w-1)*(h-1); got != want {
			t.Errorf("%dx%d: expected %d inner corners, got %d", w, h, want, got)
		}
		if got, want := counts[InnerCorner]+counts[OuterCorner], (w+1)*(h+1); got != want {
			t.Errorf("%dx%d: expected %d corners, got %d", w, h, want, got)
		}
	}
}

func TestLayout_IDsAndSlots(t *testing.T) {
	g := BuildGrid(4, 3, DefaultSizes().Floor, vmath.Vec3{})
	elements := Layout(g, DefaultSizes())

	slots := make(map[core.Point]bool)
	for i, e := range elements {
		if e.ID != i {
			t.Errorf("Element %d carries ID %d", i, e.ID)
		}
		if slots[e.Slot] {
			t.Errorf("Slot %v used twice", e.Slot)
		}
		slots[e.Slot] = true

		evenX, evenY := e.Slot.X%2 == 0, e.Slot.Y%2 == 0
		switch e.Kind {
		case InnerCorner, OuterCorner:
			if !evenX || !evenY {
				t.Errorf("Corner at odd slot %v", e.Slot)
			}
		default:
			if evenX == evenY {
				t.Errorf("Wall at %v must have exactly one even coordinate", e.Slot)
			}
		}
	}
}

// Each inner wall is hit by exactly the region spanning the two cells it separates
func TestLayout_CarveRegionsHitOneWall(t *testing.T) {
	sizes := DefaultSizes()
	g := BuildGrid(4, 4, sizes.Floor, vmath.V3(-300, 120, 10))
	elements := Layout(g, sizes)

	var walls []Element
	for _, e := range elements {
		if e.Kind == InnerWall {
			walls = append(walls, e)
		}
	}

	up := vmath.Vec3{Z: sizes.RegionLift()}
	g.Each(func(c *Cell) {
		for _, s := range []core.Point{stepUp, stepRight} {
			n, ok := g.Cell(c.Pos.Add(s))
			if !ok {
				continue
			}
			region := vmath.NewBox(c.Anchor.Add(up), n.Anchor.Add(up))
			hits := SelectIntersecting(region, walls)
			if len(hits) != 1 {
				t.Fatalf("%v -> %v: expected 1 wall, got %d", c.Pos, n.Pos, len(hits))
			}
			want := core.Point{X: c.Pos.X + n.Pos.X + 1, Y: c.Pos.Y + n.Pos.Y + 1}
			if walls[hits[0]].Slot != want {
				t.Errorf("%v -> %v: expected wall slot %v, got %v", c.Pos, n.Pos, want, walls[hits[0]].Slot)
			}
		}
	})
}

func TestLayout_WallsStandOnFloor(t *testing.T) {
	sizes := DefaultSizes()
	g := BuildGrid(2, 2, sizes.Floor, vmath.Vec3{})
	for _, e := range Layout(g, sizes) {
		if e.Bounds.Min.Z <= 0 {
			t.Errorf("%v at %v sinks below floor top: min z %v", e.Kind, e.Slot, e.Bounds.Min.Z)
		}
		if e.Bounds.Min.Z > sizes.RegionLift() || e.Bounds.Max.Z < sizes.RegionLift() {
			t.Errorf("%v at %v misses the query band", e.Kind, e.Slot)
		}
	}
}
