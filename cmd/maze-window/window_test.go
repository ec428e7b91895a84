package main

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/maze"
	"github.com/lixenwraith/labyrinth/vmath"
)

func TestFit(t *testing.T) {
	ext := vmath.Box{Min: vmath.V3(-10, -5, 0), Max: vmath.V3(10, 5, 0)}
	p := fit(ext, 220, 120, 0, 10)

	if p.scale != 10 {
		t.Fatalf("Expected scale 10, got %v", p.scale)
	}
	if x, y := p.toScreen(-10, 5); x != 10 || y != 10 {
		t.Errorf("Expected top-left at (10,10), got (%v,%v)", x, y)
	}
	if x, y := p.toScreen(10, -5); x != 210 || y != 110 {
		t.Errorf("Expected bottom-right at (210,110), got (%v,%v)", x, y)
	}
}

func TestFit_CentersNarrowAxis(t *testing.T) {
	ext := vmath.Box{Min: vmath.V3(0, 0, 0), Max: vmath.V3(10, 10, 0)}
	p := fit(ext, 300, 140, 20, 10)

	// 100px of height available, so 10px per unit and 100px of spare width
	if p.scale != 10 {
		t.Fatalf("Expected scale 10, got %v", p.scale)
	}
	x, y, w, h := p.rect(ext)
	if x != 100 || y != 30 || w != 100 || h != 100 {
		t.Errorf("Expected rect (100,30,100,100), got (%v,%v,%v,%v)", x, y, w, h)
	}
}

func TestExtentOf(t *testing.T) {
	if got := extentOf(nil); got != (vmath.Box{}) {
		t.Errorf("Expected zero box, got %v", got)
	}
	got := extentOf([]vmath.Box{
		{Min: vmath.V3(0, 0, 0), Max: vmath.V3(1, 1, 1)},
		{Min: vmath.V3(-2, 3, 0), Max: vmath.V3(-1, 4, 5)},
	})
	want := vmath.Box{Min: vmath.V3(-2, 0, 0), Max: vmath.V3(1, 4, 5)}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSlotWorld(t *testing.T) {
	g := maze.BuildGrid(3, 3, vmath.V3(400, 400, 20), vmath.Vec3{})

	if got := slotWorld(g, core.Point{X: 3, Y: 3}); got != (vmath.Vec3{}) {
		t.Errorf("Expected center cell at origin, got %v", got)
	}
	// Slot 0 is the outer wall line half a pitch beyond cell 0
	if got := slotWorld(g, core.Point{X: 0, Y: 3}); got.X != -600 {
		t.Errorf("Expected outer wall line at X=-600, got %v", got.X)
	}
}

func TestWindow_Actions(t *testing.T) {
	cfg := maze.DefaultConfig()
	m := maze.New(cfg, maze.WithLogger(log.New(io.Discard, "", 0)))
	win := NewWindow(m, nil)

	for _, e := range m.Elements() {
		if e.Bounds.Min.X < win.extent.Min.X || e.Bounds.Max.Y > win.extent.Max.Y {
			t.Fatalf("Element %d escapes the extent", e.ID)
		}
	}

	if err := win.apply(actionToggleRooms); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !m.Config().Rooms.Enabled {
		t.Error("Expected rooms enabled")
	}

	seed := m.Seed()
	_ = win.apply(actionNextSeed)
	if m.Seed() != seed+1 {
		t.Errorf("Expected seed %d, got %d", seed+1, m.Seed())
	}

	_ = win.apply(actionTogglePath)
	if win.showPath {
		t.Error("Expected path hidden")
	}
	_ = win.apply(actionToggleMute)

	if err := win.apply(actionQuit); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected Termination, got %v", err)
	}

	if w, h := win.Layout(640, 480); w != 640 || h != 480 {
		t.Errorf("Expected layout 640x480, got %dx%d", w, h)
	}
	if win.proj.scale <= 0 {
		t.Error("Expected a positive projection scale after Layout")
	}
}
