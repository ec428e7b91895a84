package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/labyrinth/audio"
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/maze"
	"github.com/lixenwraith/labyrinth/scene"
	"github.com/lixenwraith/labyrinth/vmath"
)

const (
	statusHeight = 36
	viewMargin   = 12
)

var (
	colorBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	colorFloor      = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	colorRoom       = color.RGBA{R: 24, G: 36, B: 80, A: 255}
	colorPath       = color.RGBA{R: 230, G: 200, B: 40, A: 255}
	colorDeadEnd    = color.RGBA{R: 160, G: 60, B: 200, A: 255}
	colorEntry      = color.RGBA{R: 40, G: 200, B: 80, A: 160}
	colorExit       = color.RGBA{R: 220, G: 50, B: 50, A: 160}
)

var kindColors = [...]color.RGBA{
	maze.InnerWall:   {R: 150, G: 150, B: 160, A: 255},
	maze.OuterWall:   {R: 200, G: 200, B: 210, A: 255},
	maze.InnerCorner: {R: 110, G: 110, B: 120, A: 255},
	maze.OuterCorner: {R: 230, G: 230, B: 240, A: 255},
}

type action uint8

const (
	actionRegenerate action = iota
	actionNextSeed
	actionToggleRooms
	actionTogglePath
	actionToggleMute
	actionQuit
)

var keyActions = []struct {
	key ebiten.Key
	act action
}{
	{ebiten.KeyR, actionRegenerate},
	{ebiten.KeyN, actionNextSeed},
	{ebiten.KeyT, actionToggleRooms},
	{ebiten.KeyP, actionTogglePath},
	{ebiten.KeyM, actionToggleMute},
	{ebiten.KeyQ, actionQuit},
	{ebiten.KeyEscape, actionQuit},
}

// Window implements ebiten.Game as a top-down plan of the element bounds
type Window struct {
	maze  *maze.Maze
	scene *scene.Scene
	cues  *audio.Cues

	showPath bool
	extent   vmath.Box
	proj     projection
	w, h     int
}

func NewWindow(m *maze.Maze, cues *audio.Cues) *Window {
	win := &Window{maze: m, cues: cues, showPath: true}
	win.regenerate()
	return win
}

func (win *Window) regenerate() {
	win.maze.Regenerate()
	win.scene = scene.Build(win.maze)

	elements := win.maze.Elements()
	boxes := make([]vmath.Box, 0, len(elements)+2)
	for _, e := range elements {
		boxes = append(boxes, e.Bounds)
	}
	if o, ok := win.maze.Entry(); ok {
		boxes = append(boxes, o.Region)
	}
	if o, ok := win.maze.Exit(); ok {
		boxes = append(boxes, o.Region)
	}
	win.extent = extentOf(boxes)
	win.w, win.h = 0, 0 // Force a refit on the next Layout
}

// apply runs one user action; ebiten.Termination ends the game loop
func (win *Window) apply(a action) error {
	switch a {
	case actionRegenerate:
		win.regenerate()
	case actionNextSeed:
		cfg := win.maze.Config()
		cfg.Seed = win.maze.Seed() + 1
		cfg.SeedMode = maze.SeedFixed
		win.maze.SetConfig(cfg)
		win.regenerate()
	case actionToggleRooms:
		cfg := win.maze.Config()
		cfg.Rooms.Enabled = !cfg.Rooms.Enabled
		win.maze.SetConfig(cfg)
		win.regenerate()
	case actionTogglePath:
		win.showPath = !win.showPath
	case actionToggleMute:
		if win.cues != nil {
			win.cues.SetMuted(!win.cues.Muted())
		}
	case actionQuit:
		return ebiten.Termination
	}
	return nil
}

func (win *Window) Update() error {
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			if err := win.apply(ka.act); err != nil {
				return err
			}
		}
	}
	return nil
}

func (win *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := win.maze.Grid()
	rooms := win.maze.Rooms()
	g.Each(func(c *maze.Cell) {
		clr := colorFloor
		for _, r := range rooms {
			if r.Contains(c.Pos) {
				clr = colorRoom
				break
			}
		}
		win.fillBox(screen, vmath.BoxAt(c.Anchor, g.Floor), clr)
	})

	win.scene.Arena.Each(func(e maze.Element) {
		win.fillBox(screen, e.Bounds, kindColors[e.Kind])
	})

	marker := g.Floor.Scale(0.3)
	for _, d := range win.maze.DeadEnds() {
		win.fillBox(screen, vmath.BoxAt(d, marker), colorDeadEnd)
	}
	if win.showPath {
		for _, s := range win.scene.Solution {
			win.fillBox(screen, vmath.BoxAt(slotWorld(g, s), marker), colorPath)
		}
	}

	if o, ok := win.maze.Entry(); ok {
		win.fillBox(screen, o.Region, colorEntry)
	}
	if o, ok := win.maze.Exit(); ok {
		win.fillBox(screen, o.Region, colorExit)
	}

	ebitenutil.DebugPrint(screen, win.status())
}

func (win *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != win.w || outsideHeight != win.h {
		win.w, win.h = outsideWidth, outsideHeight
		win.proj = fit(win.extent, outsideWidth, outsideHeight, statusHeight, viewMargin)
	}
	return outsideWidth, outsideHeight
}

func (win *Window) fillBox(dst *ebiten.Image, b vmath.Box, clr color.Color) {
	x, y, w, h := win.proj.rect(b)
	vector.DrawFilledRect(dst, x, y, w, h, clr, false)
}

func (win *Window) status() string {
	cfg := win.maze.Config()
	line := fmt.Sprintf("seed %d  %dx%d  rooms:%v  live %d/%d  path:%d",
		win.maze.Seed(), cfg.Width, cfg.Height, cfg.Rooms.Enabled,
		win.scene.Arena.Len(), win.scene.Arena.Cap(), len(win.scene.Solution))
	if diags := win.maze.Diagnostics(); len(diags) > 0 {
		line += fmt.Sprintf("  diagnostics:%d", len(diags))
	}
	return line + "\n[R]egen [N]ext [T]rooms [P]ath [M]ute [Q]uit"
}

// slotWorld maps a raster slot back to the lattice; odd slots are cell centers
func slotWorld(g *maze.Grid, s core.Point) vmath.Vec3 {
	return g.Anchor(float64(s.X-1)/2, float64(s.Y-1)/2)
}
