package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/labyrinth/audio"
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/maze"
	"github.com/lixenwraith/labyrinth/scene"
	"github.com/lixenwraith/labyrinth/vmath"
)

const statusLines = 2

var (
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleRoom    = tcell.StyleDefault.Background(tcell.ColorNavy)
	stylePath    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStart   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnd     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDeadEnd = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleDiag    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

// Viewer draws one maze on a tcell screen; each raster slot is two columns wide
type Viewer struct {
	screen tcell.Screen
	maze   *maze.Maze
	scene  *scene.Scene
	cues   *audio.Cues

	showPath         bool
	scrollX, scrollY int

	roomSlots mapset.Set[core.Point]
	deadEnds  mapset.Set[core.Point]
	path      mapset.Set[core.Point]
}

func NewViewer(screen tcell.Screen, m *maze.Maze, cues *audio.Cues) *Viewer {
	v := &Viewer{
		screen:   screen,
		maze:     m,
		cues:     cues,
		showPath: true,
	}
	v.regenerate()
	return v
}

func (v *Viewer) regenerate() {
	v.maze.Regenerate()
	v.scene = scene.Build(v.maze)
	v.indexMarkers()
}

// indexMarkers maps room blocks, dead ends and the solution onto raster slots
func (v *Viewer) indexMarkers() {
	v.roomSlots = mapset.New[core.Point]()
	for _, r := range v.maze.Rooms() {
		lo, hi := scene.CellSlot(r.Min()), scene.CellSlot(r.Max())
		for x := lo.X; x <= hi.X; x++ {
			for y := lo.Y; y <= hi.Y; y++ {
				v.roomSlots.Put(core.Point{X: x, Y: y})
			}
		}
	}

	byAnchor := make(map[vmath.Vec3]core.Point, v.maze.Grid().Len())
	v.maze.Grid().Each(func(c *maze.Cell) {
		byAnchor[c.Anchor] = c.Pos
	})
	v.deadEnds = mapset.New[core.Point]()
	for _, a := range v.maze.DeadEnds() {
		if p, ok := byAnchor[a]; ok {
			v.deadEnds.Put(scene.CellSlot(p))
		}
	}

	v.path = mapset.New[core.Point]()
	for _, p := range v.scene.Solution {
		v.path.Put(p)
	}
}

func (v *Viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	r := v.scene.Raster

	for y := 0; y < r.Height(); y++ {
		sy := y - v.scrollY
		if sy < 0 || sy >= h-statusLines {
			continue
		}
		for x := 0; x < r.Width(); x++ {
			sx := 2 * (x - v.scrollX)
			if sx < 0 || sx+1 >= w {
				continue
			}
			ch, style := v.glyph(core.Point{X: x, Y: y})
			v.screen.SetContent(sx, sy, ch, nil, style)
			v.screen.SetContent(sx+1, sy, ch, nil, style)
		}
	}

	v.drawStatus(w, h)
	v.screen.Show()
}

func (v *Viewer) glyph(p core.Point) (rune, tcell.Style) {
	r := v.scene.Raster
	base := tcell.StyleDefault
	if v.roomSlots.Has(p) {
		base = styleRoom
	}

	switch {
	case r.HasStart && p == r.Start:
		return 'S', styleStart
	case r.HasEnd && p == r.End:
		return 'E', styleEnd
	case r.IsWall(p):
		return '█', styleWall
	case v.showPath && v.path.Has(p):
		return '•', stylePath.Background(bgOf(base))
	case v.deadEnds.Has(p):
		return 'x', styleDeadEnd.Background(bgOf(base))
	}
	return ' ', base
}

func bgOf(s tcell.Style) tcell.Color {
	_, bg, _ := s.Decompose()
	return bg
}

func (v *Viewer) drawStatus(w, h int) {
	cfg := v.maze.Config()
	status := fmt.Sprintf(" seed %d  %dx%d  rooms:%v  removals:%d  path:%d  [r]egen [n]ext [t]rooms [p]ath [m]ute [q]uit",
		v.maze.Seed(), cfg.Width, cfg.Height, cfg.Rooms.Enabled, len(v.maze.Removals()), len(v.scene.Solution))
	drawText(v.screen, 0, h-1, w, status, styleStatus)

	if diags := v.maze.Diagnostics(); len(diags) > 0 {
		last := diags[len(diags)-1]
		drawText(v.screen, 0, h-2, w, fmt.Sprintf(" %d diagnostics, last: %s", len(diags), last), styleDiag)
	}
}

func drawText(s tcell.Screen, x, y, maxW int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= maxW {
			return
		}
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}

// handleInput applies one event; returns false to quit
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.scrollY = max(v.scrollY-1, 0)
		case tcell.KeyDown:
			v.scrollY++
		case tcell.KeyLeft:
			v.scrollX = max(v.scrollX-1, 0)
		case tcell.KeyRight:
			v.scrollX++
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleRune(ch rune) bool {
	switch ch {
	case 'q':
		return false
	case 'r':
		v.regenerate()
	case 'n':
		cfg := v.maze.Config()
		cfg.Seed = v.maze.Seed() + 1
		cfg.SeedMode = maze.SeedFixed
		v.maze.SetConfig(cfg)
		v.regenerate()
	case 't':
		cfg := v.maze.Config()
		cfg.Rooms.Enabled = !cfg.Rooms.Enabled
		v.maze.SetConfig(cfg)
		v.regenerate()
	case 'p':
		v.showPath = !v.showPath
	case 'm':
		if v.cues != nil {
			v.cues.SetMuted(!v.cues.Muted())
		}
	}
	return true
}

func (v *Viewer) run() {
	eventChan := make(chan tcell.Event, 16)
	core.Go(func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	v.draw()
	for ev := range eventChan {
		if !v.handleInput(ev) {
			return
		}
		v.draw()
	}
}
