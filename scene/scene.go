package scene

import (
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/maze"
)

// Scene is the rendered state of one generation pass
type Scene struct {
	Arena    *Arena
	Raster   *Raster
	Solution []core.Point // Entry to exit, nil when unset or blocked
}

// Build spawns the pass's elements, applies its removals and solves entry to exit
func Build(m *maze.Maze) *Scene {
	arena := NewArena(m.Elements())
	arena.Apply(m.Removals())

	r := NewRaster(m.Grid(), arena)
	if o, ok := m.Entry(); ok {
		r.Start, r.HasStart = OpeningSlot(o), true
	}
	if o, ok := m.Exit(); ok {
		r.End, r.HasEnd = OpeningSlot(o), true
	}

	s := &Scene{Arena: arena, Raster: r}
	if r.HasStart && r.HasEnd {
		s.Solution = r.Solve(r.Start, r.End)
	}
	return s
}

// Glyphs selects the characters used by Lines
type Glyphs struct {
	Wall, Open, Path, Start, End rune
}

var (
	BlockGlyphs = Glyphs{Wall: '█', Open: ' ', Path: '•', Start: 'S', End: 'E'}
	ASCIIGlyphs = Glyphs{Wall: '#', Open: ' ', Path: '.', Start: 'S', End: 'E'}
)

// Lines renders the raster one row per string
func (s *Scene) Lines(gl Glyphs) []string {
	path := mapset.New[core.Point]()
	for _, p := range s.Solution {
		path.Put(p)
	}

	r := s.Raster
	lines := make([]string, 0, r.Height())
	var sb strings.Builder
	for y, row := range r.Grid {
		sb.Reset()
		for x, isWall := range row {
			p := core.Point{X: x, Y: y}
			switch {
			case r.HasStart && p == r.Start:
				sb.WriteRune(gl.Start)
			case r.HasEnd && p == r.End:
				sb.WriteRune(gl.End)
			case isWall:
				sb.WriteRune(gl.Wall)
			case path.Has(p):
				sb.WriteRune(gl.Path)
			default:
				sb.WriteRune(gl.Open)
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func (s *Scene) String() string {
	return strings.Join(s.Lines(BlockGlyphs), "\n")
}
