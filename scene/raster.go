package scene

import (
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/maze"
)

// Raster cell types
const (
	Wall    = true
	Passage = false
)

// Raster projects surviving elements onto the doubled grid: cells sit at odd
// slots, walls between them, corners at even/even slots.
type Raster struct {
	Grid [][]bool // [y][x], (2H+1) rows of (2W+1)

	Start, End       core.Point
	HasStart, HasEnd bool
}

// CellSlot maps a cell coordinate to its raster slot
func CellSlot(p core.Point) core.Point {
	return core.Point{X: 2*p.X + 1, Y: 2*p.Y + 1}
}

// OpeningSlot is the boundary slot an opening breaches
func OpeningSlot(o maze.Opening) core.Point {
	s := CellSlot(o.Cell)
	switch o.Side {
	case maze.South:
		s.Y--
	case maze.West:
		s.X--
	case maze.North:
		s.Y++
	case maze.East:
		s.X++
	}
	return s
}

// NewRaster marks every live element's slot as wall; everything else is passage
func NewRaster(g *maze.Grid, arena *Arena) *Raster {
	cols, rows := 2*g.Width+1, 2*g.Height+1
	grid := make([][]bool, rows)
	for y := range grid {
		grid[y] = make([]bool, cols)
	}

	r := &Raster{Grid: grid}
	arena.Each(func(e maze.Element) {
		if r.inBounds(e.Slot) {
			grid[e.Slot.Y][e.Slot.X] = Wall
		}
	})
	return r
}

func (r *Raster) Width() int { return len(r.Grid[0]) }

func (r *Raster) Height() int { return len(r.Grid) }

// IsWall treats out-of-bounds slots as walls
func (r *Raster) IsWall(p core.Point) bool {
	if !r.inBounds(p) {
		return true
	}
	return r.Grid[p.Y][p.X] == Wall
}

func (r *Raster) inBounds(p core.Point) bool {
	return p.Y >= 0 && p.Y < len(r.Grid) && p.X >= 0 && p.X < len(r.Grid[0])
}

var solveDirs = []core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// Solve returns the shortest passage path from start to end inclusive,
// or nil when either end is a wall or no path exists
func (r *Raster) Solve(start, end core.Point) []core.Point {
	if r.IsWall(start) || r.IsWall(end) {
		return nil
	}

	queue := []core.Point{start}
	cameFrom := make(map[core.Point]core.Point)
	visited := map[core.Point]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []core.Point{curr}
			for curr != start {
				curr = cameFrom[curr]
				path = append(path, curr)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range solveDirs {
			next := curr.Add(d)
			if r.IsWall(next) || visited[next] {
				continue
			}
			visited[next] = true
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}
	return nil
}
