package maze

import (
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/vmath"
)

// Position classifies a cell by where it sits on the grid boundary.
// Orientation: +X is "top", +Y is "right".
type Position uint8

const (
	Interior Position = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
	CornerBottomRight
	CornerBottomLeft
	CornerTopRight
	CornerTopLeft
)

var positionNames = [...]string{
	Interior:          "interior",
	EdgeLeft:          "edge-left",
	EdgeRight:         "edge-right",
	EdgeTop:           "edge-top",
	EdgeBottom:        "edge-bottom",
	CornerBottomRight: "corner-bottom-right",
	CornerBottomLeft:  "corner-bottom-left",
	CornerTopRight:    "corner-top-right",
	CornerTopLeft:     "corner-top-left",
}

func (p Position) String() string {
	if int(p) < len(positionNames) {
		return positionNames[p]
	}
	return "unknown"
}

func (p Position) IsCorner() bool { return p >= CornerBottomRight && p <= CornerTopLeft }

func (p Position) IsEdge() bool { return p >= EdgeLeft && p <= EdgeBottom }

// Classify derives the position class: corners first, then edges, else interior
func Classify(x, y, width, height int) Position {
	switch {
	case x == 0 && y == 0:
		return CornerBottomLeft
	case x == 0 && y == height-1:
		return CornerBottomRight
	case x == width-1 && y == 0:
		return CornerTopLeft
	case x == width-1 && y == height-1:
		return CornerTopRight
	case y == 0:
		return EdgeLeft
	case y == height-1:
		return EdgeRight
	case x == 0:
		return EdgeBottom
	case x == width-1:
		return EdgeTop
	default:
		return Interior
	}
}

var (
	stepUp    = core.Point{X: 1, Y: 0}
	stepRight = core.Point{X: 0, Y: 1}
	stepDown  = core.Point{X: -1, Y: 0}
	stepLeft  = core.Point{X: 0, Y: -1}
)

// Candidate neighbor directions per class, in draw order
var neighborSteps = [...][]core.Point{
	Interior:          {stepUp, stepRight, stepDown, stepLeft},
	EdgeLeft:          {stepUp, stepRight, stepDown},
	EdgeRight:         {stepUp, stepDown, stepLeft},
	EdgeTop:           {stepRight, stepDown, stepLeft},
	EdgeBottom:        {stepUp, stepRight, stepLeft},
	CornerBottomRight: {stepUp, stepLeft},
	CornerBottomLeft:  {stepUp, stepRight},
	CornerTopRight:    {stepDown, stepLeft},
	CornerTopLeft:     {stepDown, stepRight},
}

// Cell is one grid unit
type Cell struct {
	Pos      core.Point
	Anchor   vmath.Vec3 // World-space center of the floor tile
	Position Position
	Visited  bool
}

// Grid owns the cell mapping for one generation pass
type Grid struct {
	Width, Height int
	Floor         vmath.Vec3 // Floor tile size, doubles as cell pitch
	Origin        vmath.Vec3

	cells map[core.Point]*Cell
}

// BuildGrid creates width*height cells centered on origin.
// Dimensions below 1 are clamped to 1.
func BuildGrid(width, height int, floor, origin vmath.Vec3) *Grid {
	width = max(width, 1)
	height = max(height, 1)

	g := &Grid{
		Width:  width,
		Height: height,
		Floor:  floor,
		Origin: origin,
		cells:  make(map[core.Point]*Cell, width*height),
	}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			p := core.Point{X: x, Y: y}
			g.cells[p] = &Cell{
				Pos:      p,
				Anchor:   g.Anchor(float64(x), float64(y)),
				Position: Classify(x, y, width, height),
			}
		}
	}
	return g
}

// Anchor maps a (possibly fractional) lattice coordinate to world space.
// Half-integer coordinates address wall lines between cells.
func (g *Grid) Anchor(x, y float64) vmath.Vec3 {
	return vmath.Vec3{
		X: x*g.Floor.X - g.Floor.X*float64(g.Width-1)/2 + g.Origin.X,
		Y: y*g.Floor.Y - g.Floor.Y*float64(g.Height-1)/2 + g.Origin.Y,
		Z: g.Origin.Z,
	}
}

// Cell returns the cell at p
func (g *Grid) Cell(p core.Point) (*Cell, bool) {
	c, ok := g.cells[p]
	return c, ok
}

// Contains reports whether p lies inside the grid
func (g *Grid) Contains(p core.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Each visits cells in deterministic X-major order
func (g *Grid) Each(fn func(c *Cell)) {
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			fn(g.cells[core.Point{X: x, Y: y}])
		}
	}
}

// VisitedCount returns how many cells carry the visited flag
func (g *Grid) VisitedCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Visited {
			n++
		}
	}
	return n
}

// Neighbors returns the candidate neighbors for c's position class.
// Out-of-grid candidates (degenerate 1-wide grids) are dropped.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	steps := neighborSteps[c.Position]
	out := make([]*Cell, 0, len(steps))
	for _, s := range steps {
		if n, ok := g.cells[c.Pos.Add(s)]; ok {
			out = append(out, n)
		}
	}
	return out
}
