package maze

import (
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/vmath"
)

// ElementKind identifies the wall or corner family of an element
type ElementKind uint8

const (
	InnerWall ElementKind = iota
	OuterWall
	InnerCorner
	OuterCorner
)

var kindNames = [...]string{
	InnerWall:   "inner-wall",
	OuterWall:   "outer-wall",
	InnerCorner: "inner-corner",
	OuterCorner: "outer-corner",
}

func (k ElementKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Transform places an element in world space
type Transform struct {
	Location vmath.Vec3
	Yaw      float64 // Degrees about +Z
}

// Element is a handle into the rendering layer's arena.
// ID is the element's index in the arena slice.
type Element struct {
	ID        int
	Kind      ElementKind
	Slot      core.Point // Raster coordinate; cells sit at (2x+1, 2y+1)
	Transform Transform
	Bounds    vmath.Box
}

// Reason tags which step requested a removal
type Reason uint8

const (
	ReasonRoom Reason = iota
	ReasonDoor
	ReasonCarve
	ReasonEntry
	ReasonExit
)

var reasonNames = [...]string{
	ReasonRoom:  "room",
	ReasonDoor:  "door",
	ReasonCarve: "carve",
	ReasonEntry: "entry",
	ReasonExit:  "exit",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Removal asks the rendering layer to destroy one element
type Removal struct {
	ID     int
	Kind   ElementKind
	Reason Reason
}

// Link is an unordered pair of adjacent cells made passable, A < B
type Link struct {
	A, B core.Point
}

// NewLink normalizes the pair order
func NewLink(a, b core.Point) Link {
	if b.Less(a) {
		a, b = b, a
	}
	return Link{A: a, B: b}
}

// Opening is a breach carved into the outer wall
type Opening struct {
	Side      Side
	Index     int
	Cell      core.Point
	Region    vmath.Box
	Wall      int // Breached outer wall element ID
	Transform Transform
}

// Populator supplies the full uncarved element set for a freshly built grid
type Populator interface {
	Populate(g *Grid, sizes Sizes) []Element
}

// PopulatorFunc adapts a function to Populator
type PopulatorFunc func(g *Grid, sizes Sizes) []Element

func (f PopulatorFunc) Populate(g *Grid, sizes Sizes) []Element { return f(g, sizes) }
