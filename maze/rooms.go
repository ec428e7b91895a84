package maze

import (
	"fmt"

	"github.com/lixenwraith/labyrinth/core"
)

// Redraws allowed per room before the next draw is accepted unchecked
const maxRoomRedraws = 20

// placeRooms stamps configured rooms into the grid before carving
func (m *Maze) placeRooms() {
	rc := m.cfg.Rooms
	if !rc.Enabled || rc.Count <= 0 {
		return
	}

	g := m.grid
	if rc.Height >= g.Height || rc.Width >= g.Width {
		m.report(SeverityError, "rooms", fmt.Errorf("%w: %dx%d room in %dx%d grid",
			ErrRoomTooLarge, rc.Width, rc.Height, g.Width, g.Height))
		return
	}
	if rc.Width < 1 || rc.Height < 1 {
		m.report(SeverityError, "rooms", fmt.Errorf("%w: %dx%d", ErrRoomTooSmall, rc.Width, rc.Height))
		return
	}

	// Rooms never touch the outer ring
	xMax := g.Width - 1 - rc.Width
	yMax := g.Height - 1 - rc.Height

	interiorBudget := g.Width*g.Height - (2*(g.Height-1) + 2*(g.Width-1))
	overBudget := rc.Count*rc.Width*rc.Height > interiorBudget

	for i := 0; i < rc.Count; i++ {
		area, forced := m.drawRoom(rc.Width, rc.Height, xMax, yMax, overBudget)
		if forced && m.overlapsVisited(area) {
			m.report(SeverityWarning, "rooms", fmt.Errorf("%w: room %d at (%d, %d)",
				ErrRoomForced, i, area.X, area.Y))
		}
		m.stampRoom(area, rc.Doors)
	}
}

// drawRoom draws origins until one avoids visited cells.
// Returns forced=true when the retry cap or room budget skipped the overlap check.
func (m *Maze) drawRoom(w, h, xMax, yMax int, overBudget bool) (area core.Area, forced bool) {
	for redraws := 0; ; redraws++ {
		y := m.room.NextInRange(1, yMax)
		x := m.room.NextInRange(1, xMax)
		area = core.Area{X: x, Y: y, Width: w, Height: h}

		if overBudget || redraws >= maxRoomRedraws {
			return area, true
		}
		if !m.overlapsVisited(area) {
			return area, false
		}
	}
}

// overlapsVisited reports whether any cell of area is already visited
func (m *Maze) overlapsVisited(area core.Area) bool {
	for x := area.X; x < area.X+area.Width; x++ {
		for y := area.Y; y < area.Y+area.Height; y++ {
			if c, ok := m.grid.Cell(core.Point{X: x, Y: y}); ok && c.Visited {
				return true
			}
		}
	}
	return false
}

// stampRoom marks the block visited, clears its interior walls and carves doors
func (m *Maze) stampRoom(area core.Area, doors int) {
	g := m.grid
	area.Each(func(p core.Point) {
		if c, ok := g.Cell(p); ok {
			c.Visited = true
		}
		for _, s := range []core.Point{stepUp, stepRight} {
			if n := p.Add(s); area.Contains(n) {
				m.links = append(m.links, NewLink(p, n))
			}
		}
	})

	first, _ := g.Cell(area.Min())
	last, _ := g.Cell(area.Max())
	bounds := m.region(first.Anchor, last.Anchor)
	m.remove(bounds, ReasonRoom, InnerWall, InnerCorner)

	for d := 0; d < doors; d++ {
		dx := m.room.NextInRange(0, area.Width-1)
		dy := m.room.NextInRange(0, area.Height-1)
		side := m.room.NextInRange(0, 3)
		m.carveDoor(area, dx, dy, side)
	}

	m.roomCenters = append(m.roomCenters, bounds.Center())
	m.rooms = append(m.rooms, area)
}

// carveDoor opens the wall between a room edge cell and its exterior neighbor.
// side: 0 = -X, 1 = +X, 2 = -Y, 3 = +Y
func (m *Maze) carveDoor(area core.Area, dx, dy, side int) {
	lo, hi := area.Min(), area.Max()

	var inside, outside core.Point
	switch side {
	case 0:
		inside = core.Point{X: lo.X, Y: lo.Y + dy}
		outside = inside.Add(stepDown)
	case 1:
		inside = core.Point{X: hi.X, Y: lo.Y + dy}
		outside = inside.Add(stepUp)
	case 2:
		inside = core.Point{X: lo.X + dx, Y: lo.Y}
		outside = inside.Add(stepLeft)
	case 3:
		inside = core.Point{X: lo.X + dx, Y: hi.Y}
		outside = inside.Add(stepRight)
	default:
		return
	}

	a, ok := m.grid.Cell(inside)
	if !ok {
		return
	}
	b, ok := m.grid.Cell(outside)
	if !ok {
		return
	}

	removed := m.remove(m.region(a.Anchor, b.Anchor), ReasonDoor, InnerWall)
	if len(removed) == 0 {
		return
	}
	m.doorways = append(m.doorways, removed[len(removed)-1].Bounds)
	m.links = append(m.links, NewLink(inside, outside))
}
