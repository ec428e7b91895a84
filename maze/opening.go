package maze

import (
	"fmt"

	"github.com/lixenwraith/labyrinth/core"
)

// openBoundary breaches one outer wall for the entry or exit.
// Any validation failure leaves the maze untouched and returns nil.
// Walls already breached by an earlier opening this pass still count as hits,
// so an exit on the entry's wall shares that wall's ID and transform.
func (m *Maze) openBoundary(oc OpeningConfig, reason Reason) *Opening {
	if !oc.Enabled {
		return nil
	}
	step := reason.String()

	if oc.Side == SideNone || oc.Side > East {
		m.report(SeverityError, step, fmt.Errorf("%w: %v", ErrOpeningSide, oc.Side))
		return nil
	}

	g := m.grid
	extent := g.Height
	if oc.Side.WidthAligned() {
		extent = g.Width
	}

	index := oc.Index
	if oc.Mode == IndexRandom {
		index = m.algo.NextInRange(0, extent-1)
	}
	if index < 0 || index > extent-1 {
		m.report(SeverityError, step, fmt.Errorf("%w: %s index %d not in [0, %d]",
			ErrOpeningRange, oc.Side, index, extent-1))
		return nil
	}

	var p core.Point
	switch oc.Side {
	case South:
		p = core.Point{X: index, Y: 0}
	case West:
		p = core.Point{X: 0, Y: index}
	case North:
		p = core.Point{X: index, Y: g.Height - 1}
	case East:
		p = core.Point{X: g.Width - 1, Y: index}
	}
	cell, ok := g.Cell(p)
	if !ok {
		return nil
	}

	// Reach from the anchor past the outer wall line
	out := oc.Side.Outward()
	reach := m.cfg.Sizes.OuterWall.Y
	if oc.Side.WidthAligned() {
		reach += g.Floor.Y / 2
	} else {
		reach += g.Floor.X / 2
	}
	region := m.region(cell.Anchor, cell.Anchor.Add(out.Scale(reach)))

	m.breached = append(m.breached, m.remove(region, reason, OuterWall)...)
	hits := SelectIntersecting(region, m.breached)
	if len(hits) == 0 {
		m.report(SeverityWarning, step, fmt.Errorf("%w: %s index %d", ErrOpeningNoWall, oc.Side, index))
		return nil
	}
	wall := m.breached[hits[len(hits)-1]]

	return &Opening{
		Side:      oc.Side,
		Index:     index,
		Cell:      p,
		Region:    region,
		Wall:      wall.ID,
		Transform: wall.Transform,
	}
}
