package maze

import (
	"fmt"

	"github.com/lixenwraith/labyrinth/core"
)

// resolveStart returns the configured start when usable, else (0, 0)
func (m *Maze) resolveStart() core.Point {
	start := m.cfg.Start
	if c, ok := m.grid.Cell(start); ok && !c.Visited {
		return start
	}
	m.report(SeverityWarning, "carve", fmt.Errorf("%w: (%d, %d), changing to (0, 0)",
		ErrStartOutOfBounds, start.X, start.Y))
	return core.Point{}
}

// carve runs the randomized depth-first backtracker from the start cell.
// Rooms are already visited so the walk routes around them.
func (m *Maze) carve() {
	current, ok := m.grid.Cell(m.resolveStart())
	if !ok {
		return
	}

	var (
		stack         []*Cell
		checkPrevious bool // current was reached by backtracking
		deadEndLogged bool // one dead end per backtrack stretch
	)

	for current != nil {
		if !checkPrevious {
			stack = append(stack, current)
			m.visitOrder = append(m.visitOrder, current.Pos)
		}
		current.Visited = true

		open := m.unvisitedNeighbors(current)
		if len(open) > 0 {
			deadEndLogged = false
			next := open[m.algo.NextInRange(0, len(open)-1)]

			m.remove(m.region(current.Anchor, next.Anchor), ReasonCarve, InnerWall)
			m.links = append(m.links, NewLink(current.Pos, next.Pos))

			current = next
			checkPrevious = false
			continue
		}

		if !deadEndLogged {
			m.deadEnds = append(m.deadEnds, stack[len(stack)-1].Anchor)
			deadEndLogged = true
		}

		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return
		}
		current, ok = m.grid.Cell(stack[len(stack)-1].Pos)
		if !ok {
			return
		}
		checkPrevious = true
	}
}

func (m *Maze) unvisitedNeighbors(c *Cell) []*Cell {
	var open []*Cell
	for _, n := range m.grid.Neighbors(c) {
		if !n.Visited {
			open = append(open, n)
		}
	}
	return open
}
