// Package scene is the rendering-side model of a generated maze: the element
// arena that honors removal requests, a raster projection of what survives,
// and a serializable snapshot for remote viewers.
package scene

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/labyrinth/maze"
)

// Arena owns the element handles spawned for one pass
type Arena struct {
	elements []maze.Element
	alive    []bool
	live     int

	// OnDestroy observes each destroyed element in destruction order
	OnDestroy func(e maze.Element)
}

// NewArena spawns every element alive
func NewArena(elements []maze.Element) *Arena {
	a := &Arena{
		elements: elements,
		alive:    make([]bool, len(elements)),
		live:     len(elements),
	}
	for i := range a.alive {
		a.alive[i] = true
	}
	return a
}

// Apply destroys requested elements highest ID first, so pending lower
// handles stay valid. Duplicate, unknown and already destroyed IDs are skipped.
// Returns the number of elements destroyed.
func (a *Arena) Apply(removals []maze.Removal) int {
	seen := mapset.New[int]()
	ids := make([]int, 0, len(removals))
	for _, r := range removals {
		if r.ID < 0 || r.ID >= len(a.elements) || seen.Has(r.ID) {
			continue
		}
		seen.Put(r.ID)
		ids = append(ids, r.ID)
	}
	slices.SortFunc(ids, func(x, y int) int { return cmp.Compare(y, x) })

	destroyed := 0
	for _, id := range ids {
		if !a.alive[id] {
			continue
		}
		a.alive[id] = false
		a.live--
		destroyed++
		if a.OnDestroy != nil {
			a.OnDestroy(a.elements[id])
		}
	}
	return destroyed
}

// Alive reports whether handle id is still spawned
func (a *Arena) Alive(id int) bool {
	return id >= 0 && id < len(a.alive) && a.alive[id]
}

// Element returns the handle at id regardless of state
func (a *Arena) Element(id int) (maze.Element, bool) {
	if id < 0 || id >= len(a.elements) {
		return maze.Element{}, false
	}
	return a.elements[id], true
}

// Cap returns the number of handles ever spawned
func (a *Arena) Cap() int { return len(a.elements) }

// Len returns the number of live handles
func (a *Arena) Len() int { return a.live }

// Each visits live elements in ID order
func (a *Arena) Each(fn func(e maze.Element)) {
	for i, e := range a.elements {
		if a.alive[i] {
			fn(e)
		}
	}
}
