package maze

import (
	"github.com/lixenwraith/labyrinth/vmath"
)

// SelectIntersecting returns the indices of elements whose bounds intersect region
func SelectIntersecting(region vmath.Box, elements []Element) []int {
	var hits []int
	for i := range elements {
		if region.Intersects(elements[i].Bounds) {
			hits = append(hits, i)
		}
	}
	return hits
}

// region spans two anchors, lifted into the wall band
func (m *Maze) region(a, b vmath.Vec3) vmath.Box {
	up := vmath.Vec3{Z: m.lift}
	return vmath.NewBox(a.Add(up), b.Add(up))
}

// remove selects live elements of the given kinds that intersect region,
// marks them removed and records one removal request each
func (m *Maze) remove(region vmath.Box, reason Reason, kinds ...ElementKind) []Element {
	var removed []Element
	for _, kind := range kinds {
		live := m.live(kind)
		for _, i := range SelectIntersecting(region, live) {
			e := live[i]
			m.removed.Put(e.ID)
			m.removals = append(m.removals, Removal{ID: e.ID, Kind: e.Kind, Reason: reason})
			removed = append(removed, e)
		}
	}
	return removed
}

// live returns the elements of kind not yet removed this pass
func (m *Maze) live(kind ElementKind) []Element {
	bucket := m.byKind[kind]
	out := make([]Element, 0, len(bucket))
	for _, e := range bucket {
		if !m.removed.Has(e.ID) {
			out = append(out, e)
		}
	}
	return out
}
