package scene

import (
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/maze"
	"github.com/lixenwraith/labyrinth/vmath"
)

// Snapshot is the wire form of a pass for remote viewers
type Snapshot struct {
	Seed        int64         `json:"seed"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Elements    []ElementView `json:"elements"`
	Removals    []RemovalView `json:"removals"`
	Rooms       []core.Area   `json:"rooms,omitempty"`
	RoomCenters []vmath.Vec3  `json:"room_centers,omitempty"`
	DeadEnds    []vmath.Vec3  `json:"dead_ends,omitempty"`
	Doorways    []vmath.Box   `json:"doorways,omitempty"`
	Entry       *OpeningView  `json:"entry,omitempty"`
	Exit        *OpeningView  `json:"exit,omitempty"`
	Raster      []string      `json:"raster"`
	Solution    []core.Point  `json:"solution,omitempty"`
	Diagnostics []string      `json:"diagnostics,omitempty"`
}

type ElementView struct {
	ID       int        `json:"id"`
	Kind     string     `json:"kind"`
	Slot     core.Point `json:"slot"`
	Location vmath.Vec3 `json:"location"`
	Yaw      float64    `json:"yaw"`
	Alive    bool       `json:"alive"`
}

type RemovalView struct {
	ID     int    `json:"id"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

type OpeningView struct {
	Side     string     `json:"side"`
	Index    int        `json:"index"`
	Cell     core.Point `json:"cell"`
	Wall     int        `json:"wall"`
	Location vmath.Vec3 `json:"location"`
	Yaw      float64    `json:"yaw"`
}

// Capture flattens a maze and its scene into a Snapshot
func Capture(m *maze.Maze, s *Scene) Snapshot {
	g := m.Grid()
	snap := Snapshot{
		Seed:        m.Seed(),
		Width:       g.Width,
		Height:      g.Height,
		Elements:    make([]ElementView, 0, s.Arena.Cap()),
		Removals:    make([]RemovalView, 0, len(m.Removals())),
		Rooms:       m.Rooms(),
		RoomCenters: m.RoomCenters(),
		DeadEnds:    m.DeadEnds(),
		Doorways:    m.Doorways(),
		Raster:      s.Lines(ASCIIGlyphs),
		Solution:    s.Solution,
	}

	for id := 0; id < s.Arena.Cap(); id++ {
		e, _ := s.Arena.Element(id)
		snap.Elements = append(snap.Elements, ElementView{
			ID:       e.ID,
			Kind:     e.Kind.String(),
			Slot:     e.Slot,
			Location: e.Transform.Location,
			Yaw:      e.Transform.Yaw,
			Alive:    s.Arena.Alive(id),
		})
	}
	for _, r := range m.Removals() {
		snap.Removals = append(snap.Removals, RemovalView{
			ID:     r.ID,
			Kind:   r.Kind.String(),
			Reason: r.Reason.String(),
		})
	}
	if o, ok := m.Entry(); ok {
		snap.Entry = openingView(o)
	}
	if o, ok := m.Exit(); ok {
		snap.Exit = openingView(o)
	}
	for _, d := range m.Diagnostics() {
		snap.Diagnostics = append(snap.Diagnostics, d.String())
	}
	return snap
}

func openingView(o maze.Opening) *OpeningView {
	return &OpeningView{
		Side:     o.Side.String(),
		Index:    o.Index,
		Cell:     o.Cell,
		Wall:     o.Wall,
		Location: o.Transform.Location,
		Yaw:      o.Transform.Yaw,
	}
}
