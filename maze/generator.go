// Package maze generates seeded rectangular maze layouts: cells, rooms,
// carved corridors and boundary openings, expressed as removal requests
// against an element arena owned by the rendering layer.
package maze

import (
	"fmt"
	"log"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/vmath"
)

// Maze owns one generated instance. Not safe for concurrent use.
type Maze struct {
	cfg       Config
	logger    *log.Logger
	entropy   Entropy
	populator Populator
	completed func(*Maze)

	seed int64
	algo *Stream // Corridor carving and opening draws
	room *Stream // Room and door draws
	lift float64

	grid     *Grid
	elements []Element
	byKind   map[ElementKind][]Element
	removed  mapset.Set[int]
	removals []Removal
	breached []Element // Outer walls removed by openings

	rooms       []core.Area
	roomCenters []vmath.Vec3
	deadEnds    []vmath.Vec3
	doorways    []vmath.Box
	links       []Link
	visitOrder  []core.Point
	entry, exit *Opening

	diagnostics []Diagnostic
}

// Option configures a Maze
type Option func(*Maze)

// WithLogger routes diagnostics to l
func WithLogger(l *log.Logger) Option {
	return func(m *Maze) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithEntropy replaces the process-wide source used to draw random seeds
func WithEntropy(e Entropy) Option {
	return func(m *Maze) {
		if e != nil {
			m.entropy = e
		}
	}
}

// WithPopulator replaces the standard element layout
func WithPopulator(p Populator) Option {
	return func(m *Maze) {
		if p != nil {
			m.populator = p
		}
	}
}

// WithCompleted registers a callback run at the end of every pass
func WithCompleted(fn func(*Maze)) Option {
	return func(m *Maze) {
		m.completed = fn
	}
}

// New creates an empty maze; call Regenerate to build it
func New(cfg Config, opts ...Option) *Maze {
	m := &Maze{
		cfg:       cfg,
		logger:    log.Default(),
		entropy:   processEntropy{},
		populator: DefaultPopulator,
		seed:      cfg.Seed,
		algo:      NewStream(cfg.Seed),
		room:      NewStream(cfg.Seed),
		removed:   mapset.New[int](),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Regenerate runs one full generation pass
func (m *Maze) Regenerate() {
	// 1. Seed Selection
	if m.cfg.SeedMode == SeedRandom && !m.cfg.CustomSeed {
		m.cfg.Seed = int64(m.entropy.Int32())
	}
	m.seed = m.cfg.Seed

	// 2. Clear previous pass, rewind both streams to the same seed
	m.clear()
	m.algo.Reset(m.seed)
	m.room.Reset(m.seed)

	// 3. Grid
	w, h := m.cfg.Width, m.cfg.Height
	if w < 1 || h < 1 {
		m.report(SeverityWarning, "grid", fmt.Errorf("%w: %dx%d", ErrGridClamped, w, h))
	}
	m.grid = BuildGrid(w, h, m.cfg.Sizes.Floor, m.cfg.Origin)
	m.lift = m.cfg.Sizes.RegionLift()

	// 4. Uncarved elements from the rendering layer
	m.elements = m.populator.Populate(m.grid, m.cfg.Sizes)
	for i := range m.elements {
		m.elements[i].ID = i
		e := m.elements[i]
		m.byKind[e.Kind] = append(m.byKind[e.Kind], e)
	}

	// 5. Rooms (pre-visited blocks the backtracker routes around)
	m.placeRooms()

	// 6. Corridors
	m.carve()

	// 7. Boundary openings
	m.entry = m.openBoundary(m.cfg.Entry, ReasonEntry)
	m.exit = m.openBoundary(m.cfg.Exit, ReasonExit)

	if m.completed != nil {
		m.completed(m)
	}
}

func (m *Maze) clear() {
	m.grid = nil
	m.elements = nil
	m.byKind = make(map[ElementKind][]Element)
	m.removed = mapset.New[int]()
	m.removals = nil
	m.breached = nil
	m.rooms = nil
	m.roomCenters = nil
	m.deadEnds = nil
	m.doorways = nil
	m.links = nil
	m.visitOrder = nil
	m.entry = nil
	m.exit = nil
	m.diagnostics = nil
}

func (m *Maze) report(sev Severity, step string, err error) {
	d := Diagnostic{Severity: sev, Step: step, Err: err}
	m.diagnostics = append(m.diagnostics, d)
	m.logger.Printf("maze: %s", d)
}

// Config returns the configuration used by the next pass
func (m *Maze) Config() Config { return m.cfg }

// SetConfig replaces the configuration for the next pass
func (m *Maze) SetConfig(cfg Config) { m.cfg = cfg }

// Seed returns the seed of the last pass
func (m *Maze) Seed() int64 { return m.seed }

// SetSeed sets the configured seed for the next pass
func (m *Maze) SetSeed(seed int64) { m.cfg.Seed = seed }

// Grid returns the cell mapping of the last pass
func (m *Maze) Grid() *Grid { return m.grid }

// Elements returns the full uncarved element set, indexed by ID
func (m *Maze) Elements() []Element { return m.elements }

// Removals returns removal requests in the order they were issued
func (m *Maze) Removals() []Removal { return m.removals }

// Removed reports whether element id was removed this pass
func (m *Maze) Removed(id int) bool { return m.removed.Has(id) }

// Rooms returns placed room blocks
func (m *Maze) Rooms() []core.Area { return m.rooms }

// RoomCenters returns one world point per placed room
func (m *Maze) RoomCenters() []vmath.Vec3 { return m.roomCenters }

// DeadEnds returns one world point per backtrack stretch
func (m *Maze) DeadEnds() []vmath.Vec3 { return m.deadEnds }

// Doorways returns the bounds of walls removed for room doors
func (m *Maze) Doorways() []vmath.Box { return m.doorways }

// Links returns every passable adjacency: room interiors, doors, then corridors
func (m *Maze) Links() []Link { return m.links }

// VisitOrder returns cells in the order the backtracker first entered them
func (m *Maze) VisitOrder() []core.Point { return m.visitOrder }

// Entry returns the entry breach, if one was carved
func (m *Maze) Entry() (Opening, bool) {
	if m.entry == nil {
		return Opening{}, false
	}
	return *m.entry, true
}

// Exit returns the exit breach, if one was carved
func (m *Maze) Exit() (Opening, bool) {
	if m.exit == nil {
		return Opening{}, false
	}
	return *m.exit, true
}

// Diagnostics returns warnings and errors raised by the last pass
func (m *Maze) Diagnostics() []Diagnostic { return m.diagnostics }
