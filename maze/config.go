package maze

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/vmath"
)

// SeedMode selects how a pass obtains its seed
type SeedMode uint8

const (
	SeedFixed  SeedMode = iota // Reuse Config.Seed every pass
	SeedRandom                 // Draw a fresh seed from Entropy every pass
)

func (m SeedMode) String() string {
	if m == SeedRandom {
		return "random"
	}
	return "fixed"
}

// ParseSeedMode accepts "fixed" or "random"
func ParseSeedMode(s string) (SeedMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed":
		return SeedFixed, nil
	case "random", "random-each-pass":
		return SeedRandom, nil
	}
	return SeedFixed, fmt.Errorf("unknown seed mode %q", s)
}

// Side names one of the four outer walls
type Side uint8

const (
	SideNone Side = iota
	South         // -Y, width-aligned
	West          // -X, height-aligned
	North         // +Y, width-aligned
	East          // +X, height-aligned
)

var sideNames = [...]string{
	SideNone: "none",
	South:    "south",
	West:     "west",
	North:    "north",
	East:     "east",
}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "unknown"
}

// WidthAligned reports whether openings on this side are indexed along X
func (s Side) WidthAligned() bool {
	return s == South || s == North
}

// Outward returns the unit direction pointing out of the maze
func (s Side) Outward() vmath.Vec3 {
	switch s {
	case South:
		return vmath.Vec3{Y: -1}
	case West:
		return vmath.Vec3{X: -1}
	case North:
		return vmath.Vec3{Y: 1}
	case East:
		return vmath.Vec3{X: 1}
	}
	return vmath.Vec3{}
}

// ParseSide accepts side names and the legacy numbering 1..4
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SideNone, nil
	case "south", "1":
		return South, nil
	case "west", "2":
		return West, nil
	case "north", "3":
		return North, nil
	case "east", "4":
		return East, nil
	}
	return SideNone, fmt.Errorf("unknown side %q", s)
}

// IndexMode selects how an opening's position along its side is chosen
type IndexMode uint8

const (
	IndexFixed  IndexMode = iota // Use OpeningConfig.Index
	IndexRandom                  // Draw from the algorithm stream
)

func (m IndexMode) String() string {
	if m == IndexRandom {
		return "random"
	}
	return "fixed"
}

// ParseIndexMode accepts "fixed"/"custom" or "random"
func ParseIndexMode(s string) (IndexMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed", "custom":
		return IndexFixed, nil
	case "random":
		return IndexRandom, nil
	}
	return IndexFixed, fmt.Errorf("unknown index mode %q", s)
}

// Sizes are the bounding sizes of the element types placed by the rendering layer
type Sizes struct {
	Floor       vmath.Vec3
	InnerWall   vmath.Vec3 // X = length, Y = thickness, Z = height
	OuterWall   vmath.Vec3
	InnerCorner vmath.Vec3
	OuterCorner vmath.Vec3
}

// DefaultSizes returns 400-unit cells with 20-unit inner and 40-unit outer walls
func DefaultSizes() Sizes {
	return Sizes{
		Floor:       vmath.V3(400, 400, 20),
		InnerWall:   vmath.V3(380, 20, 300),
		OuterWall:   vmath.V3(360, 40, 300),
		InnerCorner: vmath.V3(20, 20, 300),
		OuterCorner: vmath.V3(40, 40, 300),
	}
}

// RegionLift is the height added to cell anchors so query boxes cross wall bodies
func (s Sizes) RegionLift() float64 {
	return 2 * s.Floor.Z
}

// Rooms configures room placement
type Rooms struct {
	Enabled bool
	Count   int
	Width   int
	Height  int
	Doors   int // Doors carved per room
}

// OpeningConfig configures the entry or exit breach
type OpeningConfig struct {
	Enabled bool
	Side    Side
	Mode    IndexMode
	Index   int // Position along the side when Mode is IndexFixed
}

// Config is validated once per pass
type Config struct {
	Width, Height int
	Start         core.Point // Carving starting cell

	Seed       int64
	SeedMode   SeedMode
	CustomSeed bool // Use Seed verbatim even in SeedRandom mode

	Origin vmath.Vec3 // World offset of the maze center
	Sizes  Sizes

	Rooms Rooms
	Entry OpeningConfig
	Exit  OpeningConfig
}

// DefaultConfig returns a 5x5 maze with no rooms and no openings
func DefaultConfig() Config {
	return Config{
		Width:    5,
		Height:   5,
		SeedMode: SeedFixed,
		Sizes:    DefaultSizes(),
	}
}
