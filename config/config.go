// Package config loads maze configuration from TOML
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/maze"
	"github.com/lixenwraith/labyrinth/vmath"
)

// DefaultPath is checked when no explicit path is given
const DefaultPath = "labyrinth.toml"

//go:embed default.toml
var defaultTOML string

// File mirrors the TOML document
type File struct {
	Maze  MazeSection    `toml:"maze"`
	Seed  SeedSection    `toml:"seed"`
	Sizes SizesSection   `toml:"sizes"`
	Rooms RoomsSection   `toml:"rooms"`
	Entry OpeningSection `toml:"entry"`
	Exit  OpeningSection `toml:"exit"`
}

type MazeSection struct {
	Width  int        `toml:"width"`
	Height int        `toml:"height"`
	Start  [2]int     `toml:"start"`
	Origin [3]float64 `toml:"origin"`
}

type SeedSection struct {
	Mode   string `toml:"mode"`
	Value  int64  `toml:"value"`
	Custom bool   `toml:"custom"`
}

type SizesSection struct {
	Floor       [3]float64 `toml:"floor"`
	InnerWall   [3]float64 `toml:"inner_wall"`
	OuterWall   [3]float64 `toml:"outer_wall"`
	InnerCorner [3]float64 `toml:"inner_corner"`
	OuterCorner [3]float64 `toml:"outer_corner"`
}

type RoomsSection struct {
	Enabled bool `toml:"enabled"`
	Count   int  `toml:"count"`
	Width   int  `toml:"width"`
	Height  int  `toml:"height"`
	Doors   int  `toml:"doors"`
}

type OpeningSection struct {
	Enabled bool   `toml:"enabled"`
	Side    string `toml:"side"`
	Mode    string `toml:"mode"`
	Index   int    `toml:"index"`
}

// Load resolves configuration with priority: path > DefaultPath > embedded
func Load(path string) (maze.Config, error) {
	// Priority 1: Custom path from CLI
	if path != "" {
		return LoadFile(path)
	}

	// Priority 2: Default external config
	if fileExists(DefaultPath) {
		return LoadFile(DefaultPath)
	}

	// Priority 3: Embedded fallback
	return Parse("")
}

// LoadFile reads one TOML file layered over the embedded defaults
func LoadFile(path string) (maze.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return maze.Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return maze.Config{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the embedded defaults. Unknown keys are rejected.
func Parse(data string) (maze.Config, error) {
	var f File
	if _, err := toml.Decode(defaultTOML, &f); err != nil {
		return maze.Config{}, fmt.Errorf("embedded default: %w", err)
	}

	md, err := toml.Decode(data, &f)
	if err != nil {
		return maze.Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return maze.Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return f.Config()
}

// Default returns the embedded configuration
func Default() maze.Config {
	cfg, err := Parse("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded default is invalid: %v", err))
	}
	return cfg
}

// Config converts the document into a maze configuration
func (f File) Config() (maze.Config, error) {
	seedMode, err := maze.ParseSeedMode(f.Seed.Mode)
	if err != nil {
		return maze.Config{}, fmt.Errorf("[seed]: %w", err)
	}
	entry, err := f.Entry.opening()
	if err != nil {
		return maze.Config{}, fmt.Errorf("[entry]: %w", err)
	}
	exit, err := f.Exit.opening()
	if err != nil {
		return maze.Config{}, fmt.Errorf("[exit]: %w", err)
	}

	return maze.Config{
		Width:      f.Maze.Width,
		Height:     f.Maze.Height,
		Start:      core.Point{X: f.Maze.Start[0], Y: f.Maze.Start[1]},
		Seed:       f.Seed.Value,
		SeedMode:   seedMode,
		CustomSeed: f.Seed.Custom,
		Origin:     vec(f.Maze.Origin),
		Sizes: maze.Sizes{
			Floor:       vec(f.Sizes.Floor),
			InnerWall:   vec(f.Sizes.InnerWall),
			OuterWall:   vec(f.Sizes.OuterWall),
			InnerCorner: vec(f.Sizes.InnerCorner),
			OuterCorner: vec(f.Sizes.OuterCorner),
		},
		Rooms: maze.Rooms{
			Enabled: f.Rooms.Enabled,
			Count:   f.Rooms.Count,
			Width:   f.Rooms.Width,
			Height:  f.Rooms.Height,
			Doors:   f.Rooms.Doors,
		},
		Entry: entry,
		Exit:  exit,
	}, nil
}

func (s OpeningSection) opening() (maze.OpeningConfig, error) {
	side, err := maze.ParseSide(s.Side)
	if err != nil {
		return maze.OpeningConfig{}, err
	}
	mode, err := maze.ParseIndexMode(s.Mode)
	if err != nil {
		return maze.OpeningConfig{}, err
	}
	return maze.OpeningConfig{Enabled: s.Enabled, Side: side, Mode: mode, Index: s.Index}, nil
}

// FromConfig builds the document for cfg
func FromConfig(cfg maze.Config) File {
	return File{
		Maze: MazeSection{
			Width:  cfg.Width,
			Height: cfg.Height,
			Start:  [2]int{cfg.Start.X, cfg.Start.Y},
			Origin: arr(cfg.Origin),
		},
		Seed: SeedSection{Mode: cfg.SeedMode.String(), Value: cfg.Seed, Custom: cfg.CustomSeed},
		Sizes: SizesSection{
			Floor:       arr(cfg.Sizes.Floor),
			InnerWall:   arr(cfg.Sizes.InnerWall),
			OuterWall:   arr(cfg.Sizes.OuterWall),
			InnerCorner: arr(cfg.Sizes.InnerCorner),
			OuterCorner: arr(cfg.Sizes.OuterCorner),
		},
		Rooms: RoomsSection{
			Enabled: cfg.Rooms.Enabled,
			Count:   cfg.Rooms.Count,
			Width:   cfg.Rooms.Width,
			Height:  cfg.Rooms.Height,
			Doors:   cfg.Rooms.Doors,
		},
		Entry: openingSection(cfg.Entry),
		Exit:  openingSection(cfg.Exit),
	}
}

// Write encodes cfg as TOML
func Write(w io.Writer, cfg maze.Config) error {
	return toml.NewEncoder(w).Encode(FromConfig(cfg))
}

func openingSection(o maze.OpeningConfig) OpeningSection {
	return OpeningSection{Enabled: o.Enabled, Side: o.Side.String(), Mode: o.Mode.String(), Index: o.Index}
}

func vec(a [3]float64) vmath.Vec3 { return vmath.V3(a[0], a[1], a[2]) }

func arr(v vmath.Vec3) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
