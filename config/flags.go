package config

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/lixenwraith/labyrinth/maze"
)

// Flags are the command-line overrides shared by every command.
// Zero values leave the loaded configuration untouched.
type Flags struct {
	Path   string
	Width  int
	Height int
	Seed   int64
	Random bool
	Rooms  string // "", "on" or "off"
	Debug  bool

	seedSet bool
}

// RegisterFlags binds the shared flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Path, "config", "", "Path to TOML config (default ./"+DefaultPath+", then embedded)")
	fs.IntVar(&f.Width, "width", 0, "Maze width in cells")
	fs.IntVar(&f.Height, "height", 0, "Maze height in cells")
	fs.Func("seed", "Fixed seed", func(s string) error {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q", s)
		}
		f.Seed, f.seedSet = v, true
		return nil
	})
	fs.BoolVar(&f.Random, "random", false, "Draw a fresh seed every pass")
	fs.StringVar(&f.Rooms, "rooms", "", "Force rooms on or off")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	return f
}

// Resolve loads the configured file and applies the overrides
func (f *Flags) Resolve() (maze.Config, error) {
	cfg, err := Load(f.Path)
	if err != nil {
		return maze.Config{}, err
	}
	if err := f.Apply(&cfg); err != nil {
		return maze.Config{}, err
	}
	return cfg, nil
}

// Apply writes the set overrides into cfg
func (f *Flags) Apply(cfg *maze.Config) error {
	if f.Width > 0 {
		cfg.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Height = f.Height
	}
	if f.seedSet {
		cfg.Seed = f.Seed
		cfg.SeedMode = maze.SeedFixed
	}
	if f.Random {
		cfg.SeedMode = maze.SeedRandom
		cfg.CustomSeed = false
	}
	switch f.Rooms {
	case "":
	case "on":
		cfg.Rooms.Enabled = true
	case "off":
		cfg.Rooms.Enabled = false
	default:
		return fmt.Errorf("invalid -rooms %q, want on or off", f.Rooms)
	}
	return nil
}
