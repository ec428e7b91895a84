package config

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/labyrinth/maze"
	"github.com/lixenwraith/labyrinth/vmath"
)

func TestLoad_EmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load embedded default: %v", err)
	}
	if cfg.Width != 11 || cfg.Height != 9 {
		t.Errorf("Expected 11x9, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Sizes != maze.DefaultSizes() {
		t.Errorf("Expected default sizes, got %+v", cfg.Sizes)
	}
	if cfg.Entry.Side != maze.South || cfg.Exit.Side != maze.North {
		t.Errorf("Expected south/north openings, got %v/%v", cfg.Entry.Side, cfg.Exit.Side)
	}
	if cfg.Entry.Mode != maze.IndexRandom {
		t.Errorf("Expected random entry index, got %v", cfg.Entry.Mode)
	}
}

func TestLoadFile_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.toml")
	data := `
[maze]
width = 21
origin = [100.0, -50.0, 0.0]

[seed]
mode = "random"
value = 99
custom = true

[exit]
side = "4"
mode = "custom"
index = 3
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if cfg.Width != 21 {
		t.Errorf("Expected width 21, got %d", cfg.Width)
	}
	if cfg.Height != 9 {
		t.Errorf("Expected default height 9, got %d", cfg.Height)
	}
	if cfg.Origin != vmath.V3(100, -50, 0) {
		t.Errorf("Expected origin override, got %+v", cfg.Origin)
	}
	if cfg.SeedMode != maze.SeedRandom || !cfg.CustomSeed || cfg.Seed != 99 {
		t.Errorf("Seed section not applied: mode=%v custom=%v seed=%d", cfg.SeedMode, cfg.CustomSeed, cfg.Seed)
	}
	if cfg.Exit.Side != maze.East || cfg.Exit.Mode != maze.IndexFixed || cfg.Exit.Index != 3 {
		t.Errorf("Exit section not applied: %+v", cfg.Exit)
	}
	if !cfg.Exit.Enabled {
		t.Error("Expected exit enabled from defaults")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !os.IsNotExist(err) && !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse("[maze]\nwidht = 4\n")
	if err == nil {
		t.Fatal("Expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "maze.widht") {
		t.Errorf("Expected offending key in error, got %v", err)
	}
}

func TestParse_BadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"side", "[entry]\nside = \"up\"\n"},
		{"index mode", "[exit]\nmode = \"sometimes\"\n"},
		{"seed mode", "[seed]\nmode = \"chaos\"\n"},
		{"syntax", "[maze\nwidth = 3\n"},
		{"type", "[maze]\nwidth = \"wide\"\n"},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.data); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	want := maze.DefaultConfig()
	want.Width, want.Height = 7, 13
	want.Seed = -42
	want.SeedMode = maze.SeedRandom
	want.Origin = vmath.V3(1.5, 2.5, -3)
	want.Rooms = maze.Rooms{Enabled: true, Count: 3, Width: 2, Height: 3, Doors: 1}
	want.Entry = maze.OpeningConfig{Enabled: true, Side: maze.West, Mode: maze.IndexFixed, Index: 4}
	want.Exit = maze.OpeningConfig{Enabled: true, Side: maze.East, Mode: maze.IndexRandom}

	var buf bytes.Buffer
	if err := Write(&buf, want); err != nil {
		t.Fatalf("Failed to write: %v", err)
	}
	got, err := Parse(buf.String())
	if err != nil {
		t.Fatalf("Failed to parse written config: %v\n%s", err, buf.String())
	}
	if got != want {
		t.Errorf("Round trip mismatch\nExpected %+v\nGot      %+v", want, got)
	}
}

func TestDefault_GeneratesSolvableMaze(t *testing.T) {
	cfg := Default()
	m := maze.New(cfg, maze.WithLogger(log.New(io.Discard, "", 0)))
	m.Regenerate()
	for _, d := range m.Diagnostics() {
		if d.Severity == maze.SeverityError {
			t.Errorf("Unexpected error diagnostic: %v", d)
		}
	}
	if _, ok := m.Entry(); !ok {
		t.Error("Expected entry from default config")
	}
}
