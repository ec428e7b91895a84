package main

import (
	"bufio"
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/lixenwraith/labyrinth/maze"
	"github.com/lixenwraith/labyrinth/scene"
)

func TestPrompts(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("12\n\nabc\n-3\n42\n\ny\n\n"))

	if got := getInt(r, "", 5); got != 12 {
		t.Errorf("Expected 12, got %d", got)
	}
	if got := getInt(r, "", 5); got != 5 {
		t.Errorf("Expected default on empty input, got %d", got)
	}
	if got := getInt(r, "", 5); got != 5 {
		t.Errorf("Expected default on garbage, got %d", got)
	}
	if got := getInt(r, "", 5); got != 5 {
		t.Errorf("Expected default on non-positive, got %d", got)
	}
	if seed, ok := getSeed(r, ""); !ok || seed != 42 {
		t.Errorf("Expected seed 42, got %d (%v)", seed, ok)
	}
	if _, ok := getSeed(r, ""); ok {
		t.Error("Expected empty seed to keep the default")
	}
	if !getYesNo(r, "", false) {
		t.Error("Expected yes")
	}
	if !getYesNo(r, "", true) {
		t.Error("Expected default true on empty input")
	}
}

func TestSeedLabel(t *testing.T) {
	cfg := maze.DefaultConfig()
	cfg.Seed = 9
	if got := seedLabel(cfg); got != "9" {
		t.Errorf("Expected 9, got %q", got)
	}
	cfg.SeedMode = maze.SeedRandom
	if got := seedLabel(cfg); got != "random" {
		t.Errorf("Expected random, got %q", got)
	}
	cfg.CustomSeed = true
	if got := seedLabel(cfg); got != "9" {
		t.Errorf("Expected custom seed 9, got %q", got)
	}
}

func TestReport(t *testing.T) {
	cfg := maze.DefaultConfig()
	cfg.Entry = maze.OpeningConfig{Enabled: true, Side: maze.South}
	cfg.Exit = maze.OpeningConfig{Enabled: true, Side: maze.North, Index: 4}
	m := maze.New(cfg, maze.WithLogger(log.New(io.Discard, "", 0)))
	m.Regenerate()
	s := scene.Build(m)

	var buf bytes.Buffer
	report(&buf, m, s, 0)
	out := buf.String()

	for _, want := range []string{"Seed: 0", "Raster: 11x11", "Solution Path Length:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected report to contain %q, got:\n%s", want, out)
		}
	}
}
