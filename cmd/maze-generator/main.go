package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/labyrinth/audio"
	"github.com/lixenwraith/labyrinth/config"
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/maze"
	"github.com/lixenwraith/labyrinth/scene"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	ascii := flag.Bool("ascii", false, "Draw with # and . instead of block glyphs")
	dump := flag.Bool("dump-config", false, "Print the resolved config as TOML and exit")
	flag.Parse()

	if logFile := core.SetupLogging(flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	base, err := flags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dump {
		if err := config.Write(os.Stdout, base); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	glyphs := scene.BlockGlyphs
	if *ascii {
		glyphs = scene.ASCIIGlyphs
	}

	cues := audio.NewCues()
	if err := cues.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer cues.Cleanup()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\n=== SEEDED MAZE LAYOUT GENERATOR ===")

		cfg := base
		cfg.Width = getInt(reader, fmt.Sprintf("Width (default %d): ", cfg.Width), cfg.Width)
		cfg.Height = getInt(reader, fmt.Sprintf("Height (default %d): ", cfg.Height), cfg.Height)
		if seed, ok := getSeed(reader, fmt.Sprintf("Seed (default %s): ", seedLabel(cfg))); ok {
			cfg.Seed = seed
			cfg.SeedMode = maze.SeedFixed
		}
		cfg.Rooms.Enabled = getYesNo(reader, "Rooms? ", cfg.Rooms.Enabled)

		fmt.Println("\nGenerating...")
		startT := time.Now()
		m := maze.New(cfg, maze.WithLogger(log.Default()), maze.WithCompleted(cues.OnPass))
		m.Regenerate()
		s := scene.Build(m)
		dur := time.Since(startT)

		report(os.Stdout, m, s, dur)
		for _, line := range s.Lines(glyphs) {
			fmt.Println(line)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func report(w io.Writer, m *maze.Maze, s *scene.Scene, dur time.Duration) {
	fmt.Fprintf(w, "Done in %v\n", dur)
	fmt.Fprintf(w, "Seed: %d\n", m.Seed())
	fmt.Fprintf(w, "Raster: %dx%d, elements %d, removed %d\n",
		s.Raster.Width(), s.Raster.Height(), s.Arena.Cap(), s.Arena.Cap()-s.Arena.Len())
	fmt.Fprintf(w, "Rooms: %d, dead ends: %d\n", len(m.Rooms()), len(m.DeadEnds()))

	switch {
	case s.Solution != nil:
		fmt.Fprintf(w, "Solution Path Length: %d steps\n", len(s.Solution))
	case s.Raster.HasStart && s.Raster.HasEnd:
		fmt.Fprintln(w, "Status: Unsolvable (Isolated Start/End)")
	default:
		fmt.Fprintln(w, "Status: No entry/exit pair")
	}

	for _, d := range m.Diagnostics() {
		fmt.Fprintf(w, "  %s\n", d)
	}
}

func seedLabel(cfg maze.Config) string {
	if cfg.SeedMode == maze.SeedRandom && !cfg.CustomSeed {
		return "random"
	}
	return strconv.FormatInt(cfg.Seed, 10)
}

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	str, _ := r.ReadString('\n')
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}
	v, err := strconv.Atoi(str)
	if err != nil || v < 1 {
		return def
	}
	return v
}

func getSeed(r *bufio.Reader, prompt string) (int64, bool) {
	fmt.Print(prompt)
	str, _ := r.ReadString('\n')
	v, err := strconv.ParseInt(strings.TrimSpace(str), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getYesNo(r *bufio.Reader, prompt string, def bool) bool {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Print(prompt + hint + ": ")
	str, _ := r.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	}
	return def
}
