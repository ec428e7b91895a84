package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/labyrinth/audio"
	"github.com/lixenwraith/labyrinth/config"
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/maze"
)

const (
	windowWidth  = 1024
	windowHeight = 768
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.RegisterFlags(flag.CommandLine)
	quiet := flag.Bool("quiet", false, "Disable audio cues")
	flag.Parse()

	if logFile := core.SetupLogging(flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	cues := audio.NewCues()
	if !*quiet {
		if err := cues.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
		defer cues.Cleanup()
	}

	m := maze.New(cfg, maze.WithLogger(log.Default()), maze.WithCompleted(cues.OnPass))
	win := NewWindow(m, cues)

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Labyrinth")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("window: %v", err)
		os.Exit(1)
	}
}
