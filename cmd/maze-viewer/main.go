package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/labyrinth/audio"
	"github.com/lixenwraith/labyrinth/config"
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/maze"
)

func main() {
	// Panic Recovery: restore the terminal before printing the crash
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	m := maze.New(cfg, maze.WithLogger(log.Default()), maze.WithCompleted(cues.OnPass))
	NewViewer(screen, m, cues).run()
}
