package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/labyrinth/config"
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/network"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	addr := flag.String("addr", "", "Listen address (default "+network.DefaultConfig().Address+")")
	insecure := flag.Bool("insecure", false, "Skip the websocket origin check")
	maxClients := flag.Int("max-clients", 0, "Concurrent websocket client limit")
	flag.Parse()

	// Server logs go to stderr unless debug routes them to the log file
	log.SetPrefix("[maze-server] ")
	if flags.Debug {
		if logFile := core.SetupLogging(true); logFile != nil {
			defer logFile.Close()
		}
	}

	mcfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ncfg := network.DefaultConfig()
	if *insecure {
		ncfg = network.DebugConfig(ncfg.Address)
	}
	if *addr != "" {
		ncfg.Address = *addr
	}
	if *maxClients > 0 {
		ncfg.MaxClients = *maxClients
	}

	svc, err := network.NewService(ncfg, mcfg, log.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("serving on %s", ncfg.Address)
	if err := svc.Serve(ctx); err != nil {
		log.Printf("server error: %v", err)
		os.Exit(1)
	}
}
