package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"csvgrip/internal/config"
	"csvgrip/internal/eventbus"
	"csvgrip/internal/index"
	"csvgrip/internal/rows"
	"csvgrip/internal/ui"
	"csvgrip/internal/watch"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file.csv>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	var delimFlag string
	var noHeader bool
	flag.StringVar(&delimFlag, "delimiter", "", "Field delimiter (default: sniffed from the file)")
	flag.BoolVar(&noHeader, "no-header", false, "Treat the first record as data")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	path, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving path: %v\n", err)
		os.Exit(1)
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	logFile, err := os.OpenFile("csvgrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Close()

	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("Config load failed, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	delim, hasHeader, err := index.Sniff(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}
	// Flags override config, config overrides sniffing.
	if cfg.Delimiter != "" {
		delim = cfg.Delimiter[0]
	}
	if cfg.HasHeader != nil {
		hasHeader = *cfg.HasHeader
	}
	if delimFlag != "" {
		delim = delimFlag[0]
	}
	if noHeader {
		hasHeader = false
	}
	log.Printf("Opening %s (delimiter %q, header %v)", path, string(delim), hasHeader)

	loader := index.NewLoader(bus, path)
	idx, err := loader.Start(ctx, delim, hasHeader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		os.Exit(1)
	}
	defer loader.Stop()

	cache, err := rows.NewCache(path, delim, idx, cfg.UISettings.RowCacheSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		os.Exit(1)
	}
	defer cache.Close()

	watcher, err := watch.New(bus, path)
	if err != nil {
		log.Printf("File watching unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	uiModel := ui.NewModel(bus, cfg, path, delim, hasHeader, loader, idx, cache)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward domain events to the UI loop.
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventIndexProgress, forward)
	bus.Subscribe(eventbus.EventIndexCompleted, forward)
	bus.Subscribe(eventbus.EventFileChanged, forward)
	bus.Subscribe(eventbus.EventError, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	close(eventChan)
}
