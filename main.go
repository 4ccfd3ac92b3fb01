package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"versemate/internal/config"
	"versemate/internal/eventbus"
	"versemate/internal/store"
	"versemate/internal/ui"
)

func main() {
	seedFlag := flag.String("seed", "", "path to the seed database (overrides config)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("versemate.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
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

	// Load configuration
	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	if *seedFlag != "" {
		cfg.SeedDBPath = *seedFlag
	}

	// Create event bus
	bus := eventbus.New()

	// Open the seed database
	st, err := store.Open(cfg.SeedDBPath, cfg.BibleVersion, cfg.LanguageCode, bus)
	if err != nil {
		fmt.Printf("Error opening seed database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, st)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventIdentityChanged, forward)
	bus.Subscribe(eventbus.EventRecentered, forward)
	bus.Subscribe(eventbus.EventPageSettled, forward)
	bus.Subscribe(eventbus.EventBoundaryRejected, forward)
	bus.Subscribe(eventbus.EventCatalogLoaded, forward)
	bus.Subscribe(eventbus.EventBookmarkAdded, forward)
	bus.Subscribe(eventbus.EventBookmarkRemoved, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Reload content when the seed database is replaced on disk
	go func() {
		if err := st.Watch(ctx, func() {
			p.Send(ui.SeedChanged())
		}); err != nil {
			log.Printf("Seed watcher stopped: %v", err)
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	uiModel.Close()
	close(eventChan)
	cancel()
}
