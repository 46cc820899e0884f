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

	"bufcycle/internal/buffers"
	"bufcycle/internal/config"
	"bufcycle/internal/domain"
	"bufcycle/internal/eventbus"
	"bufcycle/internal/navigator"
	"bufcycle/internal/ui"
)

func main() {
	var withPlugins bool
	var configPath string
	flag.BoolVar(&withPlugins, "plugins", false, "Open demo plugin windows (file tree, tag outline, quickfix)")
	flag.BoolVar(&withPlugins, "p", false, "Open demo plugin windows (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("bufcycle.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
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

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Seed the buffer table with the files named on the command line
	store := buffers.NewStore(bus)
	for _, path := range flag.Args() {
		if _, err := store.Open(path); err != nil {
			log.Printf("Skipping %s: %v", path, err)
		}
	}
	if store.Len() == 0 {
		store.OpenScratch("[welcome]", "text", welcomeLines())
	}
	if withPlugins {
		store.OpenPluginWindow("[tree]", domain.FiletypeNerdtree, []string{"file tree window"})
		store.OpenPluginWindow("[tags]", domain.FiletypeTagbar, []string{"tag outline window"})
		store.OpenPluginWindow("[quickfix]", domain.FiletypeQuickfix, []string{"quickfix window"})
	}

	nav := navigator.New(store, store, cfg.ExclusionSet(), bus)

	// Create UI model and program
	uiModel := ui.NewModel(bus, store, nav, cfg)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventBufferOpened,
		eventbus.EventBufferActivated,
		eventbus.EventBufferClosed,
		eventbus.EventNavigationBlocked,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, forward)
	}
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Quit the UI on shutdown signals
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
	cancel()
}

func welcomeLines() []string {
	return []string{
		"Welcome to bufcycle.",
		"",
		"Open files by passing them on the command line, or press 'e'",
		"to open one now. Cycle buffers with tab / shift+tab, jump with",
		"home / end, and close the current buffer with 'x'.",
		"",
		"Press '?' for the full key reference.",
	}
}
