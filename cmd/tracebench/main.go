// Tracebench — interactive workbench for browsing recorded test traces.
//
// Usage:
//
//	tracebench [flags]
//
// Flags:
//
//	--db                 Path to SQLite trace database (default: ~/.tracebench/traces.db)
//	--trace              Open a specific trace id directly
//	--show-sources-first Move the source tab next to the inspector
//	--hide-timeline      Hide the timeline band
//	--inert              Display only, accept no interaction
//	--reveal-source      Open with the source tab active
//	--root-dir           Strip this prefix from displayed source paths
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jitera-Product/tracebench/internal/settings"
	"github.com/Jitera-Product/tracebench/internal/storage"
	"github.com/Jitera-Product/tracebench/internal/tui"
	"github.com/Jitera-Product/tracebench/internal/workbench"
)

func main() {
	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".tracebench", "traces.db")

	dbPath := flag.String("db", defaultDB, "Path to SQLite trace database")
	traceID := flag.String("trace", "", "Open a specific trace id directly")
	sourcesFirst := flag.Bool("show-sources-first", false, "Move the source tab next to the inspector")
	hideTimeline := flag.Bool("hide-timeline", false, "Hide the timeline band")
	inert := flag.Bool("inert", false, "Display only, accept no interaction")
	revealSource := flag.Bool("reveal-source", false, "Open with the source tab active")
	rootDir := flag.String("root-dir", "", "Strip this prefix from displayed source paths")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}
	store, err := storage.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open trace database at %s: %v\n"+
			"Import a recording first with: tracebench-import <file>", *dbPath, err)
	}
	defer store.Close()

	// Preferences survive across sessions; a failure here only costs
	// persistence, never the session.
	prefs, err := settings.Open("")
	var wbSettings workbench.Settings = prefs
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: preferences unavailable: %v\n", err)
		wbSettings = workbench.NopSettings{}
	}

	cfg := workbench.Config{
		ShowSourcesFirst: *sourcesFirst,
		HideTimeline:     *hideTimeline,
		Inert:            *inert,
		RevealSource:     *revealSource,
		RootDir:          *rootDir,
	}

	model := tui.NewModel(store, wbSettings, cfg, *traceID)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running workbench: %v\n", err)
		os.Exit(1)
	}
}
