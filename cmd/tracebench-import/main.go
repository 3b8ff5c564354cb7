// Tracebench import — loads NDJSON recordings into the trace database.
//
// Usage:
//
//	tracebench-import [flags] <recording.ndjson>...
//
// Flags:
//
//	--db    Path to SQLite trace database (default: ~/.tracebench/traces.db)
//
// Reads from stdin when no files are given.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Jitera-Product/tracebench/internal/ingest"
	"github.com/Jitera-Product/tracebench/internal/storage"
)

func main() {
	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".tracebench", "traces.db")

	dbPath := flag.String("db", defaultDB, "Path to SQLite trace database")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}
	store, err := storage.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open trace database at %s: %v", *dbPath, err)
	}
	defer store.Close()

	if flag.NArg() == 0 {
		traceID, counts, err := ingest.Import(os.Stdin, store)
		if err != nil {
			log.Fatalf("Import from stdin failed: %v", err)
		}
		report("stdin", traceID, counts)
		return
	}

	for _, path := range flag.Args() {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", path, err)
		}
		traceID, counts, err := ingest.Import(f, store)
		f.Close()
		if err != nil {
			log.Fatalf("Import of %s failed: %v", path, err)
		}
		report(path, traceID, counts)
	}
}

func report(source, traceID string, c ingest.Counts) {
	fmt.Printf("%s: trace %s (%d actions, %d console, %d network, %d errors, %d sources)\n",
		source, traceID, c.Actions, c.Console, c.Network, c.Errors, c.Sources)
}
