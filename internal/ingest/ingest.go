// Package ingest reads recorded trace-event files and loads them into
// storage. A recording is newline-delimited JSON: one context event
// describing the run, followed by action, console, network, error and
// source events in any order. The workbench itself never parses
// anything; it consumes the model reconstructed from storage.
package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Jitera-Product/tracebench/internal/storage"
	"github.com/Jitera-Product/tracebench/internal/trace"

	"github.com/google/uuid"
)

// Lines beyond this size indicate a corrupt recording, not a large one.
const maxLineBytes = 16 * 1024 * 1024

// event is one NDJSON line. Type discriminates which of the payload
// groups is populated.
type event struct {
	Type string `json:"type"`

	// context
	TraceID             string  `json:"traceId,omitempty"`
	Title               string  `json:"title,omitempty"`
	StartTime           float64 `json:"startTime,omitempty"`
	EndTime             float64 `json:"endTime,omitempty"`
	WallTime            float64 `json:"wallTime,omitempty"`
	SdkLanguage         string  `json:"sdkLanguage,omitempty"`
	TestIDAttributeName string  `json:"testIdAttributeName,omitempty"`

	// action
	Action *trace.Action `json:"action,omitempty"`

	// console / network / error / source
	Console *trace.ConsoleEntry `json:"console,omitempty"`
	Network *trace.Resource     `json:"network,omitempty"`
	Error   *trace.TraceError   `json:"error,omitempty"`
	Source  *trace.Source       `json:"source,omitempty"`
}

// Counts reports what one import wrote.
type Counts struct {
	Actions int
	Console int
	Network int
	Errors  int
	Sources int
}

// Import reads a recording from r and persists it. Returns the trace
// id (minted when the recording does not carry one) and write counts.
//
// Events with an unknown type are skipped rather than failing the
// import; a malformed JSON line aborts it with the line number.
func Import(r io.Reader, store storage.Store) (string, Counts, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	rec := &storage.TraceRecord{}
	var (
		counts  Counts
		actions []*trace.Action
		console []*trace.ConsoleEntry
		network []*trace.Resource
		errs    []*trace.TraceError
		sources []*trace.Source
	)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}

		var ev event
		if err := json.Unmarshal(line, &ev); err != nil {
			return "", Counts{}, fmt.Errorf("line %d: decoding event: %w", lineNo, err)
		}

		switch ev.Type {
		case "context":
			rec.TraceID = ev.TraceID
			rec.Title = ev.Title
			rec.StartTime = ev.StartTime
			rec.EndTime = ev.EndTime
			rec.WallTime = ev.WallTime
			rec.SdkLanguage = ev.SdkLanguage
			rec.TestIDAttributeName = ev.TestIDAttributeName

		case "action":
			if ev.Action == nil {
				return "", Counts{}, fmt.Errorf("line %d: action event without payload", lineNo)
			}
			if ev.Action.CallID == "" {
				ev.Action.CallID = uuid.NewString()
			}
			actions = append(actions, ev.Action)

		case "console":
			if ev.Console != nil {
				console = append(console, ev.Console)
			}

		case "network":
			if ev.Network != nil {
				network = append(network, ev.Network)
			}

		case "error":
			if ev.Error != nil {
				errs = append(errs, ev.Error)
			}

		case "source":
			if ev.Source != nil {
				sources = append(sources, ev.Source)
			}

		default:
			// Forward compatibility: unknown event kinds are ignored.
		}
	}
	if err := sc.Err(); err != nil {
		return "", Counts{}, fmt.Errorf("reading recording: %w", err)
	}

	if rec.TraceID == "" {
		rec.TraceID = uuid.NewString()
	}

	if err := store.InsertTrace(rec); err != nil {
		return "", Counts{}, err
	}
	if err := store.BatchInsertActions(rec.TraceID, actions); err != nil {
		return "", Counts{}, err
	}
	if err := store.BatchInsertConsole(rec.TraceID, console); err != nil {
		return "", Counts{}, err
	}
	if err := store.BatchInsertNetwork(rec.TraceID, network); err != nil {
		return "", Counts{}, err
	}
	for _, e := range errs {
		if err := store.InsertError(rec.TraceID, e); err != nil {
			return "", Counts{}, err
		}
	}
	for _, src := range sources {
		if err := store.InsertSource(rec.TraceID, src); err != nil {
			return "", Counts{}, err
		}
	}

	counts = Counts{
		Actions: len(actions),
		Console: len(console),
		Network: len(network),
		Errors:  len(errs),
		Sources: len(sources),
	}
	return rec.TraceID, counts, nil
}
