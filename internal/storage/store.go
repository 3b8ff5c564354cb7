// Package storage provides the persistence layer for tracebench.
//
// It stores imported trace recordings in SQLite with WAL mode and
// time-keyed indexes, and reconstructs immutable trace.Model values
// for the workbench. The Service struct is the primary entry point
// for all database operations.
package storage

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Jitera-Product/tracebench/internal/trace"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store defines the interface for trace persistence. The abstraction
// keeps the importer and the TUI testable against the same contract.
type Store interface {
	// InsertTrace persists the trace header row (upsert on trace_id).
	InsertTrace(rec *TraceRecord) error
	// BatchInsertActions inserts actions in a single transaction.
	BatchInsertActions(traceID string, actions []*trace.Action) error
	// BatchInsertConsole inserts console entries in a single transaction.
	BatchInsertConsole(traceID string, entries []*trace.ConsoleEntry) error
	// BatchInsertNetwork inserts network resources in a single transaction.
	BatchInsertNetwork(traceID string, resources []*trace.Resource) error
	// InsertError persists one recorded error.
	InsertError(traceID string, e *trace.TraceError) error
	// InsertSource persists one source file referenced by stacks.
	InsertSource(traceID string, src *trace.Source) error

	// ListTraces returns trace headers, most recently imported first.
	ListTraces(limit int) ([]*TraceRecord, error)
	// LoadModel reconstructs the full immutable model for a trace.
	LoadModel(traceID string) (*trace.Model, error)

	// Close shuts down the database connection.
	Close() error
}

// TraceRecord is the stored header of one recording.
type TraceRecord struct {
	TraceID             string
	Title               string
	StartTime           float64
	EndTime             float64
	WallTime            float64
	SdkLanguage         string
	TestIDAttributeName string
}

// ============================================================
// Service Implementation
// ============================================================

// Service implements Store using SQLite. It owns the connection pool
// and prepared statements and serializes writers behind a mutex.
type Service struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	stmtInsertTrace   *sql.Stmt
	stmtInsertAction  *sql.Stmt
	stmtInsertAttach  *sql.Stmt
	stmtInsertConsole *sql.Stmt
	stmtInsertNetwork *sql.Stmt
	stmtInsertError   *sql.Stmt
	stmtInsertSource  *sql.Stmt
}

// Open creates a storage service at path, initializing the schema and
// preparing hot-path statements. Use ":memory:" for tests.
func Open(path string) (*Service, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON&_cache_size=-64000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	// SQLite supports one writer at a time; WAL handles the rest.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &Service{db: db, path: path}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}
	return svc, nil
}

func (s *Service) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}
	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}

func (s *Service) prepareStatements() error {
	var err error

	s.stmtInsertTrace, err = s.db.Prepare(`
		INSERT INTO traces (trace_id, title, start_time, end_time, wall_time, sdk_language, test_id_attr)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(trace_id) DO UPDATE SET
			title = excluded.title,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			wall_time = excluded.wall_time,
			sdk_language = excluded.sdk_language,
			test_id_attr = excluded.test_id_attr
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertTrace: %w", err)
	}

	s.stmtInsertAction, err = s.db.Prepare(`
		INSERT INTO actions (call_id, trace_id, api_name, start_time, end_time, params, log, stack, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(call_id) DO UPDATE SET
			end_time = excluded.end_time,
			error = excluded.error
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertAction: %w", err)
	}

	s.stmtInsertAttach, err = s.db.Prepare(`
		INSERT INTO attachments (call_id, name, content_type, path, body)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertAttachment: %w", err)
	}

	s.stmtInsertConsole, err = s.db.Prepare(`
		INSERT INTO console_events (trace_id, timestamp, type, text)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertConsole: %w", err)
	}

	s.stmtInsertNetwork, err = s.db.Prepare(`
		INSERT INTO network_events (trace_id, timestamp, method, url, status, content_type, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertNetwork: %w", err)
	}

	s.stmtInsertError, err = s.db.Prepare(`
		INSERT INTO errors (trace_id, message, stack, action_call_id)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertError: %w", err)
	}

	s.stmtInsertSource, err = s.db.Prepare(`
		INSERT INTO sources (trace_id, path, content)
		VALUES (?, ?, ?)
		ON CONFLICT(trace_id, path) DO UPDATE SET content = excluded.content
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertSource: %w", err)
	}

	return nil
}

// InsertTrace persists the trace header, updating it on re-import.
func (s *Service) InsertTrace(rec *TraceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.stmtInsertTrace.Exec(
		rec.TraceID, rec.Title, rec.StartTime, rec.EndTime, rec.WallTime,
		rec.SdkLanguage, rec.TestIDAttributeName,
	)
	if err != nil {
		return fmt.Errorf("inserting trace %s: %w", rec.TraceID, err)
	}
	return nil
}

// BatchInsertActions inserts actions and their attachments within one
// transaction for import throughput.
func (s *Service) BatchInsertActions(traceID string, actions []*trace.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning action batch: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	actionStmt := tx.Stmt(s.stmtInsertAction)
	attachStmt := tx.Stmt(s.stmtInsertAttach)
	for _, a := range actions {
		stack, err := marshalStack(a.Stack)
		if err != nil {
			return fmt.Errorf("encoding stack for %s: %w", a.CallID, err)
		}
		log, err := marshalLog(a.Log)
		if err != nil {
			return fmt.Errorf("encoding log for %s: %w", a.CallID, err)
		}
		if _, err := actionStmt.Exec(
			a.CallID, traceID, a.APIName, a.Timestamp, a.EndTime,
			a.Params, log, stack, a.Error,
		); err != nil {
			return fmt.Errorf("batch inserting action %s: %w", a.CallID, err)
		}
		for _, at := range a.Attachments {
			if _, err := attachStmt.Exec(a.CallID, at.Name, at.ContentType, at.Path, at.Body); err != nil {
				return fmt.Errorf("inserting attachment %s for %s: %w", at.Name, a.CallID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing action batch: %w", err)
	}
	return nil
}

// BatchInsertConsole inserts console entries in one transaction.
func (s *Service) BatchInsertConsole(traceID string, entries []*trace.ConsoleEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning console batch: %w", err)
	}
	defer tx.Rollback()

	stmt := tx.Stmt(s.stmtInsertConsole)
	for _, e := range entries {
		if _, err := stmt.Exec(traceID, e.Timestamp, e.MessageType, e.Text); err != nil {
			return fmt.Errorf("batch inserting console entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing console batch: %w", err)
	}
	return nil
}

// BatchInsertNetwork inserts network resources in one transaction.
func (s *Service) BatchInsertNetwork(traceID string, resources []*trace.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning network batch: %w", err)
	}
	defer tx.Rollback()

	stmt := tx.Stmt(s.stmtInsertNetwork)
	for _, r := range resources {
		if _, err := stmt.Exec(traceID, r.Timestamp, r.Method, r.URL, r.Status, r.ContentType, r.DurationMs); err != nil {
			return fmt.Errorf("batch inserting network event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing network batch: %w", err)
	}
	return nil
}

// InsertError persists one recorded error.
func (s *Service) InsertError(traceID string, e *trace.TraceError) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stack, err := marshalStack(e.Stack)
	if err != nil {
		return fmt.Errorf("encoding error stack: %w", err)
	}
	if _, err := s.stmtInsertError.Exec(traceID, e.Message, stack, e.ActionCallID); err != nil {
		return fmt.Errorf("inserting error for trace %s: %w", traceID, err)
	}
	return nil
}

// InsertSource persists one source file, replacing stale content on
// re-import.
func (s *Service) InsertSource(traceID string, src *trace.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.stmtInsertSource.Exec(traceID, src.Path, src.Content); err != nil {
		return fmt.Errorf("inserting source %s: %w", src.Path, err)
	}
	return nil
}

// ListTraces returns stored trace headers, newest import first.
func (s *Service) ListTraces(limit int) ([]*TraceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(`
		SELECT trace_id, title, start_time, end_time, wall_time, sdk_language, test_id_attr
		FROM traces
		ORDER BY imported_at DESC, trace_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing traces: %w", err)
	}
	defer rows.Close()

	var recs []*TraceRecord
	for rows.Next() {
		r := &TraceRecord{}
		if err := rows.Scan(&r.TraceID, &r.Title, &r.StartTime, &r.EndTime,
			&r.WallTime, &r.SdkLanguage, &r.TestIDAttributeName); err != nil {
			return nil, fmt.Errorf("scanning trace row: %w", err)
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// LoadModel reconstructs the immutable trace model for the workbench:
// header, time-ordered actions with attachments, console and network
// events, errors, and source files.
func (s *Service) LoadModel(traceID string) (*trace.Model, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := trace.Model{}

	err := s.db.QueryRow(`
		SELECT title, start_time, end_time, wall_time, sdk_language, test_id_attr
		FROM traces WHERE trace_id = ?
	`, traceID).Scan(&m.Title, &m.StartTime, &m.EndTime, &m.WallTime,
		&m.SdkLanguage, &m.TestIDAttributeName)
	if err != nil {
		return nil, fmt.Errorf("loading trace %s: %w", traceID, err)
	}

	if m.Actions, err = s.loadActions(traceID); err != nil {
		return nil, err
	}
	if m.Console, err = s.loadConsole(traceID); err != nil {
		return nil, err
	}
	if m.Network, err = s.loadNetwork(traceID); err != nil {
		return nil, err
	}
	if m.Errors, err = s.loadErrors(traceID); err != nil {
		return nil, err
	}
	if m.Sources, err = s.loadSources(traceID); err != nil {
		return nil, err
	}

	return trace.NewModel(m), nil
}

func (s *Service) loadActions(traceID string) ([]*trace.Action, error) {
	rows, err := s.db.Query(`
		SELECT call_id, api_name, start_time, end_time, params, log, stack, error
		FROM actions
		WHERE trace_id = ?
		ORDER BY start_time ASC
	`, traceID)
	if err != nil {
		return nil, fmt.Errorf("querying actions for %s: %w", traceID, err)
	}
	defer rows.Close()

	var actions []*trace.Action
	byID := make(map[string]*trace.Action)
	for rows.Next() {
		a := &trace.Action{}
		var params, log, stack sql.NullString
		if err := rows.Scan(&a.CallID, &a.APIName, &a.Timestamp, &a.EndTime,
			&params, &log, &stack, &a.Error); err != nil {
			return nil, fmt.Errorf("scanning action row: %w", err)
		}
		a.Params = params.String
		if a.Log, err = unmarshalLog(log.String); err != nil {
			return nil, fmt.Errorf("decoding log for %s: %w", a.CallID, err)
		}
		if a.Stack, err = unmarshalStack(stack.String); err != nil {
			return nil, fmt.Errorf("decoding stack for %s: %w", a.CallID, err)
		}
		actions = append(actions, a)
		byID[a.CallID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	attach, err := s.db.Query(`
		SELECT a.call_id, a.name, a.content_type, a.path, a.body
		FROM attachments a
		INNER JOIN actions act ON act.call_id = a.call_id
		WHERE act.trace_id = ?
		ORDER BY a.attachment_id ASC
	`, traceID)
	if err != nil {
		return nil, fmt.Errorf("querying attachments for %s: %w", traceID, err)
	}
	defer attach.Close()

	for attach.Next() {
		var callID string
		at := &trace.Attachment{}
		if err := attach.Scan(&callID, &at.Name, &at.ContentType, &at.Path, &at.Body); err != nil {
			return nil, fmt.Errorf("scanning attachment row: %w", err)
		}
		if a := byID[callID]; a != nil {
			a.Attachments = append(a.Attachments, at)
		}
	}
	return actions, attach.Err()
}

func (s *Service) loadConsole(traceID string) ([]*trace.ConsoleEntry, error) {
	rows, err := s.db.Query(`
		SELECT timestamp, type, text
		FROM console_events
		WHERE trace_id = ?
		ORDER BY timestamp ASC
	`, traceID)
	if err != nil {
		return nil, fmt.Errorf("querying console events for %s: %w", traceID, err)
	}
	defer rows.Close()

	var entries []*trace.ConsoleEntry
	for rows.Next() {
		e := &trace.ConsoleEntry{}
		if err := rows.Scan(&e.Timestamp, &e.MessageType, &e.Text); err != nil {
			return nil, fmt.Errorf("scanning console row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Service) loadNetwork(traceID string) ([]*trace.Resource, error) {
	rows, err := s.db.Query(`
		SELECT timestamp, method, url, status, content_type, duration_ms
		FROM network_events
		WHERE trace_id = ?
		ORDER BY timestamp ASC
	`, traceID)
	if err != nil {
		return nil, fmt.Errorf("querying network events for %s: %w", traceID, err)
	}
	defer rows.Close()

	var resources []*trace.Resource
	for rows.Next() {
		r := &trace.Resource{}
		if err := rows.Scan(&r.Timestamp, &r.Method, &r.URL, &r.Status,
			&r.ContentType, &r.DurationMs); err != nil {
			return nil, fmt.Errorf("scanning network row: %w", err)
		}
		resources = append(resources, r)
	}
	return resources, rows.Err()
}

func (s *Service) loadErrors(traceID string) ([]*trace.TraceError, error) {
	rows, err := s.db.Query(`
		SELECT message, stack, action_call_id
		FROM errors
		WHERE trace_id = ?
		ORDER BY error_id ASC
	`, traceID)
	if err != nil {
		return nil, fmt.Errorf("querying errors for %s: %w", traceID, err)
	}
	defer rows.Close()

	var errs []*trace.TraceError
	for rows.Next() {
		e := &trace.TraceError{}
		var stack sql.NullString
		if err := rows.Scan(&e.Message, &stack, &e.ActionCallID); err != nil {
			return nil, fmt.Errorf("scanning error row: %w", err)
		}
		if e.Stack, err = unmarshalStack(stack.String); err != nil {
			return nil, fmt.Errorf("decoding error stack: %w", err)
		}
		errs = append(errs, e)
	}
	return errs, rows.Err()
}

func (s *Service) loadSources(traceID string) (map[string]*trace.Source, error) {
	rows, err := s.db.Query(`
		SELECT path, content FROM sources WHERE trace_id = ?
	`, traceID)
	if err != nil {
		return nil, fmt.Errorf("querying sources for %s: %w", traceID, err)
	}
	defer rows.Close()

	sources := make(map[string]*trace.Source)
	for rows.Next() {
		src := &trace.Source{}
		if err := rows.Scan(&src.Path, &src.Content); err != nil {
			return nil, fmt.Errorf("scanning source row: %w", err)
		}
		sources[src.Path] = src
	}
	return sources, rows.Err()
}

// Close shuts down the prepared statements and the connection pool.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stmts := []*sql.Stmt{
		s.stmtInsertTrace, s.stmtInsertAction, s.stmtInsertAttach,
		s.stmtInsertConsole, s.stmtInsertNetwork, s.stmtInsertError,
		s.stmtInsertSource,
	}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}

// ============================================================
// Stack encoding
// ============================================================

func marshalStack(frames []trace.StackFrame) (*string, error) {
	if len(frames) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(frames)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func unmarshalStack(s string) ([]trace.StackFrame, error) {
	if s == "" {
		return nil, nil
	}
	var frames []trace.StackFrame
	if err := json.Unmarshal([]byte(s), &frames); err != nil {
		return nil, err
	}
	return frames, nil
}

func marshalLog(lines []string) (*string, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func unmarshalLog(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var lines []string
	if err := json.Unmarshal([]byte(s), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
