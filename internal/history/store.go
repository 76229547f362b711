// Package history provides the storage layer for previously detected leaks.
//
// The render core treats recorded leaking instances as externally supplied
// input; this package is that external collaborator, backed by SQLite.
package history

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"leakview/internal/trace"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store defines the interface for leak history persistence. The abstraction
// allows mocking in tests and future backends beyond SQLite.
type Store interface {
	// Record persists one detected leaking instance.
	Record(summary trace.InstanceSummary) error
	// ByClass returns recorded instances of the given class, most recent first.
	ByClass(classSimpleName string) ([]trace.InstanceSummary, error)
	// Classes returns the distinct leaked classes with their instance counts.
	Classes() ([]ClassCount, error)
	// Close shuts down the database connection.
	Close() error
}

// ClassCount is one leaked class and how many instances were recorded.
type ClassCount struct {
	ClassSimpleName string `json:"class_simple_name"`
	Count           int    `json:"count"`
}

// SQLStore implements Store using SQLite.
type SQLStore struct {
	db *sql.DB
	mu sync.RWMutex

	stmtRecord *sql.Stmt
}

// Open creates a store at the given path, initializing the schema.
// Use ":memory:" for in-memory databases (useful for testing).
func Open(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database at %s: %w", path, err)
	}

	// SQLite supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &SQLStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}

	s.stmtRecord, err = db.Prepare(`
		INSERT INTO leaks (class_simple_name, created_at_ms) VALUES (?, ?)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing Record: %w", err)
	}

	return s, nil
}

func (s *SQLStore) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}
	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}

// Record persists one detected leaking instance.
func (s *SQLStore) Record(summary trace.InstanceSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.stmtRecord.Exec(summary.ClassSimpleName, summary.CreatedAt); err != nil {
		return fmt.Errorf("recording leak of %s: %w", summary.ClassSimpleName, err)
	}
	return nil
}

// ByClass returns recorded instances of the given class, most recent first.
func (s *SQLStore) ByClass(classSimpleName string) ([]trace.InstanceSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT class_simple_name, created_at_ms
		FROM leaks
		WHERE class_simple_name = ?
		ORDER BY created_at_ms DESC
	`, classSimpleName)
	if err != nil {
		return nil, fmt.Errorf("querying leaks of %s: %w", classSimpleName, err)
	}
	defer rows.Close()

	var summaries []trace.InstanceSummary
	for rows.Next() {
		var sm trace.InstanceSummary
		if err := rows.Scan(&sm.ClassSimpleName, &sm.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning leak row: %w", err)
		}
		summaries = append(summaries, sm)
	}
	return summaries, rows.Err()
}

// Classes returns the distinct leaked classes with their instance counts,
// largest group first.
func (s *SQLStore) Classes() ([]ClassCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT class_simple_name, COUNT(*) AS n
		FROM leaks
		GROUP BY class_simple_name
		ORDER BY n DESC, class_simple_name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying leak classes: %w", err)
	}
	defer rows.Close()

	var counts []ClassCount
	for rows.Next() {
		var c ClassCount
		if err := rows.Scan(&c.ClassSimpleName, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning class row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// Close shuts down the prepared statements and the connection pool.
func (s *SQLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stmtRecord != nil {
		s.stmtRecord.Close()
	}
	return s.db.Close()
}
