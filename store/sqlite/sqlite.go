/*
Package sqlite provides SQLite-backed storage for calculation history.

PURPOSE:
  The engine itself is pure and stateless; this package keeps the record
  of past settlement calculations so the surrounding application can list,
  reopen, and delete them. Input and result are stored as JSON documents;
  a few extracted columns (employee, termination type, net total) exist
  only for listing and filtering.

KEY TABLE:
  calculations:  One row per computed settlement

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/rescisao.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  // Use ":memory:" for tests.

SEE ALSO:
  - api/handlers.go: The only caller
  - statement/errors.go: ErrCalculationNotFound
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/rescisao-engine/statement"
)

// CalculationRecord is one stored settlement calculation.
type CalculationRecord struct {
	ID              string
	EmployeeName    string
	TerminationType string
	NetTotal        float64
	InputJSON       string
	ResultJSON      string
	CreatedAt       time.Time
}

// Store persists calculation history in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		employee_name TEXT NOT NULL,
		termination_type TEXT NOT NULL,
		net_total REAL NOT NULL,
		input_json TEXT NOT NULL,
		result_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calculations_employee
		ON calculations(employee_name);
	CREATE INDEX IF NOT EXISTS idx_calculations_created_at
		ON calculations(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveCalculation stores one computed settlement.
func (s *Store) SaveCalculation(ctx context.Context, rec CalculationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations (id, employee_name, termination_type, net_total, input_json, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.EmployeeName, rec.TerminationType, rec.NetTotal,
		rec.InputJSON, rec.ResultJSON, rec.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}
	return nil
}

// ListCalculations returns stored calculations, newest first. An empty
// employee filter returns everything.
func (s *Store) ListCalculations(ctx context.Context, employee string) ([]CalculationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, employee_name, termination_type, net_total, input_json, result_json, created_at
		FROM calculations`
	args := []any{}
	if employee != "" {
		query += ` WHERE employee_name = ?`
		args = append(args, employee)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	var records []CalculationRecord
	for rows.Next() {
		rec, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetCalculation returns one stored calculation by ID.
func (s *Store) GetCalculation(ctx context.Context, id string) (*CalculationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, employee_name, termination_type, net_total, input_json, result_json, created_at
		FROM calculations WHERE id = ?`, id)

	rec, err := scanCalculation(row)
	if err == sql.ErrNoRows {
		return nil, statement.ErrCalculationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get calculation: %w", err)
	}
	return &rec, nil
}

// DeleteCalculation removes a stored calculation.
func (s *Store) DeleteCalculation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM calculations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete calculation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return statement.ErrCalculationNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCalculation(r rowScanner) (CalculationRecord, error) {
	var rec CalculationRecord
	var createdAt string
	if err := r.Scan(&rec.ID, &rec.EmployeeName, &rec.TerminationType, &rec.NetTotal,
		&rec.InputJSON, &rec.ResultJSON, &createdAt); err != nil {
		return CalculationRecord{}, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return CalculationRecord{}, fmt.Errorf("corrupt created_at %q: %w", createdAt, err)
	}
	rec.CreatedAt = t
	return rec, nil
}
