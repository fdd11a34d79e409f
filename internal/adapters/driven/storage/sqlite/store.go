package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nyayvidhi/nyaya/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
)

// timeLayout sorts lexically in UTC.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store is a SQLite database exposing the FIR and outbox stores
// through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.nyaya/data/nyaya.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".nyaya", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "nyaya.db")

	// WAL lets the TUI read while a submission is being written.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// FIRStore returns a FIRStore backed by this store.
func (s *Store) FIRStore() driven.FIRStore {
	return &firStore{store: s}
}

// SubmissionStore returns a SubmissionStore backed by this store.
func (s *Store) SubmissionStore() driven.SubmissionStore {
	return &submissionStore{store: s}
}

// Seed inserts the given records when the FIR table is empty.
// It reports how many records were inserted.
func (s *Store) Seed(ctx context.Context, firs []domain.FIR) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM firs").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting firs: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning seed: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, fir := range firs {
		if err := saveFIR(ctx, tx, fir); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing seed: %w", err)
	}
	return len(firs), nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// apply runs one migration and records its version atomically.
func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(script); err != nil {
		tx.Rollback() //nolint:errcheck // original error is more useful
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		tx.Rollback() //nolint:errcheck // original error is more useful
		return err
	}
	return tx.Commit()
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ==================== FIR Store ====================

// firStore implements driven.FIRStore.
type firStore struct {
	store *Store
}

var _ driven.FIRStore = (*firStore)(nil)

// Save stores or updates a record.
func (s *firStore) Save(ctx context.Context, fir domain.FIR) error {
	return saveFIR(ctx, s.store.db, fir)
}

func saveFIR(ctx context.Context, db execer, fir domain.FIR) error {
	if strings.TrimSpace(fir.ID) == "" {
		return fmt.Errorf("%w: fir id is required", domain.ErrInvalidInput)
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO firs (id, url, status, language, station, filed_on, type, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			url = excluded.url,
			status = excluded.status,
			language = excluded.language,
			station = excluded.station,
			filed_on = excluded.filed_on,
			type = excluded.type,
			description = excluded.description
	`, fir.ID, fir.URL, string(fir.Status), string(fir.Language),
		fir.Station, fir.Date, fir.Type, fir.Description)
	if err != nil {
		return fmt.Errorf("saving fir: %w", err)
	}
	return nil
}

const firColumns = "id, url, status, language, station, filed_on, type, description"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFIR(row rowScanner) (domain.FIR, error) {
	var fir domain.FIR
	var status, language string
	err := row.Scan(&fir.ID, &fir.URL, &status, &language,
		&fir.Station, &fir.Date, &fir.Type, &fir.Description)
	fir.Status = domain.FIRStatus(status)
	fir.Language = domain.Language(language)
	return fir, err
}

// Get retrieves a record by ID.
func (s *firStore) Get(ctx context.Context, id string) (*domain.FIR, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+firColumns+" FROM firs WHERE id = ?", id)
	fir, err := scanFIR(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning fir: %w", err)
	}
	return &fir, nil
}

// List returns all records ordered by ID.
func (s *firStore) List(ctx context.Context) ([]domain.FIR, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT "+firColumns+" FROM firs ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying firs: %w", err)
	}
	defer rows.Close()

	firs := make([]domain.FIR, 0)
	for rows.Next() {
		fir, err := scanFIR(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fir: %w", err)
		}
		firs = append(firs, fir)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating firs: %w", err)
	}
	return firs, nil
}

// ==================== Submission Store ====================

// submissionStore implements driven.SubmissionStore.
type submissionStore struct {
	store *Store
}

var _ driven.SubmissionStore = (*submissionStore)(nil)

// Save stores or updates a submission.
func (s *submissionStore) Save(ctx context.Context, sub domain.Submission) error {
	regJSON, err := json.Marshal(sub.Registration)
	if err != nil {
		return fmt.Errorf("marshalling registration: %w", err)
	}

	now := time.Now().UTC()
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = now
	}
	if sub.UpdatedAt.IsZero() {
		sub.UpdatedAt = now
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO submissions (id, registration, status, last_error, attempts, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			registration = excluded.registration,
			status = excluded.status,
			last_error = excluded.last_error,
			attempts = excluded.attempts,
			updated_at = excluded.updated_at
	`, sub.ID, string(regJSON), string(sub.Status), nullString(sub.LastError), sub.Attempts,
		formatTime(sub.CreatedAt), formatTime(sub.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving submission: %w", err)
	}
	return nil
}

const submissionColumns = "id, registration, status, last_error, attempts, created_at, updated_at"

func scanSubmission(row rowScanner) (domain.Submission, error) {
	var sub domain.Submission
	var regJSON, status, createdAt, updatedAt string
	var lastError sql.NullString
	if err := row.Scan(&sub.ID, &regJSON, &status, &lastError, &sub.Attempts, &createdAt, &updatedAt); err != nil {
		return sub, err
	}
	if err := json.Unmarshal([]byte(regJSON), &sub.Registration); err != nil {
		return sub, fmt.Errorf("unmarshalling registration: %w", err)
	}
	sub.Status = domain.SubmissionStatus(status)
	sub.LastError = lastError.String
	sub.CreatedAt = parseTime(createdAt)
	sub.UpdatedAt = parseTime(updatedAt)
	return sub, nil
}

// Get retrieves a submission by ID.
func (s *submissionStore) Get(ctx context.Context, id string) (*domain.Submission, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+submissionColumns+" FROM submissions WHERE id = ?", id)
	sub, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning submission: %w", err)
	}
	return &sub, nil
}

// ListPending returns undelivered submissions, oldest first.
func (s *submissionStore) ListPending(ctx context.Context) ([]domain.Submission, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+submissionColumns+" FROM submissions WHERE status != ? ORDER BY created_at, id",
		string(domain.SubmissionSubmitted))
	if err != nil {
		return nil, fmt.Errorf("querying submissions: %w", err)
	}
	defer rows.Close()

	subs := make([]domain.Submission, 0)
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return subs, nil
}

// formatTime formats t in UTC with fixed-width nanoseconds.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp, returning zero time if invalid.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
