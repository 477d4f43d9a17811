package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/docsift/docsift/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// report history and the persistent vector cache through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.docsift/data/docsift.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docsift", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "docsift.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
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

// ReportStore returns a ReportStore interface backed by this store.
func (s *Store) ReportStore() driven.ReportStore {
	return &reportStore{store: s}
}

// VectorCache returns a VectorCache interface backed by this store.
func (s *Store) VectorCache() driven.VectorCache {
	return &vectorCache{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Report Store ====================

// reportStore implements driven.ReportStore.
type reportStore struct {
	store *Store
}

var _ driven.ReportStore = (*reportStore)(nil)

// Save stores a completed analysis run.
func (s *reportStore) Save(ctx context.Context, record domain.ReportRecord) error {
	reportJSON, err := json.Marshal(record.Report)
	if err != nil {
		return fmt.Errorf("marshalling report: %w", err)
	}

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO reports (id, created_at, persona, task, document_count, report)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_at = excluded.created_at,
			persona = excluded.persona,
			task = excluded.task,
			document_count = excluded.document_count,
			report = excluded.report
	`, record.ID, record.CreatedAt.UTC(), record.Persona, record.Task,
		record.DocumentCount, string(reportJSON))

	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *reportStore) Get(ctx context.Context, id string) (*domain.ReportRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, created_at, persona, task, document_count, report
		FROM reports WHERE id = ?
	`, id)

	record, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

// List returns the most recent runs, newest first.
func (s *reportStore) List(ctx context.Context, limit int) ([]domain.ReportRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, created_at, persona, task, document_count, report
		FROM reports
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var records []domain.ReportRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var record domain.ReportRecord
		var createdAt sql.NullTime
		var reportJSON string
		if err := rows.Scan(&record.ID, &createdAt, &record.Persona, &record.Task,
			&record.DocumentCount, &reportJSON); err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		if createdAt.Valid {
			record.CreatedAt = createdAt.Time
		}
		if err := json.Unmarshal([]byte(reportJSON), &record.Report); err != nil {
			return nil, fmt.Errorf("unmarshaling report: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}

	return records, nil
}

// Delete removes a run by ID.
func (s *reportStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanReport scans a single report row.
func scanReport(row *sql.Row) (*domain.ReportRecord, error) {
	var record domain.ReportRecord
	var createdAt sql.NullTime
	var reportJSON string

	if err := row.Scan(&record.ID, &createdAt, &record.Persona, &record.Task,
		&record.DocumentCount, &reportJSON); err != nil {
		return nil, err
	}
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time
	}
	if err := json.Unmarshal([]byte(reportJSON), &record.Report); err != nil {
		return nil, fmt.Errorf("unmarshaling report: %w", err)
	}
	return &record, nil
}

// ==================== Vector Cache ====================

// vectorCache implements driven.VectorCache.
type vectorCache struct {
	store *Store
}

var _ driven.VectorCache = (*vectorCache)(nil)

// Get retrieves a cached vector by key. Returns domain.ErrNotFound on
// a cache miss.
func (c *vectorCache) Get(ctx context.Context, key string) ([]float32, error) {
	row := c.store.db.QueryRowContext(ctx, "SELECT embedding FROM vectors WHERE key = ?", key)

	var blob []byte
	if err := row.Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning vector: %w", err)
	}
	return bytesToFloat32Slice(blob), nil
}

// Put stores a vector under the given key.
func (c *vectorCache) Put(ctx context.Context, key, model string, vector []float32) error {
	_, err := c.store.db.ExecContext(ctx, `
		INSERT INTO vectors (key, model, embedding)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			model = excluded.model,
			embedding = excluded.embedding
	`, key, model, float32SliceToBytes(vector))

	if err != nil {
		return fmt.Errorf("saving vector: %w", err)
	}
	return nil
}

// ==================== Helper Functions ====================

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
