package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/leak-finder/pkg/models/domain"
	"github.com/de-tools/leak-finder/pkg/models/store"
	"github.com/de-tools/leak-finder/pkg/store/document/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore keeps the document as a single row in a documents table.
// The row carries a revision counter bumped on every save so a reader can
// detect lost updates; the store itself never rejects a write.
type SQLiteStore struct {
	db   *sql.DB
	name string
}

// Open opens (or creates) the SQLite database at path and applies any
// pending migrations. path can be ":memory:" for tests.
func Open(path string) (*SQLiteStore, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, err
	}

	return NewSQLiteStore(db), nil
}

// OpenConnection opens and configures a SQLite connection with the
// pragmas this store relies on.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return db, nil
}

// NewSQLiteStore wraps an existing connection. The caller owns the
// connection and is responsible for schema setup and closing.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, name: DefaultName}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context) (*store.Document, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE name = ?`, s.name,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Err: err}
	}

	var doc store.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, &domain.StorageError{Op: "decode", Err: err}
	}
	if doc.Version != store.SchemaVersion {
		return nil, &domain.StorageError{
			Op:  "decode",
			Err: fmt.Errorf("unsupported document version %d (want %d)", doc.Version, store.SchemaVersion),
		}
	}
	return &doc, nil
}

func (s *SQLiteStore) Save(ctx context.Context, doc *store.Document) error {
	doc.Version = store.SchemaVersion

	data, err := json.Marshal(doc)
	if err != nil {
		return &domain.StorageError{Op: "encode", Err: err}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (name, revision, data, updated_at)
		VALUES (?, 1, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			revision = documents.revision + 1,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		s.name, string(data), time.Now().UTC(),
	)
	if err != nil {
		return &domain.StorageError{Op: "save", Err: err}
	}
	return nil
}

// Revision reports the current write counter for the document, 0 when the
// document does not exist yet.
func (s *SQLiteStore) Revision(ctx context.Context) (int64, error) {
	var revision int64
	err := s.db.QueryRowContext(ctx,
		`SELECT revision FROM documents WHERE name = ?`, s.name,
	).Scan(&revision)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, &domain.StorageError{Op: "load", Err: err}
	}
	return revision, nil
}
