package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

var collectionNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteStore keeps each collection in its own table as JSON text. It backs
// local development and the test suite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	ensured map[string]error
}

// OpenSQLite opens (or creates) the SQLite database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; funnel everything through one connection
	// instead of surfacing "database is locked" under concurrent inserts.
	db.SetMaxOpenConns(1)

	if err := createMigrationsTable(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	return &SQLiteStore{db: db, ensured: make(map[string]error)}, nil
}

// Collection returns a handle to the named collection, creating its table
// on first use
func (s *SQLiteStore) Collection(name string) Collection {
	return &sqliteCollection{store: s, name: name}
}

// Ping tests the connection
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection
func (s *SQLiteStore) Close(_ context.Context) error {
	return s.db.Close()
}

// ensureCollection runs the collection's migration once per process
func (s *SQLiteStore) ensureCollection(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, done := s.ensured[name]; done && err == nil {
		return nil
	}

	if !collectionNamePattern.MatchString(name) {
		return fmt.Errorf("invalid collection name %q", name)
	}

	err := RunMigrations(ctx, s.db, collectionMigration(name))
	s.ensured[name] = err
	return err
}

type sqliteCollection struct {
	store *SQLiteStore
	name  string
}

func (c *sqliteCollection) InsertOne(ctx context.Context, doc Document) error {
	if err := c.store.ensureCollection(ctx, c.name); err != nil {
		return err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (document) VALUES (?)`, c.name)
	if _, err := c.store.db.ExecContext(ctx, query, string(body)); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", c.name, err)
	}
	return nil
}

func (c *sqliteCollection) Find(ctx context.Context, limit int) ([]Document, error) {
	if err := c.store.ensureCollection(ctx, c.name); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT document FROM %s ORDER BY _id LIMIT ?`, c.name)
	rows, err := c.store.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.name, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan %s document: %w", c.name, err)
		}

		var doc Document
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", c.name, err)
		}
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", c.name, err)
	}

	return docs, nil
}

func (c *sqliteCollection) Count(ctx context.Context, cond *Condition) (int64, error) {
	if err := c.store.ensureCollection(ctx, c.name); err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, c.name)
	var args []interface{}
	if cond != nil {
		query += ` WHERE json_extract(document, ?) >= ?`
		args = append(args, "$."+cond.Field, cond.From)
	}

	var count int64
	if err := c.store.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", c.name, err)
	}
	return count, nil
}
