package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/harishcmuthyala/app/config"
)

// ErrNotConnected is returned by Open when the store cannot be reached
var ErrNotConnected = errors.New("document store not connected")

// Document is a schema-flexible record as held by the store. Values written
// by this service are strings, booleans and nil; documents read back may
// also carry numbers or time.Time from other producers.
type Document map[string]interface{}

// Condition restricts a count to documents whose string Field sorts at or
// after From. Timestamps are stored in a fixed-width form, so this doubles
// as a "since" filter.
type Condition struct {
	Field string
	From  string
}

// Collection is a named group of documents
type Collection interface {
	// InsertOne stores a single document atomically
	InsertOne(ctx context.Context, doc Document) error
	// Find returns up to limit documents in store order. Identifiers the
	// store assigns itself are never included.
	Find(ctx context.Context, limit int) ([]Document, error)
	// Count returns the number of documents matching cond, or all documents
	// when cond is nil. An empty collection counts as zero.
	Count(ctx context.Context, cond *Condition) (int64, error)
}

// Store is a long-lived handle to a document database. Implementations are
// safe for concurrent use.
type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open connects to the backend selected by cfg.Driver and verifies the
// connection. Connection failures wrap ErrNotConnected.
func Open(ctx context.Context, cfg config.Database) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Driver {
	case config.DriverMongo:
		store, err = OpenMongo(ctx, cfg.MongoURL, cfg.Name)
	case config.DriverFirestore:
		store, err = OpenFirestore(ctx, cfg.FirestoreProjectID, cfg.Name)
	case config.DriverSQLite:
		store, err = OpenSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConnected, err)
	}

	if err := store.Ping(ctx); err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("%w: %v", ErrNotConnected, err)
	}

	return store, nil
}
