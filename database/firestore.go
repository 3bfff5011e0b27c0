package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
)

const countAlias = "count"

// FirestoreStore is a Store backed by a Cloud Firestore database
type FirestoreStore struct {
	client *firestore.Client
}

// OpenFirestore creates a Firestore client for the given project. databaseID
// selects a named database; an empty id means the project's default one.
func OpenFirestore(ctx context.Context, projectID, databaseID string) (*FirestoreStore, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID must be provided to create a firestore client")
	}
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreStore{client: client}, nil
}

// Collection returns a handle to the named top-level collection
func (s *FirestoreStore) Collection(name string) Collection {
	return &firestoreCollection{ref: s.client.Collection(name)}
}

// Ping lists at most one collection to prove the credentials and database
// are usable
func (s *FirestoreStore) Ping(ctx context.Context) error {
	_, err := s.client.Collections(ctx).Next()
	if err != nil && err != iterator.Done {
		return err
	}
	return nil
}

// Close releases the client
func (s *FirestoreStore) Close(_ context.Context) error {
	return s.client.Close()
}

type firestoreCollection struct {
	ref *firestore.CollectionRef
}

// InsertOne adds the document under an auto-generated document id, which
// stays internal to Firestore
func (c *firestoreCollection) InsertOne(ctx context.Context, doc Document) error {
	if _, _, err := c.ref.Add(ctx, map[string]interface{}(doc)); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", c.ref.ID, err)
	}
	return nil
}

func (c *firestoreCollection) Find(ctx context.Context, limit int) ([]Document, error) {
	iter := c.ref.Limit(limit).Documents(ctx)
	defer iter.Stop()

	docs := []Document{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", c.ref.ID, err)
		}
		docs = append(docs, Document(snap.Data()))
	}
	return docs, nil
}

func (c *firestoreCollection) Count(ctx context.Context, cond *Condition) (int64, error) {
	query := c.ref.Query
	if cond != nil {
		query = query.Where(cond.Field, ">=", cond.From)
	}

	result, err := query.NewAggregationQuery().WithCount(countAlias).Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", c.ref.ID, err)
	}

	return aggregateCount(result, countAlias)
}

// aggregateCount extracts an integer count from an aggregation result
func aggregateCount(result firestore.AggregationResult, alias string) (int64, error) {
	raw, ok := result[alias]
	if !ok {
		return 0, nil
	}

	switch v := raw.(type) {
	case *firestorepb.Value:
		return v.GetIntegerValue(), nil
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf("unexpected count type %T", raw)
	}
}
