package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore is a Store backed by a MongoDB database
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo creates a client for uri and selects the named database
func OpenMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri must be provided")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

// Collection returns a handle to the named collection
func (s *MongoStore) Collection(name string) Collection {
	return &mongoCollection{coll: s.db.Collection(name)}
}

// Ping checks that the primary is reachable
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc Document) error {
	if _, err := c.coll.InsertOne(ctx, bson.M(doc)); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", c.coll.Name(), err)
	}
	return nil
}

func (c *mongoCollection) Find(ctx context.Context, limit int) ([]Document, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetProjection(bson.M{"_id": 0})

	cursor, err := c.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", c.coll.Name(), err)
	}

	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, fromBSON(m))
	}
	return docs, nil
}

func (c *mongoCollection) Count(ctx context.Context, cond *Condition) (int64, error) {
	count, err := c.coll.CountDocuments(ctx, mongoFilter(cond))
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", c.coll.Name(), err)
	}
	return count, nil
}

// mongoFilter translates a Condition into a query document
func mongoFilter(cond *Condition) bson.M {
	if cond == nil {
		return bson.M{}
	}
	return bson.M{cond.Field: bson.M{"$gte": cond.From}}
}

// fromBSON drops the store-internal _id in case a projection was bypassed
// and converts native datetimes so callers see the same value kinds as with
// other backends
func fromBSON(m bson.M) Document {
	doc := make(Document, len(m))
	for key, value := range m {
		if key == "_id" {
			continue
		}
		if dt, ok := value.(primitive.DateTime); ok {
			doc[key] = dt.Time().UTC()
			continue
		}
		doc[key] = value
	}
	return doc
}
