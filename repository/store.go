// repository/store.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrStoreUnavailable marks operations attempted without an established
// store connection.
var ErrStoreUnavailable = errors.New("document store connection not established")

type FetchStatus int

const (
	FetchFound FetchStatus = iota
	FetchEmpty
	FetchFailed
)

// FetchResult makes the three read outcomes explicit. Read callers map both
// FetchEmpty and FetchFailed to fallback content; only FetchFound carries
// documents.
type FetchResult struct {
	Status FetchStatus
	Docs   []map[string]any
	Err    error
}

// Store is the gateway to the document store. DB may be nil when no
// connection was established at startup; every method treats that as an
// unavailable store rather than panicking.
type Store struct {
	DB *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{DB: db}
}

// Fetch returns up to limit documents from a collection (limit <= 0 means
// no limit). Driver failures never escape as panics or raw errors; they are
// folded into a FetchFailed result.
func (s *Store) Fetch(ctx context.Context, collection string, filter map[string]any, limit int64) FetchResult {
	if s.DB == nil {
		return FetchResult{Status: FetchFailed, Err: ErrStoreUnavailable}
	}

	if filter == nil {
		filter = map[string]any{}
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.DB.Collection(collection).Find(ctx, bson.M(filter), opts)
	if err != nil {
		return FetchResult{Status: FetchFailed, Err: fmt.Errorf("query %s: %w", collection, err)}
	}
	defer cur.Close(ctx)

	var docs []map[string]any
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return FetchResult{Status: FetchFailed, Err: fmt.Errorf("decode %s: %w", collection, err)}
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return FetchResult{Status: FetchFailed, Err: fmt.Errorf("cursor %s: %w", collection, err)}
	}

	if len(docs) == 0 {
		return FetchResult{Status: FetchEmpty}
	}
	return FetchResult{Status: FetchFound, Docs: docs}
}

// Insert persists one record and returns the generated identifier. Unlike
// Fetch, failures are hard errors: a write is a user-intended action and
// must never be silently dropped.
func (s *Store) Insert(ctx context.Context, collection string, record any) (string, error) {
	if s.DB == nil {
		return "", ErrStoreUnavailable
	}

	res, err := s.DB.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// ListCollections names up to max collections present in the store. Used
// only by diagnostics.
func (s *Store) ListCollections(ctx context.Context, max int) ([]string, error) {
	if s.DB == nil {
		return nil, ErrStoreUnavailable
	}

	names, err := s.DB.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if len(names) > max {
		names = names[:max]
	}
	return names, nil
}
