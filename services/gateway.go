package services

import (
	"context"

	"backend/repository"
)

// Gateway is the slice of the storage layer the services consume.
// *repository.Store satisfies it; tests substitute fakes.
type Gateway interface {
	Fetch(ctx context.Context, collection string, filter map[string]any, limit int64) repository.FetchResult
	Insert(ctx context.Context, collection string, record any) (string, error)
	ListCollections(ctx context.Context, max int) ([]string, error)
}
