package controllers

import (
	"context"

	"backend/repository"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGateway scripts store behavior for handler tests.
type fakeGateway struct {
	fetch  func(collection string) repository.FetchResult
	insert func(collection string, record any) (string, error)
	list   func(max int) ([]string, error)
}

func (f *fakeGateway) Fetch(_ context.Context, collection string, _ map[string]any, _ int64) repository.FetchResult {
	if f.fetch == nil {
		return repository.FetchResult{Status: repository.FetchFailed, Err: repository.ErrStoreUnavailable}
	}
	return f.fetch(collection)
}

func (f *fakeGateway) Insert(_ context.Context, collection string, record any) (string, error) {
	if f.insert == nil {
		return "", repository.ErrStoreUnavailable
	}
	return f.insert(collection, record)
}

func (f *fakeGateway) ListCollections(_ context.Context, max int) ([]string, error) {
	if f.list == nil {
		return nil, repository.ErrStoreUnavailable
	}
	return f.list(max)
}
