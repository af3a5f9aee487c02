package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockExplorerStore is a mock implementation of port.ExplorerStore.
type MockExplorerStore struct {
	mock.Mock
}

func (m *MockExplorerStore) ListCollections(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockExplorerStore) CollectionFields(ctx context.Context, collection string) ([]string, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockExplorerStore) Query(ctx context.Context, collection string, fields []string, limit int64) ([]map[string]any, error) {
	args := m.Called(ctx, collection, fields, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *MockExplorerStore) GetDocument(ctx context.Context, collection, documentID string) (map[string]any, error) {
	args := m.Called(ctx, collection, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockExplorerStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
