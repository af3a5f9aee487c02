package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstrex/internal/domain"
	"gstrex/mocks"
)

func TestCollections(t *testing.T) {
	store := new(mocks.MockExplorerStore)
	svc := NewExplorerService(store)

	store.On("ListCollections", mock.Anything).Return([]string{"products", "orders"}, nil)

	got, err := svc.Collections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"products", "orders"}, got)
}

func TestFields(t *testing.T) {
	store := new(mocks.MockExplorerStore)
	svc := NewExplorerService(store)

	store.On("CollectionFields", mock.Anything, "empty").Return(nil, domain.ErrCollectionEmpty)

	_, err := svc.Fields(context.Background(), "empty")
	assert.ErrorIs(t, err, domain.ErrCollectionEmpty)
}

func TestQuery_WithoutSurcharge(t *testing.T) {
	store := new(mocks.MockExplorerStore)
	svc := NewExplorerService(store)

	records := []map[string]any{{"price": 100.0}}
	store.On("Query", mock.Anything, "products", []string{"price"}, int64(10)).Return(records, nil)

	got, err := svc.Query(context.Background(), "products", []string{"price"}, 10, &domain.GSTConfig{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	_, ok := got[0]["GST Amount"]
	assert.False(t, ok)
}

func TestQuery_WithSurcharge(t *testing.T) {
	store := new(mocks.MockExplorerStore)
	svc := NewExplorerService(store)

	records := []map[string]any{{"price": 100.0}}
	store.On("Query", mock.Anything, "products", []string(nil), int64(5)).Return(records, nil)

	cfg := &domain.GSTConfig{Enabled: true, Field: "price", Percentage: 18}
	got, err := svc.Query(context.Background(), "products", nil, 5, cfg)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 18.0, got[0]["GST Amount"])
	assert.Equal(t, 118.0, got[0]["Total Amount"])
}

func TestExport(t *testing.T) {
	svc := NewExplorerService(new(mocks.MockExplorerStore))

	records := []map[string]any{{"name": "Widget"}}
	payload, mime, filename, err := svc.Export(records, domain.FormatJSON, "widgets")
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
	assert.Equal(t, "application/json", mime)
	assert.Equal(t, "widgets.json", filename)
}

func TestReceipt(t *testing.T) {
	store := new(mocks.MockExplorerStore)
	svc := NewExplorerService(store)

	doc := map[string]any{"_id": "66f1a2b3c4d5e6f7a8b9c0d1", "name": "Widget", "price": 100.0}
	store.On("GetDocument", mock.Anything, "products", "66f1a2b3c4d5e6f7a8b9c0d1").Return(doc, nil)

	cfg := &domain.GSTConfig{Enabled: true, Field: "price", Percentage: 18}
	payload, filename, err := svc.Receipt(context.Background(), "products", "66f1a2b3c4d5e6f7a8b9c0d1", cfg)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(payload[:4]))
	assert.Equal(t, "receipt-66f1a2b3c4d5e6f7a8b9c0d1.pdf", filename)
}

func TestReceipt_DocumentNotFound(t *testing.T) {
	store := new(mocks.MockExplorerStore)
	svc := NewExplorerService(store)

	store.On("GetDocument", mock.Anything, "products", "missing").Return(nil, domain.ErrDocumentNotFound)

	_, _, err := svc.Receipt(context.Background(), "products", "missing", &domain.GSTConfig{})
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}
