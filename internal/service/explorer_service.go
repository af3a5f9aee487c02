package service

import (
	"context"
	"fmt"

	"gstrex/internal/domain"
	"gstrex/internal/export"
	"gstrex/internal/gst"
	"gstrex/internal/port"
)

// ExplorerService exposes generic collection exploration: listing, field
// inspection, bounded queries with an optional GST surcharge, exports, and
// per-document receipts.
type ExplorerService interface {
	Collections(ctx context.Context) ([]string, error)
	Fields(ctx context.Context, collection string) ([]string, error)
	Query(ctx context.Context, collection string, fields []string, limit int64, cfg *domain.GSTConfig) ([]map[string]any, error)
	Export(records []map[string]any, format domain.ExportFormat, baseName string) ([]byte, string, string, error)
	Receipt(ctx context.Context, collection, documentID string, cfg *domain.GSTConfig) ([]byte, string, error)
}

type explorerService struct {
	store port.ExplorerStore
}

// NewExplorerService creates a new ExplorerService.
func NewExplorerService(store port.ExplorerStore) ExplorerService {
	return &explorerService{store: store}
}

func (s *explorerService) Collections(ctx context.Context) ([]string, error) {
	return s.store.ListCollections(ctx)
}

func (s *explorerService) Fields(ctx context.Context, collection string) ([]string, error) {
	return s.store.CollectionFields(ctx, collection)
}

// Query runs a bounded projected find and, when a surcharge configuration is
// active, appends the computed GST columns to every record.
func (s *explorerService) Query(ctx context.Context, collection string, fields []string, limit int64, cfg *domain.GSTConfig) ([]map[string]any, error) {
	records, err := s.store.Query(ctx, collection, fields, limit)
	if err != nil {
		return nil, err
	}
	if cfg.Active() {
		records = gst.Apply(records, cfg.Field, cfg.Percentage)
	}
	return records, nil
}

// Export serializes already-fetched records; the caller owns what is in them.
func (s *explorerService) Export(records []map[string]any, format domain.ExportFormat, baseName string) ([]byte, string, string, error) {
	return export.Encode(records, format, baseName)
}

// Receipt fetches one document, applies the optional surcharge, and renders
// the PDF receipt. Returns the payload and its filename.
func (s *explorerService) Receipt(ctx context.Context, collection, documentID string, cfg *domain.GSTConfig) ([]byte, string, error) {
	doc, err := s.store.GetDocument(ctx, collection, documentID)
	if err != nil {
		return nil, "", err
	}

	if cfg.Active() {
		doc = gst.Apply([]map[string]any{doc}, cfg.Field, cfg.Percentage)[0]
		doc["GST Percentage"] = cfg.Percentage
	}

	payload, err := export.Receipt(doc, documentID)
	if err != nil {
		return nil, "", err
	}
	return payload, fmt.Sprintf("receipt-%s.pdf", documentID), nil
}
