package port

import (
	"context"
	"time"

	"gstrex/internal/domain"
)

// ExplorerStore is the generic document-exploration capability: list
// collections, inspect a sample document, run bounded projected queries, and
// fetch single documents.
type ExplorerStore interface {
	ListCollections(ctx context.Context) ([]string, error)
	CollectionFields(ctx context.Context, collection string) ([]string, error)
	Query(ctx context.Context, collection string, fields []string, limit int64) ([]map[string]any, error)
	GetDocument(ctx context.Context, collection, documentID string) (map[string]any, error)
	Ping(ctx context.Context) error
}

// TransactionRepository reads the ledger collections consumed by the GSTR-3B
// engine. The engine needs no write access.
type TransactionRepository interface {
	FindSupplyTransactions(ctx context.Context, companyID string, period domain.Period) ([]domain.SupplyTransaction, error)
	FindItcPayments(ctx context.Context, companyID string, period domain.Period) ([]domain.ItcPayment, error)
	FindFlatTransactions(ctx context.Context, companyID string, from, to time.Time) ([]domain.FlatTransaction, error)
}

// CompanyRepository resolves company filing identities for report headers.
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Company, error)
}
