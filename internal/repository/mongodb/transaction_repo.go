package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gstrex/internal/domain"
	"gstrex/internal/port"
)

// Ledger collection names.
const (
	collSupplyTransactions = "supply_transactions"
	collItcPayments        = "itc_payments"
	collTransactions       = "transactions"
)

type transactionRepo struct {
	db *mongo.Database
}

// NewTransactionRepo creates a MongoDB-backed TransactionRepository.
func NewTransactionRepo(db *mongo.Database) port.TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) FindSupplyTransactions(ctx context.Context, companyID string, period domain.Period) ([]domain.SupplyTransaction, error) {
	filter := bson.M{
		"companyId":    companyID,
		"period.year":  period.Year,
		"period.month": period.Month,
	}

	cursor, err := r.db.Collection(collSupplyTransactions).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("transactionRepo.FindSupplyTransactions: %w", err)
	}

	var txs []domain.SupplyTransaction
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, fmt.Errorf("transactionRepo.FindSupplyTransactions decode: %w", err)
	}
	return txs, nil
}

func (r *transactionRepo) FindItcPayments(ctx context.Context, companyID string, period domain.Period) ([]domain.ItcPayment, error) {
	filter := bson.M{
		"companyId":    companyID,
		"period.year":  period.Year,
		"period.month": period.Month,
	}

	cursor, err := r.db.Collection(collItcPayments).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("transactionRepo.FindItcPayments: %w", err)
	}

	var payments []domain.ItcPayment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("transactionRepo.FindItcPayments decode: %w", err)
	}
	return payments, nil
}

func (r *transactionRepo) FindFlatTransactions(ctx context.Context, companyID string, from, to time.Time) ([]domain.FlatTransaction, error) {
	filter := bson.M{
		"companyId": companyID,
		"date": bson.M{
			"$gte": from.Format("2006-01-02"),
			"$lte": to.Format("2006-01-02"),
		},
	}

	cursor, err := r.db.Collection(collTransactions).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("transactionRepo.FindFlatTransactions: %w", err)
	}

	var fts []domain.FlatTransaction
	if err := cursor.All(ctx, &fts); err != nil {
		return nil, fmt.Errorf("transactionRepo.FindFlatTransactions decode: %w", err)
	}
	return fts, nil
}
