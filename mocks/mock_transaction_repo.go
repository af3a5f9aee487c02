package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gstrex/internal/domain"
)

// MockTransactionRepo is a mock implementation of port.TransactionRepository.
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) FindSupplyTransactions(ctx context.Context, companyID string, period domain.Period) ([]domain.SupplyTransaction, error) {
	args := m.Called(ctx, companyID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyTransaction), args.Error(1)
}

func (m *MockTransactionRepo) FindItcPayments(ctx context.Context, companyID string, period domain.Period) ([]domain.ItcPayment, error) {
	args := m.Called(ctx, companyID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItcPayment), args.Error(1)
}

func (m *MockTransactionRepo) FindFlatTransactions(ctx context.Context, companyID string, from, to time.Time) ([]domain.FlatTransaction, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlatTransaction), args.Error(1)
}
