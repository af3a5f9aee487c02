package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstrex/internal/domain"
	"gstrex/mocks"
)

func testCompany() *domain.Company {
	return &domain.Company{
		ID:        "co-1",
		GSTIN:     "29ABCDE1234F1Z5",
		LegalName: "Acme Traders",
	}
}

func TestGenerateGSTR3B(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	txRepo := new(mocks.MockTransactionRepo)
	svc := NewReportService(companyRepo, txRepo)

	period := domain.Period{Year: 2025, Month: 4}
	txs := []domain.SupplyTransaction{
		{
			Type:         domain.TxOutward,
			SubType:      domain.SubTypeTaxable,
			TaxableValue: 1000,
			Tax:          domain.TaxHeads{Integrated: 180},
		},
	}

	companyRepo.On("GetByID", mock.Anything, "co-1").Return(testCompany(), nil)
	txRepo.On("FindSupplyTransactions", mock.Anything, "co-1", period).Return(txs, nil)
	txRepo.On("FindItcPayments", mock.Anything, "co-1", period).Return([]domain.ItcPayment{}, nil)

	report, err := svc.GenerateGSTR3B(context.Background(), "co-1", 2025, 4)
	require.NoError(t, err)

	assert.Equal(t, "29ABCDE1234F1Z5", report.Header.GSTIN)
	assert.Equal(t, float64(1000), report.Section31.OutwardTaxable.TaxableValue)
	companyRepo.AssertExpectations(t)
	txRepo.AssertExpectations(t)
}

func TestGenerateGSTR3B_InvalidPeriod(t *testing.T) {
	svc := NewReportService(new(mocks.MockCompanyRepo), new(mocks.MockTransactionRepo))

	cases := []struct {
		name        string
		year, month int
	}{
		{"month zero", 2025, 0},
		{"month thirteen", 2025, 13},
		{"year too small", 1999, 4},
		{"year too large", 2101, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GenerateGSTR3B(context.Background(), "co-1", tc.year, tc.month)
			assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
		})
	}
}

func TestGenerateGSTR3B_CompanyNotFound(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	txRepo := new(mocks.MockTransactionRepo)
	svc := NewReportService(companyRepo, txRepo)

	companyRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrCompanyNotFound)

	_, err := svc.GenerateGSTR3B(context.Background(), "missing", 2025, 4)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	txRepo.AssertNotCalled(t, "FindSupplyTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateGSTR3B_LedgerReadFailure(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	txRepo := new(mocks.MockTransactionRepo)
	svc := NewReportService(companyRepo, txRepo)

	period := domain.Period{Year: 2025, Month: 4}
	readErr := errors.New("connection reset")

	companyRepo.On("GetByID", mock.Anything, "co-1").Return(testCompany(), nil)
	txRepo.On("FindSupplyTransactions", mock.Anything, "co-1", period).Return(nil, readErr)
	txRepo.On("FindItcPayments", mock.Anything, "co-1", period).Return([]domain.ItcPayment{}, nil)

	_, err := svc.GenerateGSTR3B(context.Background(), "co-1", 2025, 4)
	assert.ErrorIs(t, err, readErr)
}

func TestLiability(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	txRepo := new(mocks.MockTransactionRepo)
	svc := NewReportService(companyRepo, txRepo)

	period := domain.Period{Year: 2025, Month: 4}
	txs := []domain.SupplyTransaction{
		{
			Type:         domain.TxOutward,
			SubType:      domain.SubTypeTaxable,
			TaxableValue: 1000,
			Tax:          domain.TaxHeads{Integrated: 100},
		},
		{
			Type: domain.TxInward,
			ITC: &domain.ITCDetail{
				Eligible: true,
				Category: domain.ITCOthers,
				Amount:   domain.TaxHeads{Integrated: 140},
			},
		},
	}

	companyRepo.On("GetByID", mock.Anything, "co-1").Return(testCompany(), nil)
	txRepo.On("FindSupplyTransactions", mock.Anything, "co-1", period).Return(txs, nil)
	txRepo.On("FindItcPayments", mock.Anything, "co-1", period).Return([]domain.ItcPayment{}, nil)

	liability, err := svc.Liability(context.Background(), "co-1", 2025, 4)
	require.NoError(t, err)

	assert.Equal(t, 140.0, liability.NetITC.Integrated)
	assert.Zero(t, liability.NetLiability.Integrated)
	assert.Zero(t, liability.TotalLiability)
}

func TestRenderGSTR3B(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	txRepo := new(mocks.MockTransactionRepo)
	svc := NewReportService(companyRepo, txRepo)

	period := domain.Period{Year: 2025, Month: 4}
	companyRepo.On("GetByID", mock.Anything, "co-1").Return(testCompany(), nil)
	txRepo.On("FindSupplyTransactions", mock.Anything, "co-1", period).Return([]domain.SupplyTransaction{}, nil)
	txRepo.On("FindItcPayments", mock.Anything, "co-1", period).Return([]domain.ItcPayment{}, nil)

	report, err := svc.GenerateGSTR3B(context.Background(), "co-1", 2025, 4)
	require.NoError(t, err)

	payload, err := svc.RenderGSTR3B(report)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(payload[:4]))
}

func TestTransactionSummary(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	txRepo := new(mocks.MockTransactionRepo)
	svc := NewReportService(companyRepo, txRepo)

	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)

	fts := []domain.FlatTransaction{
		{Date: "2025-04-05", Type: "outward", GSTType: "taxable", TaxableValue: 100, IGST: 18},
		{Date: "2025-04-10", Type: "outward", GSTType: "taxable", TaxableValue: 200, IGST: 36},
		{Date: "2025-04-12", Type: "outward", GSTType: "exempt", TaxableValue: 50},
		{Date: "2025-04-15", Type: "inward", GSTType: "taxable", TaxableValue: 80, CGST: 7.2, SGST: 7.2},
	}

	txRepo.On("FindFlatTransactions", mock.Anything, "co-1", from, to).Return(fts, nil)

	summary, err := svc.TransactionSummary(context.Background(), "co-1", 2025, 4)
	require.NoError(t, err)

	require.Len(t, summary.Summary, 2)

	// Types sorted lexically: inward before outward.
	inward := summary.Summary[0]
	assert.Equal(t, "inward", inward.Type)
	assert.Equal(t, 1, inward.TotalCount)
	assert.Equal(t, 80.0, inward.TotalTaxableValue)

	outward := summary.Summary[1]
	assert.Equal(t, "outward", outward.Type)
	assert.Equal(t, 3, outward.TotalCount)
	assert.Equal(t, 350.0, outward.TotalTaxableValue)

	// GST types sorted within a type: exempt before taxable.
	require.Len(t, outward.Details, 2)
	assert.Equal(t, "exempt", outward.Details[0].GSTType)
	assert.Equal(t, "taxable", outward.Details[1].GSTType)
	assert.Equal(t, 2, outward.Details[1].Count)
	assert.Equal(t, 300.0, outward.Details[1].TaxableValue)
	assert.Equal(t, 54.0, outward.Details[1].Tax.Integrated)
}

func TestTransactionSummary_InvalidPeriod(t *testing.T) {
	svc := NewReportService(new(mocks.MockCompanyRepo), new(mocks.MockTransactionRepo))

	_, err := svc.TransactionSummary(context.Background(), "co-1", 2025, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
