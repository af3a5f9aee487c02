package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gstrex/internal/domain"
	"gstrex/internal/gstr3b"
	"gstrex/internal/port"
)

// Plausible filing-year bounds; anything outside is a client mistake, not a
// period we should query storage for.
const (
	minReportYear = 2000
	maxReportYear = 2100
)

// ReportService generates GSTR-3B reports and period summaries.
type ReportService interface {
	GenerateGSTR3B(ctx context.Context, companyID string, year, month int) (*gstr3b.Report, error)
	RenderGSTR3B(report *gstr3b.Report) ([]byte, error)
	Liability(ctx context.Context, companyID string, year, month int) (*gstr3b.Liability, error)
	TransactionSummary(ctx context.Context, companyID string, year, month int) (*domain.TransactionSummary, error)
}

type reportService struct {
	companyRepo     port.CompanyRepository
	transactionRepo port.TransactionRepository
}

// NewReportService creates a new ReportService.
func NewReportService(companyRepo port.CompanyRepository, transactionRepo port.TransactionRepository) ReportService {
	return &reportService{companyRepo: companyRepo, transactionRepo: transactionRepo}
}

// GenerateGSTR3B assembles the report for one company and month. The two
// ledger reads are independent and read-only, so they are issued
// concurrently; either failure fails the whole report, never a partial one.
func (s *reportService) GenerateGSTR3B(ctx context.Context, companyID string, year, month int) (*gstr3b.Report, error) {
	period, err := validatePeriod(year, month)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var (
		wg          sync.WaitGroup
		txs         []domain.SupplyTransaction
		payments    []domain.ItcPayment
		txErr, pErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		txs, txErr = s.transactionRepo.FindSupplyTransactions(ctx, companyID, period)
	}()
	go func() {
		defer wg.Done()
		payments, pErr = s.transactionRepo.FindItcPayments(ctx, companyID, period)
	}()
	wg.Wait()
	if txErr != nil {
		return nil, txErr
	}
	if pErr != nil {
		return nil, pErr
	}

	return gstr3b.Assemble(company, period, txs, payments), nil
}

// RenderGSTR3B renders an assembled report as a PDF document.
func (s *reportService) RenderGSTR3B(report *gstr3b.Report) ([]byte, error) {
	return gstr3b.Render(report)
}

// Liability assembles the report and derives the net payable position.
func (s *reportService) Liability(ctx context.Context, companyID string, year, month int) (*gstr3b.Liability, error) {
	report, err := s.GenerateGSTR3B(ctx, companyID, year, month)
	if err != nil {
		return nil, err
	}
	liability := gstr3b.ComputeLiability(report)
	return &liability, nil
}

// TransactionSummary rolls up the flat-schema ledger for one month, grouped
// by transaction type and GST type. Records are normalized through the
// flat-schema adapter so the roll-up shares the canonical model.
func (s *reportService) TransactionSummary(ctx context.Context, companyID string, year, month int) (*domain.TransactionSummary, error) {
	period, err := validatePeriod(year, month)
	if err != nil {
		return nil, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	fts, err := s.transactionRepo.FindFlatTransactions(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.TransactionSummary{
		Period:  period,
		Summary: summarize(fts),
	}, nil
}

func validatePeriod(year, month int) (domain.Period, error) {
	if year < minReportYear || year > maxReportYear {
		return domain.Period{}, fmt.Errorf("%w: year %d out of range", domain.ErrInvalidPeriod, year)
	}
	if month < 1 || month > 12 {
		return domain.Period{}, fmt.Errorf("%w: month %d out of range", domain.ErrInvalidPeriod, month)
	}
	return domain.Period{Year: year, Month: month}, nil
}

// summarize groups flat transactions by (type, gstType) and sums counts,
// taxable values and tax heads. Output order is deterministic: types and GST
// types sorted lexically.
func summarize(fts []domain.FlatTransaction) []domain.TransactionTypeSummary {
	type key struct{ txType, gstType string }
	groups := make(map[key]*domain.TransactionSummaryGroup)

	for _, ft := range fts {
		tx := gstr3b.FromFlat(ft)
		k := key{txType: ft.Type, gstType: ft.GSTType}
		g, ok := groups[k]
		if !ok {
			g = &domain.TransactionSummaryGroup{GSTType: ft.GSTType}
			groups[k] = g
		}
		g.Count++
		g.TaxableValue += tx.TaxableValue
		g.Tax.Integrated += tx.Tax.Integrated
		g.Tax.Central += tx.Tax.Central
		g.Tax.State += tx.Tax.State
		g.Tax.Cess += tx.Tax.Cess
	}

	byType := make(map[string][]domain.TransactionSummaryGroup)
	for k, g := range groups {
		byType[k.txType] = append(byType[k.txType], *g)
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	summary := make([]domain.TransactionTypeSummary, 0, len(types))
	for _, t := range types {
		details := byType[t]
		sort.Slice(details, func(i, j int) bool { return details[i].GSTType < details[j].GSTType })

		row := domain.TransactionTypeSummary{Type: t, Details: details}
		for _, d := range details {
			row.TotalCount += d.Count
			row.TotalTaxableValue += d.TaxableValue
		}
		summary = append(summary, row)
	}
	return summary
}
