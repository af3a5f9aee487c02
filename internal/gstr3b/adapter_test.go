package gstr3b

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstrex/internal/domain"
)

func TestFromFlat(t *testing.T) {
	ft := domain.FlatTransaction{
		ID:           "t1",
		CompanyID:    "co-1",
		Date:         "2025-04-12",
		Type:         "outward",
		GSTType:      "taxable",
		Interstate:   true,
		TaxableValue: 1000,
		IGST:         180,
		Cess:         5,
	}

	tx := FromFlat(ft)
	assert.Equal(t, domain.TxOutward, tx.Type)
	assert.Equal(t, domain.SubTypeTaxable, tx.SubType)
	assert.Equal(t, domain.Period{Year: 2025, Month: 4}, tx.Period)
	assert.True(t, tx.Interstate)
	assert.Equal(t, domain.TaxHeads{Integrated: 180, Cess: 5}, tx.Tax)
}

func TestFromFlat_ReverseChargeBecomesRCM(t *testing.T) {
	ft := domain.FlatTransaction{
		Date:          "2025-04-01",
		Type:          "inward",
		GSTType:       "taxable",
		ReverseCharge: true,
		TaxableValue:  200,
		CGST:          18,
		SGST:          18,
	}

	tx := FromFlat(ft)
	assert.Equal(t, domain.TxInward, tx.Type)
	assert.Equal(t, domain.SubTypeRCM, tx.SubType)
}

func TestFromFlat_ReverseChargeOnOutwardIsIgnored(t *testing.T) {
	ft := domain.FlatTransaction{
		Date:          "2025-04-01",
		Type:          "outward",
		GSTType:       "taxable",
		ReverseCharge: true,
	}

	tx := FromFlat(ft)
	assert.Equal(t, domain.SubTypeTaxable, tx.SubType)
}

func TestFromFlat_GSTTypeSpellings(t *testing.T) {
	for _, spelling := range []string{"zero_rated", "zero-rated"} {
		tx := FromFlat(domain.FlatTransaction{Date: "2025-04-01", Type: "outward", GSTType: spelling})
		assert.Equal(t, domain.SubTypeZeroRated, tx.SubType, spelling)
	}
	for _, spelling := range []string{"nil_rated", "nil-rated"} {
		tx := FromFlat(domain.FlatTransaction{Date: "2025-04-01", Type: "outward", GSTType: spelling})
		assert.Equal(t, domain.SubTypeNilRated, tx.SubType, spelling)
	}
}

func TestFromFlat_UnknownValuesMatchNothing(t *testing.T) {
	tx := FromFlat(domain.FlatTransaction{
		Date:         "2025-04-01",
		Type:         "sideways",
		GSTType:      "mystery",
		TaxableValue: 500,
	})

	// An unknown record must contribute to no aggregator bucket.
	totals := OutwardTaxable([]domain.SupplyTransaction{tx})
	assert.Zero(t, totals.TaxableValue)
	assert.Zero(t, InwardReverseCharge([]domain.SupplyTransaction{tx}).TaxableValue)
}

func TestFromFlat_DateLayouts(t *testing.T) {
	rfc := FromFlat(domain.FlatTransaction{Date: "2025-07-15T10:30:00Z", Type: "outward", GSTType: "taxable"})
	assert.Equal(t, domain.Period{Year: 2025, Month: 7}, rfc.Period)

	dateOnly := FromFlat(domain.FlatTransaction{Date: "2025-07-15", Type: "outward", GSTType: "taxable"})
	assert.Equal(t, domain.Period{Year: 2025, Month: 7}, dateOnly.Period)

	garbage := FromFlat(domain.FlatTransaction{Date: "not-a-date", Type: "outward", GSTType: "taxable"})
	assert.Equal(t, domain.Period{}, garbage.Period)
}

func TestFromFlatAll(t *testing.T) {
	fts := []domain.FlatTransaction{
		{Date: "2025-04-01", Type: "outward", GSTType: "taxable", TaxableValue: 100},
		{Date: "2025-04-02", Type: "inward", GSTType: "exempt", TaxableValue: 50},
	}

	txs := FromFlatAll(fts)
	assert.Len(t, txs, 2)
	assert.Equal(t, domain.TxOutward, txs[0].Type)
	assert.Equal(t, domain.SubTypeExempt, txs[1].SubType)
}
