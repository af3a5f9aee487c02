package gstr3b

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstrex/internal/domain"
)

func TestRender(t *testing.T) {
	company := &domain.Company{
		GSTIN:     "29ABCDE1234F1Z5",
		LegalName: "Acme Traders",
		AuthorizedSignatory: domain.Signatory{
			Name:        "A Kumar",
			Designation: "Director",
		},
	}
	txs := []domain.SupplyTransaction{
		outwardTaxable(1000, domain.TaxHeads{Integrated: 180}),
		{Type: domain.TxOutward, SubType: domain.SubTypeZeroRated, TaxableValue: 500, Tax: domain.TaxHeads{Cess: 10}},
		itcTx(true, domain.ITCImportGoods, domain.TaxHeads{Integrated: 50}),
	}
	payments := []domain.ItcPayment{
		{Payment: domain.PaymentDetail{Cash: domain.TaxHeads{Integrated: 130}, Interest: domain.TaxHeads{Integrated: 5}}},
	}

	report := Assemble(company, domain.Period{Year: 2025, Month: 4}, txs, payments)

	payload, err := Render(report)
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	assert.Equal(t, "%PDF", string(payload[:4]))
}

func TestRender_EmptyReport(t *testing.T) {
	report := Assemble(&domain.Company{}, domain.Period{Year: 2025, Month: 1}, nil, nil)

	payload, err := Render(report)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(payload[:4]))
}

func TestAmountFormatting(t *testing.T) {
	assert.Equal(t, "0.00", amount(0))
	assert.Equal(t, "1234.50", amount(1234.5))
	assert.Equal(t, "-15.00", amount(-15))
}
