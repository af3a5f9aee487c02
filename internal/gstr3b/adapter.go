package gstr3b

import (
	"time"

	"gstrex/internal/domain"
)

// The flat ledger schema predates the canonical one: lowercase type values, a
// gstType vocabulary, a reverseCharge flag instead of an RCM sub-type, and
// tax heads stored as top-level igst/cgst/sgst/cess fields. FromFlat adapts
// such records into the canonical shape so the aggregators never branch on
// schema variant.

var flatTypes = map[string]domain.TxType{
	"outward": domain.TxOutward,
	"inward":  domain.TxInward,
	"payment": domain.TxPayment,
}

var flatGSTTypes = map[string]domain.TxSubType{
	"taxable":    domain.SubTypeTaxable,
	"zero_rated": domain.SubTypeZeroRated,
	"zero-rated": domain.SubTypeZeroRated,
	"exempt":     domain.SubTypeExempt,
	"nil_rated":  domain.SubTypeNilRated,
	"nil-rated":  domain.SubTypeNilRated,
	"non_gst":    domain.SubTypeNonGST,
	"non-gst":    domain.SubTypeNonGST,
}

// flatDateLayouts are tried in order when resolving a record's period.
var flatDateLayouts = []string{time.RFC3339, "2006-01-02"}

// FromFlat normalizes a flat-schema transaction into the canonical model.
// Unknown type or gstType values map to empty enums, which no classifier
// matches, so such records contribute to nothing downstream. An inward
// record with the reverseCharge flag becomes an RCM sub-type.
func FromFlat(ft domain.FlatTransaction) domain.SupplyTransaction {
	tx := domain.SupplyTransaction{
		ID:           ft.ID,
		CompanyID:    ft.CompanyID,
		Period:       flatPeriod(ft.Date),
		Type:         flatTypes[ft.Type],
		SubType:      flatGSTTypes[ft.GSTType],
		Interstate:   ft.Interstate,
		TaxableValue: ft.TaxableValue,
		Tax: domain.TaxHeads{
			Integrated: ft.IGST,
			Central:    ft.CGST,
			State:      ft.SGST,
			Cess:       ft.Cess,
		},
	}
	if tx.Type == domain.TxInward && ft.ReverseCharge {
		tx.SubType = domain.SubTypeRCM
	}
	return tx
}

// FromFlatAll normalizes a batch of flat-schema transactions.
func FromFlatAll(fts []domain.FlatTransaction) []domain.SupplyTransaction {
	txs := make([]domain.SupplyTransaction, len(fts))
	for i, ft := range fts {
		txs[i] = FromFlat(ft)
	}
	return txs
}

func flatPeriod(date string) domain.Period {
	for _, layout := range flatDateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return domain.Period{Year: t.Year(), Month: int(t.Month())}
		}
	}
	return domain.Period{}
}
