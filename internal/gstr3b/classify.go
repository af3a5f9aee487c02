package gstr3b

import "gstrex/internal/domain"

// Classifier predicates. Each predicate is pure and total: a transaction with
// an unknown type or sub-type simply matches nothing. Within any one section
// the predicates are mutually exclusive, so a transaction contributes to at
// most one bucket per aggregator call.

func isOutwardTaxable(tx domain.SupplyTransaction) bool {
	return tx.Type == domain.TxOutward && tx.SubType == domain.SubTypeTaxable
}

func isOutwardZeroRated(tx domain.SupplyTransaction) bool {
	return tx.Type == domain.TxOutward && tx.SubType == domain.SubTypeZeroRated
}

func isOutwardNilExempt(tx domain.SupplyTransaction) bool {
	return tx.Type == domain.TxOutward &&
		(tx.SubType == domain.SubTypeExempt || tx.SubType == domain.SubTypeNilRated)
}

func isNonGSTOutward(tx domain.SupplyTransaction) bool {
	return tx.Type == domain.TxOutward && tx.SubType == domain.SubTypeNonGST
}

func isInwardReverseCharge(tx domain.SupplyTransaction) bool {
	return tx.Type == domain.TxInward && tx.SubType == domain.SubTypeRCM
}

func isEcommerceOperatorSupply(tx domain.SupplyTransaction) bool {
	return isOutwardTaxable(tx) && tx.EcommerceOperator
}

// isInterstateTo matches outward taxable inter-state supplies to a
// counterparty with the given resolved status.
func isInterstateTo(tx domain.SupplyTransaction, status domain.CounterpartyStatus) bool {
	return isOutwardTaxable(tx) && tx.Interstate && tx.Counterparty.Status() == status
}

func isExemptNilNonGSTInward(tx domain.SupplyTransaction) bool {
	if tx.Type != domain.TxInward {
		return false
	}
	switch tx.SubType {
	case domain.SubTypeExempt, domain.SubTypeNilRated, domain.SubTypeNonGST:
		return true
	}
	return false
}
