package gstr3b

import "gstrex/internal/domain"

// Section aggregators. Each one folds a transaction slice into rounded
// totals; an empty slice yields an all-zero result. Accumulation runs on the
// raw values and rounding happens once per total, when the section finishes,
// so rounding error never compounds across transactions.

// OutwardTaxable sums outward taxable supplies other than zero-rated,
// nil-rated and exempted.
func OutwardTaxable(txs []domain.SupplyTransaction) SupplyTotals {
	return sumSupplies(txs, isOutwardTaxable)
}

// OutwardZeroRated sums zero-rated outward supplies. Only the integrated and
// cess heads apply.
func OutwardZeroRated(txs []domain.SupplyTransaction) ZeroRatedTotals {
	var r ZeroRatedTotals
	for _, tx := range txs {
		if !isOutwardZeroRated(tx) {
			continue
		}
		r.TaxableValue += tx.TaxableValue
		r.Integrated += tx.Tax.Integrated
		r.Cess += tx.Tax.Cess
	}
	r.TaxableValue = round2(r.TaxableValue)
	r.Integrated = round2(r.Integrated)
	r.Cess = round2(r.Cess)
	return r
}

// OutwardNilExempt sums nil-rated and exempted outward supplies, which carry
// no tax heads.
func OutwardNilExempt(txs []domain.SupplyTransaction) ValueOnlyTotals {
	return sumValues(txs, isOutwardNilExempt)
}

// InwardReverseCharge sums inward supplies liable to reverse charge.
func InwardReverseCharge(txs []domain.SupplyTransaction) SupplyTotals {
	return sumSupplies(txs, isInwardReverseCharge)
}

// NonGSTOutward sums outward supplies outside the GST regime.
func NonGSTOutward(txs []domain.SupplyTransaction) ValueOnlyTotals {
	return sumValues(txs, isNonGSTOutward)
}

// EcommerceOperator sums outward taxable supplies made through an e-commerce
// operator under section 9(5).
func EcommerceOperator(txs []domain.SupplyTransaction) SupplyTotals {
	return sumSupplies(txs, isEcommerceOperatorSupply)
}

// InterstateUnregistered sums inter-state supplies to unregistered persons.
func InterstateUnregistered(txs []domain.SupplyTransaction) SupplyTotals {
	return sumSupplies(txs, func(tx domain.SupplyTransaction) bool {
		return isInterstateTo(tx, domain.CounterpartyUnregistered)
	})
}

// InterstateComposition sums inter-state supplies to composition taxable
// persons.
func InterstateComposition(txs []domain.SupplyTransaction) SupplyTotals {
	return sumSupplies(txs, func(tx domain.SupplyTransaction) bool {
		return isInterstateTo(tx, domain.CounterpartyComposition)
	})
}

// InterstateUIN sums inter-state supplies to UIN holders.
func InterstateUIN(txs []domain.SupplyTransaction) SupplyTotals {
	return sumSupplies(txs, func(tx domain.SupplyTransaction) bool {
		return isInterstateTo(tx, domain.CounterpartyUIN)
	})
}

// ITC accumulates eligible and reversed input tax credit per category and
// derives the net per head. Net = eligible - reversed after all category
// sums are final; a negative net is preserved.
func ITC(txs []domain.SupplyTransaction) ITCTotals {
	var r ITCTotals
	for _, tx := range txs {
		if tx.ITC == nil {
			continue
		}
		if tx.ITC.Eligible {
			r.Eligible.bucket(tx.ITC.Category).add(tx.ITC.Amount)
		}
		if tx.ITC.Reversed {
			r.Reversed.bucket(tx.ITC.ReversalCategory).add(tx.ITC.Amount)
		}
	}

	r.Eligible.ImportGoods.round()
	r.Eligible.ImportServices.round()
	r.Eligible.ReverseCharge.round()
	r.Eligible.ISD.round()
	r.Eligible.Others.round()
	r.Reversed.Rules38_42_43.round()
	r.Reversed.Others.round()

	eligible := r.Eligible.Total()
	reversed := r.Reversed.Total()
	r.Net = Heads{
		Integrated: eligible.Integrated - reversed.Integrated,
		Central:    eligible.Central - reversed.Central,
		State:      eligible.State - reversed.State,
		Cess:       eligible.Cess - reversed.Cess,
	}
	r.Net.round()
	return r
}

// ExemptNilNonGSTInward splits non-taxed inward supplies by sub-type and by
// inter-state versus intra-state movement. The composition bucket is part of
// the report shape; purchases from composition dealers are not distinguished
// by sub-type in the ledger, so it accumulates nothing here.
func ExemptNilNonGSTInward(txs []domain.SupplyTransaction) ExemptInward {
	var r ExemptInward
	for _, tx := range txs {
		if !isExemptNilNonGSTInward(tx) {
			continue
		}
		var b *InwardBreakup
		switch tx.SubType {
		case domain.SubTypeExempt:
			b = &r.Exempt
		case domain.SubTypeNilRated:
			b = &r.NilRated
		default:
			b = &r.NonGST
		}
		if tx.Interstate {
			b.Interstate += tx.TaxableValue
		} else {
			b.Intrastate += tx.TaxableValue
		}
	}
	for _, b := range []*InwardBreakup{&r.Composition, &r.Exempt, &r.NilRated, &r.NonGST} {
		b.Interstate = round2(b.Interstate)
		b.Intrastate = round2(b.Intrastate)
	}
	return r
}

// Interest sums interest paid from payment records. The computed row is zero
// by construction; interest computation happens upstream of this engine.
func Interest(payments []domain.ItcPayment) InterestTotals {
	var r InterestTotals
	for _, p := range payments {
		r.Paid.add(p.Payment.Interest)
	}
	r.Computed.round()
	r.Paid.round()
	return r
}

// LateFee sums late fees paid from payment records.
func LateFee(payments []domain.ItcPayment) Heads {
	var r Heads
	for _, p := range payments {
		r.add(p.Payment.LateFee)
	}
	r.round()
	return r
}

// Payment sums tax settled in cash versus utilised credit, plus interest and
// late fee, from payment records.
func Payment(payments []domain.ItcPayment) PaymentTotals {
	var r PaymentTotals
	for _, p := range payments {
		r.Tax.Integrated.Cash += p.Payment.Cash.Integrated
		r.Tax.Central.Cash += p.Payment.Cash.Central
		r.Tax.State.Cash += p.Payment.Cash.State
		r.Tax.Cess.Cash += p.Payment.Cash.Cess

		r.Tax.Integrated.ITC += p.Payment.ITCUtilised.Integrated
		r.Tax.Central.ITC += p.Payment.ITCUtilised.Central
		r.Tax.State.ITC += p.Payment.ITCUtilised.State
		r.Tax.Cess.ITC += p.Payment.ITCUtilised.Cess

		r.Interest.add(p.Payment.Interest)
		r.LateFee.add(p.Payment.LateFee)
	}
	for _, m := range []*PaymentMethodTotals{&r.Tax.Integrated, &r.Tax.Central, &r.Tax.State, &r.Tax.Cess} {
		m.Cash = round2(m.Cash)
		m.ITC = round2(m.ITC)
	}
	r.Interest.round()
	r.LateFee.round()
	return r
}

// Assemble runs every section aggregator over the fetched scope and builds
// the full report with header metadata.
func Assemble(company *domain.Company, period domain.Period, txs []domain.SupplyTransaction, payments []domain.ItcPayment) *Report {
	return &Report{
		Header: Header{
			GSTIN:               company.GSTIN,
			LegalName:           company.LegalName,
			TradeName:           company.TradeName,
			Period:              period,
			ARN:                 placeholderARN,
			ARNDate:             placeholderARNDate,
			AuthorizedSignatory: company.AuthorizedSignatory,
		},
		Section31: Section31{
			OutwardTaxable:      OutwardTaxable(txs),
			OutwardZero:         OutwardZeroRated(txs),
			OutwardNilExempt:    OutwardNilExempt(txs),
			InwardReverseCharge: InwardReverseCharge(txs),
			NonGSTOutward:       NonGSTOutward(txs),
		},
		Section311: Section311{
			EcommerceOperator: EcommerceOperator(txs),
		},
		Section32: Section32{
			Unregistered: InterstateUnregistered(txs),
			Composition:  InterstateComposition(txs),
			UIN:          InterstateUIN(txs),
		},
		Section4: Section4{
			ITC: ITC(txs),
		},
		Section5: Section5{
			ExemptNilNonGST: ExemptNilNonGSTInward(txs),
		},
		Section51: Section51{
			Interest: Interest(payments),
			LateFee:  LateFee(payments),
		},
		Section6: Section6{
			Payment: Payment(payments),
		},
	}
}

// Filing reference fields are assigned by the tax portal on submission; the
// rendered summary carries fixed placeholders until filing integration exists.
const (
	placeholderARN     = "BB29DJFN3859"
	placeholderARNDate = "08/05/2025"
)

func sumSupplies(txs []domain.SupplyTransaction, match func(domain.SupplyTransaction) bool) SupplyTotals {
	var r SupplyTotals
	for _, tx := range txs {
		if !match(tx) {
			continue
		}
		r.TaxableValue += tx.TaxableValue
		r.Integrated += tx.Tax.Integrated
		r.Central += tx.Tax.Central
		r.State += tx.Tax.State
		r.Cess += tx.Tax.Cess
	}
	r.TaxableValue = round2(r.TaxableValue)
	r.Integrated = round2(r.Integrated)
	r.Central = round2(r.Central)
	r.State = round2(r.State)
	r.Cess = round2(r.Cess)
	return r
}

func sumValues(txs []domain.SupplyTransaction, match func(domain.SupplyTransaction) bool) ValueOnlyTotals {
	var r ValueOnlyTotals
	for _, tx := range txs {
		if match(tx) {
			r.TaxableValue += tx.TaxableValue
		}
	}
	r.TaxableValue = round2(r.TaxableValue)
	return r
}
