// Package gstr3b folds supply transactions and tax payments into the fixed
// GSTR-3B summary structure. Every function here is pure: inputs are fetched
// by the caller, totals are rounded to two decimals when a section finishes
// accumulating, and no state survives between calls.
package gstr3b

import (
	"math"

	"gstrex/internal/domain"
)

// SupplyTotals holds a taxable value plus all four tax heads.
type SupplyTotals struct {
	TaxableValue float64 `json:"taxableValue"`
	Integrated   float64 `json:"integrated"`
	Central      float64 `json:"central"`
	State        float64 `json:"state"`
	Cess         float64 `json:"cess"`
}

// ZeroRatedTotals holds the heads applicable to zero-rated supplies.
// Central and state never apply to zero-rated supplies, so they are not part
// of the shape at all.
type ZeroRatedTotals struct {
	TaxableValue float64 `json:"taxableValue"`
	Integrated   float64 `json:"integrated"`
	Cess         float64 `json:"cess"`
}

// ValueOnlyTotals holds sections that carry no tax heads.
type ValueOnlyTotals struct {
	TaxableValue float64 `json:"taxableValue"`
}

// Heads holds per-head totals without a taxable value.
type Heads struct {
	Integrated float64 `json:"integrated"`
	Central    float64 `json:"central"`
	State      float64 `json:"state"`
	Cess       float64 `json:"cess"`
}

func (h *Heads) add(t domain.TaxHeads) {
	h.Integrated += t.Integrated
	h.Central += t.Central
	h.State += t.State
	h.Cess += t.Cess
}

func (h *Heads) round() {
	h.Integrated = round2(h.Integrated)
	h.Central = round2(h.Central)
	h.State = round2(h.State)
	h.Cess = round2(h.Cess)
}

// ITCEligible breaks eligible input tax credit into its section 4(A) buckets.
type ITCEligible struct {
	ImportGoods    Heads `json:"import_goods"`
	ImportServices Heads `json:"import_services"`
	ReverseCharge  Heads `json:"reverse_charge"`
	ISD            Heads `json:"isd"`
	Others         Heads `json:"others"`
}

func (e *ITCEligible) bucket(c domain.ITCCategory) *Heads {
	switch domain.NormalizeITCCategory(c) {
	case domain.ITCImportGoods:
		return &e.ImportGoods
	case domain.ITCImportServices:
		return &e.ImportServices
	case domain.ITCReverseCharge:
		return &e.ReverseCharge
	case domain.ITCISD:
		return &e.ISD
	default:
		return &e.Others
	}
}

// Total sums the eligible buckets per head.
func (e ITCEligible) Total() Heads {
	var t Heads
	for _, h := range []Heads{e.ImportGoods, e.ImportServices, e.ReverseCharge, e.ISD, e.Others} {
		t.Integrated += h.Integrated
		t.Central += h.Central
		t.State += h.State
		t.Cess += h.Cess
	}
	return t
}

// ITCReversed breaks reversed input tax credit into its section 4(B) buckets.
type ITCReversed struct {
	Rules38_42_43 Heads `json:"rules_38_42_43"`
	Others        Heads `json:"others"`
}

func (r *ITCReversed) bucket(c domain.ITCReversalCategory) *Heads {
	if domain.NormalizeITCReversalCategory(c) == domain.ReversalRules38_42_43 {
		return &r.Rules38_42_43
	}
	return &r.Others
}

// Total sums the reversed buckets per head.
func (r ITCReversed) Total() Heads {
	return Heads{
		Integrated: r.Rules38_42_43.Integrated + r.Others.Integrated,
		Central:    r.Rules38_42_43.Central + r.Others.Central,
		State:      r.Rules38_42_43.State + r.Others.State,
		Cess:       r.Rules38_42_43.Cess + r.Others.Cess,
	}
}

// ITCTotals is the full section 4 breakdown. Net may legitimately be negative
// when reversals exceed eligible credit; it is never clamped here.
type ITCTotals struct {
	Eligible ITCEligible `json:"eligible"`
	Reversed ITCReversed `json:"reversed"`
	Net      Heads       `json:"net"`
}

// InwardBreakup splits a value-only total by supply movement.
type InwardBreakup struct {
	Interstate float64 `json:"interstate"`
	Intrastate float64 `json:"intrastate"`
}

// ExemptInward is the section 5 breakdown of non-taxed inward supplies.
type ExemptInward struct {
	Composition InwardBreakup `json:"composition"`
	Exempt      InwardBreakup `json:"exempt"`
	NilRated    InwardBreakup `json:"nil_rated"`
	NonGST      InwardBreakup `json:"non_gst"`
}

// InterestTotals separates interest computed by the system from interest
// actually paid. Computation of interest is upstream of this engine, so the
// computed row stays zero and only paid amounts are accumulated.
type InterestTotals struct {
	Computed Heads `json:"computed"`
	Paid     Heads `json:"paid"`
}

// PaymentMethodTotals splits one tax head by settlement method.
type PaymentMethodTotals struct {
	Cash float64 `json:"cash"`
	ITC  float64 `json:"itc"`
}

// PaymentTax holds section 6 tax settlement per head.
type PaymentTax struct {
	Integrated PaymentMethodTotals `json:"integrated"`
	Central    PaymentMethodTotals `json:"central"`
	State      PaymentMethodTotals `json:"state"`
	Cess       PaymentMethodTotals `json:"cess"`
}

// PaymentTotals is the full section 6 breakdown.
type PaymentTotals struct {
	Tax      PaymentTax `json:"tax"`
	Interest Heads      `json:"interest"`
	LateFee  Heads      `json:"lateFee"`
}

// Section31 covers outward and reverse-charge inward supplies.
type Section31 struct {
	OutwardTaxable      SupplyTotals    `json:"outward_taxable"`
	OutwardZero         ZeroRatedTotals `json:"outward_zero"`
	OutwardNilExempt    ValueOnlyTotals `json:"outward_nil_exempt"`
	InwardReverseCharge SupplyTotals    `json:"inward_reverse_charge"`
	NonGSTOutward       ValueOnlyTotals `json:"non_gst_outward"`
}

// Section311 covers supplies made through e-commerce operators (section 9(5)).
type Section311 struct {
	EcommerceOperator SupplyTotals `json:"ecommerce_operator"`
}

// Section32 covers inter-state supplies by counterparty status.
type Section32 struct {
	Unregistered SupplyTotals `json:"unregistered"`
	Composition  SupplyTotals `json:"composition"`
	UIN          SupplyTotals `json:"uin"`
}

// Section4 covers input tax credit.
type Section4 struct {
	ITC ITCTotals `json:"itc"`
}

// Section5 covers exempt, nil-rated and non-GST inward supplies.
type Section5 struct {
	ExemptNilNonGST ExemptInward `json:"exempt_nil_non_gst"`
}

// Section51 covers interest and late fee.
type Section51 struct {
	Interest InterestTotals `json:"interest"`
	LateFee  Heads          `json:"lateFee"`
}

// Section6 covers payment of tax.
type Section6 struct {
	Payment PaymentTotals `json:"payment"`
}

// Header carries the company identity and filing metadata for the report.
type Header struct {
	GSTIN               string           `json:"gstin"`
	LegalName           string           `json:"legalName"`
	TradeName           string           `json:"tradeName"`
	Period              domain.Period    `json:"period"`
	ARN                 string           `json:"arn"`
	ARNDate             string           `json:"arnDate"`
	AuthorizedSignatory domain.Signatory `json:"authorizedSignatory"`
}

// Report is the assembled GSTR-3B summary. It is a derived view produced
// fresh per request and never persisted.
type Report struct {
	Header     Header     `json:"header"`
	Section31  Section31  `json:"section3_1"`
	Section311 Section311 `json:"section3_1_1"`
	Section32  Section32  `json:"section3_2"`
	Section4   Section4   `json:"section4"`
	Section5   Section5   `json:"section5"`
	Section51  Section51  `json:"section5_1"`
	Section6   Section6   `json:"section6"`
}

// round2 rounds a monetary amount to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
