package domain

// Period identifies a reporting month.
type Period struct {
	Year  int `bson:"year" json:"year"`
	Month int `bson:"month" json:"month"`
}

// TaxHeads holds one amount per GST tax head. Heads absent in the stored
// document decode to zero, so aggregation never needs nil checks.
type TaxHeads struct {
	Integrated float64 `bson:"integrated" json:"integrated"`
	Central    float64 `bson:"central" json:"central"`
	State      float64 `bson:"state" json:"state"`
	Cess       float64 `bson:"cess" json:"cess"`
}

// Counterparty describes the registration status of the trading partner.
// At most one flag is expected to be true; Status resolves conflicts with a
// fixed precedence so section 3.2 buckets stay mutually exclusive.
type Counterparty struct {
	Registered  bool `bson:"isRegistered" json:"isRegistered"`
	Composition bool `bson:"isComposition" json:"isComposition"`
	UIN         bool `bson:"isUIN" json:"isUIN"`
}

// Status resolves the counterparty flags into a single status.
// Precedence: UIN, then composition, then registered.
func (c Counterparty) Status() CounterpartyStatus {
	switch {
	case c.UIN:
		return CounterpartyUIN
	case c.Composition:
		return CounterpartyComposition
	case c.Registered:
		return CounterpartyRegistered
	default:
		return CounterpartyUnregistered
	}
}

// ITCDetail carries the input-tax-credit attributes of a supply transaction.
type ITCDetail struct {
	Eligible         bool                `bson:"eligible" json:"eligible"`
	Category         ITCCategory         `bson:"category" json:"category"`
	Amount           TaxHeads            `bson:"amount" json:"amount"`
	Reversed         bool                `bson:"reversed" json:"reversed"`
	ReversalCategory ITCReversalCategory `bson:"reversalCategory" json:"reversalCategory"`
}

// SupplyTransaction is the canonical ledger entry consumed by the GSTR-3B
// engine. Stored documents with missing nested objects decode with zero
// values, which is exactly the contribution they should make.
type SupplyTransaction struct {
	ID                string       `bson:"_id" json:"id"`
	CompanyID         string       `bson:"companyId" json:"companyId"`
	Period            Period       `bson:"period" json:"period"`
	Type              TxType       `bson:"type" json:"type"`
	SubType           TxSubType    `bson:"subType" json:"subType"`
	Interstate        bool         `bson:"isInterstate" json:"isInterstate"`
	EcommerceOperator bool         `bson:"isEcommerceOperator" json:"isEcommerceOperator"`
	Counterparty      Counterparty `bson:"counterparty" json:"counterparty"`
	TaxableValue      float64      `bson:"taxableValue" json:"taxableValue"`
	Tax               TaxHeads     `bson:"tax" json:"tax"`
	ITC               *ITCDetail   `bson:"itc,omitempty" json:"itc,omitempty"`
}

// PaymentDetail holds the per-head amounts of one tax payment record.
type PaymentDetail struct {
	Cash        TaxHeads `bson:"cash" json:"cash"`
	ITCUtilised TaxHeads `bson:"itcUtilised" json:"itcUtilised"`
	Interest    TaxHeads `bson:"interest" json:"interest"`
	LateFee     TaxHeads `bson:"lateFee" json:"lateFee"`
}

// ItcPayment is a payment-type record scoped to a company and period.
type ItcPayment struct {
	ID        string        `bson:"_id" json:"id"`
	CompanyID string        `bson:"companyId" json:"companyId"`
	Period    Period        `bson:"period" json:"period"`
	Payment   PaymentDetail `bson:"payment" json:"payment"`
}

// Signatory is the person authorized to file for a company.
type Signatory struct {
	Name        string `bson:"name" json:"name"`
	Designation string `bson:"designation" json:"designation"`
}

// Company holds the filing identity used in report headers.
type Company struct {
	ID                  string    `bson:"_id" json:"id"`
	GSTIN               string    `bson:"gstin" json:"gstin"`
	LegalName           string    `bson:"legalName" json:"legalName"`
	TradeName           string    `bson:"tradeName" json:"tradeName"`
	AuthorizedSignatory Signatory `bson:"authorizedSignatory" json:"authorizedSignatory"`
}

// FlatTransaction is the legacy flat-schema ledger entry: lowercase type, a
// gstType vocabulary, and tax heads as top-level igst/cgst/sgst/cess fields.
// It is normalized into SupplyTransaction before any aggregation runs.
type FlatTransaction struct {
	ID            string  `bson:"_id" json:"id"`
	CompanyID     string  `bson:"companyId" json:"companyId"`
	Date          string  `bson:"date" json:"date"`
	Type          string  `bson:"type" json:"type"`
	GSTType       string  `bson:"gstType" json:"gstType"`
	ReverseCharge bool    `bson:"reverseCharge" json:"reverseCharge"`
	Interstate    bool    `bson:"isInterstate" json:"isInterstate"`
	TaxableValue  float64 `bson:"taxableValue" json:"taxableValue"`
	IGST          float64 `bson:"igst" json:"igst"`
	CGST          float64 `bson:"cgst" json:"cgst"`
	SGST          float64 `bson:"sgst" json:"sgst"`
	Cess          float64 `bson:"cess" json:"cess"`
}

// GSTConfig is the optional surcharge configuration accepted by query and
// receipt endpoints.
type GSTConfig struct {
	Enabled    bool    `json:"enabled"`
	Field      string  `json:"field"`
	Percentage float64 `json:"percentage"`
}

// Active reports whether the surcharge should be applied: it needs the
// enabled flag, a field name, and a positive percentage.
func (g *GSTConfig) Active() bool {
	return g != nil && g.Enabled && g.Field != "" && g.Percentage > 0
}

// TransactionSummaryGroup is one gstType bucket of the period summary.
type TransactionSummaryGroup struct {
	GSTType      string   `json:"gstType"`
	Count        int      `json:"count"`
	TaxableValue float64  `json:"taxableValue"`
	Tax          TaxHeads `json:"tax"`
}

// TransactionTypeSummary groups the summary rows for a transaction type.
type TransactionTypeSummary struct {
	Type              string                    `json:"type"`
	Details           []TransactionSummaryGroup `json:"details"`
	TotalCount        int                       `json:"totalCount"`
	TotalTaxableValue float64                   `json:"totalTaxableValue"`
}

// TransactionSummary is the per-period roll-up of flat-schema transactions.
type TransactionSummary struct {
	Period  Period                   `json:"period"`
	Summary []TransactionTypeSummary `json:"summary"`
}
