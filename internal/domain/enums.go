package domain

// TxType classifies a ledger entry by direction.
type TxType string

const (
	TxOutward TxType = "OUTWARD"
	TxInward  TxType = "INWARD"
	TxPayment TxType = "PAYMENT"
)

// TxSubType refines a TxType into its GST treatment.
type TxSubType string

const (
	SubTypeTaxable   TxSubType = "TAXABLE"
	SubTypeZeroRated TxSubType = "ZERO_RATED"
	SubTypeExempt    TxSubType = "EXEMPT"
	SubTypeNilRated  TxSubType = "NIL_RATED"
	SubTypeNonGST    TxSubType = "NON_GST"
	SubTypeRCM       TxSubType = "RCM"
)

// CounterpartyStatus is the resolved registration status of a trading partner.
type CounterpartyStatus string

const (
	CounterpartyUnregistered CounterpartyStatus = "unregistered"
	CounterpartyRegistered   CounterpartyStatus = "registered"
	CounterpartyComposition  CounterpartyStatus = "composition"
	CounterpartyUIN          CounterpartyStatus = "uin"
)

// ITCCategory enumerates the eligible ITC buckets of section 4.
type ITCCategory string

const (
	ITCImportGoods    ITCCategory = "import_goods"
	ITCImportServices ITCCategory = "import_services"
	ITCReverseCharge  ITCCategory = "reverse_charge"
	ITCISD            ITCCategory = "isd"
	ITCOthers         ITCCategory = "others"
)

// ITCCategories lists the eligible buckets in report order.
var ITCCategories = []ITCCategory{
	ITCImportGoods,
	ITCImportServices,
	ITCReverseCharge,
	ITCISD,
	ITCOthers,
}

// NormalizeITCCategory maps a stored category value onto the enumerated set.
// Anything outside the set falls into the "others" bucket rather than
// creating an ad hoc one.
func NormalizeITCCategory(c ITCCategory) ITCCategory {
	switch c {
	case ITCImportGoods, ITCImportServices, ITCReverseCharge, ITCISD, ITCOthers:
		return c
	default:
		return ITCOthers
	}
}

// ITCReversalCategory enumerates the reversal buckets of section 4.
type ITCReversalCategory string

const (
	ReversalRules38_42_43 ITCReversalCategory = "rules_38_42_43"
	ReversalOthers        ITCReversalCategory = "others"
)

// ITCReversalCategories lists the reversal buckets in report order.
var ITCReversalCategories = []ITCReversalCategory{
	ReversalRules38_42_43,
	ReversalOthers,
}

// NormalizeITCReversalCategory maps a stored reversal category onto the
// enumerated set, defaulting to "others".
func NormalizeITCReversalCategory(c ITCReversalCategory) ITCReversalCategory {
	switch c {
	case ReversalRules38_42_43, ReversalOthers:
		return c
	default:
		return ReversalOthers
	}
}

// ExportFormat enumerates the supported result-set export formats.
type ExportFormat string

const (
	FormatCSV   ExportFormat = "csv"
	FormatExcel ExportFormat = "excel"
	FormatJSON  ExportFormat = "json"
	FormatPDF   ExportFormat = "pdf"
)

// ExportMIMETypes maps ExportFormat to its MIME content type.
var ExportMIMETypes = map[ExportFormat]string{
	FormatCSV:   "text/csv",
	FormatExcel: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatJSON:  "application/json",
	FormatPDF:   "application/pdf",
}

// ExportExtensions maps ExportFormat to the file extension used in filenames.
var ExportExtensions = map[ExportFormat]string{
	FormatCSV:   "csv",
	FormatExcel: "xlsx",
	FormatJSON:  "json",
	FormatPDF:   "pdf",
}
