// Package gst applies a flat percentage GST surcharge to ad-hoc query
// results. Arithmetic runs on decimals so per-row amounts are exact before
// the two-decimal rounding.
package gst

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Amount returns the surcharge for a field value at the given percentage,
// rounded to two decimal places.
func Amount(value, percentage float64) float64 {
	amt := decimal.NewFromFloat(value).
		Mul(decimal.NewFromFloat(percentage)).
		Div(decimal.NewFromInt(100)).
		Round(2)
	f, _ := amt.Float64()
	return f
}

// Apply appends "GST Amount" and "Total Amount" columns to each record,
// computed from the named field at the given percentage. Records whose field
// is missing or non-numeric get a zero surcharge; the input records are not
// modified.
func Apply(records []map[string]any, field string, percentage float64) []map[string]any {
	out := make([]map[string]any, len(records))
	for i, rec := range records {
		enriched := make(map[string]any, len(rec)+2)
		for k, v := range rec {
			enriched[k] = v
		}

		value := numericValue(rec[field])
		amount := Amount(value, percentage)
		total, _ := decimal.NewFromFloat(value).
			Add(decimal.NewFromFloat(amount)).
			Round(2).
			Float64()

		enriched["GST Amount"] = amount
		enriched["Total Amount"] = total
		out[i] = enriched
	}
	return out
}

// numericValue coerces the loose types a MongoDB document can hold into a
// float64, returning zero for anything non-numeric.
func numericValue(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
