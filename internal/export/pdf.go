package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// ToPDF writes records as a paginated table titled after the export name,
// with a page number on every page.
func ToPDF(records []map[string]any, title string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(true, 16)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "L", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, title+" - Data Export", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	cols := Columns(records)
	colWidth := 182.0 / float64(len(cols))

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	for _, col := range cols {
		pdf.CellFormat(colWidth, 7, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, rec := range records {
		for _, col := range cols {
			pdf.CellFormat(colWidth, 6, CellString(rec[col]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render export pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// surcharge column names appended by the GST calculator; the receipt renders
// them in a separate details block.
const (
	colGSTAmount     = "GST Amount"
	colGSTPercentage = "GST Percentage"
	colTotalAmount   = "Total Amount"
)

// Receipt renders a single document as an A4 PDF receipt. Surcharge columns,
// when present, appear in their own details block below the field table.
func Receipt(doc map[string]any, documentID string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 24)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, "RECEIPT", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Date: "+time.Now().Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Receipt ID: "+documentID, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	x, y := pdf.GetXY()
	pdf.Line(x, y, 190, y)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Item Details", "", 1, "L", false, 0, "")
	pdf.Ln(1)

	receiptTable(pdf, []string{"Field", "Value"}, fieldRows(doc), true)

	if _, ok := doc[colGSTAmount]; ok {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, "GST Details", "", 1, "L", false, 0, "")
		pdf.Ln(1)

		receiptTable(pdf, nil, [][]string{
			{colGSTPercentage, CellString(doc[colGSTPercentage]) + "%"},
			{colGSTAmount, "Rs. " + CellString(doc[colGSTAmount])},
			{colTotalAmount, "Rs. " + CellString(doc[colTotalAmount])},
		}, false)
	}

	pdf.SetY(-36)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Thank you for your business!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// fieldRows lists the document's own fields, skipping the identifier and the
// surcharge columns shown elsewhere on the receipt.
func fieldRows(doc map[string]any) [][]string {
	skip := map[string]bool{
		"_id":            true,
		colGSTAmount:     true,
		colGSTPercentage: true,
		colTotalAmount:   true,
	}
	var rows [][]string
	for _, col := range Columns([]map[string]any{doc}) {
		if skip[col] {
			continue
		}
		rows = append(rows, []string{col, CellString(doc[col])})
	}
	return rows
}

func receiptTable(pdf *fpdf.Fpdf, head []string, rows [][]string, striped bool) {
	if head != nil {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(66, 66, 66)
		pdf.SetTextColor(255, 255, 255)
		for _, h := range head {
			pdf.CellFormat(85, 7, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(240, 240, 240)
	for i, row := range rows {
		fill := striped && i%2 == 1
		for _, cell := range row {
			pdf.CellFormat(85, 7, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}
}
