package gstr3b

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

// Render produces the fixed-layout GSTR-3B PDF for an assembled report.
// Section tables appear in filing order and every numeric cell carries the
// already-rounded two-decimal value; heads that structurally do not apply to
// a row render as empty cells, not zeros.
func Render(r *Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("")

	generated := time.Now().Format("02/01/2006 15:04:05")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(91, 6, "Generated on: "+generated, "", 0, "L", false, 0, "")
		pdf.CellFormat(91, 6, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, "GSTR-3B Report", "", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 10)
	tradeName := r.Header.TradeName
	if tradeName == "" {
		tradeName = "N/A"
	}
	headerLines := []string{
		"GSTIN: " + r.Header.GSTIN,
		"Legal Name: " + r.Header.LegalName,
		"Trade Name: " + tradeName,
		fmt.Sprintf("Period: %d/%d", r.Header.Period.Month, r.Header.Period.Year),
		"ARN: " + r.Header.ARN,
		"Date of ARN: " + r.Header.ARNDate,
		"Authorized Signatory: " + r.Header.AuthorizedSignatory.Name,
	}
	for _, line := range headerLines {
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}

	d := &pdfDoc{pdf: pdf}

	sixCols := []float64{72, 22, 22, 22, 22, 22}
	supplyHead := []string{"Nature of Supplies", "Taxable Value", "IGST", "CGST", "SGST", "CESS"}

	d.section("3.1 Outward and inward supplies")
	d.table(supplyHead, sixCols, [][]string{
		supplyRow("(a) Outward taxable supplies", r.Section31.OutwardTaxable),
		{"(b) Outward taxable supplies (zero rated)",
			amount(r.Section31.OutwardZero.TaxableValue),
			amount(r.Section31.OutwardZero.Integrated),
			"", "",
			amount(r.Section31.OutwardZero.Cess)},
		{"(c) Other outward supplies (Nil rated, exempted)",
			amount(r.Section31.OutwardNilExempt.TaxableValue), "", "", "", ""},
		supplyRow("(d) Inward supplies (liable to reverse charge)", r.Section31.InwardReverseCharge),
		{"(e) Non-GST outward supplies",
			amount(r.Section31.NonGSTOutward.TaxableValue), "", "", "", ""},
	})

	d.section("3.1.1 Details regarding section 9(5) supplies")
	d.table(supplyHead, sixCols, [][]string{
		supplyRow("Supplies through e-commerce operators", r.Section311.EcommerceOperator),
	})

	d.section("3.2 Inter-state supplies")
	d.table(supplyHead, sixCols, [][]string{
		supplyRow("Supplies to unregistered persons", r.Section32.Unregistered),
		supplyRow("Supplies to composition taxable persons", r.Section32.Composition),
		supplyRow("Supplies to UIN holders", r.Section32.UIN),
	})

	fiveCols := []float64{74, 27, 27, 27, 27}
	headsHead := []string{"Details", "IGST", "CGST", "SGST", "CESS"}

	itc := r.Section4.ITC
	d.section("4. Input Tax Credit (ITC)")
	d.table(headsHead, fiveCols, [][]string{
		headsRow("(A) ITC Available (eligible)", itc.Eligible.Total()),
		headsRow("(B) ITC Reversed", itc.Reversed.Total()),
		headsRow("(C) Net ITC Available (A-B)", itc.Net),
	})

	d.section("5. Exempt, nil-rated and non-GST inward supplies")
	d.table(
		[]string{"Nature of supplies", "Inter-State supplies", "Intra-State supplies"},
		[]float64{82, 50, 50},
		[][]string{
			{"Exempt supplies",
				amount(r.Section5.ExemptNilNonGST.Exempt.Interstate),
				amount(r.Section5.ExemptNilNonGST.Exempt.Intrastate)},
			{"Nil-rated supplies",
				amount(r.Section5.ExemptNilNonGST.NilRated.Interstate),
				amount(r.Section5.ExemptNilNonGST.NilRated.Intrastate)},
			{"Non-GST supplies",
				amount(r.Section5.ExemptNilNonGST.NonGST.Interstate),
				amount(r.Section5.ExemptNilNonGST.NonGST.Intrastate)},
		})

	d.section("5.1 Interest and Late Fees")
	d.table(headsHead, fiveCols, [][]string{
		headsRow("Interest", r.Section51.Interest.Paid),
		headsRow("Late Fee", r.Section51.LateFee),
	})

	pay := r.Section6.Payment
	d.section("6. Payment of tax")
	d.table([]string{"Description", "IGST", "CGST", "SGST", "CESS"}, fiveCols, [][]string{
		{"(a) Tax paid through Cash",
			amount(pay.Tax.Integrated.Cash),
			amount(pay.Tax.Central.Cash),
			amount(pay.Tax.State.Cash),
			amount(pay.Tax.Cess.Cash)},
		{"(b) Tax paid through ITC",
			amount(pay.Tax.Integrated.ITC),
			amount(pay.Tax.Central.ITC),
			amount(pay.Tax.State.ITC),
			amount(pay.Tax.Cess.ITC)},
		headsRow("(c) Interest paid", pay.Interest),
		headsRow("(d) Late fee paid", pay.LateFee),
	})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render gstr3b pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfDoc struct {
	pdf *fpdf.Fpdf
}

func (d *pdfDoc) section(title string) {
	d.pdf.Ln(4)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
}

func (d *pdfDoc) table(head []string, widths []float64, rows [][]string) {
	d.pdf.SetFont("Helvetica", "B", 8)
	d.pdf.SetFillColor(66, 66, 66)
	d.pdf.SetTextColor(255, 255, 255)
	for i, h := range head {
		d.pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)

	d.pdf.SetFont("Helvetica", "", 8)
	d.pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, cell := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			d.pdf.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		d.pdf.Ln(-1)
	}
}

func supplyRow(label string, t SupplyTotals) []string {
	return []string{
		label,
		amount(t.TaxableValue),
		amount(t.Integrated),
		amount(t.Central),
		amount(t.State),
		amount(t.Cess),
	}
}

func headsRow(label string, h Heads) []string {
	return []string{
		label,
		amount(h.Integrated),
		amount(h.Central),
		amount(h.State),
		amount(h.Cess),
	}
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
