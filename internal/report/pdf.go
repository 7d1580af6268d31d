package report

import (
	"bytes"
	"fmt"

	"github.com/adamanr/workforce_service/internal/employee"
	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin   = 10.0
	rowHeight    = 7.0
	headerHeight = 8.0
	fontFamily   = "Helvetica"
)

// expiryColors highlight the expiry date cell by bucket.
var expiryColors = map[int][3]int{
	int(employee.BucketWeek):      {255, 204, 153},
	int(employee.BucketMonth):     {255, 229, 153},
	int(employee.BucketSixMonths): {204, 229, 255},
	int(employee.BucketExpired):   {255, 153, 153},
}

// EmployeeListPDF renders the printable employee list.
func EmployeeListPDF(sheet entity.PrintSheet) ([]byte, error) {
	columns := Columns(sheet.Columns, sheet.Role)
	if len(columns) == 0 {
		return nil, fmt.Errorf("no printable columns")
	}

	pdf := gofpdf.New("L", "mm", "A3", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	header := func() {
		pdf.SetFont(fontFamily, "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range columns {
			pdf.CellFormat(c.Width, headerHeight, tr(c.Title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(fontFamily, "", 8)
	}

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})

	pdf.AddPage()
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, tr(sheet.CompanyName), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Employee list (%d)", len(sheet.Rows))), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	header()

	for _, row := range sheet.Rows {
		for _, c := range columns {
			fill := false
			if c.Key == "employeeWorkPermitExpiryDate" {
				if rgb, ok := expiryColors[row.ExpiryStatus]; ok {
					pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
					fill = true
				}
			}
			pdf.CellFormat(c.Width, rowHeight, tr(clip(pdf, c.Value(row), c.Width)), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render employee list: %w", err)
	}

	return buf.Bytes(), nil
}

// clip shortens text so it fits a cell of the given width.
func clip(pdf *gofpdf.Fpdf, text string, width float64) string {
	const padding = 2.0
	if pdf.GetStringWidth(text) <= width-padding {
		return text
	}

	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width-padding {
		runes = runes[:len(runes)-1]
	}

	return string(runes) + "..."
}
