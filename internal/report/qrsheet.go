package report

import (
	"bytes"
	"fmt"

	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

// Layout is the label grid of one QR code sheet.
type Layout struct {
	Columns int
	Rows    int
}

// LayoutFor maps pageSizeType to a grid: 2 prints large 3x3 labels, anything
// else prints the 6x4 sheet (six rows of four).
func LayoutFor(pageSizeType int) Layout {
	if pageSizeType == 2 {
		return Layout{Columns: 3, Rows: 3}
	}

	return Layout{Columns: 4, Rows: 6}
}

// WriteQRSheet renders the labels onto A3 pages and writes the PDF to path.
func WriteQRSheet(path string, labels []entity.QRLabel, layout Layout) error {
	if len(labels) == 0 {
		return fmt.Errorf("no qr labels")
	}

	const margin = 15.0

	pdf := gofpdf.New("P", "mm", "A3", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	cellW := (pageW - 2*margin) / float64(layout.Columns)
	cellH := (pageH - 2*margin) / float64(layout.Rows)
	textH := 6.0
	side := min(cellW, cellH-2*textH) * 0.85

	perPage := layout.Columns * layout.Rows
	for i, label := range labels {
		if i%perPage == 0 {
			pdf.AddPage()
		}

		slot := i % perPage
		x := margin + float64(slot%layout.Columns)*cellW
		y := margin + float64(slot/layout.Columns)*cellH

		if png, err := DecodePNGDataURL(label.QRCode); err == nil {
			name := fmt.Sprintf("qr-%d", i)
			pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
			pdf.ImageOptions(name, x+(cellW-side)/2, y, side, side, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}

		pdf.SetXY(x, y+side+1)
		pdf.SetFont(fontFamily, "B", 10)
		pdf.CellFormat(cellW, textH, tr(label.EmployeeName), "", 2, "C", false, 0, "")
		pdf.SetFont(fontFamily, "", 9)
		pdf.CellFormat(cellW, textH, tr(label.MaskFinNricNo), "", 0, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write qr sheet: %w", err)
	}

	return nil
}
