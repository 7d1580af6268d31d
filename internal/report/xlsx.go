package report

import (
	"fmt"

	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Employees"

// EmployeeListXLSX renders the employee list as a workbook with one sheet.
func EmployeeListXLSX(sheet entity.PrintSheet) ([]byte, error) {
	columns := Columns(sheet.Columns, sheet.Role)
	if len(columns) == 0 {
		return nil, fmt.Errorf("no printable columns")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetCellValue(sheetName, "A1", sheet.CompanyName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	const headerRow = 3
	for i, c := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, c.Title); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}

		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, colName, colName, c.Width/2); err != nil {
			return nil, err
		}
	}

	for r, row := range sheet.Rows {
		for i, c := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, headerRow+1+r)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, c.Value(row)); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
