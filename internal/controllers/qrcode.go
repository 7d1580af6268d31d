package controllers

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adamanr/workforce_service/internal/config"
	"github.com/adamanr/workforce_service/internal/employee"
	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/adamanr/workforce_service/internal/report"
	"github.com/google/uuid"
)

const qrEmployeesQuery = "SELECT " + employeeColumns + ` FROM employees e
	WHERE e.employee_id = ANY($1) AND e.is_delete = 0 ORDER BY e.employee_id`

func qrPayload(emp *entity.Employee) entity.QRPayload {
	return entity.QRPayload{
		EmployeeID:           emp.ID,
		EmployeeName:         employee.Deref(emp.Name),
		EmployeeMobileNo:     employee.Deref(emp.MobileNo),
		EmployeeFinNricNo:    employee.Deref(emp.MaskFinNricNo),
		EmployeeWorkPermitNo: employee.Deref(emp.WorkPermitNo),
	}
}

// GenerateQRCode renders and stores the QR code of an employee.
func (c *EmployeeController) GenerateQRCode(ctx context.Context, caller entity.Caller, meta entity.RequestMeta, id uint64) (string, error) {
	emp, err := c.fetchEmployee(ctx, id, 0)
	if err != nil {
		return "", err
	}

	qrCode, err := report.QRCodeDataURL(qrPayload(emp))
	if err != nil {
		c.deps.Logger.Error("Error generating qr code", slog.String("error", err.Error()))
		return "", err
	}

	if _, err := c.deps.DB.Exec(ctx,
		"UPDATE employees SET qr_code = $1, qr_generated_status = 1 WHERE employee_id = $2",
		qrCode, id,
	); err != nil {
		c.deps.Logger.Error("Error storing qr code", slog.String("error", err.Error()))
		return "", err
	}
	c.deps.Metrics.documentRendered("qr_code")

	c.recordAudit(ctx, caller, meta, "Successfully generated the qr code.",
		"Qr code for employee "+employee.Deref(emp.Name)+" was generated successfully.",
		map[string]any{"qrCodeData": qrCode},
	)

	return qrCode, nil
}

// QRCodesPrintView writes a sheet of QR code labels, copiesCount per employee,
// into the reports directory.
func (c *EmployeeController) QRCodesPrintView(ctx context.Context, req *entity.QRPrintRequest) (*entity.QRPrintResult, error) {
	ids := parseIDs(req.EmployeeIDs)
	if len(ids) == 0 {
		return nil, ErrEmployeeIDsRequired
	}
	if req.CopiesCount <= 0 {
		return nil, ErrCopiesCountRequired
	}
	if req.CopiesCount > c.maxQRCopies() {
		return nil, ErrCopiesCountTooLarge
	}

	employees, err := c.fetchEmployees(ctx, qrEmployeesQuery, ids)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, ErrEmployeesListEmpty
	}

	labels := make([]entity.QRLabel, 0, len(employees)*req.CopiesCount)
	for i := range employees {
		emp := &employees[i]

		qrCode := employee.Deref(emp.QRCode)
		if qrCode == "" {
			if qrCode, err = report.QRCodeDataURL(qrPayload(emp)); err != nil {
				c.deps.Logger.Error("Error generating qr code", slog.String("error", err.Error()))
				return nil, err
			}
		}

		label := entity.QRLabel{
			QRCode:        qrCode,
			EmployeeName:  employee.Deref(emp.Name),
			MaskFinNricNo: employee.Deref(emp.MaskFinNricNo),
		}
		for range req.CopiesCount {
			labels = append(labels, label)
		}
	}

	dir := c.deps.Config.Reports.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.deps.Logger.Error("Error creating reports dir", slog.String("error", err.Error()))
		return nil, err
	}

	fileName := uuid.NewString() + ".pdf"
	if err := report.WriteQRSheet(filepath.Join(dir, fileName), labels, report.LayoutFor(req.PageSizeType)); err != nil {
		c.deps.Logger.Error("Error writing qr code sheet", slog.String("error", err.Error()))
		return nil, err
	}
	c.deps.Metrics.documentRendered("qr_sheet")

	urlPath := c.deps.Config.Reports.URLPath
	return &entity.QRPrintResult{
		FileName: fileName,
		FilePath: urlPath,
		FullPath: c.deps.Config.Server.PublicURL + urlPath + fileName,
	}, nil
}

func (c *EmployeeController) maxQRCopies() int {
	if n := c.deps.Config.Reports.MaxQRCopies; n > 0 {
		return n
	}
	return config.DefaultMaxQRCopies
}

// parseIDs reads a comma separated id list, skipping blanks and non-numbers.
func parseIDs(raw string) []uint64 {
	var ids []uint64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil || id == 0 {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}
