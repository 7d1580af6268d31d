package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adamanr/workforce_service/internal/employee"
	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/jackc/pgx/v5"
)

// OwnEmployeeAdminName is the admin name of employees created by a project admin.
const OwnEmployeeAdminName = "Own Employee"

const insertEmployeeQuery = `INSERT INTO employees AS e (
	employee_name, employee_dob, employee_mobile_no, employee_country_id, employee_country_name,
	employee_fin_nric_no, employee_mask_fin_nric_no, employee_work_permit_no, employee_mask_work_permit_no,
	employee_work_permit_expiry_date, employee_company_id, project_id, employee_postal_code,
	employee_street_name, employee_address, address_country, employee_admin_name, designation_id,
	designation_name, remarks, email_id, contact_number, site, subcon, keyword, is_active,
	qr_generated_status, is_delete, is_invalid, is_temporary, created_by, created_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
	$21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32)
	RETURNING ` + employeeColumns

const updateEmployeeQuery = `UPDATE employees AS e SET
	employee_name = $1, employee_dob = $2, employee_mobile_no = $3, employee_country_id = $4,
	employee_country_name = $5, employee_fin_nric_no = $6, employee_mask_fin_nric_no = $7,
	employee_work_permit_no = $8, employee_mask_work_permit_no = $9, employee_work_permit_expiry_date = $10,
	employee_company_id = $11, project_id = $12, employee_postal_code = $13, employee_street_name = $14,
	employee_address = $15, address_country = $16, employee_admin_name = $17, designation_id = $18,
	designation_name = $19, remarks = $20, email_id = $21, contact_number = $22, site = $23, subcon = $24,
	keyword = $25, is_active = $26, is_invalid = 0, modified_by = $27, modified_date = $28,
	violation_modified_date = $28
	WHERE e.employee_id = $29 AND e.is_delete = 0
	RETURNING ` + employeeColumns

const enableEmployeeQuery = `UPDATE employees SET is_delete = 0, modified_by = $1, modified_date = $2
	WHERE employee_id = $3 AND is_delete = 1`

type EmployeeController struct {
	deps *Dependens
}

func NewEmployeeController(deps *Dependens) *EmployeeController {
	return &EmployeeController{
		deps: deps,
	}
}

// AddEmployee validates, checks quota and uniqueness, then stores a new employee.
func (c *EmployeeController) AddEmployee(ctx context.Context, caller entity.Caller, meta entity.RequestMeta, req *entity.EmployeeRequest) (*entity.Employee, error) {
	if err := ValidateEmployeeRequest(req); err != nil {
		c.deps.Logger.Warn("Invalid employee request", slog.String("error", err.Error()))
		return nil, err
	}

	companyID := resolveCompanyID(caller, req.EmployeeCompanyID)

	if err := c.checkQuota(ctx, caller, derefID(companyID), quotaCreate); err != nil {
		return nil, err
	}

	if err := c.checkUnique(ctx, identity{
		companyID:  companyID,
		finNric:    req.EmployeeFinNricNo,
		workPermit: strings.TrimSpace(req.EmployeeWorkPermitNo),
		email:      strings.TrimSpace(req.EmailID),
	}); err != nil {
		return nil, err
	}

	emp := entity.Employee{CompanyID: companyID}
	if err := c.normalize(ctx, caller, req, &emp); err != nil {
		return nil, err
	}

	switch {
	case caller.Role == entity.RoleProjectAdmin:
		emp.ProjectID = nonZero(caller.ProjectID)
	default:
		emp.ProjectID = nonZero(caller.EmployeeProjectID)
	}
	emp.CreatedBy = nonZero(caller.UserID)
	emp.CreatedDate = c.deps.Now()

	args := append(writeArgs(&emp), 0, 0, 0, 0, emp.CreatedBy, emp.CreatedDate)

	created, err := c.writeEmployee(ctx, insertEmployeeQuery, args...)
	if err != nil {
		return nil, err
	}

	c.recordAudit(ctx, caller, meta, "Employee created successfully",
		employee.Deref(created.Name)+" employee was created successfully.",
		map[string]any{"employeeDetail": created},
	)

	return created, nil
}

// EditEmployee updates an employee that is not soft-deleted. Re-validating an
// invalid employee (fromInvalid=1) counts against the company quota again.
func (c *EmployeeController) EditEmployee(ctx context.Context, caller entity.Caller, meta entity.RequestMeta, id uint64, req *entity.EmployeeRequest) (*entity.Employee, error) {
	if err := ValidateEmployeeRequest(req); err != nil {
		c.deps.Logger.Warn("Invalid employee request", slog.String("error", err.Error()))
		return nil, err
	}

	existing, err := c.fetchEmployee(ctx, id, 0)
	if err != nil {
		return nil, err
	}

	companyID := existing.CompanyID
	if req.EmployeeCompanyID != nil && *req.EmployeeCompanyID > 0 {
		companyID = req.EmployeeCompanyID
	}

	if req.FromInvalid == 1 {
		if err := c.checkQuota(ctx, caller, derefID(companyID), quotaEdit); err != nil {
			return nil, err
		}
	}

	if err := c.checkUnique(ctx, identity{
		companyID:  companyID,
		finNric:    req.EmployeeFinNricNo,
		workPermit: strings.TrimSpace(req.EmployeeWorkPermitNo),
		email:      strings.TrimSpace(req.EmailID),
		excludeID:  id,
	}); err != nil {
		return nil, err
	}

	emp := *existing
	emp.CompanyID = companyID
	if err := c.normalize(ctx, caller, req, &emp); err != nil {
		return nil, err
	}

	now := c.deps.Now()
	emp.ModifiedBy = nonZero(caller.UserID)

	args := append(writeArgs(&emp), emp.ModifiedBy, now, id)

	updated, err := c.writeEmployee(ctx, updateEmployeeQuery, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidEmployeeID
		}
		return nil, err
	}

	c.recordAudit(ctx, caller, meta, "Employee updated successfully",
		"Employee "+employee.Deref(updated.Name)+" was updated successfully.",
		map[string]any{"employeeDetails": updated},
	)

	return updated, nil
}

// EnableEmployee restores a soft-deleted employee after re-running the quota
// and uniqueness checks against its stored values.
func (c *EmployeeController) EnableEmployee(ctx context.Context, caller entity.Caller, meta entity.RequestMeta, id uint64) error {
	existing, err := c.fetchEmployee(ctx, id, 1)
	if err != nil {
		return err
	}

	if err := c.checkQuota(ctx, caller, derefID(existing.CompanyID), quotaEnable); err != nil {
		return err
	}

	if err := c.checkUnique(ctx, identity{
		companyID:  existing.CompanyID,
		finNric:    employee.Deref(existing.FinNricNo),
		workPermit: strings.TrimSpace(employee.Deref(existing.WorkPermitNo)),
		email:      strings.TrimSpace(employee.Deref(existing.EmailID)),
		excludeID:  id,
	}); err != nil {
		return err
	}

	tag, err := c.deps.DB.Exec(ctx, enableEmployeeQuery, nonZero(caller.UserID), c.deps.Now(), id)
	if err != nil {
		c.deps.Logger.Error("Error enabling employee", slog.String("error", err.Error()))
		return mapWriteError(err)
	}

	if tag.RowsAffected() == 0 {
		c.deps.Logger.Warn("Employee not enabled", slog.Uint64("employee_id", id))
		return ErrInvalidEmployeeID
	}

	c.recordAudit(ctx, caller, meta, "Employee enabled successfully",
		"Employee "+employee.Deref(existing.Name)+" was enabled successfully.",
		nil,
	)

	return nil
}

func (c *EmployeeController) writeEmployee(ctx context.Context, sql string, args ...any) (*entity.Employee, error) {
	rows, err := c.deps.DB.Query(ctx, sql, args...)
	if err != nil {
		c.deps.Logger.Error("Error writing employee", slog.String("error", err.Error()))
		return nil, mapWriteError(err)
	}
	defer rows.Close()

	emp, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[entity.Employee])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}

		c.deps.Logger.Error("Error collecting written employee", slog.String("error", err.Error()))
		return nil, mapWriteError(err)
	}

	return &emp, nil
}

// normalize copies a request onto emp the way it is stored: title-cased name,
// upper-cased national ID, computed masks, sanitized free text, the address as
// JSON and the site names as keyword.
func (c *EmployeeController) normalize(ctx context.Context, caller entity.Caller, req *entity.EmployeeRequest, emp *entity.Employee) error {
	name := employee.TitleCase(c.sanitize(req.EmployeeName))
	finNric := strings.ToUpper(strings.TrimSpace(req.EmployeeFinNricNo))
	workPermit := strings.TrimSpace(req.EmployeeWorkPermitNo)

	emp.Name = &name
	emp.Dob = optionalDate(req.EmployeeDob)
	emp.MobileNo = nullable(strings.TrimSpace(req.EmployeeMobileNo))
	emp.CountryID = nonZero(req.EmployeeCountryID)
	emp.FinNricNo = &finNric
	emp.MaskFinNricNo = nullable(employee.MaskFinNric(finNric))
	emp.WorkPermitNo = nullable(workPermit)
	emp.MaskWorkPermitNo = nullable(employee.MaskWorkPermit(workPermit))
	emp.WorkPermitExpiryDate = optionalDate(req.EmployeeWorkPermitExpiryDate)
	emp.PostalCode = nullable(strings.TrimSpace(req.EmployeePostalCode))
	emp.StreetName = nullable(c.sanitize(req.EmployeeStreetName))
	emp.AddressCountry = nullable(c.sanitize(req.AddressCountry))
	emp.DesignationID = req.DesignationID
	emp.DesignationName = nullable(c.sanitize(req.DesignationName))
	emp.Remarks = nullable(c.sanitize(req.Remarks))
	emp.EmailID = nullable(strings.TrimSpace(req.EmailID))
	emp.ContactNumber = nullable(strings.TrimSpace(req.ContactNumber))
	emp.Site = nullable(strings.TrimSpace(req.Site))
	emp.Subcon = req.Subcon
	emp.IsActive = req.IsActive

	if caller.Role == entity.RoleProjectAdmin {
		emp.AdminName = nullable(OwnEmployeeAdminName)
	} else {
		emp.AdminName = nullable(c.sanitize(req.EmployeeAdminName))
	}

	countryName := c.sanitize(req.EmployeeCountryName)
	if countryName == "" {
		var err error
		if countryName, err = c.countryName(ctx, req.EmployeeCountryID); err != nil {
			return err
		}
	}
	emp.CountryName = nullable(countryName)

	if req.EmployeeAddress != nil {
		address, err := employee.EncodeAddress(req.EmployeeAddress)
		if err != nil {
			c.deps.Logger.Error("Error encoding address", slog.String("error", err.Error()))
			return fmt.Errorf("encode address: %w", err)
		}
		emp.Address = address
	}

	keyword, err := c.siteNames(ctx, emp.Site)
	if err != nil {
		return err
	}
	if keyword != "" {
		emp.Keyword = &keyword
	}

	return nil
}

func (c *EmployeeController) sanitize(value string) string {
	return strings.TrimSpace(c.deps.Sanitizer.Sanitize(strings.TrimSpace(value)))
}

// writeArgs are the positional values shared by insert and update.
func writeArgs(emp *entity.Employee) []any {
	return []any{
		emp.Name, emp.Dob, emp.MobileNo, emp.CountryID, emp.CountryName,
		emp.FinNricNo, emp.MaskFinNricNo, emp.WorkPermitNo, emp.MaskWorkPermitNo,
		emp.WorkPermitExpiryDate, emp.CompanyID, emp.ProjectID, emp.PostalCode,
		emp.StreetName, emp.Address, emp.AddressCountry, emp.AdminName, emp.DesignationID,
		emp.DesignationName, emp.Remarks, emp.EmailID, emp.ContactNumber, emp.Site, emp.Subcon,
		emp.Keyword, emp.IsActive,
	}
}

// resolveCompanyID picks the owning company of a new employee: the requested
// one, else the caller's own employee company, else a company admin's company.
func resolveCompanyID(caller entity.Caller, requested *uint64) *uint64 {
	switch {
	case requested != nil && *requested > 0:
		return requested
	case caller.EmployeeCompanyID > 0:
		return nonZero(caller.EmployeeCompanyID)
	case caller.Role == entity.RoleCompanyAdmin:
		return nonZero(caller.CompanyID)
	default:
		return nil
	}
}

func nonZero(v uint64) *uint64 {
	if v == 0 {
		return nil
	}
	return &v
}

func derefID(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
