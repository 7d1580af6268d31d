package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adamanr/workforce_service/internal/employee"
	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/adamanr/workforce_service/internal/query"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `e.employee_id, e.employee_name, e.employee_dob, e.employee_mobile_no,
	e.employee_country_id, e.employee_country_name, e.employee_fin_nric_no, e.employee_mask_fin_nric_no,
	e.employee_work_permit_no, e.employee_mask_work_permit_no, e.employee_work_permit_expiry_date,
	e.employee_company_id, e.project_id, e.employee_postal_code, e.employee_street_name, e.employee_address,
	e.address_country, e.employee_admin_name, e.designation_id, e.designation_name, e.remarks, e.email_id,
	e.contact_number, e.site, e.subcon, e.keyword, e.profile_image, e.profile_image_path, e.qr_code,
	e.qr_generated_status, e.is_active, e.is_delete, e.is_invalid, e.is_temporary, e.user_id,
	e.created_by, e.modified_by, e.created_date, e.modified_date, e.violation_modified_date`

const employeeRowColumns = employeeColumns + `,
	cd.company_name, cd.project_id AS company_project_id, cp.project_title AS company_project_title,
	sd.subcon_name, sd.slug_name AS subcon_slug_name, ep.project_title,
	ep.company_name AS project_company_name, ep.company_nick_name AS project_company_nick_name`

// fetchEmployee loads one employee with the given soft-delete flag.
func (c *EmployeeController) fetchEmployee(ctx context.Context, id uint64, isDelete int) (*entity.Employee, error) {
	rows, err := c.deps.DB.Query(ctx,
		"SELECT "+employeeColumns+" FROM employees e WHERE e.employee_id = $1 AND e.is_delete = $2", id, isDelete)
	if err != nil {
		c.deps.Logger.Error("Error querying employee", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	emp, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[entity.Employee])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.deps.Logger.Warn("Employee not found", slog.Uint64("employee_id", id), slog.Int("is_delete", isDelete))
			return nil, ErrInvalidEmployeeID
		}

		c.deps.Logger.Error("Error collecting employee", slog.String("error", err.Error()))
		return nil, err
	}

	return &emp, nil
}

func (c *EmployeeController) fetchEmployees(ctx context.Context, sql string, args ...any) ([]entity.Employee, error) {
	rows, err := c.deps.DB.Query(ctx, sql, args...)
	if err != nil {
		c.deps.Logger.Error("Error querying employees", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	employees, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[entity.Employee])
	if err != nil {
		c.deps.Logger.Error("Error collecting employees", slog.String("error", err.Error()))
		return nil, err
	}

	return employees, nil
}

func (c *EmployeeController) listEmployeeRows(ctx context.Context, l query.Listing) ([]entity.EmployeeRow, error) {
	sql, args := l.Select()

	rows, err := c.deps.DB.Query(ctx, sql, args...)
	if err != nil {
		c.deps.Logger.Error("Error querying employee list", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	list, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[entity.EmployeeRow])
	if err != nil {
		c.deps.Logger.Error("Error collecting employee list", slog.String("error", err.Error()))
		return nil, err
	}

	return list, nil
}

func (c *EmployeeController) count(ctx context.Context, l query.Listing) (int, error) {
	sql, args := l.Count()

	var n int
	if err := c.deps.DB.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		c.deps.Logger.Error("Error counting rows", slog.String("error", err.Error()))
		return 0, fmt.Errorf("count %s: %w", l.From, err)
	}

	return n, nil
}

// countEmployees counts active employees matching scope; a nil scope is not counted.
func (c *EmployeeController) countEmployees(ctx context.Context, scope query.Predicate) (int, error) {
	if scope == nil {
		return 0, nil
	}

	return c.count(ctx, query.Listing{
		From:  query.EmployeesTable,
		Joins: []query.Join{query.JoinCompanyDetails},
		Where: append(query.BaseFilters(), scope),
	})
}

// countMachines counts machines that are not deleted matching scope; a nil
// scope is not counted.
func (c *EmployeeController) countMachines(ctx context.Context, scope query.Predicate) (int, error) {
	if scope == nil {
		return 0, nil
	}

	return c.count(ctx, query.Listing{
		From:  query.MachinesTable,
		Joins: []query.Join{query.JoinMachineCompany},
		Where: []query.Predicate{query.Equals{Field: query.MachineIsDelete, Value: 0}, scope},
	})
}

func (c *EmployeeController) siteNames(ctx context.Context, site *string) (string, error) {
	ids := employee.SiteIDs(site)
	if len(ids) == 0 {
		return "", nil
	}

	rows, err := c.deps.DB.Query(ctx,
		"SELECT site_id, site_name FROM sites WHERE site_id = ANY($1) AND is_delete = 0 ORDER BY site_id", ids)
	if err != nil {
		c.deps.Logger.Error("Error querying sites", slog.String("error", err.Error()))
		return "", err
	}
	defer rows.Close()

	sites, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.Site])
	if err != nil {
		c.deps.Logger.Error("Error collecting sites", slog.String("error", err.Error()))
		return "", err
	}

	return employee.SiteNames(sites), nil
}

func (c *EmployeeController) countryName(ctx context.Context, countryID uint64) (string, error) {
	var name string
	err := c.deps.DB.QueryRow(ctx, "SELECT country_name FROM countries WHERE country_id = $1", countryID).Scan(&name)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		c.deps.Logger.Error("Error querying country", slog.String("error", err.Error()))
		return "", err
	}

	return name, nil
}

func (c *EmployeeController) projectTitle(ctx context.Context, projectID uint64) (string, error) {
	var title string
	err := c.deps.DB.QueryRow(ctx, "SELECT project_title FROM projects WHERE project_id = $1", projectID).Scan(&title)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		c.deps.Logger.Error("Error querying project", slog.String("error", err.Error()))
		return "", err
	}

	return title, nil
}

func (c *EmployeeController) company(ctx context.Context, companyID uint64) (*entity.Company, error) {
	rows, err := c.deps.DB.Query(ctx,
		"SELECT company_id, company_name, project_id, company_max_no_of_employees FROM companies WHERE company_id = $1", companyID)
	if err != nil {
		c.deps.Logger.Error("Error querying company", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	company, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[entity.Company])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidEmployeeCompanyID
		}

		c.deps.Logger.Error("Error collecting company", slog.String("error", err.Error()))
		return nil, err
	}

	return &company, nil
}

func (c *EmployeeController) certificateCounts(ctx context.Context, employeeID uint64) (int, int, error) {
	var total, approved int
	err := c.deps.DB.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $2)
		FROM employee_certificates WHERE employee_id = $1 AND is_delete = 0`,
		employeeID, query.CertificateApproved).Scan(&total, &approved)
	if err != nil {
		c.deps.Logger.Error("Error counting certificates", slog.String("error", err.Error()))
		return 0, 0, err
	}

	return total, approved, nil
}

func (c *EmployeeController) hasSafetyViolation(ctx context.Context, employeeID uint64) (bool, error) {
	var exists bool
	err := c.deps.DB.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM employee_safety_violations WHERE employee_id = $1 AND is_delete = 0)",
		employeeID).Scan(&exists)
	if err != nil {
		c.deps.Logger.Error("Error checking safety violations", slog.String("error", err.Error()))
		return false, err
	}

	return exists, nil
}
