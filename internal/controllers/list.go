package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/adamanr/workforce_service/internal/employee"
	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/adamanr/workforce_service/internal/query"
	"github.com/adamanr/workforce_service/internal/report"
	"golang.org/x/sync/errgroup"
)

const printRowColumns = employeeColumns + `,
	cd.company_name, sd.subcon_name, ep.company_nick_name AS project_company_nick_name`

var printJoins = []query.Join{query.JoinCompanyDetails, query.JoinSubconDetails, query.JoinEmployeeProject}

// EmployeeList returns the quota counters and either the page of employees
// matching the parameters or, in count mode, how many there are.
func (c *EmployeeController) EmployeeList(ctx context.Context, caller entity.Caller, p entity.ListParams) (*entity.EmployeeList, error) {
	w := employee.NewWindows(c.deps.Now())
	filter := query.EmployeeFilters(caller, p, w)

	order := query.OrderIDDesc
	if p.OrderBy != nil {
		order = query.Order(*p.OrderBy)
	}
	if p.IsSafetyViolationList != nil && *p.IsSafetyViolationList == 1 {
		order = query.OrderViolationChanged
	}

	listing := query.Listing{
		From:    query.EmployeesTable,
		Columns: employeeRowColumns,
		Joins:   query.EmployeeJoins,
		Where:   filter.Where,
		Search:  filter.Search,
		Order:   order,
		Limit:   intValue(p.Limit),
		Offset:  intValue(p.Offset),
	}

	counts, err := c.recordCounts(ctx, caller)
	if err != nil {
		return nil, err
	}

	result := &entity.EmployeeList{RecordCounts: counts}

	if p.Count != nil && *p.Count {
		n, err := c.count(ctx, listing)
		if err != nil {
			return nil, err
		}
		result.EmployeeListCount = &n

		return result, nil
	}

	rows, err := c.listEmployeeRows(ctx, listing)
	if err != nil {
		return nil, err
	}

	masked := p.MaskStatus != nil && *p.MaskStatus == 1
	items := make([]entity.EmployeeListItem, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallel())
	for i := range rows {
		g.Go(func() error {
			item, err := c.listItem(gctx, &rows[i], masked, w)
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.EmployeeList = items

	return result, nil
}

func (c *EmployeeController) listItem(ctx context.Context, row *entity.EmployeeRow, masked bool, w employee.Windows) (entity.EmployeeListItem, error) {
	total, approved, err := c.certificateCounts(ctx, row.ID)
	if err != nil {
		return entity.EmployeeListItem{}, err
	}

	violation, err := c.hasSafetyViolation(ctx, row.ID)
	if err != nil {
		return entity.EmployeeListItem{}, err
	}

	siteName, err := c.siteNames(ctx, row.Site)
	if err != nil {
		return entity.EmployeeListItem{}, err
	}

	finNric, maskFinNric := employee.Deref(row.FinNricNo), employee.Deref(row.MaskFinNricNo)
	workPermit := employee.Deref(row.WorkPermitNo)

	item := entity.EmployeeListItem{
		EmployeeID:             row.ID,
		EmployeeName:           employee.Deref(row.Name),
		EmployeeDob:            row.Dob,
		EmployeeMobileNo:       employee.Deref(row.MobileNo),
		EmployeeCountryID:      row.CountryID,
		EmployeeCountryName:    employee.Deref(row.CountryName),
		EmployeeFinNricNo:      finNric,
		FinNricNo:              finNric,
		MaskFinNricNo:          maskFinNric,
		EmployeeWorkPermitNo:   workPermit,
		WorkPermitExpiryDate:   row.WorkPermitExpiryDate,
		EmployeeCompanyID:      row.CompanyID,
		EmployeePostalCode:     employee.Deref(row.PostalCode),
		EmployeeAddress:        employee.ParseAddress(row.Address),
		EmployeeStreetName:     employee.Deref(row.StreetName),
		EmployeeAdminName:      employee.Deref(row.AdminName),
		EmployeeModifiedDate:   row.ModifiedDate,
		ContactNumber:          employee.Deref(row.ContactNumber),
		DesignationName:        employee.Deref(row.DesignationName),
		DesignationID:          row.DesignationID,
		EmailID:                employee.Deref(row.EmailID),
		AddressCountry:         employee.Deref(row.AddressCountry),
		ProfileImage:           employee.Deref(row.ProfileImage),
		Remarks:                employee.Deref(row.Remarks),
		IsActive:               row.IsActive,
		CompanyName:            employee.Deref(row.CompanyName),
		ProjectName:            employee.Deref(row.CompanyProjectTitle),
		DisplayName:            employee.DisplayName(row.ProjectTitle, row.CompanyProjectTitle, row.SubconName),
		ExpiryStatus:           int(w.Classify(row.WorkPermitExpiryDate)),
		QRCode:                 employee.Deref(row.QRCode),
		QRGeneratedStatus:      row.QRGeneratedStatus,
		ApprovalStatus:         employee.ApprovalStatus(total, approved),
		SubconName:             row.SubconName,
		SubconSlugName:         row.SubconSlugName,
		SiteName:               siteName,
		UserID:                 row.UserID,
		EmployeeProjectName:    employee.Deref(row.ProjectTitle),
		ProjectCompanyName:     employee.Deref(row.ProjectCompanyName),
		ProjectCompanyNickName: employee.Deref(row.ProjectCompanyNickName),
	}

	if masked {
		item.EmployeeFinNricNo = maskFinNric
		item.EmployeeWorkPermitNo = employee.Deref(row.MaskWorkPermitNo)
	}

	if path := employee.Deref(row.ProfileImagePath); path != "" {
		item.ProfileImagePath = c.deps.Config.Server.PublicURL + path
	}

	if violation {
		item.SafetyViolationStatus = 1
	}

	return item, nil
}

// recordCounts counts employees and machines in the caller's company and
// project. The counters a role has no scope for stay zero.
func (c *EmployeeController) recordCounts(ctx context.Context, caller entity.Caller) (entity.RecordCounts, error) {
	scope := query.ResolveScope(caller)

	var counts entity.RecordCounts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.CompanyEmployeeCount, err = c.countEmployees(gctx, scope.CompanyEmployees)
		return err
	})
	g.Go(func() (err error) {
		counts.ProjectEmployeeCount, err = c.countEmployees(gctx, scope.ProjectEmployees)
		return err
	})
	g.Go(func() (err error) {
		counts.CompanyMetsCount, err = c.countMachines(gctx, scope.CompanyMachines)
		return err
	})
	g.Go(func() (err error) {
		counts.ProjectMetsCount, err = c.countMachines(gctx, scope.ProjectMachines)
		return err
	})
	if err := g.Wait(); err != nil {
		return entity.RecordCounts{}, err
	}

	if caller.Role == entity.RoleCompanyAdmin || caller.Role == entity.RoleProjectAdmin {
		used := counts.CompanyEmployeeCount + counts.CompanyMetsCount
		counts.UsedRecords = &used
	}

	return counts, nil
}

// PrintSheet loads and formats the rows of the printed and exported lists.
// Approval status does not apply to them.
func (c *EmployeeController) PrintSheet(ctx context.Context, caller entity.Caller, p entity.ListParams) (*entity.PrintSheet, error) {
	columns, err := availableColumns(p.AvailableColumns)
	if err != nil {
		c.deps.Logger.Warn("Invalid availableColumns", slog.String("error", err.Error()))
		return nil, ErrInvalidAvailableColumns
	}

	p.ApprovalStatus = nil

	w := employee.NewWindows(c.deps.Now())
	filter := query.EmployeeFilters(caller, p, w)

	rows, err := c.listEmployeeRows(ctx, query.Listing{
		From:    query.EmployeesTable,
		Columns: printRowColumns,
		Joins:   printJoins,
		Where:   filter.Where,
		Search:  filter.Search,
		Order:   query.OrderIDDesc,
		Limit:   intValue(p.Limit),
		Offset:  intValue(p.Offset),
	})
	if err != nil {
		return nil, err
	}

	masked := p.MaskStatus != nil && *p.MaskStatus == 1

	var (
		mu        sync.Mutex
		printRows = make([]entity.PrintRow, 0, len(rows))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallel())
	for i := range rows {
		sNo := i + 1
		g.Go(func() error {
			row, err := c.printRow(gctx, &rows[i], sNo, masked, w)
			if err != nil {
				return err
			}

			mu.Lock()
			printRows = append(printRows, row)
			mu.Unlock()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(printRows, func(i, j int) bool {
		return printRows[i].SNo < printRows[j].SNo
	})

	companyName, err := c.sheetCompanyName(ctx, caller, rows)
	if err != nil {
		return nil, err
	}

	return &entity.PrintSheet{
		CompanyName: companyName,
		Role:        caller.Role,
		Columns:     columns,
		Rows:        printRows,
	}, nil
}

func (c *EmployeeController) printRow(ctx context.Context, row *entity.EmployeeRow, sNo int, masked bool, w employee.Windows) (entity.PrintRow, error) {
	siteName, err := c.siteNames(ctx, row.Site)
	if err != nil {
		return entity.PrintRow{}, err
	}

	address := employee.ParseAddress(row.Address)
	postalCode := employee.Deref(row.PostalCode)

	out := entity.PrintRow{
		SNo:                  sNo,
		EmployeeName:         employee.Deref(row.Name),
		EmployeeDob:          employee.FormatDate(row.Dob),
		EmployeeMobileNo:     employee.Deref(row.MobileNo),
		EmployeeCountryID:    row.CountryID,
		EmployeeCountryName:  employee.Deref(row.CountryName),
		EmployeeFinNricNo:    employee.Deref(row.FinNricNo),
		EmployeeWorkPermitNo: employee.Deref(row.WorkPermitNo),
		WorkPermitExpiryDate: employee.FormatDate(row.WorkPermitExpiryDate),
		EmployeeCompanyID:    row.CompanyID,
		DesignationName:      employee.Deref(row.DesignationName),
		EmployeePostalCode:   postalCode,
		EmployeeAddress:      address,
		EmployeeStreetName:   employee.Deref(row.StreetName),
		Address:              employee.AddressLine(address, employee.Deref(row.AddressCountry), postalCode),
		IsActive:             employee.ActiveLabel(row.IsActive),
		CompanyName:          employee.FirstNonEmpty(employee.Deref(row.CompanyName), employee.Deref(row.ProjectCompanyNickName)),
		ExpiryStatus:         int(w.Classify(row.WorkPermitExpiryDate)),
		ContactNumber:        employee.Deref(row.ContactNumber),
		EmailID:              employee.Deref(row.EmailID),
		Site:                 siteName,
		Subcon:               employee.Deref(row.SubconName),
	}

	if masked {
		out.EmployeeFinNricNo = employee.Deref(row.MaskFinNricNo)
		out.EmployeeWorkPermitNo = employee.Deref(row.MaskWorkPermitNo)
	}

	return out, nil
}

// sheetCompanyName heads the printed list with the caller's project title,
// else the company of the last row.
func (c *EmployeeController) sheetCompanyName(ctx context.Context, caller entity.Caller, rows []entity.EmployeeRow) (string, error) {
	if caller.ProjectID > 0 {
		title, err := c.projectTitle(ctx, caller.ProjectID)
		if err != nil {
			return "", err
		}
		if title != "" {
			return title, nil
		}
	}

	if len(rows) > 0 {
		if name := employee.Deref(rows[len(rows)-1].CompanyName); name != "" {
			return name, nil
		}
	}

	return OwnEmployeeAdminName, nil
}

// PrintEmployeeList renders the employee list as a PDF data URL.
func (c *EmployeeController) PrintEmployeeList(ctx context.Context, caller entity.Caller, p entity.ListParams) (string, error) {
	sheet, err := c.PrintSheet(ctx, caller, p)
	if err != nil {
		return "", err
	}

	pdf, err := report.EmployeeListPDF(*sheet)
	if err != nil {
		c.deps.Logger.Error("Error rendering employee list pdf", slog.String("error", err.Error()))
		return "", err
	}
	c.deps.Metrics.documentRendered("list_pdf")

	return report.DataURL(report.PDFDataURLPrefix, pdf), nil
}

// ExportEmployeeList renders the employee list as an XLSX data URL.
func (c *EmployeeController) ExportEmployeeList(ctx context.Context, caller entity.Caller, p entity.ListParams) (string, error) {
	sheet, err := c.PrintSheet(ctx, caller, p)
	if err != nil {
		return "", err
	}

	xlsx, err := report.EmployeeListXLSX(*sheet)
	if err != nil {
		c.deps.Logger.Error("Error rendering employee list xlsx", slog.String("error", err.Error()))
		return "", err
	}
	c.deps.Metrics.documentRendered("list_xlsx")

	return report.DataURL(report.XLSXDataURLPrefix, xlsx), nil
}

func availableColumns(raw *string) ([]string, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	var columns []string
	if err := json.Unmarshal([]byte(*raw), &columns); err != nil {
		return nil, err
	}
	if len(columns) > 0 && len(report.Columns(columns, "")) == 0 {
		return nil, fmt.Errorf("no known column in %v", columns)
	}

	return columns, nil
}

func (c *EmployeeController) parallel() int {
	if n := c.deps.Config.Reports.Parallel; n > 0 {
		return n
	}
	return 1
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
