package report

import (
	"strconv"

	"github.com/adamanr/workforce_service/internal/entity"
)

// Column is one printable column of the employee list.
type Column struct {
	Key   string
	Title string
	Width float64
	Value func(r entity.PrintRow) string
}

var allColumns = []Column{
	{Key: "sNo", Title: "S.No", Width: 12, Value: func(r entity.PrintRow) string { return strconv.Itoa(r.SNo) }},
	{Key: "employeeName", Title: "Name", Width: 40, Value: func(r entity.PrintRow) string { return r.EmployeeName }},
	{Key: "employeeFinNricNo", Title: "FIN/NRIC No", Width: 28, Value: func(r entity.PrintRow) string { return r.EmployeeFinNricNo }},
	{Key: "employeeWorkPermitNo", Title: "Work Permit No", Width: 30, Value: func(r entity.PrintRow) string { return r.EmployeeWorkPermitNo }},
	{Key: "employeeWorkPermitExpiryDate", Title: "Expiry Date", Width: 24, Value: func(r entity.PrintRow) string { return r.WorkPermitExpiryDate }},
	{Key: "employeeDob", Title: "DOB", Width: 22, Value: func(r entity.PrintRow) string { return r.EmployeeDob }},
	{Key: "employeeMobileNo", Title: "Mobile No", Width: 26, Value: func(r entity.PrintRow) string { return r.EmployeeMobileNo }},
	{Key: "employeeCountryName", Title: "Nationality", Width: 26, Value: func(r entity.PrintRow) string { return r.EmployeeCountryName }},
	{Key: "designationName", Title: "Designation", Width: 30, Value: func(r entity.PrintRow) string { return r.DesignationName }},
	{Key: "companyName", Title: "Company", Width: 36, Value: func(r entity.PrintRow) string { return r.CompanyName }},
	{Key: "address", Title: "Address", Width: 60, Value: func(r entity.PrintRow) string { return r.Address }},
	{Key: "contactNumber", Title: "Contact No", Width: 26, Value: func(r entity.PrintRow) string { return r.ContactNumber }},
	{Key: "emailId", Title: "Email", Width: 40, Value: func(r entity.PrintRow) string { return r.EmailID }},
	{Key: "site", Title: "Site", Width: 30, Value: func(r entity.PrintRow) string { return r.Site }},
	{Key: "subcon", Title: "Subcon", Width: 30, Value: func(r entity.PrintRow) string { return r.Subcon }},
	{Key: "isActive", Title: "Status", Width: 18, Value: func(r entity.PrintRow) string { return r.IsActive }},
}

var defaultColumns = []string{
	"sNo", "employeeName", "employeeFinNricNo", "employeeWorkPermitNo",
	"employeeWorkPermitExpiryDate", "companyName", "designationName", "isActive",
}

// Columns resolves the requested column keys in request order, skipping
// unknown keys. With no keys the default set is used; company admins only
// see their own company so the company column is left out of their default.
func Columns(keys []string, role entity.Role) []Column {
	if len(keys) == 0 {
		for _, k := range defaultColumns {
			if role == entity.RoleCompanyAdmin && k == "companyName" {
				continue
			}
			keys = append(keys, k)
		}
	}

	byKey := make(map[string]Column, len(allColumns))
	for _, c := range allColumns {
		byKey[c.Key] = c
	}

	out := make([]Column, 0, len(keys))
	for _, k := range keys {
		if c, ok := byKey[k]; ok {
			out = append(out, c)
		}
	}

	return out
}
