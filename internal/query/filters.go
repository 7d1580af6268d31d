package query

import (
	"strconv"
	"strings"

	"github.com/adamanr/workforce_service/internal/employee"
	"github.com/adamanr/workforce_service/internal/entity"
)

// searchColumns maps search_0..search_17 to the fields each one matches.
var searchColumns = [entity.SearchColumns][]Field{
	{EmployeeName},
	{EmployeeFinNricNo},
	{EmployeeAdminName},
	{CompanyName, EmployeeAdminName, EmployeeProjectCompanyNickName},
	{EmployeeMaskFinNricNo},
	{EmployeeStreetName},
	{EmployeeCountryName},
	{EmployeeAddress},
	{EmployeeAddressCountry},
	{EmployeePostalCode},
	{EmployeeWorkPermitNo},
	{EmployeeDob},
	{EmployeeWorkPermitExpiryDate},
	{SubconName},
	{EmployeeContactNumber},
	{EmployeeEmailID},
	{EmployeeKeyword},
	{EmployeeDesignationName},
}

var keywordFields = []Field{
	EmployeeName,
	EmployeeFinNricNo,
	EmployeeAdminName,
	CompanyName,
	EmployeeMaskFinNricNo,
	EmployeeStreetName,
	EmployeeCountryName,
	EmployeeAddress,
	EmployeeAddressCountry,
	EmployeePostalCode,
	EmployeeWorkPermitNo,
	EmployeeKeyword,
	EmployeeDesignationName,
}

// EmployeeJoins are the relations every employee listing resolves.
var EmployeeJoins = []Join{JoinCompanyDetails, JoinCompanyProject, JoinSubconDetails, JoinEmployeeProject}

// Filter is the WHERE part of an employee listing.
type Filter struct {
	Where  []Predicate
	Search []Search
}

// BaseFilters exclude soft-deleted, invalid and temporary employees.
func BaseFilters() []Predicate {
	return []Predicate{
		Equals{Field: EmployeeIsDelete, Value: 0},
		Equals{Field: EmployeeIsInvalid, Value: 0},
		Equals{Field: EmployeeIsTemporary, Value: 0},
	}
}

// EmployeeFilters assembles the predicates of an active employee listing.
// A parameter that is absent adds nothing.
func EmployeeFilters(caller entity.Caller, p entity.ListParams, w employee.Windows) Filter {
	where := BaseFilters()

	if scope := ResolveScope(caller).Employees; scope != nil {
		where = append(where, scope)
	}

	if p.EmployeeCompanyID != nil && *p.EmployeeCompanyID > 0 {
		where = append(where, Equals{Field: EmployeeCompanyID, Value: *p.EmployeeCompanyID})
	}

	if active, ok := activeFilter(p.IsActive); ok {
		where = append(where, Equals{Field: EmployeeIsActive, Value: active})
	}

	if p.OwnEmployee != nil && *p.OwnEmployee != 0 {
		where = append(where, Equals{Field: EmployeeProjectID, Value: caller.ProjectID})
	}

	if p.DateStatus != nil {
		if pred := ExpiryFilter(employee.Bucket(*p.DateStatus), w); pred != nil {
			where = append(where, pred)
		}
	}

	if p.ApprovalStatus != nil {
		switch strings.TrimSpace(*p.ApprovalStatus) {
		case "0":
			where = append(where, ApprovalStatus{Approved: false})
		case "1":
			where = append(where, ApprovalStatus{Approved: true})
		}
	}

	return Filter{Where: where, Search: Searches(p)}
}

// ExpiryFilter restricts a listing to one expiry bucket. Bucket 0 and unknown
// values add nothing.
func ExpiryFilter(b employee.Bucket, w employee.Windows) Predicate {
	if b == employee.BucketExpired {
		return DateBefore{Field: EmployeeWorkPermitExpiryDate, At: w.Now}
	}

	upper, ok := w.Upper(b)
	if !ok {
		return nil
	}

	return DateBetween{Field: EmployeeWorkPermitExpiryDate, From: w.Now, To: upper}
}

// Searches turns the per-column search parameters and the keyword into
// containment searches.
func Searches(p entity.ListParams) []Search {
	var out []Search

	for i, term := range p.Search {
		if term = strings.TrimSpace(term); term != "" {
			out = append(out, Search{Fields: searchColumns[i], Term: term})
		}
	}

	if p.Keyword != nil {
		if kw := strings.ToLower(strings.TrimSpace(*p.Keyword)); kw != "" {
			out = append(out, Search{Fields: keywordFields, Term: kw})
		}
	}

	return out
}

// activeFilter defaults to active employees unless the parameter is a
// non-negative number. Only 0 and 1 filter; other numbers list both.
func activeFilter(raw *string) (int, bool) {
	if raw == nil {
		return 1, true
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil || v < 0 {
		return 1, true
	}

	switch v {
	case 0:
		return 0, true
	case 1:
		return 1, true
	default:
		return 0, false
	}
}
