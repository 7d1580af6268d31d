package query

// Field is a qualified column the listings filter, search or order on.
// Only the constants below are ever interpolated into SQL.
type Field string

const (
	EmployeeID                   Field = "e.employee_id"
	EmployeeName                 Field = "e.employee_name"
	EmployeeDob                  Field = "e.employee_dob"
	EmployeeFinNricNo            Field = "e.employee_fin_nric_no"
	EmployeeMaskFinNricNo        Field = "e.employee_mask_fin_nric_no"
	EmployeeWorkPermitNo         Field = "e.employee_work_permit_no"
	EmployeeWorkPermitExpiryDate Field = "e.employee_work_permit_expiry_date"
	EmployeeCompanyID            Field = "e.employee_company_id"
	EmployeeProjectID            Field = "e.project_id"
	EmployeePostalCode           Field = "e.employee_postal_code"
	EmployeeStreetName           Field = "e.employee_street_name"
	EmployeeCountryName          Field = "e.employee_country_name"
	EmployeeAddress              Field = "e.employee_address"
	EmployeeAddressCountry       Field = "e.address_country"
	EmployeeAdminName            Field = "e.employee_admin_name"
	EmployeeContactNumber        Field = "e.contact_number"
	EmployeeEmailID              Field = "e.email_id"
	EmployeeKeyword              Field = "e.keyword"
	EmployeeDesignationName      Field = "e.designation_name"
	EmployeeIsActive             Field = "e.is_active"
	EmployeeIsDelete             Field = "e.is_delete"
	EmployeeIsInvalid            Field = "e.is_invalid"
	EmployeeIsTemporary          Field = "e.is_temporary"
	EmployeeViolationModified    Field = "e.violation_modified_date"

	CompanyName      Field = "cd.company_name"
	CompanyProjectID Field = "cd.project_id"

	SubconName Field = "sd.subcon_name"

	EmployeeProjectCompanyNickName Field = "ep.company_nick_name"

	MachineCompanyID Field = "m.company_id"
	MachineProjectID Field = "m.project_id"
	MachineIsDelete  Field = "m.is_delete"
)

// Join is a LEFT JOIN to a relation the listing needs for display or filtering.
type Join struct {
	Table string
	Alias string
	On    string
}

var (
	JoinCompanyDetails  = Join{Table: "companies", Alias: "cd", On: "cd.company_id = e.employee_company_id"}
	JoinCompanyProject  = Join{Table: "projects", Alias: "cp", On: "cp.project_id = cd.project_id"}
	JoinSubconDetails   = Join{Table: "subcons", Alias: "sd", On: "sd.subcon_id = e.subcon"}
	JoinEmployeeProject = Join{Table: "projects", Alias: "ep", On: "ep.project_id = e.project_id"}

	JoinMachineCompany = Join{Table: "companies", Alias: "cd", On: "cd.company_id = m.company_id"}
)

// Order is the order code of a listing.
type Order int

const (
	OrderIDAsc            Order = 1
	OrderIDDesc           Order = 2
	OrderViolationChanged Order = 4
)

func (o Order) clause() string {
	switch o {
	case OrderIDAsc:
		return " ORDER BY e.employee_id ASC"
	case OrderViolationChanged:
		return " ORDER BY e.violation_modified_date DESC NULLS LAST, e.employee_id DESC"
	default:
		return " ORDER BY e.employee_id DESC"
	}
}
