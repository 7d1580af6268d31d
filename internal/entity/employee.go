package entity

import (
	"time"
)

// Employee is a row of the employees table.
type Employee struct {
	ID                    uint64     `json:"employeeId" db:"employee_id"`
	Name                  *string    `json:"employeeName" db:"employee_name"`
	Dob                   *time.Time `json:"employeeDob" db:"employee_dob"`
	MobileNo              *string    `json:"employeeMobileNo" db:"employee_mobile_no"`
	CountryID             *uint64    `json:"employeeCountryId" db:"employee_country_id"`
	CountryName           *string    `json:"employeeCountryName" db:"employee_country_name"`
	FinNricNo             *string    `json:"employeeFinNricNo" db:"employee_fin_nric_no"`
	MaskFinNricNo         *string    `json:"employeeMaskFinNricNo" db:"employee_mask_fin_nric_no"`
	WorkPermitNo          *string    `json:"employeeWorkPermitNo" db:"employee_work_permit_no"`
	MaskWorkPermitNo      *string    `json:"employeeMaskWorkPermitNo" db:"employee_mask_work_permit_no"`
	WorkPermitExpiryDate  *time.Time `json:"employeeWorkPermitExpiryDate" db:"employee_work_permit_expiry_date"`
	CompanyID             *uint64    `json:"employeeCompanyId" db:"employee_company_id"`
	ProjectID             *uint64    `json:"projectId" db:"project_id"`
	PostalCode            *string    `json:"employeePostalCode" db:"employee_postal_code"`
	StreetName            *string    `json:"employeeStreetName" db:"employee_street_name"`
	Address               *string    `json:"employeeAddress" db:"employee_address"`
	AddressCountry        *string    `json:"addressCountry" db:"address_country"`
	AdminName             *string    `json:"employeeAdminName" db:"employee_admin_name"`
	DesignationID         *uint64    `json:"designationId" db:"designation_id"`
	DesignationName       *string    `json:"designationName" db:"designation_name"`
	Remarks               *string    `json:"remarks" db:"remarks"`
	EmailID               *string    `json:"emailId" db:"email_id"`
	ContactNumber         *string    `json:"contactNumber" db:"contact_number"`
	Site                  *string    `json:"site" db:"site"`
	Subcon                *uint64    `json:"subcon" db:"subcon"`
	Keyword               *string    `json:"keyword" db:"keyword"`
	ProfileImage          *string    `json:"profileImage" db:"profile_image"`
	ProfileImagePath      *string    `json:"profileImagePath" db:"profile_image_path"`
	QRCode                *string    `json:"qrCode" db:"qr_code"`
	QRGeneratedStatus     int        `json:"qrGeneratedStatus" db:"qr_generated_status"`
	IsActive              int        `json:"isActive" db:"is_active"`
	IsDelete              int        `json:"isDelete" db:"is_delete"`
	IsInvalid             int        `json:"isInvalid" db:"is_invalid"`
	IsTemporary           int        `json:"isTemporary" db:"is_temporary"`
	UserID                *uint64    `json:"userId" db:"user_id"`
	CreatedBy             *uint64    `json:"createdBy" db:"created_by"`
	ModifiedBy            *uint64    `json:"modifiedBy" db:"modified_by"`
	CreatedDate           time.Time  `json:"createdDate" db:"created_date"`
	ModifiedDate          *time.Time `json:"modifiedDate" db:"modified_date"`
	ViolationModifiedDate *time.Time `json:"violationModifiedDate" db:"violation_modified_date"`
}

// EmployeeRow is an employee joined with the relations the listings display.
type EmployeeRow struct {
	Employee

	CompanyName            *string `db:"company_name"`
	CompanyProjectID       *uint64 `db:"company_project_id"`
	CompanyProjectTitle    *string `db:"company_project_title"`
	SubconName             *string `db:"subcon_name"`
	SubconSlugName         *string `db:"subcon_slug_name"`
	ProjectTitle           *string `db:"project_title"`
	ProjectCompanyName     *string `db:"project_company_name"`
	ProjectCompanyNickName *string `db:"project_company_nick_name"`
}

// Address is the structured address stored as JSON in employee_address.
type Address struct {
	DormitoryName string `json:"dormitoryName,omitempty"`
	BlockNumber   string `json:"blockNumber,omitempty"`
	StreetName    string `json:"streetName,omitempty"`
	UnitNumber    string `json:"unitNumber,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
}

// EmployeeRequest is the body of add-employee and edit-employee.
type EmployeeRequest struct {
	EmployeeName                 string   `json:"employeeName"`
	EmployeeDob                  string   `json:"employeeDob"`
	EmployeeMobileNo             string   `json:"employeeMobileNo"`
	EmployeeCountryID            uint64   `json:"employeeCountryId"`
	EmployeeCountryName          string   `json:"employeeCountryName"`
	EmployeeFinNricNo            string   `json:"employeeFinNricNo"`
	EmployeeWorkPermitNo         string   `json:"employeeWorkPermitNo"`
	EmployeeWorkPermitExpiryDate string   `json:"employeeWorkPermitExpiryDate"`
	EmployeeCompanyID            *uint64  `json:"employeeCompanyId"`
	EmployeePostalCode           string   `json:"employeePostalCode"`
	EmployeeStreetName           string   `json:"employeeStreetName"`
	EmployeeAddress              *Address `json:"employeeAddress"`
	AddressCountry               string   `json:"addressCountry"`
	EmployeeAdminName            string   `json:"employeeAdminName"`
	IsActive                     int      `json:"isActive"`
	FromInvalid                  int      `json:"fromInvalid"`
	Remarks                      string   `json:"remarks"`
	EmailID                      string   `json:"emailId"`
	ContactNumber                string   `json:"contactNumber"`
	Site                         string   `json:"site"`
	Subcon                       *uint64  `json:"subcon"`
	DesignationID                *uint64  `json:"designationId"`
	DesignationName              string   `json:"designationName"`
}

// SearchColumns is the number of per-column search parameters (search_0..search_17).
const SearchColumns = 18

// ListParams are the query parameters of the employee listings.
type ListParams struct {
	Limit                 *int
	Offset                *int
	OrderBy               *int
	EmployeeCompanyID     *uint64
	MaskStatus            *int
	Keyword               *string
	DateStatus            *int
	IsActive              *string
	IsSafetyViolationList *int
	ApprovalStatus        *string
	OwnEmployee           *int
	Count                 *bool
	AvailableColumns      *string
	Search                [SearchColumns]string
}

// EmployeeListItem is one entry of employee-list.
type EmployeeListItem struct {
	EmployeeID             uint64     `json:"employeeId"`
	EmployeeName           string     `json:"employeeName"`
	EmployeeDob            *time.Time `json:"employeeDob"`
	EmployeeMobileNo       string     `json:"employeeMobileNo"`
	EmployeeCountryID      *uint64    `json:"employeeCountryId"`
	EmployeeCountryName    string     `json:"employeeCountryName"`
	EmployeeFinNricNo      string     `json:"employeeFinNricNo"`
	FinNricNo              string     `json:"finNricNo"`
	MaskFinNricNo          string     `json:"maskFinNricNo"`
	EmployeeWorkPermitNo   string     `json:"employeeWorkPermitNo"`
	WorkPermitExpiryDate   *time.Time `json:"employeeWorkPermitExpiryDate"`
	EmployeeCompanyID      *uint64    `json:"employeeCompanyId"`
	EmployeePostalCode     string     `json:"employeePostalCode"`
	EmployeeAddress        *Address   `json:"employeeAddress"`
	EmployeeStreetName     string     `json:"employeeStreetName"`
	EmployeeAdminName      string     `json:"employeeAdminName"`
	EmployeeModifiedDate   *time.Time `json:"employeeModifiedDate"`
	ContactNumber          string     `json:"contactNumber"`
	DesignationName        string     `json:"designationName"`
	DesignationID          *uint64    `json:"designationId"`
	EmailID                string     `json:"emailId"`
	AddressCountry         string     `json:"addressCountry"`
	ProfileImage           string     `json:"profileImage"`
	ProfileImagePath       string     `json:"profileImagePath"`
	Remarks                string     `json:"remarks"`
	IsActive               int        `json:"isActive"`
	CompanyName            string     `json:"companyName"`
	ProjectName            string     `json:"projectName"`
	DisplayName            string     `json:"displayName"`
	ExpiryStatus           int        `json:"expiryStatus"`
	QRCode                 string     `json:"qrCode"`
	QRGeneratedStatus      int        `json:"qrGeneratedStatus"`
	ApprovalStatus         int        `json:"approvalStatus"`
	SubconName             *string    `json:"subconName"`
	SubconSlugName         *string    `json:"subconSlugName"`
	SiteName               string     `json:"siteName"`
	UserID                 *uint64    `json:"userId"`
	EmployeeProjectName    string     `json:"employeeProjectName"`
	ProjectCompanyName     string     `json:"projectCompanyName"`
	ProjectCompanyNickName string     `json:"projectCompanyNickName"`
	SafetyViolationStatus  int        `json:"safetyViolationStatus"`
}

// RecordCounts are the quota counters returned next to employee-list.
type RecordCounts struct {
	UsedRecords          *int `json:"usedRecords"`
	ProjectEmployeeCount int  `json:"projectEmployeeCount"`
	CompanyEmployeeCount int  `json:"companyEmployeeCount"`
	ProjectMetsCount     int  `json:"projectMetsCount"`
	CompanyMetsCount     int  `json:"companyMetsCount"`
}

// EmployeeList is the data of a successful employee-list call.
type EmployeeList struct {
	RecordCounts

	EmployeeList      []EmployeeListItem `json:"employeeList,omitempty"`
	EmployeeListCount *int               `json:"employeeListCount,omitempty"`
}

// PrintRow is one line of the printed or exported employee list.
type PrintRow struct {
	SNo                  int      `json:"sNo"`
	EmployeeName         string   `json:"employeeName"`
	EmployeeDob          string   `json:"employeeDob"`
	EmployeeMobileNo     string   `json:"employeeMobileNo"`
	EmployeeCountryID    *uint64  `json:"employeeCountryId"`
	EmployeeCountryName  string   `json:"employeeCountryName"`
	EmployeeFinNricNo    string   `json:"employeeFinNricNo"`
	EmployeeWorkPermitNo string   `json:"employeeWorkPermitNo"`
	WorkPermitExpiryDate string   `json:"employeeWorkPermitExpiryDate"`
	EmployeeCompanyID    *uint64  `json:"employeeCompanyId"`
	DesignationName      string   `json:"designationName"`
	EmployeePostalCode   string   `json:"employeePostalCode"`
	EmployeeAddress      *Address `json:"employeeAddress"`
	EmployeeStreetName   string   `json:"employeeStreetName"`
	Address              string   `json:"address"`
	IsActive             string   `json:"isActive"`
	CompanyName          string   `json:"companyName"`
	ExpiryStatus         int      `json:"expiryStatus"`
	ContactNumber        string   `json:"contactNumber"`
	EmailID              string   `json:"emailId"`
	Site                 string   `json:"site"`
	Subcon               string   `json:"subcon"`
}

// PrintSheet is what the list renderers consume.
type PrintSheet struct {
	CompanyName string
	Role        Role
	Columns     []string
	Rows        []PrintRow
}

// QRPayload is encoded into an employee QR code.
type QRPayload struct {
	EmployeeID           uint64 `json:"employeeId"`
	EmployeeName         string `json:"employeeName"`
	EmployeeMobileNo     string `json:"employeeMobileNo"`
	EmployeeFinNricNo    string `json:"employeeFinNricNo"`
	EmployeeWorkPermitNo string `json:"employeeWorkPermitNo"`
}

// QRPrintRequest is the body of qrCodes-print-view.
type QRPrintRequest struct {
	EmployeeIDs  string `json:"employeeIds"`
	CopiesCount  int    `json:"copiesCount"`
	PageSizeType int    `json:"pageSizeType"`
}

// QRLabel is one printed QR code label.
type QRLabel struct {
	QRCode        string
	EmployeeName  string
	MaskFinNricNo string
}

// QRPrintResult points to a rendered QR code sheet.
type QRPrintResult struct {
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
	FullPath string `json:"fullPath"`
}
