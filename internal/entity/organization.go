package entity

import "time"

type Company struct {
	ID               uint64  `json:"companyId" db:"company_id"`
	Name             string  `json:"companyName" db:"company_name"`
	ProjectID        *uint64 `json:"projectId" db:"project_id"`
	MaxNoOfEmployees int     `json:"companyMaxNoOfEmployees" db:"company_max_no_of_employees"`
}

type Project struct {
	ID              uint64 `json:"projectId" db:"project_id"`
	Title           string `json:"projectTitle" db:"project_title"`
	CompanyName     string `json:"companyName" db:"company_name"`
	CompanyNickName string `json:"companyNickName" db:"company_nick_name"`
}

type Site struct {
	ID   uint64 `json:"siteId" db:"site_id"`
	Name string `json:"siteName" db:"site_name"`
}

type Country struct {
	ID   uint64 `json:"countryId" db:"country_id"`
	Name string `json:"countryName" db:"country_name"`
}

// AuditLog is one entry of the audit trail written after a successful mutation.
type AuditLog struct {
	Actor       uint64    `json:"actor"`
	LogType     string    `json:"logType"`
	CompanyID   *uint64   `json:"companyId"`
	ProjectID   *uint64   `json:"projectId"`
	RequestURL  string    `json:"requestUrl"`
	Object      string    `json:"object"`
	RequestID   string    `json:"requestId"`
	BrowserInfo string    `json:"browserInfo"`
	Description string    `json:"description"`
	CreatedDate time.Time `json:"createdDate"`
}
