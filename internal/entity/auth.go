package entity

import "github.com/golang-jwt/jwt/v5"

type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleCompanyAdmin Role = "company_admin"
	RoleProjectAdmin Role = "project_admin"
)

// Caller is the authenticated user a request runs on behalf of.
// EmployeeCompanyID and EmployeeProjectID belong to the employee record
// linked to the user and only matter for roles outside the admin set.
type Caller struct {
	UserID            uint64
	Role              Role
	CompanyID         uint64
	ProjectID         uint64
	EmployeeCompanyID uint64
	EmployeeProjectID uint64
}

type Claims struct {
	jwt.RegisteredClaims

	ID                uint64 `json:"id"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	CompanyID         uint64 `json:"companyId,omitempty"`
	ProjectID         uint64 `json:"projectId,omitempty"`
	EmployeeCompanyID uint64 `json:"employeeCompanyId,omitempty"`
	EmployeeProjectID uint64 `json:"employeeProjectId,omitempty"`
	TokenID           string `json:"token_id"`
}

func (c *Claims) Caller() Caller {
	return Caller{
		UserID:            c.ID,
		Role:              Role(c.Role),
		CompanyID:         c.CompanyID,
		ProjectID:         c.ProjectID,
		EmployeeCompanyID: c.EmployeeCompanyID,
		EmployeeProjectID: c.EmployeeProjectID,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
