package query

import "github.com/adamanr/workforce_service/internal/entity"

// Scope is what a caller's role restricts listings and quota counters to.
// A nil predicate means "not restricted" for Employees and "not counted"
// for the counters.
type Scope struct {
	Employees        Predicate
	CompanyEmployees Predicate
	ProjectEmployees Predicate
	CompanyMachines  Predicate
	ProjectMachines  Predicate
}

func companyScope(companyID uint64) Scope {
	return Scope{
		Employees:        Equals{Field: EmployeeCompanyID, Value: companyID},
		CompanyEmployees: Equals{Field: EmployeeCompanyID, Value: companyID},
		CompanyMachines:  Equals{Field: MachineCompanyID, Value: companyID},
	}
}

func projectScope(projectID uint64) Scope {
	return Scope{
		Employees:        EitherEquals{Left: CompanyProjectID, Right: EmployeeProjectID, Value: projectID},
		CompanyEmployees: Equals{Field: CompanyProjectID, Value: projectID},
		ProjectEmployees: Equals{Field: EmployeeProjectID, Value: projectID},
		CompanyMachines:  Equals{Field: CompanyProjectID, Value: projectID},
		ProjectMachines:  Equals{Field: MachineProjectID, Value: projectID},
	}
}

var roleScopes = map[entity.Role]func(entity.Caller) Scope{
	entity.RoleSuperAdmin: func(entity.Caller) Scope {
		return Scope{}
	},
	entity.RoleCompanyAdmin: func(c entity.Caller) Scope {
		return companyScope(c.CompanyID)
	},
	entity.RoleProjectAdmin: func(c entity.Caller) Scope {
		return projectScope(c.ProjectID)
	},
}

// ResolveScope picks the scope of a caller. Admin roles are looked up by role;
// any other caller is scoped by the employee record linked to the user,
// company first, then project. A caller with neither is not restricted and
// gets no counters.
func ResolveScope(c entity.Caller) Scope {
	if rule, ok := roleScopes[c.Role]; ok {
		return rule(c)
	}

	switch {
	case c.EmployeeCompanyID > 0:
		return companyScope(c.EmployeeCompanyID)
	case c.EmployeeProjectID > 0:
		return projectScope(c.EmployeeProjectID)
	default:
		return Scope{}
	}
}
