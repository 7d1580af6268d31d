package controllers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/adamanr/workforce_service/internal/query"
)

type quotaAction int

const (
	quotaCreate quotaAction = iota
	quotaEdit
	quotaEnable
)

// quotaMessages are the rejections per action: limit is zero, limit reached.
var quotaMessages = map[quotaAction][2]string{
	quotaCreate: {
		"Maximum number of records limit is 0. You cant create employees.",
		"Maximum number of records limit is completed. You cant create employees.",
	},
	quotaEdit: {
		"Maximum number of records limit is 0. You can`t add this employees.",
		"Maximum number of records limit is completed. You can`t add this employees.",
	},
	quotaEnable: {
		"Maximum number of records limit is completed. You can't enable this employee.",
		"Maximum number of records limit is completed. You can't enable this employee.",
	},
}

// identity is what the uniqueness guards compare.
type identity struct {
	companyID  *uint64
	finNric    string
	workPermit string
	email      string
	excludeID  uint64
}

const finNricTakenQuery = `SELECT EXISTS (SELECT 1 FROM employees
	WHERE upper(employee_fin_nric_no) = $1 AND employee_company_id IS NOT DISTINCT FROM $2
	AND is_delete = 0 AND is_invalid = 0 AND employee_id <> $3)`

const workPermitTakenQuery = `SELECT EXISTS (SELECT 1 FROM employees
	WHERE employee_work_permit_no = $1 AND employee_company_id IS NOT DISTINCT FROM $2
	AND is_delete = 0 AND is_invalid = 0 AND employee_id <> $3)`

const emailTakenQuery = `SELECT EXISTS (SELECT 1 FROM employees
	WHERE email_id = $1 AND is_delete = 0 AND is_invalid = 0 AND employee_id <> $2)`

// checkUnique rejects a national ID or work permit already used in the same
// company and an email already used anywhere.
func (c *EmployeeController) checkUnique(ctx context.Context, id identity) error {
	taken, err := c.exists(ctx, finNricTakenQuery, strings.ToUpper(id.finNric), id.companyID, id.excludeID)
	if err != nil {
		return err
	}
	if taken {
		c.deps.Metrics.rejected("fin_nric")
		return ErrDuplicateFinNric
	}

	if id.workPermit != "" {
		taken, err = c.exists(ctx, workPermitTakenQuery, id.workPermit, id.companyID, id.excludeID)
		if err != nil {
			return err
		}
		if taken {
			c.deps.Metrics.rejected("work_permit")
			return ErrDuplicateWorkPermit
		}
	}

	if id.email != "" {
		taken, err = c.exists(ctx, emailTakenQuery, id.email, id.excludeID)
		if err != nil {
			return err
		}
		if taken {
			c.deps.Metrics.rejected("email")
			return ErrDuplicateEmail
		}
	}

	return nil
}

func (c *EmployeeController) exists(ctx context.Context, sql string, args ...any) (bool, error) {
	var exists bool
	if err := c.deps.DB.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		c.deps.Logger.Error("Error checking uniqueness", slog.String("error", err.Error()))
		return false, fmt.Errorf("check uniqueness: %w", err)
	}

	return exists, nil
}

// checkQuota rejects the action when the company already uses all of its
// records. Employees and machines both count against the limit. Only company
// admins are limited.
func (c *EmployeeController) checkQuota(ctx context.Context, caller entity.Caller, companyID uint64, action quotaAction) error {
	if caller.Role != entity.RoleCompanyAdmin {
		return nil
	}

	company, err := c.company(ctx, companyID)
	if err != nil {
		return err
	}

	employees, err := c.countEmployees(ctx, query.Equals{Field: query.EmployeeCompanyID, Value: companyID})
	if err != nil {
		return err
	}

	machines, err := c.countMachines(ctx, query.Equals{Field: query.MachineCompanyID, Value: companyID})
	if err != nil {
		return err
	}

	if company.MaxNoOfEmployees > employees+machines {
		return nil
	}

	c.deps.Logger.Warn("Records limit reached",
		slog.Uint64("company_id", companyID),
		slog.Int("max", company.MaxNoOfEmployees),
		slog.Int("employees", employees),
		slog.Int("machines", machines),
	)
	c.deps.Metrics.rejected("quota")

	messages := quotaMessages[action]
	if company.MaxNoOfEmployees == 0 {
		return &RequestError{Message: messages[0]}
	}

	return &RequestError{Message: messages[1]}
}
