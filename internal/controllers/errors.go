package controllers

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// RequestError is an expected rejection. Its message is shown to the caller.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

var (
	ErrInvalidEmployeeID        = &RequestError{Message: "Invalid employeeId"}
	ErrInvalidEmployeeCompanyID = &RequestError{Message: "Invalid employeeCompanyId"}
	ErrDuplicateFinNric         = &RequestError{Message: "The given FIN/NRICNumber is already exist in this company."}
	ErrDuplicateWorkPermit      = &RequestError{Message: "The given Work Permit Number is already exist in this company."}
	ErrDuplicateEmail           = &RequestError{Message: "Email Id is already exist."}
	ErrEmployeeIDsRequired      = &RequestError{Message: "Employee ids are required."}
	ErrCopiesCountRequired      = &RequestError{Message: "Copies count is required."}
	ErrCopiesCountTooLarge      = &RequestError{Message: "Copies count is too large."}
	ErrEmployeesListEmpty       = &RequestError{Message: "Employees list is empty."}
	ErrInvalidAvailableColumns  = &RequestError{Message: "Invalid availableColumns"}

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")
)

// uniqueIndexErrors maps the partial unique indexes of employees to the
// rejection a guard would have produced.
var uniqueIndexErrors = map[string]*RequestError{
	"employees_fin_nric_company_uq":    ErrDuplicateFinNric,
	"employees_work_permit_company_uq": ErrDuplicateWorkPermit,
	"employees_email_uq":               ErrDuplicateEmail,
}

// mapWriteError turns a unique violation that slipped past the guards into
// the matching rejection.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if reqErr, ok := uniqueIndexErrors[pgErr.ConstraintName]; ok {
			return reqErr
		}
	}

	return err
}
