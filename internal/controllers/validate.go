package controllers

import (
	"net/mail"
	"strings"
	"time"

	"github.com/adamanr/workforce_service/internal/entity"
)

type validationIssue struct {
	field  string
	reason string
}

type validator struct {
	issues []validationIssue
}

func (v *validator) add(field, reason string) {
	v.issues = append(v.issues, validationIssue{field: field, reason: reason})
}

func (v *validator) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
}

func (v *validator) flag(field string, value int) {
	if value != 0 && value != 1 {
		v.add(field, "must be 0 or 1")
	}
}

func (v *validator) date(field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if _, err := parseDate(value); err != nil {
		v.add(field, "must be a valid date in YYYY-MM-DD format")
	}
}

func (v *validator) err() error {
	if len(v.issues) == 0 {
		return nil
	}

	parts := make([]string, 0, len(v.issues))
	for _, issue := range v.issues {
		parts = append(parts, issue.field+" "+issue.reason)
	}

	return &RequestError{Message: strings.Join(parts, "; ")}
}

// ValidateEmployeeRequest checks the body of add-employee and edit-employee.
func ValidateEmployeeRequest(req *entity.EmployeeRequest) error {
	if req == nil {
		return &RequestError{Message: "Invalid request body"}
	}

	var v validator
	v.required("employeeName", req.EmployeeName)
	v.required("employeeFinNricNo", req.EmployeeFinNricNo)
	if req.EmployeeCountryID == 0 {
		v.add("employeeCountryId", "is required")
	}
	v.flag("isActive", req.IsActive)
	v.flag("fromInvalid", req.FromInvalid)
	v.date("employeeDob", req.EmployeeDob)
	v.date("employeeWorkPermitExpiryDate", req.EmployeeWorkPermitExpiryDate)

	if email := strings.TrimSpace(req.EmailID); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			v.add("emailId", "must be a valid email address")
		}
	}

	return v.err()
}

// parseDate accepts RFC3339 or YYYY-MM-DD.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}

	return time.Parse("2006-01-02", value)
}

func optionalDate(value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parsed, err := parseDate(value)
	if err != nil {
		return nil
	}

	return &parsed
}
