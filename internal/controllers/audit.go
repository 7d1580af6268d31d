package controllers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/adamanr/workforce_service/internal/entity"
)

const insertAuditLogQuery = `INSERT INTO audit_logs
	(actor, log_type, company_id, project_id, request_url, object, request_id, browser_info, description, created_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// recordAudit writes an audit entry for a committed mutation. Failures are
// logged and swallowed since the change itself already succeeded.
func (c *EmployeeController) recordAudit(ctx context.Context, caller entity.Caller, meta entity.RequestMeta, message, description string, data any) {
	object, err := json.Marshal(entity.Response{Status: 1, Message: message, Data: data})
	if err != nil {
		c.deps.Logger.Error("Error encoding audit object", slog.String("error", err.Error()))
		return
	}

	entry := entity.AuditLog{
		Actor:       caller.UserID,
		LogType:     "employee",
		RequestURL:  meta.URL,
		Object:      string(object),
		RequestID:   meta.RequestID,
		BrowserInfo: meta.UserAgent,
		Description: description,
		CreatedDate: c.deps.Now(),
	}
	if caller.CompanyID > 0 {
		entry.CompanyID = &caller.CompanyID
	}
	if caller.ProjectID > 0 {
		entry.ProjectID = &caller.ProjectID
	}

	if _, err := c.deps.DB.Exec(ctx, insertAuditLogQuery,
		entry.Actor, entry.LogType, entry.CompanyID, entry.ProjectID, entry.RequestURL,
		entry.Object, entry.RequestID, entry.BrowserInfo, entry.Description, entry.CreatedDate,
	); err != nil {
		c.deps.Logger.Error("Error writing audit log",
			slog.String("error", err.Error()),
			slog.String("description", description),
		)
	}
}
