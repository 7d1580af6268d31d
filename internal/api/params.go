package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/adamanr/workforce_service/internal/controllers"
	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

func bindListParams(r *http.Request) (entity.ListParams, error) {
	var (
		p     entity.ListParams
		count *string
		query = r.URL.Query()
	)

	params := []struct {
		name string
		dest any
	}{
		{"limit", &p.Limit},
		{"offset", &p.Offset},
		{"orderBy", &p.OrderBy},
		{"employeeCompanyId", &p.EmployeeCompanyID},
		{"maskStatus", &p.MaskStatus},
		{"keyword", &p.Keyword},
		{"dateStatus", &p.DateStatus},
		{"isActive", &p.IsActive},
		{"isSafetyViolationList", &p.IsSafetyViolationList},
		{"approvalStatus", &p.ApprovalStatus},
		{"ownEmployee", &p.OwnEmployee},
		{"availableColumns", &p.AvailableColumns},
		{"count", &count},
	}

	for _, param := range params {
		if err := runtime.BindQueryParameter("form", true, false, param.name, query, param.dest); err != nil {
			return entity.ListParams{}, &controllers.RequestError{Message: fmt.Sprintf("Invalid format for parameter %s", param.name)}
		}
	}

	for i := range p.Search {
		var term *string
		name := fmt.Sprintf("search_%d", i)
		if err := runtime.BindQueryParameter("form", true, false, name, query, &term); err != nil {
			return entity.ListParams{}, &controllers.RequestError{Message: fmt.Sprintf("Invalid format for parameter %s", name)}
		}
		if term != nil {
			p.Search[i] = *term
		}
	}

	if count != nil {
		switch strings.ToLower(strings.TrimSpace(*count)) {
		case "", "0", "false":
		default:
			enabled := true
			p.Count = &enabled
		}
	}

	return p, nil
}

func bindEmployeeID(r *http.Request) (uint64, error) {
	var id uint64

	err := runtime.BindStyledParameterWithOptions("simple", "employeeId", chi.URLParam(r, "employeeId"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil || id == 0 {
		return 0, controllers.ErrInvalidEmployeeID
	}

	return id, nil
}
