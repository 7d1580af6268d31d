package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adamanr/workforce_service/internal/controllers"
	"github.com/adamanr/workforce_service/internal/entity"
)

// AuthService issues, checks and revokes tokens.
type AuthService interface {
	AuthLogin(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error)
	CheckUserToken(ctx context.Context, authHeader string) (*entity.Claims, error)
	AuthLogout(ctx context.Context, authHeader, refreshToken string) error
}

// EmployeeService is the employee controller as seen by the handlers.
type EmployeeService interface {
	GenerateQRCode(ctx context.Context, caller entity.Caller, meta entity.RequestMeta, id uint64) (string, error)
	PrintEmployeeList(ctx context.Context, caller entity.Caller, p entity.ListParams) (string, error)
	ExportEmployeeList(ctx context.Context, caller entity.Caller, p entity.ListParams) (string, error)
	AddEmployee(ctx context.Context, caller entity.Caller, meta entity.RequestMeta, req *entity.EmployeeRequest) (*entity.Employee, error)
	EditEmployee(ctx context.Context, caller entity.Caller, meta entity.RequestMeta, id uint64, req *entity.EmployeeRequest) (*entity.Employee, error)
	EnableEmployee(ctx context.Context, caller entity.Caller, meta entity.RequestMeta, id uint64) error
	EmployeeList(ctx context.Context, caller entity.Caller, p entity.ListParams) (*entity.EmployeeList, error)
	QRCodesPrintView(ctx context.Context, req *entity.QRPrintRequest) (*entity.QRPrintResult, error)
}

type Server struct {
	Auth      AuthService
	Employees EmployeeService
	Logger    *slog.Logger
}

func NewServer(deps *controllers.Dependens) *Server {
	c := controllers.NewControllers(deps)

	return &Server{
		Auth:      c.AuthController,
		Employees: c.EmployeeController,
		Logger:    deps.Logger,
	}
}

func (s *Server) httpResponse(w http.ResponseWriter, status int, resp entity.Response) {
	respData, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		s.Logger.Error("Error marshaling response", slog.String("error", marshalErr.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(respData); err != nil {
		s.Logger.Error("Error writing response", slog.String("error", err.Error()))
	}
}

func (s *Server) success(w http.ResponseWriter, message string, data any) {
	s.httpResponse(w, http.StatusOK, entity.Response{Status: 1, Message: message, Data: data})
}

// failure writes err as a {status:0} reply. Expected rejections keep their
// message; anything else is logged and answered with fallback.
func (s *Server) failure(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var reqErr *controllers.RequestError

	switch {
	case errors.As(err, &reqErr):
		s.httpResponse(w, http.StatusBadRequest, entity.Response{Message: reqErr.Message})
	case errors.Is(err, controllers.ErrInvalidCredentials):
		s.httpResponse(w, http.StatusUnauthorized, entity.Response{Message: "Invalid credentials"})
	case errors.Is(err, controllers.ErrInvalidToken), errors.Is(err, controllers.ErrTokenRevoked):
		s.httpResponse(w, http.StatusUnauthorized, entity.Response{Message: "Unauthorized"})
	default:
		s.Logger.Error(fallback,
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
		)
		s.httpResponse(w, http.StatusInternalServerError, entity.Response{Message: fallback})
	}
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		s.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.httpResponse(w, http.StatusBadRequest, entity.Response{Message: "Invalid request body"})
		return false
	}

	return true
}
