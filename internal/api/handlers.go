package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/adamanr/workforce_service/internal/entity"
)

// AuthLogin authenticates a user and returns a JWT token pair.
func (s *Server) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req entity.LoginRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		s.httpResponse(w, http.StatusBadRequest, entity.Response{Message: "Email and password required"})
		return
	}

	tokens, err := s.Auth.AuthLogin(r.Context(), &req)
	if err != nil {
		s.failure(w, r, err, "Failed to authenticate")
		return
	}

	s.success(w, "Logged in successfully", tokens)
}

// AuthLogout revokes the access token of the request and, when given, the
// refresh token in the body.
func (s *Server) AuthLogout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.httpResponse(w, http.StatusBadRequest, entity.Response{Message: "Invalid request body"})
		return
	}

	if err := s.Auth.AuthLogout(r.Context(), r.Header.Get("Authorization"), req.RefreshToken); err != nil {
		s.failure(w, r, err, "Failed to logout")
		return
	}

	s.success(w, "Logged out successfully", nil)
}

// GenerateQRCode renders the QR code of an employee.
func (s *Server) GenerateQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := bindEmployeeID(r)
	if err != nil {
		s.failure(w, r, err, "Unable to generate Qr code")
		return
	}

	qrCode, err := s.Employees.GenerateQRCode(r.Context(), callerFrom(r.Context()), requestMeta(r), id)
	if err != nil {
		s.failure(w, r, err, "Unable to generate Qr code")
		return
	}

	s.success(w, "Successfully generated the qr code.", map[string]string{"qrCodeData": qrCode})
}

func (s *Server) PrintEmployeeList(w http.ResponseWriter, r *http.Request) {
	p, err := bindListParams(r)
	if err != nil {
		s.failure(w, r, err, "Unable to print employee list")
		return
	}

	dataURL, err := s.Employees.PrintEmployeeList(r.Context(), callerFrom(r.Context()), p)
	if err != nil {
		s.failure(w, r, err, "Unable to print employee list")
		return
	}

	s.success(w, "Successfully got the pdf of employees list", map[string]string{"base64": dataURL})
}

func (s *Server) ExportEmployeeList(w http.ResponseWriter, r *http.Request) {
	p, err := bindListParams(r)
	if err != nil {
		s.failure(w, r, err, "Unable to export employee list")
		return
	}

	dataURL, err := s.Employees.ExportEmployeeList(r.Context(), callerFrom(r.Context()), p)
	if err != nil {
		s.failure(w, r, err, "Unable to export employee list")
		return
	}

	s.success(w, "Successfully got the excel of employees list", map[string]string{"base64": dataURL})
}

func (s *Server) AddEmployee(w http.ResponseWriter, r *http.Request) {
	var req entity.EmployeeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	created, err := s.Employees.AddEmployee(r.Context(), callerFrom(r.Context()), requestMeta(r), &req)
	if err != nil {
		s.failure(w, r, err, "Unable to create employee")
		return
	}

	s.success(w, "Employee created successfully", map[string]any{"employeeDetail": created})
}

func (s *Server) EditEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := bindEmployeeID(r)
	if err != nil {
		s.failure(w, r, err, "Unable to update employee")
		return
	}

	var req entity.EmployeeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	updated, err := s.Employees.EditEmployee(r.Context(), callerFrom(r.Context()), requestMeta(r), id, &req)
	if err != nil {
		s.failure(w, r, err, "Unable to update employee")
		return
	}

	s.success(w, "Employee updated successfully", map[string]any{"employeeDetails": updated})
}

// EnableEmployee restores a soft-deleted employee.
func (s *Server) EnableEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := bindEmployeeID(r)
	if err != nil {
		s.failure(w, r, err, "Unable to enable employee")
		return
	}

	if err := s.Employees.EnableEmployee(r.Context(), callerFrom(r.Context()), requestMeta(r), id); err != nil {
		s.failure(w, r, err, "Unable to enable employee")
		return
	}

	s.success(w, "Employee enabled successfully", nil)
}

func (s *Server) EmployeeList(w http.ResponseWriter, r *http.Request) {
	p, err := bindListParams(r)
	if err != nil {
		s.failure(w, r, err, "Unable to get employee list")
		return
	}

	list, err := s.Employees.EmployeeList(r.Context(), callerFrom(r.Context()), p)
	if err != nil {
		s.failure(w, r, err, "Unable to get employee list")
		return
	}

	if list.EmployeeListCount != nil {
		s.success(w, "Successfully got employee list count", list)
		return
	}

	s.success(w, "Successfully got employee list", list)
}

func (s *Server) QRCodesPrintView(w http.ResponseWriter, r *http.Request) {
	var req entity.QRPrintRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	result, err := s.Employees.QRCodesPrintView(r.Context(), &req)
	if err != nil {
		s.failure(w, r, err, "Unable to print qr codes")
		return
	}

	s.success(w, "Successfully got the pdf of employee qr code", result)
}

func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	s.success(w, "ok", nil)
}
