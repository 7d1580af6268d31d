package api

import (
	"net/http"
	"strings"

	"github.com/adamanr/workforce_service/internal/config"
	logging "github.com/adamanr/workforce_service/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// NewRouter mounts the employee API, the auth endpoints, metrics and the
// rendered reports. gatherer serves /metrics; requests counts every request.
func NewRouter(s *Server, cfg *config.Config, gatherer prometheus.Gatherer, requests *prometheus.CounterVec) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(logging.Middleware(s.Logger))
	r.Use(middleware.Recoverer)
	if requests != nil {
		r.Use(CountRequests(requests))
	}
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	r.Get("/health", s.Health)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	if urlPath := strings.TrimSuffix(cfg.Reports.URLPath, "/"); urlPath != "" {
		r.Handle(urlPath+"/*", http.StripPrefix(urlPath+"/", http.FileServer(http.Dir(cfg.Reports.Dir))))
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", s.AuthLogin)
		r.Post("/logout", s.AuthLogout)
	})

	r.Route("/api/employee", func(r chi.Router) {
		r.Use(s.Authenticate)

		r.Get("/generate-qrcode/{employeeId}", s.GenerateQRCode)
		r.Get("/print-employee-list", s.PrintEmployeeList)
		r.Get("/export-employee-list", s.ExportEmployeeList)
		r.Post("/add-employee", s.AddEmployee)
		r.Put("/edit-employee/{employeeId}", s.EditEmployee)
		r.Get("/enable-employee/{employeeId}", s.EnableEmployee)
		r.Get("/employee-list", s.EmployeeList)
		r.Post("/qrCodes-print-view", s.QRCodesPrintView)
	})

	return r
}
