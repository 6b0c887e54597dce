// Package ui exposes the clinician-facing JSON API over chi. Handlers stay
// thin: they parse identifiers, call the app services and translate domain
// errors into coded JSON responses.
package ui

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cognicare/app"
	"cognicare/domain/core"
	"cognicare/domain/report"
	apperrors "cognicare/internal/errors"
	"cognicare/ports"
)

// Server is the HTTP application. It owns the per-patient report and dispatch
// dialog state; each patient holds at most one current report, and generating
// a new one discards the previous wholesale.
type Server struct {
	router    *chi.Mux
	dashboard *app.DashboardService
	reports   *app.ReportService
	patients  ports.PatientDirectory
	profiles  ports.ProfileProvider
	channel   ports.DeliveryChannel

	mu      sync.Mutex
	current map[core.PatientID]*report.Report
	dialogs map[core.PatientID]*app.DispatchDialog
}

// NewServer creates the HTTP application and wires its routes
func NewServer(
	dashboard *app.DashboardService,
	reports *app.ReportService,
	patients ports.PatientDirectory,
	profiles ports.ProfileProvider,
	channel ports.DeliveryChannel,
) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		dashboard: dashboard,
		reports:   reports,
		patients:  patients,
		profiles:  profiles,
		channel:   channel,
		current:   make(map[core.PatientID]*report.Report),
		dialogs:   make(map[core.PatientID]*app.DispatchDialog),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Router returns the configured chi router
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Get("/api/dashboard", s.handleDashboard)
	s.router.Get("/api/patients/{id}/profile", s.handlePatientProfile)
	s.router.Get("/api/patients/{id}/report", s.handleGetReport)
	s.router.Post("/api/patients/{id}/report", s.handleGenerateReport)
	s.router.Post("/api/patients/{id}/report/export", s.handleExportReport)
	s.router.Post("/api/patients/{id}/report/print", s.handlePrintReport)
	s.router.Post("/api/patients/{id}/report/raw-export", s.handleExportRawData)
	s.router.Post("/api/patients/{id}/report/dispatch", s.handleDispatchReport)
}

// currentReport returns the patient's current report, or nil
func (s *Server) currentReport(patientID core.PatientID) *report.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current[patientID]
}

// replaceReport installs a freshly generated report and resets the dispatch
// dialog prefill for it
func (s *Server) replaceReport(patientID core.PatientID, rep *report.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current[patientID] = rep
	dialog, ok := s.dialogs[patientID]
	if !ok {
		dialog = app.NewDispatchDialog(s.channel)
		s.dialogs[patientID] = dialog
	}
	dialog.Prefill(rep)
}

func (s *Server) dialogFor(patientID core.PatientID) *app.DispatchDialog {
	s.mu.Lock()
	defer s.mu.Unlock()
	dialog, ok := s.dialogs[patientID]
	if !ok {
		dialog = app.NewDispatchDialog(s.channel)
		s.dialogs[patientID] = dialog
	}
	return dialog
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ui] response encode failed: %v", err)
	}
}

// writeError maps domain errors to coded JSON error responses
func writeError(w http.ResponseWriter, err error) {
	code := apperrors.CodeInternalError
	status := http.StatusInternalServerError

	switch {
	case core.IsNotFoundError(err):
		code = apperrors.CodeNotFound
		status = http.StatusNotFound
	case core.IsValidationError(err):
		code = apperrors.CodeValidationError
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrChannelUnavailable):
		code = apperrors.CodeChannelUnavailable
		status = http.StatusServiceUnavailable
	case errors.Is(err, core.ErrDispatchInFlight):
		code = apperrors.CodeDispatchError
		status = http.StatusConflict
	case core.IsDispatchError(err):
		code = apperrors.CodeDispatchError
		status = http.StatusBadGateway
	case core.IsRenderError(err):
		code = apperrors.CodeRenderError
		status = http.StatusInternalServerError
	case errors.Is(err, core.ErrProfileUnavailable):
		code = apperrors.CodeFetchError
		status = http.StatusBadGateway
	default:
		if appErr, ok := err.(*apperrors.AppError); ok {
			code = appErr.Code
			if code == apperrors.CodeFetchError {
				status = http.StatusBadGateway
			}
		}
	}

	// Fetch failures are transient from the client's view; flag them so the
	// detail view can offer a retry
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"code":      code,
			"message":   err.Error(),
			"retryable": code == apperrors.CodeFetchError,
		},
	})
}
