package ui

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cognicare/domain/classify"
	"cognicare/domain/core"
	"cognicare/domain/profile"
	"cognicare/domain/report"
)

// demoClinicianID stands in until authentication lands; every request is
// scoped to the single demo clinician.
const demoClinicianID = core.ClinicianID("clinician-demo")

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	result := s.dashboard.Build(r.Context(), demoClinicianID, nil)
	writeJSON(w, http.StatusOK, result)
}

// profileView decorates the aggregated profile with its presentation labels
type profileView struct {
	Patient           *profile.Patient                  `json:"patient"`
	Profile           *profile.CognitiveProfile         `json:"profile"`
	PercentileDisplay string                            `json:"percentile_display"`
	SubtypeLabel      string                            `json:"subtype_label"`
	DomainBadges      map[profile.Domain]classify.Badge `json:"domain_badges"`
}

func (s *Server) handlePatientProfile(w http.ResponseWriter, r *http.Request) {
	patientID, err := core.ParsePatientID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, core.NewNotFoundError("patient", chi.URLParam(r, "id")))
		return
	}

	patient, err := s.patients.GetPatient(r.Context(), patientID)
	if err != nil {
		writeError(w, err)
		return
	}
	prof, err := s.profiles.GetCognitiveProfile(r.Context(), patientID)
	if err != nil {
		writeError(w, err)
		return
	}

	badges := make(map[profile.Domain]classify.Badge, len(prof.DomainScores))
	for domain, score := range prof.DomainScores {
		badges[domain] = classify.ScoreBadge(score)
	}
	_, subtypeLabel := classify.NormalizeSubtype(patient.ADHDSubtype)

	writeJSON(w, http.StatusOK, profileView{
		Patient:           patient,
		Profile:           prof,
		PercentileDisplay: classify.FormatPercentile(prof.Percentile),
		SubtypeLabel:      subtypeLabel,
		DomainBadges:      badges,
	})
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	patientID, err := core.ParsePatientID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, core.NewNotFoundError("patient", chi.URLParam(r, "id")))
		return
	}
	rep := s.currentReport(patientID)
	if rep == nil {
		writeError(w, core.ErrReportNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// generateRequest carries the section choices; a missing body keeps the
// clinician-facing defaults
type generateRequest struct {
	Sections *report.SectionSet `json:"sections"`
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	patientID, err := core.ParsePatientID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, core.NewNotFoundError("patient", chi.URLParam(r, "id")))
		return
	}

	sections := report.DefaultSections()
	if r.Body != nil {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Sections != nil {
			sections = *req.Sections
		}
	}

	patient, err := s.patients.GetPatient(r.Context(), patientID)
	if err != nil {
		writeError(w, err)
		return
	}
	prof, err := s.profiles.GetCognitiveProfile(r.Context(), patientID)
	if err != nil {
		writeError(w, err)
		return
	}

	rep := s.reports.Generate(*patient, *prof, sections)
	s.replaceReport(patientID, &rep)
	writeJSON(w, http.StatusCreated, &rep)
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	s.withReport(w, r, func(rep *report.Report) {
		path, err := s.reports.ExportDocument(r.Context(), rep)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"path": path})
	})
}

func (s *Server) handlePrintReport(w http.ResponseWriter, r *http.Request) {
	s.withReport(w, r, func(rep *report.Report) {
		if err := s.reports.Print(r.Context(), rep); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "printed"})
	})
}

func (s *Server) handleExportRawData(w http.ResponseWriter, r *http.Request) {
	s.withReport(w, r, func(rep *report.Report) {
		path, err := s.reports.ExportRawData(r.Context(), rep)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"path": path})
	})
}

// dispatchRequest overrides the prefilled dialog fields where present
type dispatchRequest struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

func (s *Server) handleDispatchReport(w http.ResponseWriter, r *http.Request) {
	patientID, err := core.ParsePatientID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, core.NewNotFoundError("patient", chi.URLParam(r, "id")))
		return
	}
	rep := s.currentReport(patientID)
	if rep == nil {
		writeError(w, core.ErrReportNotFound)
		return
	}

	dialog := s.dialogFor(patientID)
	var req dispatchRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			dialog.SetFields(req.Recipient, req.Subject, req.Message)
		}
	}

	sent, err := dialog.Send(r.Context(), rep, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sent":   sent,
		"status": rep.Status,
	})
}

// withReport resolves the patient's current report and runs fn against it
func (s *Server) withReport(w http.ResponseWriter, r *http.Request, fn func(rep *report.Report)) {
	patientID, err := core.ParsePatientID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, core.NewNotFoundError("patient", chi.URLParam(r, "id")))
		return
	}
	rep := s.currentReport(patientID)
	if rep == nil {
		writeError(w, core.ErrReportNotFound)
		return
	}
	fn(rep)
}
