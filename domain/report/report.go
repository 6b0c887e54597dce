// Package report defines the composed clinical Report entity and its composer.
// A Report is built from an aggregated CognitiveProfile plus section-inclusion
// choices, independent of any export format.
package report

import (
	"cognicare/domain/core"
	"cognicare/domain/profile"
)

// Type identifies the report template family
type Type string

// TypeComprehensive is the only report type in current scope
const TypeComprehensive Type = "comprehensive"

// Status is the report lifecycle state
type Status string

const (
	StatusDraft     Status = "draft"
	StatusGenerated Status = "generated"
	StatusSent      Status = "sent"
)

// SectionSet holds the independent section-inclusion flags. Each flag toggles
// only its own section; there are no cascading defaults.
type SectionSet struct {
	Overview        bool `json:"overview"`
	DomainAnalysis  bool `json:"domainAnalysis"`
	Trends          bool `json:"trends"`
	Recommendations bool `json:"recommendations"`
	RawData         bool `json:"rawData"`
}

// DefaultSections mirrors the clinician-facing defaults: everything but raw data
func DefaultSections() SectionSet {
	return SectionSet{
		Overview:        true,
		DomainAnalysis:  true,
		Trends:          true,
		Recommendations: true,
		RawData:         false,
	}
}

// Recommendation is one templated clinical recommendation
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Summary holds the per-domain and overall narrative summaries
type Summary struct {
	Attention         string `json:"attention"`
	Memory            string `json:"memory"`
	ExecutiveFunction string `json:"executiveFunction"`
	Overall           string `json:"overall"`
}

// Payload is the report body snapshot. Once the report reaches
// StatusGenerated the payload is immutable; regeneration produces a wholly new
// Report rather than editing this one.
type Payload struct {
	GeneratedAt     core.Timestamp           `json:"date"`
	Metrics         profile.CognitiveProfile `json:"metrics"`
	Summary         Summary                  `json:"summary"`
	Recommendations []Recommendation         `json:"recommendations"`
}

// Report is the composed clinical report entity
type Report struct {
	ID          core.ReportID    `json:"id"`
	PatientID   core.PatientID   `json:"patient_id"`
	PatientName string           `json:"patient_name"`
	Title       string           `json:"title"`
	Type        Type             `json:"type"`
	CreatedDate core.Timestamp   `json:"created_date"`
	Sections    SectionSet       `json:"sections"`
	Status      Status           `json:"status"`
	Snapshot    core.SnapshotRef `json:"snapshot_ref"`
	Data        Payload          `json:"data"`
}

// IsGenerated reports whether the report payload exists and may be exported
func (r *Report) IsGenerated() bool {
	return r != nil && (r.Status == StatusGenerated || r.Status == StatusSent)
}

// CanDispatch reports whether a dispatch attempt may be started.
// StatusSent is informational and does not block further dispatches.
func (r *Report) CanDispatch() bool {
	return r.IsGenerated()
}

// MarkSent records a successful dispatch. The payload is untouched; the
// status change does not block later regeneration or resends.
func (r *Report) MarkSent() {
	if r.IsGenerated() {
		r.Status = StatusSent
	}
}
