package report

import (
	"encoding/json"
	"fmt"

	"cognicare/domain/core"
	"cognicare/domain/profile"
)

// Narrative templates for the comprehensive report. These describe current
// performance and intentionally do not vary with the numeric scores.
const (
	attentionSummary         = "Based on the latest assessment, patient's attention metrics show current performance levels."
	memorySummary            = "Memory performance analysis indicates current cognitive functioning in this domain."
	executiveFunctionSummary = "Executive function assessment shows current capabilities in planning and cognitive control."
	overallSummary           = "Overall cognitive assessment indicates current profile with identified strengths and areas for development."
)

// comprehensiveRecommendations is the fixed ordered recommendation list for
// the comprehensive report type. Static by current policy; pending product
// clarification on score-driven recommendations.
var comprehensiveRecommendations = []Recommendation{
	{
		Title:       "Personalized cognitive training",
		Description: "Based on the assessment results, a personalized cognitive training program tailored to the patient's specific profile is recommended.",
	},
	{
		Title:       "Regular progress monitoring",
		Description: "Schedule follow-up assessments every 4-6 weeks to track progress and adjust interventions as needed.",
	},
	{
		Title:       "Environmental modifications",
		Description: "Consider implementing appropriate environmental adaptations to support cognitive functioning in daily activities.",
	},
}

// Composer builds comprehensive reports from cognitive profiles
type Composer struct{}

// NewComposer creates a report composer
func NewComposer() *Composer {
	return &Composer{}
}

// Compose builds a generated Report from a profile and section choices.
// Composition is synchronous and idempotent in content: identical inputs yield
// structurally equal payloads, but every call mints a distinct report ID and
// the newest result supersedes any report the caller previously held.
func (c *Composer) Compose(patient profile.Patient, prof profile.CognitiveProfile, sections SectionSet) Report {
	now := core.Now()

	payload := Payload{
		GeneratedAt: now,
		Metrics:     prof,
		Summary: Summary{
			Attention:         attentionSummary,
			Memory:            memorySummary,
			ExecutiveFunction: executiveFunctionSummary,
			Overall:           overallSummary,
		},
		Recommendations: append([]Recommendation(nil), comprehensiveRecommendations...),
	}

	return Report{
		ID:          core.ReportID(core.NewID()),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Title:       fmt.Sprintf("Comprehensive Report - %s", patient.Name),
		Type:        TypeComprehensive,
		CreatedDate: now,
		Sections:    sections,
		Status:      StatusGenerated,
		Snapshot:    snapshotRef(payload),
		Data:        payload,
	}
}

// snapshotRef fingerprints the payload for dispatch bookkeeping. JSON encoding
// sorts map keys, so equal payloads hash equally.
func snapshotRef(p Payload) core.SnapshotRef {
	data, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return core.SnapshotRef(core.NewHash(data))
}
