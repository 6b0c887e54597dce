package profile

import (
	"time"

	"cognicare/domain/core"
)

// SessionRecord is one raw training session as supplied by the session collaborator.
// DomainScores values arrive untyped; anything non-numeric is discarded during
// aggregation rather than coerced.
type SessionRecord struct {
	Date            time.Time              `json:"date"`
	DomainScores    map[Domain]interface{} `json:"domain_scores"`
	DurationMinutes int                    `json:"duration_minutes"`
}

// TrendPoint is one (date, score) entry in a patient's performance trend
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

// CognitiveProfile is the aggregated patient-level view of session performance
type CognitiveProfile struct {
	PatientID        core.PatientID     `json:"patient_id"`
	DomainScores     map[Domain]float64 `json:"avg_domain_scores"`
	Percentile       int                `json:"percentile"`
	Progress         int                `json:"progress"`
	Trend            []TrendPoint       `json:"trend_graph"`
	TotalSessions    int                `json:"total_sessions"`
	TotalMinutes     int                `json:"total_minutes"`
	FirstSessionDate time.Time          `json:"first_session_date"`
	LastSessionDate  time.Time          `json:"last_session_date"`
}

// Score returns the score for a domain and whether it is present
func (p *CognitiveProfile) Score(d Domain) (float64, bool) {
	s, ok := p.DomainScores[d]
	return s, ok
}

// Patient describes a patient as listed in a clinician's directory
type Patient struct {
	ID              core.PatientID `json:"user_id"`
	Name            string         `json:"name"`
	Age             int            `json:"age,omitempty"`
	Gender          string         `json:"gender,omitempty"`
	ADHDSubtype     string         `json:"adhd_subtype,omitempty"`
	LastSessionDate time.Time      `json:"last_session_date,omitempty"`
	TotalSessions   int            `json:"total_sessions"`
}
