// Package testkit provides an in-memory session data provider with fixture
// patients. It backs tests, the offline CLI, and the dashboard's placeholder
// fallback when the real provider is unreachable.
package testkit

import (
	"context"
	"time"

	"cognicare/domain/core"
	"cognicare/domain/profile"
)

// FixtureProvider serves canned patients and session records. It implements
// ports.ProfileProvider, ports.SessionSource and ports.PatientDirectory.
type FixtureProvider struct {
	patients map[core.PatientID]profile.Patient
	sessions map[core.PatientID][]profile.SessionRecord
	order    []core.PatientID
}

// NewFixtureProvider creates a provider pre-loaded with demo patients
func NewFixtureProvider() *FixtureProvider {
	p := &FixtureProvider{
		patients: make(map[core.PatientID]profile.Patient),
		sessions: make(map[core.PatientID][]profile.SessionRecord),
	}
	for _, fixture := range defaultFixtures() {
		p.AddPatient(fixture.Patient, fixture.Sessions)
	}
	return p
}

// NewEmptyFixtureProvider creates a provider with no patients, for tests
func NewEmptyFixtureProvider() *FixtureProvider {
	return &FixtureProvider{
		patients: make(map[core.PatientID]profile.Patient),
		sessions: make(map[core.PatientID][]profile.SessionRecord),
	}
}

// AddPatient registers a patient with their session history
func (p *FixtureProvider) AddPatient(patient profile.Patient, sessions []profile.SessionRecord) {
	if _, exists := p.patients[patient.ID]; !exists {
		p.order = append(p.order, patient.ID)
	}
	patient.TotalSessions = len(sessions)
	if len(sessions) > 0 {
		patient.LastSessionDate = sessions[len(sessions)-1].Date
	}
	p.patients[patient.ID] = patient
	p.sessions[patient.ID] = sessions
}

// GetPatient returns one fixture patient
func (p *FixtureProvider) GetPatient(ctx context.Context, patientID core.PatientID) (*profile.Patient, error) {
	patient, ok := p.patients[patientID]
	if !ok {
		return nil, core.NewNotFoundError("patient", patientID.String())
	}
	return &patient, nil
}

// ListPatientsByClinician returns every fixture patient; the fixture set
// models a single clinician's caseload
func (p *FixtureProvider) ListPatientsByClinician(ctx context.Context, clinicianID core.ClinicianID) ([]profile.Patient, error) {
	patients := make([]profile.Patient, 0, len(p.order))
	for _, id := range p.order {
		patients = append(patients, p.patients[id])
	}
	return patients, nil
}

// GetSessionRecords returns the raw fixture sessions for a patient
func (p *FixtureProvider) GetSessionRecords(ctx context.Context, patientID core.PatientID) ([]profile.SessionRecord, error) {
	sessions, ok := p.sessions[patientID]
	if !ok {
		return nil, core.NewNotFoundError("patient", patientID.String())
	}
	return sessions, nil
}

// GetCognitiveProfile aggregates the fixture sessions for a patient
func (p *FixtureProvider) GetCognitiveProfile(ctx context.Context, patientID core.PatientID) (*profile.CognitiveProfile, error) {
	sessions, ok := p.sessions[patientID]
	if !ok {
		return nil, core.NewNotFoundError("patient", patientID.String())
	}
	prof := profile.Aggregate(patientID, sessions)
	return &prof, nil
}

type fixture struct {
	Patient  profile.Patient
	Sessions []profile.SessionRecord
}

func defaultFixtures() []fixture {
	base := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	weekly := func(week int) time.Time { return base.AddDate(0, 0, 7*week) }

	return []fixture{
		{
			Patient: profile.Patient{
				ID: "ptn-demo-001", Name: "Lina Haddad", Age: 9, Gender: "female",
				ADHDSubtype: "Predominantly Inattentive Presentation",
			},
			Sessions: []profile.SessionRecord{
				{Date: weekly(0), DurationMinutes: 15, DomainScores: scores(52, 61, 48, 67)},
				{Date: weekly(1), DurationMinutes: 15, DomainScores: scores(55, 63, 50, 69)},
				{Date: weekly(2), DurationMinutes: 20, DomainScores: scores(58, 66, 54, 70)},
				{Date: weekly(3), DurationMinutes: 20, DomainScores: scores(61, 68, 57, 72)},
			},
		},
		{
			Patient: profile.Patient{
				ID: "ptn-demo-002", Name: "Omar Al Rashid", Age: 11, Gender: "male",
				ADHDSubtype: "hyperactive-impulsive",
			},
			Sessions: []profile.SessionRecord{
				{Date: weekly(0), DurationMinutes: 15, DomainScores: scores(71, 58, 64, 45)},
				{Date: weekly(1), DurationMinutes: 15, DomainScores: scores(73, 60, 66, 49)},
				{Date: weekly(2), DurationMinutes: 15, DomainScores: scores(76, 64, 69, 52)},
			},
		},
		{
			Patient: profile.Patient{
				ID: "ptn-demo-003", Name: "Sara Mansour", Age: 8, Gender: "female",
				ADHDSubtype: "combined",
			},
			Sessions: []profile.SessionRecord{
				{Date: weekly(0), DurationMinutes: 20, DomainScores: scores(38, 44, 41, 36)},
				{Date: weekly(1), DurationMinutes: 20, DomainScores: scores(41, 47, 43, 40)},
			},
		},
	}
}

func scores(attention, memory, executive, behavioral float64) map[profile.Domain]interface{} {
	return map[profile.Domain]interface{}{
		profile.DomainAttention:         attention,
		profile.DomainMemory:            memory,
		profile.DomainExecutiveFunction: executive,
		profile.DomainBehavioral:        behavioral,
	}
}
