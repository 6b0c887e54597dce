package app

import (
	"context"
	"errors"
	"testing"

	"cognicare/domain/core"
	"cognicare/domain/profile"
)

// stubSource is a scriptable DataSource: directory errors and per-patient
// profile errors are injected by key
type stubSource struct {
	patients    []profile.Patient
	listErr     error
	profiles    map[core.PatientID]profile.CognitiveProfile
	profileErrs map[core.PatientID]error
}

func (s *stubSource) GetPatient(ctx context.Context, patientID core.PatientID) (*profile.Patient, error) {
	for i := range s.patients {
		if s.patients[i].ID == patientID {
			return &s.patients[i], nil
		}
	}
	return nil, core.ErrPatientNotFound
}

func (s *stubSource) ListPatientsByClinician(ctx context.Context, clinicianID core.ClinicianID) ([]profile.Patient, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.patients, nil
}

func (s *stubSource) GetCognitiveProfile(ctx context.Context, patientID core.PatientID) (*profile.CognitiveProfile, error) {
	if err := s.profileErrs[patientID]; err != nil {
		return nil, err
	}
	prof, ok := s.profiles[patientID]
	if !ok {
		return nil, core.ErrProfileUnavailable
	}
	return &prof, nil
}

func twoPatientSource() *stubSource {
	return &stubSource{
		patients: []profile.Patient{
			{ID: core.PatientID("a"), Name: "Patient A", TotalSessions: 4},
			{ID: core.PatientID("b"), Name: "Patient B", TotalSessions: 6},
		},
		profiles: map[core.PatientID]profile.CognitiveProfile{
			"a": {PatientID: "a", Percentile: 60, TotalSessions: 4, TotalMinutes: 80},
			"b": {PatientID: "b", Percentile: 80, TotalSessions: 6, TotalMinutes: 120},
		},
	}
}

// TestDashboardBuild tests the fully successful path
func TestDashboardBuild(t *testing.T) {
	svc := NewDashboardService(twoPatientSource(), nil, 4)

	result := svc.Build(context.Background(), core.ClinicianID("c1"), nil)

	if len(result.Patients) != 2 {
		t.Fatalf("Expected 2 patients, got %d", len(result.Patients))
	}
	if len(result.Profiles) != 2 {
		t.Fatalf("Expected 2 profiles, got %d", len(result.Profiles))
	}
	if len(result.Failed) != 0 {
		t.Errorf("Expected no failures, got %v", result.Failed)
	}
	if result.Summary.TotalPatients != 2 {
		t.Errorf("Expected 2 total patients, got %d", result.Summary.TotalPatients)
	}
	if result.Summary.AveragePercentile != 70 {
		t.Errorf("Expected average percentile 70, got %d", result.Summary.AveragePercentile)
	}
}

// TestDashboardPartialFailure tests that one patient's failure never removes
// another patient's data
func TestDashboardPartialFailure(t *testing.T) {
	source := twoPatientSource()
	source.profileErrs = map[core.PatientID]error{
		"a": errors.New("profile backend down"),
	}
	svc := NewDashboardService(source, nil, 4)

	result := svc.Build(context.Background(), core.ClinicianID("c1"), nil)

	if len(result.Patients) != 2 {
		t.Fatalf("Expected both patients listed, got %d", len(result.Patients))
	}
	if _, ok := result.Profiles["b"]; !ok {
		t.Error("Expected patient b's profile intact despite a's failure")
	}
	if _, ok := result.Profiles["a"]; ok {
		t.Error("Expected no profile entry for the failed patient")
	}
	if _, ok := result.Failed["a"]; !ok {
		t.Error("Expected patient a recorded as failed")
	}
}

// TestDashboardDirectoryFallback tests the silent cache-then-placeholder chain
func TestDashboardDirectoryFallback(t *testing.T) {
	broken := &stubSource{listErr: errors.New("directory unreachable")}
	fallback := twoPatientSource()
	svc := NewDashboardService(broken, fallback, 4)

	result := svc.Build(context.Background(), core.ClinicianID("c1"), nil)

	if len(result.Patients) != 2 {
		t.Fatalf("Expected placeholder patients, got %d", len(result.Patients))
	}
	if len(result.Profiles) != 2 {
		t.Errorf("Expected placeholder profiles, got %d", len(result.Profiles))
	}
}

// TestDashboardCachedResultPreferred tests that a previously built result
// wins over the placeholder when the directory goes away
func TestDashboardCachedResultPreferred(t *testing.T) {
	source := twoPatientSource()
	svc := NewDashboardService(source, NewEmptyPlaceholder(), 4)

	first := svc.Build(context.Background(), core.ClinicianID("c1"), nil)
	if len(first.Patients) != 2 {
		t.Fatalf("Expected initial build to succeed, got %d patients", len(first.Patients))
	}

	source.listErr = errors.New("directory unreachable")
	second := svc.Build(context.Background(), core.ClinicianID("c1"), nil)

	if len(second.Patients) != 2 {
		t.Errorf("Expected cached result on directory failure, got %d patients", len(second.Patients))
	}
}

// TestDashboardNoFallbackYieldsEmpty tests degraded output without a
// configured placeholder
func TestDashboardNoFallbackYieldsEmpty(t *testing.T) {
	broken := &stubSource{listErr: errors.New("directory unreachable")}
	svc := NewDashboardService(broken, nil, 4)

	result := svc.Build(context.Background(), core.ClinicianID("c1"), nil)

	if result == nil {
		t.Fatal("Expected a result, not nil")
	}
	if len(result.Patients) != 0 || len(result.Profiles) != 0 {
		t.Errorf("Expected empty degraded result, got %+v", result)
	}
}

// TestDashboardClosedLivenessDropsResults tests that a closed token keeps
// late profile results from being applied or cached
func TestDashboardClosedLivenessDropsResults(t *testing.T) {
	svc := NewDashboardService(twoPatientSource(), nil, 4)

	live := NewLiveness()
	live.Close()

	result := svc.Build(context.Background(), core.ClinicianID("c1"), live)

	if len(result.Profiles) != 0 {
		t.Errorf("Expected no profiles applied after liveness closed, got %d", len(result.Profiles))
	}
	if cached := svc.cachedResult(); cached != nil {
		t.Error("Expected nothing cached after liveness closed")
	}
}

// NewEmptyPlaceholder returns a DataSource with no patients, standing in for
// the demo fixtures in tests that only need the fallback hop itself
func NewEmptyPlaceholder() DataSource {
	return &stubSource{}
}
