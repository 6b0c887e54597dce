package ports

import (
	"context"

	"cognicare/domain/core"
	"cognicare/domain/profile"
)

// ProfileProvider supplies aggregated cognitive profiles for single patients.
// The core defines only the input/output shape; transport and storage belong
// to the implementing collaborator.
type ProfileProvider interface {
	GetCognitiveProfile(ctx context.Context, patientID core.PatientID) (*profile.CognitiveProfile, error)
}

// SessionSource exposes the raw per-session records behind a profile, used by
// the raw-data export path.
type SessionSource interface {
	GetSessionRecords(ctx context.Context, patientID core.PatientID) ([]profile.SessionRecord, error)
}

// PatientDirectory lists the patients under a clinician's care
type PatientDirectory interface {
	GetPatient(ctx context.Context, patientID core.PatientID) (*profile.Patient, error)
	ListPatientsByClinician(ctx context.Context, clinicianID core.ClinicianID) ([]profile.Patient, error)
}
