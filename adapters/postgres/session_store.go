// Package postgres implements the profile/session data collaborator over a
// PostgreSQL session store.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"cognicare/domain/core"
	"cognicare/domain/profile"
)

// SessionStore reads patients and session records from PostgreSQL. It
// implements ports.ProfileProvider, ports.SessionSource and
// ports.PatientDirectory.
type SessionStore struct {
	db *sqlx.DB
}

// NewSessionStore creates a PostgreSQL-backed session store
func NewSessionStore(db *sqlx.DB) *SessionStore {
	return &SessionStore{db: db}
}

type patientRow struct {
	UserID          string         `db:"user_id"`
	FirstName       sql.NullString `db:"first_name"`
	LastName        sql.NullString `db:"last_name"`
	Gender          sql.NullString `db:"gender"`
	DateOfBirth     sql.NullTime   `db:"date_of_birth"`
	ADHDSubtype     sql.NullString `db:"adhd_subtype"`
	LastSessionDate sql.NullTime   `db:"last_session_date"`
	TotalSessions   int            `db:"total_sessions"`
}

type sessionRow struct {
	SessionDate       time.Time       `db:"session_date"`
	Attention         sql.NullFloat64 `db:"attention"`
	Memory            sql.NullFloat64 `db:"memory"`
	ExecutiveFunction sql.NullFloat64 `db:"executive_function"`
	Behavioral        sql.NullFloat64 `db:"behavioral"`
	DurationMinutes   sql.NullInt64   `db:"duration_minutes"`
}

// GetPatient fetches one patient descriptor
func (s *SessionStore) GetPatient(ctx context.Context, patientID core.PatientID) (*profile.Patient, error) {
	var row patientRow
	err := s.db.GetContext(ctx, &row, `
		SELECT p.user_id, p.first_name, p.last_name, p.gender, p.date_of_birth, p.adhd_subtype,
		       MAX(cs.session_date) AS last_session_date,
		       COUNT(cs.id) AS total_sessions
		FROM patients p
		LEFT JOIN cognitive_sessions cs ON cs.patient_id = p.user_id
		WHERE p.user_id = $1
		GROUP BY p.user_id, p.first_name, p.last_name, p.gender, p.date_of_birth, p.adhd_subtype
	`, patientID)
	if err == sql.ErrNoRows {
		return nil, core.NewNotFoundError("patient", patientID.String())
	}
	if err != nil {
		return nil, err
	}
	patient := row.toPatient()
	return &patient, nil
}

// ListPatientsByClinician lists patients under a clinician's care with
// session roll-ups
func (s *SessionStore) ListPatientsByClinician(ctx context.Context, clinicianID core.ClinicianID) ([]profile.Patient, error) {
	var rows []patientRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT p.user_id, p.first_name, p.last_name, p.gender, p.date_of_birth, p.adhd_subtype,
		       MAX(cs.session_date) AS last_session_date,
		       COUNT(cs.id) AS total_sessions
		FROM patients p
		LEFT JOIN cognitive_sessions cs ON cs.patient_id = p.user_id
		WHERE p.clinician_id = $1
		GROUP BY p.user_id, p.first_name, p.last_name, p.gender, p.date_of_birth, p.adhd_subtype
		ORDER BY last_session_date DESC NULLS LAST
	`, clinicianID)
	if err != nil {
		return nil, err
	}

	patients := make([]profile.Patient, 0, len(rows))
	for _, row := range rows {
		patients = append(patients, row.toPatient())
	}
	return patients, nil
}

// GetSessionRecords returns the raw chronological session records for a patient
func (s *SessionStore) GetSessionRecords(ctx context.Context, patientID core.PatientID) ([]profile.SessionRecord, error) {
	var rows []sessionRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT session_date, attention, memory, executive_function, behavioral, duration_minutes
		FROM cognitive_sessions
		WHERE patient_id = $1
		ORDER BY session_date ASC
	`, patientID)
	if err != nil {
		return nil, err
	}

	records := make([]profile.SessionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

// GetCognitiveProfile aggregates a patient's stored sessions into a profile
func (s *SessionStore) GetCognitiveProfile(ctx context.Context, patientID core.PatientID) (*profile.CognitiveProfile, error) {
	records, err := s.GetSessionRecords(ctx, patientID)
	if err != nil {
		return nil, core.NewFetchError(patientID, err)
	}
	prof := profile.Aggregate(patientID, records)
	return &prof, nil
}

func (r patientRow) toPatient() profile.Patient {
	name := r.FirstName.String
	if r.LastName.String != "" {
		if name != "" {
			name += " "
		}
		name += r.LastName.String
	}

	p := profile.Patient{
		ID:            core.PatientID(r.UserID),
		Name:          name,
		Gender:        r.Gender.String,
		ADHDSubtype:   r.ADHDSubtype.String,
		TotalSessions: r.TotalSessions,
	}
	if r.LastSessionDate.Valid {
		p.LastSessionDate = r.LastSessionDate.Time
	}
	if r.DateOfBirth.Valid {
		p.Age = ageFromBirthDate(r.DateOfBirth.Time, time.Now())
	}
	return p
}

func (r sessionRow) toRecord() profile.SessionRecord {
	scores := make(map[profile.Domain]interface{})
	if r.Attention.Valid {
		scores[profile.DomainAttention] = r.Attention.Float64
	}
	if r.Memory.Valid {
		scores[profile.DomainMemory] = r.Memory.Float64
	}
	if r.ExecutiveFunction.Valid {
		scores[profile.DomainExecutiveFunction] = r.ExecutiveFunction.Float64
	}
	if r.Behavioral.Valid {
		scores[profile.DomainBehavioral] = r.Behavioral.Float64
	}
	return profile.SessionRecord{
		Date:            r.SessionDate,
		DomainScores:    scores,
		DurationMinutes: int(r.DurationMinutes.Int64),
	}
}

// ageFromBirthDate derives whole years, counting birthdays not calendar years
func ageFromBirthDate(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}
