package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	PatientID   ID
	ClinicianID ID
	ReportID    ID
)

// String conversions for domain IDs
func (id PatientID) String() string   { return ID(id).String() }
func (id ClinicianID) String() string { return ID(id).String() }
func (id ReportID) String() string    { return ID(id).String() }

func (id PatientID) IsEmpty() bool { return ID(id).IsEmpty() }
func (id ReportID) IsEmpty() bool  { return ID(id).IsEmpty() }

// ParsePatientID parses a string into PatientID
func ParsePatientID(s string) (PatientID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("patient ID cannot be empty")
	}
	return PatientID(s), nil
}

// ParseClinicianID parses a string into ClinicianID
func ParseClinicianID(s string) (ClinicianID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("clinician ID cannot be empty")
	}
	return ClinicianID(s), nil
}
