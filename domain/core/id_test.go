package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDString tests ID string conversion
func TestIDString(t *testing.T) {
	id := ID("test-123")
	if id.String() != "test-123" {
		t.Errorf("Expected String() to return 'test-123', got '%s'", id.String())
	}
}

// TestParsePatientID tests patient ID parsing
func TestParsePatientID(t *testing.T) {
	tests := []struct {
		input    string
		expected PatientID
		hasError bool
	}{
		{"valid-id", PatientID("valid-id"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParsePatientID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestParseClinicianID tests clinician ID parsing
func TestParseClinicianID(t *testing.T) {
	if _, err := ParseClinicianID(""); err == nil {
		t.Error("Expected error for empty clinician ID")
	}
	id, err := ParseClinicianID("clinician-1")
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if id != ClinicianID("clinician-1") {
		t.Errorf("Expected clinician-1, got %s", id)
	}
}
