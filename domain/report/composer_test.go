package report

import (
	"testing"

	"cognicare/domain/core"
	"cognicare/domain/profile"
)

func testPatient() profile.Patient {
	return profile.Patient{
		ID:   core.PatientID("patient-1"),
		Name: "Lina Haddad",
	}
}

func testProfile() profile.CognitiveProfile {
	return profile.CognitiveProfile{
		PatientID: core.PatientID("patient-1"),
		DomainScores: map[profile.Domain]float64{
			profile.DomainAttention: 72,
			profile.DomainMemory:    64,
		},
		Percentile:    68,
		TotalSessions: 12,
	}
}

// TestComposeProducesGeneratedReport tests the composed report's shape
func TestComposeProducesGeneratedReport(t *testing.T) {
	composer := NewComposer()
	rep := composer.Compose(testPatient(), testProfile(), DefaultSections())

	if rep.Status != StatusGenerated {
		t.Errorf("Expected status %s, got %s", StatusGenerated, rep.Status)
	}
	if rep.ID.IsEmpty() {
		t.Error("Expected a fresh report ID")
	}
	if rep.Type != TypeComprehensive {
		t.Errorf("Expected type %s, got %s", TypeComprehensive, rep.Type)
	}
	if rep.PatientName != "Lina Haddad" {
		t.Errorf("Expected patient name carried onto report, got %q", rep.PatientName)
	}
	if rep.Snapshot.String() == "" {
		t.Error("Expected a payload snapshot ref")
	}
	if rep.Data.Metrics.Percentile != 68 {
		t.Errorf("Expected profile metrics embedded, got percentile %d", rep.Data.Metrics.Percentile)
	}
	if len(rep.Data.Recommendations) != 3 {
		t.Fatalf("Expected 3 recommendations, got %d", len(rep.Data.Recommendations))
	}
	if rep.Data.Recommendations[0].Title != "Personalized cognitive training" {
		t.Errorf("Unexpected first recommendation: %q", rep.Data.Recommendations[0].Title)
	}
}

// TestComposeAllSectionsDisabled tests that an all-false section set still
// yields a valid generated report
func TestComposeAllSectionsDisabled(t *testing.T) {
	composer := NewComposer()
	rep := composer.Compose(testPatient(), testProfile(), SectionSet{})

	if !rep.IsGenerated() {
		t.Error("Expected report to be generated even with every section disabled")
	}
	if rep.Sections != (SectionSet{}) {
		t.Errorf("Expected section choices preserved, got %+v", rep.Sections)
	}
}

// TestComposeRegenerateMintsNewID tests that regeneration supersedes rather
// than mutates
func TestComposeRegenerateMintsNewID(t *testing.T) {
	composer := NewComposer()
	first := composer.Compose(testPatient(), testProfile(), DefaultSections())
	second := composer.Compose(testPatient(), testProfile(), DefaultSections())

	if first.ID == second.ID {
		t.Error("Expected regeneration to mint a distinct report ID")
	}
	if first.Status != StatusGenerated {
		t.Errorf("Expected the superseded report left untouched, got status %s", first.Status)
	}
}

// TestDefaultSections tests the clinician-facing defaults
func TestDefaultSections(t *testing.T) {
	sections := DefaultSections()
	if !sections.Overview || !sections.DomainAnalysis || !sections.Trends || !sections.Recommendations {
		t.Errorf("Expected all narrative sections on by default, got %+v", sections)
	}
	if sections.RawData {
		t.Error("Expected raw data off by default")
	}
}

// TestReportLifecycle tests the status transitions around dispatch
func TestReportLifecycle(t *testing.T) {
	var nilReport *Report
	if nilReport.IsGenerated() {
		t.Error("Expected nil report to not be generated")
	}

	draft := &Report{Status: StatusDraft}
	if draft.IsGenerated() {
		t.Error("Expected draft to not be generated")
	}
	if draft.CanDispatch() {
		t.Error("Expected draft to not be dispatchable")
	}
	draft.MarkSent()
	if draft.Status != StatusDraft {
		t.Errorf("Expected MarkSent to be a no-op on a draft, got %s", draft.Status)
	}

	rep := &Report{Status: StatusGenerated}
	rep.MarkSent()
	if rep.Status != StatusSent {
		t.Errorf("Expected status sent after MarkSent, got %s", rep.Status)
	}
	// Sent is informational: exports and resends stay allowed
	if !rep.IsGenerated() {
		t.Error("Expected sent report to still count as generated")
	}
	if !rep.CanDispatch() {
		t.Error("Expected sent report to still be dispatchable")
	}
}
