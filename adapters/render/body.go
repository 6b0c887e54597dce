package render

import (
	"fmt"
	"strings"

	"cognicare/domain/profile"
	"cognicare/domain/report"
)

// Vertical rhythm for the report body, in pixels
const (
	gapSection = 30
	gapHeading = 12
	gapRule    = 20
)

// buildBody lays the report out as a flat sequence of lines, one continuous
// column. Only sections whose inclusion flag is set contribute lines; the
// ordering matches the clinician-facing document.
func buildBody(rep *report.Report) []renderLine {
	var lines []renderLine

	text := func(gap int, s string) {
		for i, wrapped := range wrap(s, 0) {
			g := 0
			if i == 0 {
				g = gap
			}
			lines = append(lines, renderLine{Text: wrapped, GapBefore: g})
		}
	}

	// Header
	text(0, fmt.Sprintf("%s - Comprehensive Report", rep.PatientName))
	text(4, fmt.Sprintf("Generated on %s", rep.CreatedDate.DisplayDate()))
	text(gapRule, strings.Repeat("-", 72))

	if rep.Sections.Overview {
		text(gapSection, "Patient Overview")
		text(gapHeading, fmt.Sprintf("Patient: %s", rep.PatientName))
		text(0, fmt.Sprintf("Patient ID: %s", rep.PatientID))
	}

	if rep.Sections.DomainAnalysis {
		text(gapSection, "Cognitive Domain Analysis")
		text(gapHeading, "Domain Scores")
		for _, d := range profile.AllDomains() {
			score, ok := rep.Data.Metrics.Score(d)
			if !ok {
				text(0, fmt.Sprintf("  %-20s  -", d.DisplayName()))
				continue
			}
			text(0, fmt.Sprintf("  %-20s  %.0f%%", d.DisplayName(), score))
		}
		text(0, fmt.Sprintf("  %-20s  %d%%", "Overall", rep.Data.Metrics.Percentile))

		text(gapHeading, "Domain Summary")
		text(4, fmt.Sprintf("Attention: %s", rep.Data.Summary.Attention))
		text(4, fmt.Sprintf("Memory: %s", rep.Data.Summary.Memory))
		text(4, fmt.Sprintf("Executive Function: %s", rep.Data.Summary.ExecutiveFunction))
		text(4, fmt.Sprintf("Overall: %s", rep.Data.Summary.Overall))
	}

	if rep.Sections.Trends {
		text(gapSection, "Performance Trends")
		text(gapHeading, fmt.Sprintf("Sessions Completed: %d", rep.Data.Metrics.TotalSessions))
		text(0, fmt.Sprintf("Total Training Duration: %d minutes", rep.Data.Metrics.TotalMinutes))
		text(0, fmt.Sprintf("Progress: %+d%%", rep.Data.Metrics.Progress))
		text(gapHeading, "Assessment of patient's progress over time based on completed sessions.")
	}

	if rep.Sections.Recommendations {
		text(gapSection, "Clinical Recommendations")
		for i, rec := range rep.Data.Recommendations {
			text(gapHeading, fmt.Sprintf("%d. %s: %s", i+1, rec.Title, rec.Description))
		}
	}

	if rep.Sections.RawData {
		text(gapSection, "Raw Assessment Data")
		text(gapHeading, "Detailed raw data from assessments is available upon request. Please contact the clinical team to access the complete dataset.")
		text(4, "Note: Raw data includes session-by-session performance metrics, response times, error rates, and detailed assessment outcomes.")
	}

	// Footer
	text(gapRule, strings.Repeat("-", 72))
	text(gapHeading, fmt.Sprintf("This report was generated on %s and represents the patient's performance at that time. Clinical decisions should not be based solely on this report without consultation with a qualified healthcare professional.", rep.CreatedDate.DisplayDate()))

	return lines
}
