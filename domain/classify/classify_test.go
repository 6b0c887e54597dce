package classify

import (
	"testing"
)

// TestFormatPercentile tests ordinal suffix selection, including the
// irregular teens
func TestFormatPercentile(t *testing.T) {
	tests := []struct {
		value    int
		expected string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{10, "10th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{14, "14th"},
		{19, "19th"},
		{20, "20th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{24, "24th"},
		{73, "73rd"},
		{100, "100th"},
		{0, "0th"},
	}

	for _, test := range tests {
		if got := FormatPercentile(test.value); got != test.expected {
			t.Errorf("FormatPercentile(%d): expected %s, got %s", test.value, test.expected, got)
		}
	}
}

// TestScoreBadge tests the band boundaries
func TestScoreBadge(t *testing.T) {
	tests := []struct {
		score    float64
		expected Badge
	}{
		{0, BadgeCritical},
		{39.9, BadgeCritical},
		{40, BadgeLow},
		{59.9, BadgeLow},
		{60, BadgeModerate},
		{84.9, BadgeModerate},
		{85, BadgeHigh},
		{100, BadgeHigh},
	}

	for _, test := range tests {
		if got := ScoreBadge(test.score); got != test.expected {
			t.Errorf("ScoreBadge(%v): expected %s, got %s", test.score, test.expected, got)
		}
	}
}

// TestNormalizeSubtype tests substring matching priority and fallbacks
func TestNormalizeSubtype(t *testing.T) {
	tests := []struct {
		input         string
		expectedType  Subtype
		expectedLabel string
	}{
		{"ADHD-Inattentive", SubtypeInattentive, "inattentive"},
		{"predominantly INATTENTIVE presentation", SubtypeInattentive, "inattentive"},
		{"Hyperactive-Impulsive", SubtypeHyperactive, "hyperactive"},
		{"Combined Type", SubtypeCombined, "combined"},
		// Inattentive wins over later matches in the priority order
		{"inattentive and hyperactive", SubtypeInattentive, "inattentive"},
		{"hyperactive combined", SubtypeHyperactive, "hyperactive"},
		// Unrecognized input keeps its trimmed raw text as the label
		{"  Atypical Presentation  ", SubtypeUnspecified, "Atypical Presentation"},
		{"", SubtypeUnspecified, "Not Specified"},
		{"   ", SubtypeUnspecified, "Not Specified"},
	}

	for _, test := range tests {
		subtype, label := NormalizeSubtype(test.input)
		if subtype != test.expectedType {
			t.Errorf("NormalizeSubtype(%q): expected subtype %s, got %s", test.input, test.expectedType, subtype)
		}
		if label != test.expectedLabel {
			t.Errorf("NormalizeSubtype(%q): expected label %q, got %q", test.input, test.expectedLabel, label)
		}
	}
}
