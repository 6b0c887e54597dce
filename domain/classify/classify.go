// Package classify holds the pure presentation-time labeling rules applied to
// aggregated cognitive scores: ordinal percentile strings, score-band badges
// and ADHD subtype normalization.
package classify

import (
	"fmt"
	"strings"
)

// Badge is the severity band assigned to a score
type Badge string

const (
	BadgeCritical Badge = "critical"
	BadgeLow      Badge = "low"
	BadgeModerate Badge = "moderate"
	BadgeHigh     Badge = "high"
)

// Subtype is the normalized ADHD presentation label
type Subtype string

const (
	SubtypeInattentive Subtype = "inattentive"
	SubtypeHyperactive Subtype = "hyperactive"
	SubtypeCombined    Subtype = "combined"
	SubtypeUnspecified Subtype = "unspecified"
)

// FormatPercentile renders a percentile value with its ordinal suffix.
// Values between 10 and 20 exclusive always take "th", which covers the
// irregular 11th/12th/13th cases; everything else follows the last digit.
func FormatPercentile(value int) string {
	if value > 10 && value < 20 {
		return fmt.Sprintf("%dth", value)
	}
	switch value % 10 {
	case 1:
		return fmt.Sprintf("%dst", value)
	case 2:
		return fmt.Sprintf("%dnd", value)
	case 3:
		return fmt.Sprintf("%drd", value)
	default:
		return fmt.Sprintf("%dth", value)
	}
}

// ScoreBadge maps a score to its severity band. Bands are half-open on the
// lower bound: [0,40) critical, [40,60) low, [60,85) moderate, [85,∞) high.
func ScoreBadge(score float64) Badge {
	switch {
	case score < 40:
		return BadgeCritical
	case score < 60:
		return BadgeLow
	case score < 85:
		return BadgeModerate
	default:
		return BadgeHigh
	}
}

// NormalizeSubtype maps free-text subtype input to a tagged variant using
// case-insensitive substring matches in fixed priority order. The returned
// label is the display string: the enum's name for a recognized value, the raw
// text verbatim for unrecognized non-empty input, and "Not Specified" when the
// input is empty.
func NormalizeSubtype(raw string) (Subtype, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return SubtypeUnspecified, "Not Specified"
	}
	lower := strings.ToLower(trimmed)
	switch {
	case strings.Contains(lower, "inattentive"):
		return SubtypeInattentive, string(SubtypeInattentive)
	case strings.Contains(lower, "hyperactive"):
		return SubtypeHyperactive, string(SubtypeHyperactive)
	case strings.Contains(lower, "combined"):
		return SubtypeCombined, string(SubtypeCombined)
	default:
		return SubtypeUnspecified, trimmed
	}
}
