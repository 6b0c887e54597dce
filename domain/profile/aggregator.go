package profile

import (
	"math"

	"github.com/montanaflynn/stats"

	"cognicare/domain/core"
)

// Aggregate computes a CognitiveProfile from a chronological sequence of
// session records. It is a pure function: records are never mutated, the trend
// series preserves input order, and non-numeric score entries are filtered out
// rather than treated as zero.
func Aggregate(patientID core.PatientID, records []SessionRecord) CognitiveProfile {
	p := CognitiveProfile{
		PatientID:     patientID,
		DomainScores:  make(map[Domain]float64),
		Trend:         make([]TrendPoint, 0, len(records)),
		TotalSessions: len(records),
	}

	perDomain := make(map[Domain][]float64)
	for _, rec := range records {
		sessionScores := make([]float64, 0, len(rec.DomainScores))
		for domain, raw := range rec.DomainScores {
			if !domain.IsValid() {
				continue
			}
			score, ok := numericScore(raw)
			if !ok {
				continue
			}
			perDomain[domain] = append(perDomain[domain], score)
			sessionScores = append(sessionScores, score)
		}

		// Sessions with no usable scores contribute nothing to the trend
		if len(sessionScores) > 0 {
			overall, err := stats.Mean(sessionScores)
			if err == nil {
				p.Trend = append(p.Trend, TrendPoint{Date: rec.Date, Score: overall})
			}
		}

		p.TotalMinutes += rec.DurationMinutes
		if p.FirstSessionDate.IsZero() {
			p.FirstSessionDate = rec.Date
		}
		p.LastSessionDate = rec.Date
	}

	for domain, scores := range perDomain {
		if mean, err := stats.Mean(scores); err == nil {
			p.DomainScores[domain] = mean
		}
	}

	p.Percentile = overallPercentile(p.DomainScores)
	p.Progress = progressDelta(p.Trend)

	return p
}

// overallPercentile is the rounded mean of the domain scores that are present.
// Absent domains are excluded, never counted as zero; with no scores at all the
// percentile is 0.
func overallPercentile(scores map[Domain]float64) int {
	values := make([]float64, 0, len(scores))
	for _, s := range scores {
		values = append(values, s)
	}
	if len(values) == 0 {
		return 0
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return int(math.Round(mean))
}

// progressDelta is the rounded change between the first and last trend points.
// It is display data, not a fitted model.
func progressDelta(trend []TrendPoint) int {
	if len(trend) < 2 {
		return 0
	}
	return int(math.Round(trend[len(trend)-1].Score - trend[0].Score))
}

// numericScore extracts a usable score from an untyped session value.
// Strings, booleans, nils, NaN and infinities are all malformed input and are
// dropped by the caller.
func numericScore(raw interface{}) (float64, bool) {
	var v float64
	switch t := raw.(type) {
	case float64:
		v = t
	case float32:
		v = float64(t)
	case int:
		v = float64(t)
	case int32:
		v = float64(t)
	case int64:
		v = float64(t)
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
