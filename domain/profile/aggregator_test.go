package profile

import (
	"math"
	"testing"
	"time"

	"cognicare/domain/core"
)

func day(n int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func session(n int, scores map[Domain]interface{}, minutes int) SessionRecord {
	return SessionRecord{Date: day(n), DomainScores: scores, DurationMinutes: minutes}
}

// TestAggregateDomainMeans tests per-domain averaging over numeric scores
func TestAggregateDomainMeans(t *testing.T) {
	records := []SessionRecord{
		session(0, map[Domain]interface{}{DomainAttention: 60.0, DomainMemory: 40.0}, 20),
		session(1, map[Domain]interface{}{DomainAttention: 80.0, DomainMemory: 60.0}, 25),
	}

	p := Aggregate(core.PatientID("p1"), records)

	if got := p.DomainScores[DomainAttention]; got != 70.0 {
		t.Errorf("Expected attention mean 70, got %v", got)
	}
	if got := p.DomainScores[DomainMemory]; got != 50.0 {
		t.Errorf("Expected memory mean 50, got %v", got)
	}
	if _, ok := p.DomainScores[DomainExecutiveFunction]; ok {
		t.Error("Expected absent domain to stay absent, not zero")
	}
	if p.TotalSessions != 2 {
		t.Errorf("Expected 2 total sessions, got %d", p.TotalSessions)
	}
	if p.TotalMinutes != 45 {
		t.Errorf("Expected 45 total minutes, got %d", p.TotalMinutes)
	}
	if !p.FirstSessionDate.Equal(day(0)) || !p.LastSessionDate.Equal(day(1)) {
		t.Errorf("Unexpected session date range: %v to %v", p.FirstSessionDate, p.LastSessionDate)
	}
}

// TestAggregateEmptyRecords tests the zero-session result
func TestAggregateEmptyRecords(t *testing.T) {
	p := Aggregate(core.PatientID("p1"), nil)

	if p.Percentile != 0 {
		t.Errorf("Expected percentile 0 with no sessions, got %d", p.Percentile)
	}
	if p.Progress != 0 {
		t.Errorf("Expected progress 0 with no sessions, got %d", p.Progress)
	}
	if len(p.DomainScores) != 0 {
		t.Errorf("Expected no domain scores, got %v", p.DomainScores)
	}
	if len(p.Trend) != 0 {
		t.Errorf("Expected empty trend, got %v", p.Trend)
	}
}

// TestAggregateMalformedScoresFiltered tests that non-numeric entries are
// dropped rather than coerced to zero
func TestAggregateMalformedScoresFiltered(t *testing.T) {
	records := []SessionRecord{
		session(0, map[Domain]interface{}{
			DomainAttention: 80.0,
			DomainMemory:    "sixty",
		}, 15),
		session(1, map[Domain]interface{}{
			DomainAttention: nil,
			DomainMemory:    true,
		}, 15),
		session(2, map[Domain]interface{}{
			DomainAttention: math.NaN(),
			DomainMemory:    math.Inf(1),
		}, 15),
	}

	p := Aggregate(core.PatientID("p1"), records)

	if got := p.DomainScores[DomainAttention]; got != 80.0 {
		t.Errorf("Expected attention mean 80 (malformed entries dropped), got %v", got)
	}
	if _, ok := p.DomainScores[DomainMemory]; ok {
		t.Error("Expected memory absent when every entry is malformed")
	}
	// Only the first session has a usable score
	if len(p.Trend) != 1 {
		t.Fatalf("Expected 1 trend point, got %d", len(p.Trend))
	}
	if p.Trend[0].Score != 80.0 {
		t.Errorf("Expected trend score 80, got %v", p.Trend[0].Score)
	}
	// Minutes still count even when scores are unusable
	if p.TotalMinutes != 45 {
		t.Errorf("Expected 45 total minutes, got %d", p.TotalMinutes)
	}
}

// TestAggregateNumericCoercion tests accepted numeric representations
func TestAggregateNumericCoercion(t *testing.T) {
	records := []SessionRecord{
		session(0, map[Domain]interface{}{
			DomainAttention:         55,
			DomainMemory:            float32(65),
			DomainExecutiveFunction: int64(75),
			DomainBehavioral:        int32(85),
		}, 10),
	}

	p := Aggregate(core.PatientID("p1"), records)

	for domain, want := range map[Domain]float64{
		DomainAttention:         55,
		DomainMemory:            65,
		DomainExecutiveFunction: 75,
		DomainBehavioral:        85,
	} {
		if got := p.DomainScores[domain]; got != want {
			t.Errorf("Expected %s score %v, got %v", domain, want, got)
		}
	}
}

// TestAggregateUnknownDomainIgnored tests that unrecognized domain keys are
// skipped entirely
func TestAggregateUnknownDomainIgnored(t *testing.T) {
	records := []SessionRecord{
		session(0, map[Domain]interface{}{
			DomainAttention:    70.0,
			Domain("reaction"): 999.0,
		}, 10),
	}

	p := Aggregate(core.PatientID("p1"), records)

	if len(p.DomainScores) != 1 {
		t.Errorf("Expected 1 domain score, got %v", p.DomainScores)
	}
	if p.Percentile != 70 {
		t.Errorf("Expected percentile 70, got %d", p.Percentile)
	}
}

// TestAggregatePercentile tests the rounded mean of present domain scores
func TestAggregatePercentile(t *testing.T) {
	records := []SessionRecord{
		session(0, map[Domain]interface{}{DomainAttention: 71.0, DomainMemory: 74.0}, 10),
	}

	p := Aggregate(core.PatientID("p1"), records)

	// mean(71, 74) = 72.5, rounds to 73
	if p.Percentile != 73 {
		t.Errorf("Expected percentile 73, got %d", p.Percentile)
	}
}

// TestAggregateTrendOrderAndProgress tests that the trend preserves record
// order and progress spans first to last point
func TestAggregateTrendOrderAndProgress(t *testing.T) {
	records := []SessionRecord{
		session(0, map[Domain]interface{}{DomainAttention: 40.0}, 10),
		session(1, map[Domain]interface{}{DomainAttention: 55.0}, 10),
		session(2, map[Domain]interface{}{DomainAttention: 62.0}, 10),
	}

	p := Aggregate(core.PatientID("p1"), records)

	if len(p.Trend) != 3 {
		t.Fatalf("Expected 3 trend points, got %d", len(p.Trend))
	}
	for i, want := range []float64{40, 55, 62} {
		if p.Trend[i].Score != want {
			t.Errorf("Expected trend[%d] score %v, got %v", i, want, p.Trend[i].Score)
		}
		if !p.Trend[i].Date.Equal(day(i)) {
			t.Errorf("Expected trend[%d] date %v, got %v", i, day(i), p.Trend[i].Date)
		}
	}
	if p.Progress != 22 {
		t.Errorf("Expected progress 22, got %d", p.Progress)
	}
}

// TestAggregateSingleSessionProgress tests that one session yields no progress
func TestAggregateSingleSessionProgress(t *testing.T) {
	records := []SessionRecord{
		session(0, map[Domain]interface{}{DomainAttention: 50.0}, 10),
	}

	p := Aggregate(core.PatientID("p1"), records)
	if p.Progress != 0 {
		t.Errorf("Expected progress 0 with a single session, got %d", p.Progress)
	}
}

// TestAggregateDoesNotMutateRecords tests purity with respect to the input
func TestAggregateDoesNotMutateRecords(t *testing.T) {
	scores := map[Domain]interface{}{DomainAttention: 50.0, DomainMemory: "bad"}
	records := []SessionRecord{session(0, scores, 10)}

	Aggregate(core.PatientID("p1"), records)

	if len(scores) != 2 {
		t.Errorf("Expected input scores untouched, got %v", scores)
	}
	if scores[DomainMemory] != "bad" {
		t.Error("Expected malformed entry left in place on the input record")
	}
}
