package app

import (
	"context"
	"log"
	"math"
	"sync"

	"golang.org/x/sync/semaphore"
	"gonum.org/v1/gonum/stat"

	"cognicare/domain/core"
	"cognicare/domain/profile"
	"cognicare/ports"
)

// DataSource bundles the collaborator contracts a dashboard needs
type DataSource interface {
	ports.PatientDirectory
	ports.ProfileProvider
}

// DashboardSummary is the roll-up block shown above the patient cards
type DashboardSummary struct {
	TotalPatients     int                        `json:"total_patients"`
	TotalSessions     int                        `json:"total_sessions"`
	AveragePercentile int                        `json:"average_percentile"`
	TotalMinutes      int                        `json:"total_minutes"`
	DomainAverages    map[profile.Domain]float64 `json:"domain_averages"`
}

// DashboardResult is a possibly partial view over a clinician's caseload.
// Profiles and Failed are keyed by patient; a failure for one patient never
// removes or corrupts another patient's entry.
type DashboardResult struct {
	Patients []profile.Patient                           `json:"patients"`
	Profiles map[core.PatientID]profile.CognitiveProfile `json:"profiles"`
	Failed   map[core.PatientID]string                   `json:"failed,omitempty"`
	Summary  DashboardSummary                            `json:"summary"`
}

// DashboardService aggregates cognitive profiles across a clinician's
// patients. Per-patient fetches run concurrently under a weighted semaphore;
// the last successfully completed fetch for a patient key wins and callers
// must tolerate partially populated results.
type DashboardService struct {
	source   DataSource
	fallback DataSource
	sem      *semaphore.Weighted

	mu         sync.Mutex
	lastResult *DashboardResult
}

// NewDashboardService creates a dashboard service. fallback may be nil; when
// present it supplies placeholder data if the primary directory is unreachable
// and nothing is cached yet.
func NewDashboardService(source DataSource, fallback DataSource, maxConcurrentFetches int64) *DashboardService {
	if maxConcurrentFetches < 1 {
		maxConcurrentFetches = 1
	}
	return &DashboardService{
		source:   source,
		fallback: fallback,
		sem:      semaphore.NewWeighted(maxConcurrentFetches),
	}
}

// Build assembles the dashboard for one clinician. Directory failures fall
// back silently to the cached result, then to placeholder data - the
// dashboard never surfaces a fetch error. Individual profile failures are
// caught per patient and recorded in Failed.
func (s *DashboardService) Build(ctx context.Context, clinicianID core.ClinicianID, live *Liveness) *DashboardResult {
	source := s.source
	patients, err := source.ListPatientsByClinician(ctx, clinicianID)
	if err != nil {
		log.Printf("[dashboard] patient directory unavailable for clinician %s: %v", clinicianID, err)
		if cached := s.cachedResult(); cached != nil {
			return cached
		}
		if s.fallback == nil {
			return emptyResult()
		}
		source = s.fallback
		patients, err = source.ListPatientsByClinician(ctx, clinicianID)
		if err != nil {
			log.Printf("[dashboard] placeholder directory failed: %v", err)
			return emptyResult()
		}
	}

	result := &DashboardResult{
		Patients: patients,
		Profiles: make(map[core.PatientID]profile.CognitiveProfile),
		Failed:   make(map[core.PatientID]string),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, patient := range patients {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			// Context gone; remaining patients stay pending rather than failed
			break
		}
		wg.Add(1)
		go func(patientID core.PatientID) {
			defer wg.Done()
			defer s.sem.Release(1)

			prof, fetchErr := source.GetCognitiveProfile(ctx, patientID)

			// Results resuming after the view is gone are dropped, not applied
			if !live.Alive() {
				return
			}

			mu.Lock()
			defer mu.Unlock()
			if fetchErr != nil {
				log.Printf("[dashboard] profile fetch failed for patient %s: %v", patientID, fetchErr)
				result.Failed[patientID] = fetchErr.Error()
				return
			}
			result.Profiles[patientID] = *prof
		}(patient.ID)
	}
	wg.Wait()

	result.Summary = summarize(patients, result.Profiles)

	if live.Alive() {
		s.mu.Lock()
		s.lastResult = result
		s.mu.Unlock()
	}
	return result
}

func (s *DashboardService) cachedResult() *DashboardResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}

func emptyResult() *DashboardResult {
	return &DashboardResult{
		Patients: []profile.Patient{},
		Profiles: make(map[core.PatientID]profile.CognitiveProfile),
		Failed:   make(map[core.PatientID]string),
	}
}

// summarize computes the dashboard roll-ups over whichever profiles arrived
func summarize(patients []profile.Patient, profiles map[core.PatientID]profile.CognitiveProfile) DashboardSummary {
	summary := DashboardSummary{
		TotalPatients:  len(patients),
		DomainAverages: make(map[profile.Domain]float64),
	}

	percentiles := make([]float64, 0, len(profiles))
	perDomain := make(map[profile.Domain][]float64)
	for _, prof := range profiles {
		percentiles = append(percentiles, float64(prof.Percentile))
		summary.TotalMinutes += prof.TotalMinutes
		for domain, score := range prof.DomainScores {
			perDomain[domain] = append(perDomain[domain], score)
		}
	}
	for _, patient := range patients {
		summary.TotalSessions += patient.TotalSessions
	}

	if len(percentiles) > 0 {
		summary.AveragePercentile = int(math.Round(stat.Mean(percentiles, nil)))
	}
	for domain, scores := range perDomain {
		summary.DomainAverages[domain] = stat.Mean(scores, nil)
	}
	// Session durations are not always captured; estimate from session count
	if summary.TotalMinutes == 0 {
		summary.TotalMinutes = summary.TotalSessions * 15
	}
	return summary
}
