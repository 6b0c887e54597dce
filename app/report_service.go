package app

import (
	"context"
	"fmt"
	"log"

	"cognicare/adapters/excel"
	"cognicare/adapters/render"
	"cognicare/domain/core"
	"cognicare/domain/profile"
	"cognicare/domain/report"
	"cognicare/ports"
)

// ReportService orchestrates report composition and the export paths
type ReportService struct {
	composer *report.Composer
	renderer *render.DocumentRenderer
	printer  *render.PrintRenderer
	rawData  *excel.RawDataExporter
	sessions ports.SessionSource
}

// NewReportService creates a report service
func NewReportService(
	composer *report.Composer,
	renderer *render.DocumentRenderer,
	printer *render.PrintRenderer,
	rawData *excel.RawDataExporter,
	sessions ports.SessionSource,
) *ReportService {
	return &ReportService{
		composer: composer,
		renderer: renderer,
		printer:  printer,
		rawData:  rawData,
		sessions: sessions,
	}
}

// Generate composes a fresh report for the patient. The result supersedes any
// report the caller previously held for that patient; the old report is
// discarded wholesale, never merged.
func (s *ReportService) Generate(patient profile.Patient, prof profile.CognitiveProfile, sections report.SectionSet) report.Report {
	rep := s.composer.Compose(patient, prof, sections)
	log.Printf("[report] generated report %s for patient %s", rep.ID, rep.PatientID)
	return rep
}

// ExportDocument renders a generated report to its PDF file. A missing or
// ungenerated report is rejected before any rendering work starts.
func (s *ReportService) ExportDocument(ctx context.Context, rep *report.Report) (string, error) {
	if !rep.IsGenerated() {
		return "", core.ErrReportNotGenerated
	}
	path, err := s.renderer.RenderToDocument(ctx, rep)
	if err != nil {
		return "", fmt.Errorf("report export failed: %w", err)
	}
	return path, nil
}

// Print drives a generated report through the print surface
func (s *ReportService) Print(ctx context.Context, rep *report.Report) error {
	if !rep.IsGenerated() {
		return core.ErrReportNotGenerated
	}
	if err := s.printer.Print(ctx, rep); err != nil {
		return fmt.Errorf("report print failed: %w", err)
	}
	return nil
}

// ExportRawData writes the session-by-session raw data behind a generated
// report to a spreadsheet
func (s *ReportService) ExportRawData(ctx context.Context, rep *report.Report) (string, error) {
	if !rep.IsGenerated() {
		return "", core.ErrReportNotGenerated
	}
	records, err := s.sessions.GetSessionRecords(ctx, rep.PatientID)
	if err != nil {
		return "", core.NewFetchError(rep.PatientID, err)
	}
	path, err := s.rawData.Export(rep.PatientName, records)
	if err != nil {
		return "", fmt.Errorf("raw data export failed: %w", err)
	}
	return path, nil
}
