// Package excel exports the raw session-by-session assessment data behind a
// report's rawData section as a spreadsheet.
package excel

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"cognicare/domain/profile"
)

const rawSheet = "Sessions"

var filenameWhitespaceRe = regexp.MustCompile(`\s+`)

// RawDataExporter writes raw session records to xlsx files in exportDir
type RawDataExporter struct {
	exportDir string
}

// NewRawDataExporter creates a raw data exporter
func NewRawDataExporter(exportDir string) *RawDataExporter {
	return &RawDataExporter{exportDir: exportDir}
}

// Export writes one row per session with the per-domain raw values. Values
// that were filtered during aggregation (non-numeric) are left blank rather
// than zeroed, so the sheet reflects what the aggregator actually saw.
func (e *RawDataExporter) Export(patientName string, records []profile.SessionRecord) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rawSheet); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"Date", "Duration (min)"}
	for _, d := range profile.AllDomains() {
		headers = append(headers, d.DisplayName())
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(rawSheet, cell, h); err != nil {
			return "", err
		}
	}

	for i, rec := range records {
		row := i + 2
		values := []interface{}{rec.Date.Format("2006-01-02"), rec.DurationMinutes}
		for _, d := range profile.AllDomains() {
			if raw, ok := rec.DomainScores[d]; ok {
				values = append(values, raw)
			} else {
				values = append(values, nil)
			}
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(rawSheet, cell, v); err != nil {
				return "", err
			}
		}
	}

	name := filenameWhitespaceRe.ReplaceAllString(strings.TrimSpace(patientName), "_")
	outputPath := filepath.Join(e.exportDir, fmt.Sprintf("%s_raw_sessions.xlsx", name))
	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save raw data export: %w", err)
	}
	return outputPath, nil
}
