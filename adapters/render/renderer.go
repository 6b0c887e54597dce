// Package render turns composed reports into export artifacts: a paginated
// document surface for the PDF writer, and a self-contained HTML document for
// the print surface.
package render

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"cognicare/domain/core"
	"cognicare/domain/report"
	"cognicare/ports"
)

// DocumentRenderer renders reports to paginated binary documents through an
// injected document writer.
type DocumentRenderer struct {
	writer    ports.DocumentWriter
	exportDir string
}

// NewDocumentRenderer creates a document renderer writing into exportDir
func NewDocumentRenderer(writer ports.DocumentWriter, exportDir string) *DocumentRenderer {
	return &DocumentRenderer{writer: writer, exportDir: exportDir}
}

// RenderToDocument renders the whole report body once onto a single continuous
// surface, slices it into A4 pages by vertical offset and hands the pages to
// the document writer. The temporary surface capture is removed on every exit
// path. Returns the written file path.
func (r *DocumentRenderer) RenderToDocument(ctx context.Context, rep *report.Report) (string, error) {
	if !rep.IsGenerated() {
		return "", core.ErrReportNotGenerated
	}

	surface := drawSurface(buildBody(rep))
	if surface.HeightMM() <= 0 {
		return "", core.ErrEmptySurface
	}

	// Surface capture: the off-screen raster goes to a temp file the writer
	// reads from. The file is a scoped artifact - released on success and
	// failure alike.
	capture, err := os.CreateTemp("", "cognicare-surface-*.png")
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrSurfaceCapture, err)
	}
	defer func() {
		if removeErr := os.Remove(capture.Name()); removeErr != nil {
			log.Printf("[render] failed to remove surface capture %s: %v", capture.Name(), removeErr)
		}
	}()

	if err := surface.EncodePNG(capture); err != nil {
		capture.Close()
		return "", fmt.Errorf("%w: %v", core.ErrSurfaceCapture, err)
	}
	if err := capture.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrSurfaceCapture, err)
	}

	doc := ports.RenderedDocument{
		Pages:           paginate(capture.Name(), surface.HeightMM()),
		WidthMM:         ports.PageWidthMM,
		HeightMM:        ports.PageHeightMM,
		SurfaceHeightMM: surface.HeightMM(),
	}

	outputPath := filepath.Join(r.exportDir, DocumentFilename(rep.PatientName))
	if err := r.writer.WriteDocument(ctx, doc, outputPath); err != nil {
		return "", fmt.Errorf("document export failed: %w", err)
	}

	log.Printf("[render] exported %d page(s) to %s", len(doc.Pages), outputPath)
	return outputPath, nil
}
