// Package pdf implements the binary-document writer collaborator on top of
// fpdf. Each page places the one shared surface image at its negative vertical
// offset, reproducing the slice-by-offset pagination exactly.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"cognicare/ports"
)

// Writer writes rendered documents as A4 portrait PDF files
type Writer struct{}

// NewWriter creates a PDF document writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteDocument saves the paginated surface as a PDF file at outputPath
func (w *Writer) WriteDocument(ctx context.Context, doc ports.RenderedDocument, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(doc.Pages) == 0 {
		return fmt.Errorf("rendered document has no pages")
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}

	for _, page := range doc.Pages {
		pdf.AddPage()
		pdf.RegisterImageOptions(page.SurfacePath, opts)
		pdf.ImageOptions(page.SurfacePath, 0, page.OffsetMM, doc.WidthMM, doc.SurfaceHeightMM, false, opts, 0, "")
	}
	if pdf.Err() {
		return fmt.Errorf("pdf generation failed: %v", pdf.Error())
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
