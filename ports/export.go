package ports

import (
	"context"
)

// Page geometry for exported documents, in millimeters (A4 portrait)
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// PageImage is one exported page: every page of a document references the same
// rendered surface image, shifted vertically so the page window shows its
// slice. OffsetMM is 0 for the first page and -PageHeightMM*index after that.
type PageImage struct {
	SurfacePath string
	OffsetMM    float64
}

// RenderedDocument is a paginated report surface ready for a document writer
type RenderedDocument struct {
	Pages           []PageImage
	WidthMM         float64
	HeightMM        float64
	SurfaceHeightMM float64
}

// DocumentWriter persists a rendered document to a binary file
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc RenderedDocument, outputPath string) error
}

// PrintSurfaceProvider opens an isolated print-capable surface loaded with a
// complete HTML document string.
type PrintSurfaceProvider interface {
	OpenSurface(html string) (PrintSurface, error)
}

// PrintSurface exposes the print trigger for an opened surface. Close must be
// called whether printing completed or was cancelled.
type PrintSurface interface {
	Print(ctx context.Context) error
	Close() error
}
