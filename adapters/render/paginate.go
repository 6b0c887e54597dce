package render

import (
	"math"

	"cognicare/ports"
)

// paginate slices a continuous surface into fixed-size pages. Every page
// reuses the same surface image, shifted up by one page height per index; a
// surface no taller than one page yields exactly one unshifted page. Content
// straddling a boundary is cut where the offset lands - this is deliberately a
// slice, not a reflow.
func paginate(surfacePath string, surfaceHeightMM float64) []ports.PageImage {
	pageCount := int(math.Ceil(surfaceHeightMM / ports.PageHeightMM))
	if pageCount < 1 {
		pageCount = 1
	}

	pages := make([]ports.PageImage, pageCount)
	for i := range pages {
		pages[i] = ports.PageImage{
			SurfacePath: surfacePath,
			OffsetMM:    -(ports.PageHeightMM * float64(i)),
		}
	}
	return pages
}
