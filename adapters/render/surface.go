package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster geometry: the surface is laid out at 96 dpi, so an A4 width of 210mm
// maps to 794 horizontal pixels.
const (
	pxPerMM       = 96.0 / 25.4
	surfaceWidth  = 794
	marginPx      = 56
	lineHeightPx  = 18
	glyphWidthPx  = 7 // basicfont.Face7x13 advance
	glyphAscentPx = 11
)

// renderLine is one laid-out text line on the surface. GapBefore is extra
// vertical space inserted ahead of the line.
type renderLine struct {
	Text      string
	GapBefore int
}

// Surface is the single continuous raster the whole report body is drawn onto.
// Pages are produced by offsetting this one surface, never by re-rendering.
type Surface struct {
	img      *image.RGBA
	heightPx int
}

// HeightMM returns the total surface height in millimeters
func (s *Surface) HeightMM() float64 {
	return float64(s.heightPx) / pxPerMM
}

// WidthMM returns the surface width in millimeters
func (s *Surface) WidthMM() float64 {
	return float64(surfaceWidth) / pxPerMM
}

// EncodePNG writes the surface image as PNG
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// drawSurface measures the laid-out lines, allocates one continuous image and
// draws every line onto it top to bottom.
func drawSurface(lines []renderLine) *Surface {
	heightPx := marginPx * 2
	for _, ln := range lines {
		heightPx += ln.GapBefore + lineHeightPx
	}

	img := image.NewRGBA(image.Rect(0, 0, surfaceWidth, heightPx))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}

	y := marginPx
	for _, ln := range lines {
		y += ln.GapBefore
		drawer.Dot = fixed.P(marginPx, y+glyphAscentPx)
		drawer.DrawString(ln.Text)
		y += lineHeightPx
	}

	return &Surface{img: img, heightPx: heightPx}
}

// wrap splits text into lines that fit the printable surface width
func wrap(text string, indent int) []string {
	maxChars := (surfaceWidth - 2*marginPx - indent) / glyphWidthPx
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	line := ""
	for _, word := range splitWords(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if len(candidate) > maxChars && line != "" {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func splitWords(text string) []string {
	var words []string
	word := ""
	for _, r := range text {
		if r == ' ' || r == '\n' || r == '\t' {
			if word != "" {
				words = append(words, word)
				word = ""
			}
			continue
		}
		word += string(r)
	}
	if word != "" {
		words = append(words, word)
	}
	return words
}
