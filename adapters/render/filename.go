package render

import (
	"fmt"
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// DocumentFilename builds the export filename for a patient's comprehensive
// report: internal whitespace in the patient name collapses to underscores.
func DocumentFilename(patientName string) string {
	name := whitespaceRe.ReplaceAllString(strings.TrimSpace(patientName), "_")
	return fmt.Sprintf("%s_comprehensive_report.pdf", name)
}
