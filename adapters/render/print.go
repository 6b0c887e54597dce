package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"

	"github.com/gomarkdown/markdown"

	"cognicare/domain/core"
	"cognicare/domain/profile"
	"cognicare/domain/report"
	"cognicare/ports"
)

// printDocument is the self-contained HTML document handed to the print
// surface. Section markup only exists for sections whose inclusion flag is set.
const printDocument = `<html>
  <head>
    <title>{{.PatientName}} - Comprehensive Report</title>
    <style>
      body { font-family: Arial, sans-serif; padding: 20px; }
      h1 { color: #333; }
      .section { margin-bottom: 20px; }
      .metrics { margin-top: 15px; }
      .metric { margin-bottom: 10px; }
      .label { font-weight: bold; }
      .date { color: #666; font-style: italic; }
    </style>
  </head>
  <body>
    <h1>{{.PatientName}} - Comprehensive Report</h1>
    <p class="date">Generated on {{.GeneratedOn}}</p>
{{if .Sections.Overview}}
    <div class="section">
      <h2>Patient Overview</h2>
      <p>Patient: {{.PatientName}}</p>
      <p>Patient ID: {{.PatientID}}</p>
    </div>
{{end}}
{{if .Sections.DomainAnalysis}}
    <div class="section">
      <h2>Cognitive Domain Analysis</h2>
      <div class="metrics">
{{range .DomainScores}}        <div class="metric"><span class="label">{{.Name}}: </span>{{.Value}}</div>
{{end}}      </div>
{{range .Summaries}}      {{.}}
{{end}}    </div>
{{end}}
{{if .Sections.Trends}}
    <div class="section">
      <h2>Performance Trends</h2>
      <p>Sessions Completed: {{.TotalSessions}}</p>
      <p>Progress: {{.Progress}}%</p>
    </div>
{{end}}
{{if .Sections.Recommendations}}
    <div class="section">
      <h2>Clinical Recommendations</h2>
      <p>Based on the assessment results, the following recommendations are provided:</p>
      <ul>
{{range .Recommendations}}        <li>{{.}}</li>
{{end}}      </ul>
    </div>
{{end}}
{{if .Sections.RawData}}
    <div class="section">
      <h2>Raw Assessment Data</h2>
      <p>Detailed raw data from assessments is available upon request.</p>
    </div>
{{end}}
  </body>
</html>`

var printTemplate = template.Must(template.New("print").Parse(printDocument))

type domainScoreView struct {
	Name  string
	Value string
}

type printView struct {
	PatientName     string
	PatientID       string
	GeneratedOn     string
	Sections        report.SectionSet
	DomainScores    []domainScoreView
	Summaries       []template.HTML
	Recommendations []template.HTML
	TotalSessions   int
	Progress        int
}

// BuildPrintHTML composes the self-contained print document for a generated
// report. Narrative and recommendation bodies are authored as markdown and
// rendered to HTML here.
func BuildPrintHTML(rep *report.Report) (string, error) {
	if !rep.IsGenerated() {
		return "", core.ErrReportNotGenerated
	}

	view := printView{
		PatientName:   rep.PatientName,
		PatientID:     rep.PatientID.String(),
		GeneratedOn:   rep.CreatedDate.DisplayDate(),
		Sections:      rep.Sections,
		TotalSessions: rep.Data.Metrics.TotalSessions,
		Progress:      rep.Data.Metrics.Progress,
	}

	for _, d := range profile.AllDomains() {
		score, ok := rep.Data.Metrics.Score(d)
		value := "-"
		if ok {
			value = fmt.Sprintf("%.0f%%", score)
		}
		view.DomainScores = append(view.DomainScores, domainScoreView{Name: d.DisplayName(), Value: value})
	}

	view.Summaries = []template.HTML{
		markdownHTML(fmt.Sprintf("**Attention:** %s", rep.Data.Summary.Attention)),
		markdownHTML(fmt.Sprintf("**Memory:** %s", rep.Data.Summary.Memory)),
		markdownHTML(fmt.Sprintf("**Executive Function:** %s", rep.Data.Summary.ExecutiveFunction)),
		markdownHTML(fmt.Sprintf("**Overall:** %s", rep.Data.Summary.Overall)),
	}
	for _, rec := range rep.Data.Recommendations {
		view.Recommendations = append(view.Recommendations, markdownHTML(fmt.Sprintf("**%s**: %s", rec.Title, rec.Description)))
	}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to build print document: %w", err)
	}
	return buf.String(), nil
}

func markdownHTML(md string) template.HTML {
	return template.HTML(markdown.ToHTML([]byte(md), nil, nil))
}

// PrintRenderer drives a report through an isolated print surface
type PrintRenderer struct {
	provider ports.PrintSurfaceProvider
}

// NewPrintRenderer creates a print renderer
func NewPrintRenderer(provider ports.PrintSurfaceProvider) *PrintRenderer {
	return &PrintRenderer{provider: provider}
}

// Print builds the print document, opens it in an isolated surface, triggers
// native printing and closes the surface once printing completes or is
// cancelled. The surface is closed on every path.
func (p *PrintRenderer) Print(ctx context.Context, rep *report.Report) error {
	html, err := BuildPrintHTML(rep)
	if err != nil {
		return err
	}

	surface, err := p.provider.OpenSurface(html)
	if err != nil {
		return fmt.Errorf("failed to open print surface: %w", err)
	}
	defer func() {
		if closeErr := surface.Close(); closeErr != nil {
			log.Printf("[render] failed to close print surface: %v", closeErr)
		}
	}()

	if err := surface.Print(ctx); err != nil {
		return fmt.Errorf("print failed: %w", err)
	}
	return nil
}
