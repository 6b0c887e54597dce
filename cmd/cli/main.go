package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cognicare/adapters/excel"
	"cognicare/adapters/pdf"
	"cognicare/adapters/render"
	"cognicare/domain/core"
	"cognicare/domain/profile"
	"cognicare/domain/report"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cognicare-cli",
		Short: "CogniCare CLI for offline report composition and export",
	}

	rootCmd.AddCommand(
		newComposeCmd(),
		newAggregateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sessionFile is the on-disk input format: patient details plus raw sessions
type sessionFile struct {
	Patient  profile.Patient         `json:"patient"`
	Sessions []profile.SessionRecord `json:"sessions"`
}

func newComposeCmd() *cobra.Command {
	var outDir string
	var withRaw bool

	cmd := &cobra.Command{
		Use:   "compose [sessions-file]",
		Short: "Compose a comprehensive report from a session records file and export it as PDF",
		Long: `Compose a comprehensive report from raw session records and export it.

The input file holds the patient details and their session records as JSON.

Example: cognicare-cli compose sessions.json --out exports --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd.Context(), args[0], outDir, withRaw)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "exports", "Output directory for exported files")
	cmd.Flags().BoolVar(&withRaw, "raw", false, "Also export the raw session data as a spreadsheet")

	return cmd
}

func runCompose(ctx context.Context, path, outDir string, withRaw bool) error {
	input, err := loadSessionFile(path)
	if err != nil {
		return err
	}

	prof := profile.Aggregate(input.Patient.ID, input.Sessions)

	sections := report.DefaultSections()
	sections.RawData = withRaw

	composer := report.NewComposer()
	rep := composer.Compose(input.Patient, prof, sections)

	renderer := render.NewDocumentRenderer(pdf.NewWriter(), outDir)
	docPath, err := renderer.RenderToDocument(ctx, &rep)
	if err != nil {
		return fmt.Errorf("document export failed: %w", err)
	}
	fmt.Printf("Report exported: %s\n", docPath)

	if withRaw {
		rawPath, err := excel.NewRawDataExporter(outDir).Export(input.Patient.Name, input.Sessions)
		if err != nil {
			return fmt.Errorf("raw data export failed: %w", err)
		}
		fmt.Printf("Raw session data exported: %s\n", rawPath)
	}
	return nil
}

func newAggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate [sessions-file]",
		Short: "Aggregate session records into a cognitive profile and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := loadSessionFile(args[0])
			if err != nil {
				return err
			}
			prof := profile.Aggregate(input.Patient.ID, input.Sessions)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(prof)
		},
	}
	return cmd
}

func loadSessionFile(path string) (*sessionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sessions file: %w", err)
	}
	var input sessionFile
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("parsing sessions file: %w", err)
	}
	if input.Patient.Name == "" {
		return nil, core.ErrEmptyPatientName
	}
	if input.Patient.ID.IsEmpty() {
		input.Patient.ID = core.PatientID(core.NewID())
	}
	return &input, nil
}
