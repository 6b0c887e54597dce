// Package printer implements the print-surface provider by spooling the HTML
// document to a temporary file and handing it to the system print command.
package printer

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"

	"cognicare/ports"
)

// Provider opens print surfaces backed by the configured spool command
// (defaults to lp).
type Provider struct {
	command string
}

// NewProvider creates a print surface provider. An empty command selects lp.
func NewProvider(command string) *Provider {
	if command == "" {
		command = "lp"
	}
	return &Provider{command: command}
}

// OpenSurface writes the HTML document to an isolated spool file
func (p *Provider) OpenSurface(html string) (ports.PrintSurface, error) {
	f, err := os.CreateTemp("", "cognicare-print-*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to create print spool file: %w", err)
	}
	if _, err := f.WriteString(html); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write print spool file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to close print spool file: %w", err)
	}
	return &Surface{command: p.command, path: f.Name()}, nil
}

// Surface is one opened print spool. Close removes the spool file whether or
// not printing succeeded.
type Surface struct {
	command string
	path    string
}

// Print triggers the native print command for the spooled document
func (s *Surface) Print(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, s.command, s.path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("print command %q failed: %v (%s)", s.command, err, output)
	}
	log.Printf("[printer] spooled %s via %s", s.path, s.command)
	return nil
}

// Close releases the spool file
func (s *Surface) Close() error {
	return os.Remove(s.path)
}
