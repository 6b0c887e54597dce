package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	"cognicare/domain/core"
	"cognicare/domain/report"
	"cognicare/ports"
)

// DispatchDialog models one compose-and-send dialog instance. The in-flight
// guard belongs to this instance alone - it is never shared across dialogs or
// patients - and the injected channel may be nil when no delivery channel is
// configured.
type DispatchDialog struct {
	channel ports.DeliveryChannel

	mu        sync.Mutex
	sending   bool
	Recipient string
	Subject   string
	Message   string
}

// NewDispatchDialog creates a dispatch dialog bound to a delivery channel
func NewDispatchDialog(channel ports.DeliveryChannel) *DispatchDialog {
	return &DispatchDialog{channel: channel}
}

// Prefill seeds the dialog fields for a generated report. The recipient is
// always cleared; subject and message follow the clinician-facing templates.
func (d *DispatchDialog) Prefill(rep *report.Report) {
	d.mu.Lock()
	defer d.mu.Unlock()
	date := rep.CreatedDate.DisplayDate()
	d.Recipient = ""
	d.Subject = fmt.Sprintf("%s's Comprehensive Report - %s", rep.PatientName, date)
	d.Message = fmt.Sprintf("Please find attached the comprehensive report for %s generated on %s.", rep.PatientName, date)
}

// SetFields overrides the dialog fields. Empty arguments leave the existing
// prefilled value in place.
func (d *DispatchDialog) SetFields(recipient, subject, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if recipient != "" {
		d.Recipient = recipient
	}
	if subject != "" {
		d.Subject = subject
	}
	if message != "" {
		d.Message = message
	}
}

// Send validates the request locally, then delegates to the delivery channel.
// Local rejections (empty recipient, missing channel, ungenerated report)
// never reach the channel. On channel success the dialog state is cleared and
// the report marked sent; on channel failure the report is left untouched and
// a resend is permitted.
func (d *DispatchDialog) Send(ctx context.Context, rep *report.Report, live *Liveness) (bool, error) {
	d.mu.Lock()
	if d.sending {
		d.mu.Unlock()
		return false, core.ErrDispatchInFlight
	}
	d.sending = true
	recipient, subject, message := d.Recipient, d.Subject, d.Message
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.sending = false
		d.mu.Unlock()
	}()

	if recipient == "" {
		return false, core.ErrEmptyRecipient
	}
	if d.channel == nil {
		return false, core.ErrChannelUnavailable
	}
	if !rep.CanDispatch() {
		return false, core.ErrReportNotGenerated
	}

	ok, err := d.channel.Send(ctx, ports.DeliveryRequest{
		Recipient: recipient,
		Subject:   subject,
		Message:   message,
		Payload:   dispatchPayload(rep),
	})
	if err != nil {
		// Report stays generated; the clinician can resend
		return false, fmt.Errorf("%w: %v", core.ErrDispatchFailed, err)
	}
	if !ok {
		return false, nil
	}

	// A success resuming after the dialog's view is gone is ignored rather
	// than applied to stale state
	if live.Alive() {
		rep.MarkSent()
		d.clear()
	}
	log.Printf("[dispatch] report %s delivered to %s", rep.ID, recipient)
	return true, nil
}

// Sending reports whether a dispatch is currently in flight
func (d *DispatchDialog) Sending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sending
}

func (d *DispatchDialog) clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Recipient = ""
	d.Subject = ""
	d.Message = ""
}

// dispatchPayload is the report snapshot handed to the delivery channel
func dispatchPayload(rep *report.Report) map[string]interface{} {
	return map[string]interface{}{
		"patient": map[string]interface{}{
			"id":   rep.PatientID.String(),
			"name": rep.PatientName,
		},
		"reportType":    string(rep.Type),
		"sections":      rep.Sections,
		"metrics":       rep.Data.Metrics,
		"generatedDate": rep.CreatedDate.DisplayDate(),
		"snapshotRef":   rep.Snapshot.String(),
	}
}
