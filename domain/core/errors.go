package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrPatientNotFound = fmt.Errorf("%w: patient", ErrNotFound)
	ErrReportNotFound  = fmt.Errorf("%w: report", ErrNotFound)

	// Validation errors
	ErrReportNotGenerated = errors.New("report has not been generated")
	ErrEmptyRecipient     = errors.New("recipient is required")
	ErrEmptyPatientName   = errors.New("patient name is required")

	// Dispatch errors
	ErrChannelUnavailable = errors.New("delivery channel unavailable")
	ErrDispatchInFlight   = errors.New("a dispatch is already in flight")
	ErrDispatchFailed     = errors.New("delivery channel failed")

	// Render errors
	ErrSurfaceCapture = errors.New("surface capture failed")
	ErrEmptySurface   = errors.New("rendered surface is empty")

	// Fetch errors
	ErrProfileUnavailable = errors.New("profile data unavailable")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewFetchError(patientID PatientID, err error) error {
	return fmt.Errorf("%w for patient %s: %v", ErrProfileUnavailable, patientID, err)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrReportNotGenerated) ||
		errors.Is(err, ErrEmptyRecipient) ||
		errors.Is(err, ErrEmptyPatientName)
}

func IsDispatchError(err error) bool {
	return errors.Is(err, ErrChannelUnavailable) ||
		errors.Is(err, ErrDispatchInFlight) ||
		errors.Is(err, ErrDispatchFailed)
}

func IsRenderError(err error) bool {
	return errors.Is(err, ErrSurfaceCapture) ||
		errors.Is(err, ErrEmptySurface)
}
