// Package tui provides an interactive terminal user interface for nyaya.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/nyayvidhi/nyaya/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Legal browses and filters the IPC and CPC.
	Legal driving.LegalService

	// FIR looks up registered reports and their documents.
	FIR driving.FIRService

	// Registration reports outbox state. Optional.
	Registration driving.RegistrationService

	// Chat runs the legal assistant.
	Chat driving.ChatService

	// Settings holds preferences. Optional; defaults apply without it.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(
	legal driving.LegalService,
	fir driving.FIRService,
	chat driving.ChatService,
) *Ports {
	return &Ports{
		Legal: legal,
		FIR:   fir,
		Chat:  chat,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Legal == nil {
		return ErrMissingLegalService
	}
	if p.FIR == nil {
		return ErrMissingFIRService
	}
	if p.Chat == nil {
		return ErrMissingChatService
	}
	return nil
}
