package mcp

import (
	"github.com/nyayvidhi/nyaya/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server uses.
type Ports struct {
	// Legal searches and reads the IPC and CPC.
	Legal driving.LegalService

	// FIR looks up registered reports. Optional.
	FIR driving.FIRService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Legal == nil {
		return ErrMissingLegalService
	}
	return nil
}
