package tui

import "errors"

// ErrMissingLegalService is returned when the legal service is not provided.
var ErrMissingLegalService = errors.New("tui: legal service is required")

// ErrMissingFIRService is returned when the FIR service is not provided.
var ErrMissingFIRService = errors.New("tui: fir service is required")

// ErrMissingChatService is returned when the chat service is not provided.
var ErrMissingChatService = errors.New("tui: chat service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
