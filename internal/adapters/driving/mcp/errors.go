// Package mcp provides an MCP (Model Context Protocol) server adapter for nyaya.
// It lets AI assistants search the legal codes and look up FIR status.
package mcp

import "errors"

// ErrMissingLegalService is returned when the legal service is not provided.
var ErrMissingLegalService = errors.New("mcp: legal service is required")
