// Package domain defines the core business entities for nyaya.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawSection: A legal-code entry as authored in a static dataset
//   - Chapter: A derived grouping of sections sharing a chapter label
//   - Span: A plain or matched run of text used for highlighting
//   - FIR: A First Information Report record tracked by the portal
//   - Registration: A citizen's FIR registration form
//   - Preferences: The immutable UI state snapshot (language, theme, vision)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
