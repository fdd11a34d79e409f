// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The legal reference pipeline is three pure stages:
//
//	raw dataset -> Normalise -> chapters -> Filter(query) -> Highlight
//
// Normalise runs once per dataset, Filter on every query change and
// Highlight per displayed field. None of them perform I/O.
package services
