// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DatasetProvider: Supplies the static IPC and CPC section lists
//   - FIRStore: FIR record persistence
//   - SubmissionStore: Outbox for registrations awaiting delivery
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Backend: The external FIR service. Without it, document retrieval
//     and registration delivery report ErrBackendUnavailable.
//   - TextExtractor: PDF text extraction. Without it, only raw documents
//     can be retrieved.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
