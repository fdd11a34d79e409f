// Package memory provides in-memory implementations of driven ports.
// They back tests and the --ephemeral mode, where nothing touches disk.
package memory
