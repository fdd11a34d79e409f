// Package file provides the TOML configuration store.
//
// Settings live in ~/.nyaya/config.toml. Keys are addressed with dots
// ("backend.url") and written back as nested tables. The store can watch
// its own file and reload after external edits.
package file
