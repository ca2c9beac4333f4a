// Package file provides the TOML-backed configuration store.
// Configuration lives in config.toml inside the docsearch config
// directory (~/.docsearch by default).
package file
