// Package driving defines interfaces that external actors (TUI, CLI, MCP)
// use to interact with the controller. These are the "driving" ports in
// hexagonal architecture terminology - they drive the application.
//
// Presentation adapters only read Snapshot values; every mutation goes
// through a Controller method.
//
// Implementations of these interfaces live in internal/core/services.
package driving
