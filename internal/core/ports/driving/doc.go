// Package driving defines the interfaces through which external actors
// drive the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and MCP adapters act as hosts and call these interfaces; the
// core never initiates calls into a host.
package driving
