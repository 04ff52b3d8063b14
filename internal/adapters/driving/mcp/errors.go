// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants look up Gravatar profiles through the scan engine.
package mcp

import "errors"

// ErrMissingScannerFactory is returned when no scanner factory is provided.
var ErrMissingScannerFactory = errors.New("mcp: scanner factory is required")
