// Package domain defines the core business entities for the Gravatar
// foreign-table adapter.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Qual: A filter condition pushed down by the host query engine
//   - LookupKey: The normalized email address that addresses a profile
//   - ProfileDocument: The parsed upstream profile response
//   - Row: The fixed relational output tuple
//   - Credential: A resolved API credential
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
