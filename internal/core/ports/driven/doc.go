// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core code depends on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Transport: Performs a fully-built HTTP request
//   - ConfigStore: Session-scoped application configuration
//
// # Optional Interfaces
//
//   - SecretStore: Resolves opaque credential references. Only needed
//     when the credential is configured by reference.
//
// # Import Rules
//
//   - Can Import: domain package and standard library only
//   - Cannot Import: Any adapter package
package driven
