// Package gravatar implements the scan engine against the Gravatar
// profile directory: address hashing, request construction with
// credential resolution, the retry/backoff policy, response
// classification, and the document-to-row mapping.
//
// The package talks to the outside world only through the driven ports
// (Transport, SecretStore), which keeps every piece testable against
// fakes.
package gravatar
