package driven

import "context"

// SecretStore resolves opaque credential references to secret values.
// Invoked at most once per request-builder construction; a missing
// secret is an error, never a silent fallback to anonymous access.
type SecretStore interface {
	// Resolve returns the secret value for ref.
	// Returns an error wrapping domain.ErrSecretNotFound if ref is unknown.
	Resolve(ctx context.Context, ref string) (string, error)
}
