package domain

// AuthMethod identifies how the adapter authenticates against the
// profile directory.
type AuthMethod string

// Supported authentication methods.
const (
	// AuthMethodNone uses the anonymous public endpoint.
	AuthMethodNone AuthMethod = "none"
	// AuthMethodDirect uses an API key configured directly.
	AuthMethodDirect AuthMethod = "direct"
	// AuthMethodSecret uses an API key resolved from the secret store.
	AuthMethodSecret AuthMethod = "secret"
)

// Credential is a resolved API credential. Resolution happens once at
// request-builder construction; the value is never persisted across scans.
type Credential struct {
	// Method records where the credential came from.
	Method AuthMethod
	// Token is the bearer token. Empty for AuthMethodNone.
	Token string
}

// Anonymous returns true if no credential is attached to requests.
func (c Credential) Anonymous() bool {
	return c.Token == ""
}
