package driven

import "net/http"

// Transport performs a fully-built outbound request (URL and headers
// already composed) and returns the raw response, or a transport-level
// failure such as a timeout or connection error.
//
// The core treats transport failures and 5xx responses as transient;
// connection pooling and TLS are the implementation's concern.
type Transport interface {
	// Do executes the request. The caller owns and must close the
	// response body.
	Do(req *http.Request) (*http.Response, error)
}
