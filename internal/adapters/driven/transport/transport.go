// Package transport provides the HTTP transport collaborator.
package transport

import (
	"net/http"
	"time"

	"github.com/custodia-labs/gravatar-fdw/internal/core/ports/driven"
)

// DefaultTimeout is the default per-request timeout.
const DefaultTimeout = 30 * time.Second

// Ensure HTTPTransport implements the interface.
var _ driven.Transport = (*HTTPTransport)(nil)

// HTTPTransport executes fully-built requests over net/http. Connection
// reuse and TLS live here; request composition (URL, headers,
// credential) is the request builder's concern.
type HTTPTransport struct {
	client *http.Client
}

// New creates a transport with the given timeout.
// A zero timeout uses DefaultTimeout.
func New(timeout time.Duration) *HTTPTransport {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &HTTPTransport{
		client: &http.Client{Timeout: timeout},
	}
}

// Do executes the request.
func (t *HTTPTransport) Do(req *http.Request) (*http.Response, error) {
	return t.client.Do(req)
}
