package gravatar

import (
	"context"
	"fmt"
	"net/http"

	"github.com/custodia-labs/gravatar-fdw/internal/core/domain"
	"github.com/custodia-labs/gravatar-fdw/internal/core/ports/driven"
	"github.com/custodia-labs/gravatar-fdw/internal/logger"
)

// Version is the adapter version, sent in the User-Agent header.
const Version = "0.1.0"

// RequestBuilder composes outbound profile requests: base URL, the
// hashed-key path segment, and credential attachment.
type RequestBuilder struct {
	baseURL    string
	credential domain.Credential
	userAgent  string
}

// NewRequestBuilder creates a request builder, resolving the configured
// credential exactly once.
//
// A direct API key wins over a secret reference; with neither, requests
// target the anonymous public endpoint. A secret reference that cannot
// be resolved is a fatal configuration error, never a silent fallback
// to anonymous access.
func NewRequestBuilder(ctx context.Context, cfg Config, secrets driven.SecretStore) (*RequestBuilder, error) {
	cfg = cfg.withDefaults()

	b := &RequestBuilder{
		baseURL:   cfg.BaseURL,
		userAgent: "gravatar-fdw/" + Version,
	}

	switch {
	case cfg.APIKey != "":
		b.credential = domain.Credential{Method: domain.AuthMethodDirect, Token: cfg.APIKey}
		logger.Info("initialized with direct API key")

	case cfg.APIKeyID != "":
		if secrets == nil {
			return nil, fmt.Errorf("%w: no secret store configured for %s %q",
				domain.ErrSecretNotFound, OptionAPIKeyID, cfg.APIKeyID)
		}
		token, err := secrets.Resolve(ctx, cfg.APIKeyID)
		if err != nil {
			return nil, fmt.Errorf("resolving %s %q: %w", OptionAPIKeyID, cfg.APIKeyID, err)
		}
		b.credential = domain.Credential{Method: domain.AuthMethodSecret, Token: token}
		logger.Info("initialized with API key from secret store")

	default:
		b.credential = domain.Credential{Method: domain.AuthMethodNone}
		logger.Info("initialized without API key (public access only)")
	}

	logger.Info("base URL: %s", b.baseURL)
	return b, nil
}

// Build composes the request for one address hash:
// GET {base}/{hash} with identification and accept headers, plus the
// bearer credential when one is configured.
func (b *RequestBuilder) Build(ctx context.Context, hash string) (*http.Request, error) {
	url := fmt.Sprintf("%s/%s", b.baseURL, hash)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("User-Agent", b.userAgent)
	req.Header.Set("Accept", "application/json")
	if !b.credential.Anonymous() {
		req.Header.Set("Authorization", "Bearer "+b.credential.Token)
	}

	return req, nil
}

// Authenticated reports whether requests carry an API key.
func (b *RequestBuilder) Authenticated() bool {
	return !b.credential.Anonymous()
}
