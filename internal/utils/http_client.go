package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// userAgent identifies the dapp client to the replica.
const userAgent = "icrc7-dapp-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client for baseURL with the given request timeout.
// Retries are disabled: every remote exchange is sent exactly once.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
