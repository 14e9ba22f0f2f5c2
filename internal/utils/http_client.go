// Package utils provides general-purpose helper utilities
// used across different parts of the application:
// the shared HTTP client and the request ID generator.
package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used by the
// registration and asset adapters.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client whose requests give up after timeout.
// A zero timeout leaves requests unbounded.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().
//	    SetHeader("Accept", "application/pdf").
//	    Get("https://example.com/assets/book/gwc_book.pdf")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
