package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps *resty.Client. Every request it sends forwards the trace
// identifier found in the request context as the [TraceIDHeader] header.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetContext(ctx).Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient with its own connection pool.
func NewHTTPClient() *HTTPClient {
	client := resty.New()
	client.OnBeforeRequest(propagateTraceID)

	return &HTTPClient{Client: client}
}

func propagateTraceID(_ *resty.Client, r *resty.Request) error {
	if traceID, ok := GetTraceIDFromContext(r.Context()); ok {
		r.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}
