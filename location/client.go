// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package location

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/locproof/locproof/utils/httputils"
)

// ClientOptions configures the HTTP client shared by the geolocation
// providers.
type ClientOptions struct {
	// UserAgent is the User-Agent header sent to the geolocation services.
	UserAgent string

	// Timeout bounds the whole lookup, connection included.
	Timeout time.Duration

	// Enables light tracing of HTTP requests and responses to stderr.
	EnableHTTPTrace bool

	// Enables full HTTP body tracing.
	EnableHTTPBodyTrace bool
}

const defaultTimeout = 10 * time.Second

// NewHTTPClient builds the http.Client used by the providers: bounded
// timeout, default headers, optional wire tracing.
func NewHTTPClient(options *ClientOptions) *http.Client {
	if options == nil {
		options = &ClientOptions{}
	}

	var httpLogWriter io.Writer
	if options.EnableHTTPTrace {
		httpLogWriter = os.Stderr
	}

	transport := &http.Transport{
		MaxIdleConns:          2,
		MaxIdleConnsPerHost:   2,
		IdleConnTimeout:       30 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
	}

	loggingTransport := &httputils.LoggingRoundTripper{
		Writer:    httpLogWriter,
		DumpBody:  options.EnableHTTPBodyTrace,
		Transport: transport,
	}

	userAgent := "locproof/unknown"
	if options.UserAgent != "" {
		userAgent = options.UserAgent
	}

	headerTransport := &httputils.AppendRequestHeadersRoundTripper{
		Headers: map[string]string{
			"User-Agent": userAgent,
			"Accept":     "application/json",
		},
		Transport: loggingTransport,
	}

	timeout := options.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: headerTransport,
	}
}
