package client

import (
	"errors"
	"net/http"
	"strings"
)

const (
	headerAuthorization = "Authorization"
	headerClientID      = "clientId"
	headerContentType   = "Content-Type"

	contentTypeJSON = "application/json"
)

type Option func(*Options)

type Options struct {
	requestLogger  RequestLogger
	requestHeaders map[string]string
	httpClient     *http.Client
	debug          bool
}

func newClientOptions() *Options {
	return &Options{
		requestLogger:  defaultRequestLogger(),
		requestHeaders: map[string]string{},
	}
}

// Validate reports the first invalid option value.
func (o *Options) Validate() error {
	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	for header := range o.requestHeaders {
		if isProtectedHeader(header) {
			return errors.New("requestHeaders must not override " + header)
		}
	}

	return nil
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a header to every request. The Authorization,
// clientId and Content-Type headers are derived from [Config] and cannot be
// overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || isProtectedHeader(header) {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithHTTPClient sets the underlying http.Client. Use it to configure
// timeouts, proxies or TLS; the client itself adds none.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) {
		if hc != nil {
			o.httpClient = hc
		}
	}
}

// WithDebug enables request and response dumps at debug level. The dumps
// include the Authorization header.
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.debug = debug
	}
}

func isProtectedHeader(header string) bool {
	return strings.EqualFold(header, headerAuthorization) ||
		strings.EqualFold(header, headerClientID) ||
		strings.EqualFold(header, headerContentType)
}
