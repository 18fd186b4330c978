package client

import (
	"net/http"
	"testing"
	"time"
)

func TestNewClientOptions(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()

	if opts.requestLogger == nil {
		t.Error("expected requestLogger to be set")
	}

	if len(opts.requestHeaders) != 0 {
		t.Errorf("expected no extra request headers, got %v", opts.requestHeaders)
	}

	if opts.httpClient != nil {
		t.Error("expected httpClient to be nil")
	}

	if opts.debug {
		t.Error("expected debug to be disabled")
	}
}

func TestWithRequestLogger(t *testing.T) {
	t.Parallel()

	t.Run("valid logger", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		logger := &NoopLogger{}
		WithRequestLogger(logger)(opts)

		if opts.requestLogger != logger {
			t.Error("expected requestLogger to be set")
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		originalLogger := opts.requestLogger
		WithRequestLogger(nil)(opts)

		if opts.requestLogger != originalLogger {
			t.Error("nil logger should be ignored")
		}
	})
}

func TestWithRequestHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		header        string
		value         string
		expectIgnored bool
	}{
		{"valid header", "X-Custom", "value", false},
		{"accept allowed", "Accept", "application/json", false},
		{"empty header ignored", "", "value", true},
		{"whitespace header ignored", "   ", "value", true},
		{"Content-Type protected", "Content-Type", "text/plain", true},
		{"content-type protected (case insensitive)", "content-type", "text/plain", true},
		{"Authorization protected", "Authorization", "Bearer x", true},
		{"clientId protected", "clientId", "other", true},
		{"clientid protected (case insensitive)", "CLIENTID", "other", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithRequestHeader(tt.header, tt.value)(opts)

			if tt.expectIgnored {
				if len(opts.requestHeaders) != 0 {
					t.Errorf("expected header to be ignored, got %v", opts.requestHeaders)
				}
			} else if opts.requestHeaders[tt.header] != tt.value {
				t.Errorf("expected header %s=%s, got %s", tt.header, tt.value, opts.requestHeaders[tt.header])
			}
		})
	}
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	t.Run("valid client", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		hc := &http.Client{Timeout: 5 * time.Second}
		WithHTTPClient(hc)(opts)

		if opts.httpClient != hc {
			t.Error("expected httpClient to be set")
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		WithHTTPClient(nil)(opts)

		if opts.httpClient != nil {
			t.Error("nil httpClient should be ignored")
		}
	})
}

func TestWithDebug(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithDebug(true)(opts)

	if !opts.debug {
		t.Error("expected debug to be enabled")
	}
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Options)
		wantError string
	}{
		{
			name:      "valid defaults",
			modify:    func(_ *Options) {},
			wantError: "",
		},
		{
			name:      "nil requestLogger",
			modify:    func(o *Options) { o.requestLogger = nil },
			wantError: "requestLogger must not be nil",
		},
		{
			name:      "protected header",
			modify:    func(o *Options) { o.requestHeaders["Authorization"] = "x" },
			wantError: "requestHeaders must not override Authorization",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			tt.modify(opts)

			err := opts.Validate()

			if tt.wantError == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.wantError)
				} else if err.Error() != tt.wantError {
					t.Errorf("expected error %q, got %q", tt.wantError, err.Error())
				}
			}
		})
	}
}
