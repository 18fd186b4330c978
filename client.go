package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"reflect"

	"github.com/go-resty/resty/v2"
)

// Client issues authenticated requests against a single ConnectWise API base
// URL. A Client holds no per-request state and is safe for concurrent use.
type Client struct {
	baseURL  string
	clientID string
	apiKey   string
	headers  map[string]string
	client   *resty.Client
	options  *Options
}

// New validates cfg and the supplied options and returns a ready-to-use
// [Client]. No network activity takes place.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	c := &Client{
		baseURL:  cfg.URL,
		clientID: cfg.ClientID,
		apiKey:   cfg.APIKey,
		headers:  buildHeaders(cfg),
		options:  options,
	}

	// resty.New attaches a cookie jar; a plain http.Client keeps calls independent.
	hc := options.httpClient
	if hc == nil {
		hc = &http.Client{}
	}

	c.client = resty.NewWithClient(hc)

	c.client.
		SetLogger(options.requestLogger).
		SetDebug(options.debug).
		SetHeaders(options.requestHeaders)

	// SetHeaderVerbatim keeps the clientId casing the API documents.
	for header, value := range c.headers {
		c.client.SetHeaderVerbatim(header, value)
	}

	return c, nil
}

// buildHeaders derives the fixed header set sent with every request. The API
// key is sent after the literal "Basic " prefix without base64 encoding.
func buildHeaders(cfg Config) map[string]string {
	return map[string]string{
		headerAuthorization: "Basic " + cfg.APIKey,
		headerClientID:      cfg.ClientID,
		headerContentType:   contentTypeJSON,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) ClientID() string {
	return c.clientID
}

func (c *Client) APIKey() string {
	return c.apiKey
}

// Headers returns a copy of the headers derived from the client's [Config].
func (c *Client) Headers() map[string]string {
	return maps.Clone(c.headers)
}

// Get issues a GET request to BaseURL()+path and returns the decoded JSON body.
func (c *Client) Get(ctx context.Context, path string) (any, error) {
	return c.call(ctx, http.MethodGet, path, nil, false)
}

// Post JSON-encodes body, POSTs it to BaseURL()+path and returns the decoded
// JSON response.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.call(ctx, http.MethodPost, path, body, true)
}

// Put is like [Client.Post] using the PUT method.
func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.call(ctx, http.MethodPut, path, body, true)
}

// Patch is like [Client.Post] using the PATCH method. ConnectWise expects a
// JSON array of patch operations as the body.
func (c *Client) Patch(ctx context.Context, path string, body any) (any, error) {
	return c.call(ctx, http.MethodPatch, path, body, true)
}

// Delete issues a DELETE request. Most endpoints answer 204 No Content, in
// which case the returned value is nil.
func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.call(ctx, http.MethodDelete, path, nil, false)
}

func (c *Client) call(ctx context.Context, method, path string, body any, withBody bool) (any, error) {
	var result any

	if err := c.do(ctx, method, path, body, withBody, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// Do sends a request with the given method to BaseURL()+path and decodes the
// JSON response into out, which must be a non-nil pointer or nil. A nil body
// sends no request body; a nil out discards the response after checking it
// is valid JSON. An empty response body is accepted only for 204 No Content
// and DELETE requests, and leaves out untouched.
//
// Failures are reported as [*HTTPError], [*ParseError] or [*EncodeError];
// transport errors are returned as produced by the underlying http.Client.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	return c.do(ctx, method, path, body, body != nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body any, withBody bool, out any) error {
	if c == nil {
		return ErrNilClient
	}

	if out != nil {
		if rv := reflect.ValueOf(out); rv.Kind() != reflect.Pointer || rv.IsNil() {
			return fmt.Errorf("%w: got %T", ErrInvalidOutput, out)
		}
	}

	url := c.baseURL + path

	req := c.client.R().SetContext(ctx)

	if withBody {
		data, err := json.Marshal(body)
		if err != nil {
			return &EncodeError{Method: method, URL: url, Err: err}
		}

		req.SetBody(data)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return err
	}

	return c.handleResponse(method, url, resp, out)
}

func (c *Client) handleResponse(method, url string, resp *resty.Response, out any) error {
	if resp.IsError() {
		httpErr := &HTTPError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}

		c.options.requestLogger.Errorf("%s", httpErr.Error())

		return httpErr
	}

	raw := resp.Body()

	if len(bytes.TrimSpace(raw)) == 0 &&
		(resp.StatusCode() == http.StatusNoContent || method == http.MethodDelete) {
		return nil
	}

	if err := decodeJSON(raw, out); err != nil {
		return &ParseError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode(),
			Body:       string(raw),
			Err:        err,
		}
	}

	return nil
}

// decodeJSON decodes exactly one JSON value from data. Numbers decoded into
// interface values are kept as json.Number so large record IDs survive.
func decodeJSON(data []byte, out any) error {
	if out == nil {
		var discard any
		out = &discard
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(out); err != nil {
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level JSON value")
	}

	return nil
}
