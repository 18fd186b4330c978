// Package client provides an authenticated HTTP client for the ConnectWise
// Manage REST API.
//
// The client wraps [github.com/go-resty/resty/v2]. It attaches the API
// credentials to every request, JSON-encodes request bodies and decodes JSON
// responses. There are no retries, no pagination and no caching.
//
// # Basic Usage
//
//	cfg, err := client.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := client.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	company, err := c.Get(ctx, "/company/companies/1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Use [Client.Do] to decode a response into your own type:
//
//	var tickets []Ticket
//	err := c.Do(ctx, http.MethodGet, "/service/tickets", nil, &tickets)
//
// # Configuration
//
// A [Config] holds the base URL, client ID and API key. [LoadConfig] fills
// one from the URL, CLIENT_ID and API_KEY environment variables, reading a
// .env file first if present. Request paths are appended to the base URL
// exactly as given, so include the leading slash and any URL encoding.
//
// Optional behaviour is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained.
//
// # Authentication
//
// Every request carries an Authorization header of "Basic " followed by the
// API key as configured (it is not base64-encoded by the client), a clientId
// header and Content-Type: application/json.
//
// # Errors
//
// Responses with a 4xx or 5xx status produce an [*HTTPError] carrying the
// status code and raw body. A success response whose body is not JSON
// produces a [*ParseError]. Network failures are returned unchanged from the
// underlying http.Client. Use [errors.As] to tell them apart.
//
// # Logging
//
// The raw body of every failed response is logged at error level before the
// error is returned. By default logs go to stderr as JSON via zap; supply a
// [RequestLogger] via [WithRequestLogger] to integrate with your own logging,
// [NewZapLogger] to reuse an existing zap logger, or [NoopLogger] to silence
// output.
package client
