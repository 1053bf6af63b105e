// Package http implements the REST transport of the logistics server.
//
// It wires the chi router, the middleware chain (tracing, access logging,
// compression, CORS, timeouts, rate limiting and the bearer-token guard) and
// the request handlers that translate JSON payloads into service calls and
// service errors into status codes.
package http
