// Package http implements the HTTP transport of the user auth service.
//
// It wires the signup and signin routes to the service layer and answers
// every decoded request with the JSON envelope built by the service package.
// Request tracing, access logging, metrics, CORS and response compression
// are handled here as middleware.
package http
