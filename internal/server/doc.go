// Package server runs the HTTP transport of the user auth service.
//
// It owns the listener lifecycle: startup, stop signals (SIGINT, SIGTERM,
// SIGQUIT) and graceful shutdown bounded by the configured timeout.
package server
