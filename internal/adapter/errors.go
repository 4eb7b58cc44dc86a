package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrUnexpectedResponse is returned when a 2xx body is not an envelope.
	ErrUnexpectedResponse = errors.New("unexpected response")
)
