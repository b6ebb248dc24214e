package adapter

import "errors"

var (
	// ErrDenied is returned when the companion refuses to release an item.
	ErrDenied = errors.New("companion denied the request")
	// ErrTimeout is returned when the companion did not answer in time.
	ErrTimeout = errors.New("companion request timed out")
	// ErrTransport is returned for network and protocol failures.
	ErrTransport = errors.New("companion transport failure")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("request signature rejected")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
