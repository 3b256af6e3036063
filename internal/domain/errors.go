package domain

import "errors"

// ErrNotFound is returned when the requested trip does not exist, either in
// the database (server side) or per a 404 from the remote service (client
// side). Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. negative budget, end date before start date, unsupported currency).
// Handlers map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNetwork is returned by the client when the transport fails outright and
// no response was received (connection refused, timeout, DNS failure).
var ErrNetwork = errors.New("network error")

// ErrServiceFailure is returned by the client when a response was received
// but reports a logical failure, e.g. a booking with success=false or a 2xx
// plan response missing its trip id.
var ErrServiceFailure = errors.New("service failure")
