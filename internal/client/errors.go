package client

import "fmt"

// TransportError covers everything that kept a backend call from producing a
// JSON answer: network failures, timeouts and non-JSON bodies.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is a JSON reply that carries a non-empty "error" field.
// Message is the backend text, shown to the user as-is.
type ServerError struct {
	Path    string
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}
