package gateway

import (
	"fmt"
	"net/http"
)

// NetworkError is a transport failure or a non-2xx response that carried no
// structured error message.
type NetworkError struct {
	Op         string
	StatusCode int // zero for transport failures
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s operators: unexpected status %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s operators: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Status returns "<code> <text>" for HTTP failures and "" for transport failures.
func (e *NetworkError) Status() string {
	if e.StatusCode == 0 {
		return ""
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ServerError is a non-2xx response whose body was {"error": "..."}.
// Message is the server's text, unmodified.
type ServerError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

// MalformedResponseError is a successful response whose body could not be decoded.
type MalformedResponseError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s operators: malformed response body (status %d): %v", e.Op, e.StatusCode, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
