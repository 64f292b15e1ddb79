package gateway

import (
	"errors"
	"fmt"
)

// ErrorKind classifies gateway failures for the fallback paths upstream.
type ErrorKind string

const (
	// ErrorKindTransport covers network failures and timeouts
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindAuth covers rejected credentials
	ErrorKindAuth ErrorKind = "auth"
	// ErrorKindUpstream covers structured failures returned by the gateway
	ErrorKindUpstream ErrorKind = "upstream"
	// ErrorKindDecode covers malformed, unparseable, or empty responses
	ErrorKindDecode ErrorKind = "decode"
)

// Error is a classified failure from the gateway client.
type Error struct {
	Kind       ErrorKind
	Model      string
	StatusCode int    // non-zero when an HTTP status was received
	Message    string // upstream-provided detail when present
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("gateway %s error for model %q", e.Kind, e.Model)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a gateway Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == kind
}
