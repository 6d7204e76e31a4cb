// Package hresult defines the 32-bit status codes b-CAP carries on the wire
// and the error type used to surface both server-reported and local
// (transport/protocol) failures to callers.
package hresult

import "fmt"

// Code is a b-CAP/COM-style HRESULT: the sign bit (bit 31) marks failure.
// Values >= 0 are success, including 0 (S_OK) and S_EXECUTING.
type Code int32

// Failed reports whether c's sign bit is set.
func (c Code) Failed() bool { return c < 0 }

// Succeeded is the complement of Failed.
func (c Code) Succeeded() bool { return c >= 0 }

// Notable status codes from the b-CAP wire protocol.
const (
	SOK   Code = 0x00000000
	EFail Code = -2147467259 // 0x80004005

	ECaoVariantTypeNoSupport Code = -2147483133 // 0x80000203
	SExecuting               Code = 0x00000900  // not an error: response is not final
	EInvalidPacket           Code = -2147418112 // 0x80010000
)

// Error carries a failed HRESULT plus an optional human-readable message.
// It is the single carrier for both server-reported errors (a negative
// HRESULT in a correctly framed response) and local protocol/transport
// errors raised before or instead of a response.
type Error struct {
	HR      Code
	Message string
}

// New constructs an Error. If message is empty, Error() renders a generic
// "b-CAP server returned an error" message, mirroring the reference
// client's default exception text.
func New(hr Code, message string) *Error {
	return &Error{HR: hr, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%#08X] b-CAP server returned an error", uint32(e.HR))
	}
	return fmt.Sprintf("[%#08X] %s", uint32(e.HR), e.Message)
}

// Is allows errors.Is(err, &hresult.Error{HR: hresult.EInvalidPacket}) and
// similar comparisons, treating two Errors as equivalent when their HR
// matches regardless of Message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.HR == e.HR
}
