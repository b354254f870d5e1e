package apperror

import "errors"

type Kind int

const (
	// KindValidation covers malformed or referentially invalid requests.
	KindValidation Kind = iota
	// KindNotFound covers writes addressed to a row that does not exist.
	KindNotFound
)

// Error is the only expected error kind in the service layer. Anything else
// that bubbles up is treated as a fault and surfaces as a 500.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// As unwraps err into *Error if it is one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
