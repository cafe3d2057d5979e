package domain

import (
	"errors"
	"fmt"
)

// ErrorType classifies a fatal extraction error
type ErrorType string

const (
	ErrorTypeInput      ErrorType = "input"
	ErrorTypeDecode     ErrorType = "decode"
	ErrorTypeEncode     ErrorType = "encode"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeValidation ErrorType = "validation"
)

// NoIndex marks a page or image context that does not apply
const NoIndex = -1

// DomainError is an error with a type and optional page/image context.
// Page and Image are 0-based; NoIndex means "not applicable".
type DomainError struct {
	Type    ErrorType
	Message string
	Page    int
	Image   int
	Err     error
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Type, e.Message)
	switch {
	case e.Page != NoIndex && e.Image != NoIndex:
		msg += fmt.Sprintf(" (page %d, image %d)", e.Page+1, e.Image+1)
	case e.Page != NoIndex:
		msg += fmt.Sprintf(" (page %d)", e.Page+1)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new domain error without page context
func NewError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Page:    NoIndex,
		Image:   NoIndex,
		Err:     err,
	}
}

// AtPage attaches a 0-based page index
func (e *DomainError) AtPage(page int) *DomainError {
	e.Page = page
	return e
}

// AtImage attaches a 0-based page index and per-page image index
func (e *DomainError) AtImage(page, image int) *DomainError {
	e.Page = page
	e.Image = image
	return e
}

func InputError(message string, err error) *DomainError {
	return NewError(ErrorTypeInput, message, err)
}

func DecodeError(message string, err error) *DomainError {
	return NewError(ErrorTypeDecode, message, err)
}

func EncodeError(message string, err error) *DomainError {
	return NewError(ErrorTypeEncode, message, err)
}

func IOError(message string, err error) *DomainError {
	return NewError(ErrorTypeIO, message, err)
}

func ValidationError(message string, err error) *DomainError {
	return NewError(ErrorTypeValidation, message, err)
}

// IsType reports whether any error in err's chain is a DomainError of type t
func IsType(err error, t ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type == t
	}
	return false
}
