package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeValidation Code = "VALIDATION_ERROR"
	CodeNotFound   Code = "NOT_FOUND"
	CodeConflict   Code = "CONFLICT"
	CodeStorage    Code = "STORAGE_ERROR"
	CodeDependency Code = "DEPENDENCY_ERROR"
	CodeInternal   Code = "INTERNAL_ERROR"
)

// Metadata describes how a code should be surfaced to the user.
type Metadata struct {
	Retryable      bool
	UserMessage    string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		Retryable:      false,
		UserMessage:    "please check the entered fields",
		DetailsAllowed: true,
	},
	CodeNotFound: {
		Retryable:      false,
		UserMessage:    "record not found",
		DetailsAllowed: false,
	},
	CodeConflict: {
		Retryable:      false,
		UserMessage:    "conflicting record exists",
		DetailsAllowed: false,
	},
	CodeStorage: {
		Retryable:      true,
		UserMessage:    "could not save changes, please try again",
		DetailsAllowed: false,
	},
	CodeDependency: {
		Retryable:      true,
		UserMessage:    "external service unavailable",
		DetailsAllowed: true,
	},
	CodeInternal: {
		Retryable:      true,
		UserMessage:    "something went wrong",
		DetailsAllowed: false,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// CodeOf extracts the code from an error, defaulting to CodeInternal for
// errors produced outside this package.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	if typed := As(err); typed != nil {
		return typed.Code()
	}
	return CodeInternal
}

// IsValidation reports whether the error was rejected before any write.
func IsValidation(err error) bool {
	return CodeOf(err) == CodeValidation
}

// IsNotFound reports whether the error refers to a missing record.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}
