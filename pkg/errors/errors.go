package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeMissingSource Code = "MISSING_SOURCE"
	CodeBadRecord     Code = "BAD_RECORD"
	CodeOutput        Code = "OUTPUT_ERROR"
	CodeDependency    Code = "DEPENDENCY_ERROR"
	CodeInternal      Code = "INTERNAL_ERROR"
)

// Metadata describes how the process should treat a failure class.
type Metadata struct {
	ExitStatus int
	Retryable  bool
	Summary    string
}

var metadataByCode = map[Code]Metadata{
	CodeInvalidInput: {
		ExitStatus: 2,
		Retryable:  false,
		Summary:    "configuration or flag rejected",
	},
	CodeMissingSource: {
		ExitStatus: 3,
		Retryable:  false,
		Summary:    "source file missing or unreadable",
	},
	CodeBadRecord: {
		ExitStatus: 4,
		Retryable:  false,
		Summary:    "source record malformed",
	},
	CodeOutput: {
		ExitStatus: 5,
		Retryable:  true,
		Summary:    "output file could not be written",
	},
	CodeDependency: {
		ExitStatus: 6,
		Retryable:  true,
		Summary:    "database unavailable",
	},
	CodeInternal: {
		ExitStatus: 1,
		Retryable:  false,
		Summary:    "internal error",
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
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
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

// CodeOf returns the failure class of any error.
func CodeOf(err error) Code {
	if typed := As(err); typed != nil {
		return typed.Code()
	}
	return CodeInternal
}

// ExitStatus resolves the process exit code for any error.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if typed := As(err); typed != nil {
		return MetadataFor(typed.Code()).ExitStatus
	}
	return MetadataFor(CodeInternal).ExitStatus
}
