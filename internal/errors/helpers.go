package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is re-exported so callers need a single errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the player-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

func IsOutOfRange(err error) bool {
	return GetCode(err) == CodeOutOfRange
}

func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}
