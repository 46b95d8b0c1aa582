package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Repository and resolution errors
	ErrRepositoryNotFound    ErrorCode = "REPOSITORY_NOT_FOUND"
	ErrPathNotInRepository   ErrorCode = "PATH_NOT_IN_REPOSITORY"
	ErrMalformedGroupSegment ErrorCode = "MALFORMED_GROUP_SEGMENT"
	ErrCategoryNotSetup      ErrorCode = "CATEGORY_NOT_SETUP"

	// Deployment translation errors
	ErrPathNotUnderConfigs ErrorCode = "PATH_NOT_UNDER_CONFIGS"

	// Traversal errors
	ErrNotADirectory ErrorCode = "NOT_A_DIRECTORY"

	// Group name violations
	ErrTrailingCharacterInvalid ErrorCode = "GROUP_NAME_TRAILING_CHARACTER"
	ErrForbiddenCharacter       ErrorCode = "GROUP_NAME_FORBIDDEN_CHARACTER"
	ErrControlCharacter         ErrorCode = "GROUP_NAME_CONTROL_CHARACTER"
	ErrReservedDeviceName       ErrorCode = "GROUP_NAME_RESERVED_DEVICE"
	ErrReservedRelativeName     ErrorCode = "GROUP_NAME_RESERVED_RELATIVE"

	// Secrets errors
	ErrFileNotFound        ErrorCode = "FILE_NOT_FOUND"
	ErrEncryptionFailed    ErrorCode = "ENCRYPTION_FAILED"
	ErrDecryptionFailed    ErrorCode = "DECRYPTION_FAILED"
	ErrEncryptedReadFailed ErrorCode = "ENCRYPTED_READ_FAILED"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// Process exit codes for terminal error categories. Stable across
// releases so scripts can branch on them.
const (
	ExitOK                  = 0
	ExitFailure             = 1
	ExitRepositoryNotFound  = 2
	ExitCategoryNotSetup    = 3
	ExitNoSuchFileOrDir     = 4
	ExitEncryptionFailed    = 5
	ExitDecryptionFailed    = 6
	ExitEncryptedReadFailed = 7
)

// TuckError represents a structured error with code and details
type TuckError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TuckError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TuckError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TuckError) Is(target error) bool {
	var targetErr *TuckError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TuckError with the given code and message
func New(code ErrorCode, message string) *TuckError {
	return &TuckError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TuckError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TuckError {
	return &TuckError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TuckError
func Wrap(err error, code ErrorCode, message string) *TuckError {
	if err == nil {
		return nil
	}
	return &TuckError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TuckError {
	if err == nil {
		return nil
	}
	return &TuckError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TuckError) WithDetail(key string, value interface{}) *TuckError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tuckErr *TuckError
	if errors.As(err, &tuckErr) {
		return tuckErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TuckError
func GetErrorCode(err error) ErrorCode {
	var tuckErr *TuckError
	if errors.As(err, &tuckErr) {
		return tuckErr.Code
	}
	return ErrUnknown
}

// IsGroupNameViolation reports whether the error is one of the group name
// validation failures.
func IsGroupNameViolation(err error) bool {
	switch GetErrorCode(err) {
	case ErrTrailingCharacterInvalid, ErrForbiddenCharacter, ErrControlCharacter,
		ErrReservedDeviceName, ErrReservedRelativeName:
		return true
	}
	return false
}

// ExitCode maps an error to its process exit code. Errors without a
// dedicated code map to the generic failure code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetErrorCode(err) {
	case ErrRepositoryNotFound:
		return ExitRepositoryNotFound
	case ErrCategoryNotSetup:
		return ExitCategoryNotSetup
	case ErrFileNotFound:
		return ExitNoSuchFileOrDir
	case ErrEncryptionFailed:
		return ExitEncryptionFailed
	case ErrDecryptionFailed:
		return ExitDecryptionFailed
	case ErrEncryptedReadFailed:
		return ExitEncryptedReadFailed
	default:
		return ExitFailure
	}
}
