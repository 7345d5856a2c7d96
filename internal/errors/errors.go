// Package errors provides the structured error taxonomy of the hop config core.
//
// Every failure the configuration store can hit is reported as a *ConfigError.
// The store keeps the last error as published state instead of panicking or
// exiting, so presentation layers render it from there.
//
// # Error Codes
//
//   - DIRECTORY_CREATE_FAILED: the config directory could not be created
//   - DEFAULT_WRITE_FAILED: the default document could not be written
//   - READ_FAILED: the config file could not be read
//   - PARSE_FAILED: the document violates the schema (see ParseKind)
//   - WRITE_FAILED: a save could not be encoded or written
//
// # Parse Failures
//
// PARSE_FAILED errors carry a ParseKind and the dotted path of the offending
// value inside the document, for example "categories.0.links.2.name". The
// document root is rendered as "root".
//
// # Error Checking
//
// Use errors.Is with the sentinels, which compare by code:
//
//	if errors.Is(err, errors.ErrParse) {
//	    // schema violation
//	}
//
// Use errors.As to reach the path:
//
//	var cfgErr *errors.ConfigError
//	if errors.As(err, &cfgErr) {
//	    fmt.Println(cfgErr.Kind, cfgErr.Path)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes config errors for programmatic handling.
type ErrorCode string

// Error codes for the config lifecycle.
const (
	ErrCodeDirectoryCreate ErrorCode = "DIRECTORY_CREATE_FAILED" // Config directory creation failed
	ErrCodeDefaultWrite    ErrorCode = "DEFAULT_WRITE_FAILED"    // Default document write failed
	ErrCodeRead            ErrorCode = "READ_FAILED"             // Config file read failed
	ErrCodeParse           ErrorCode = "PARSE_FAILED"            // Schema violation or invalid JSON
	ErrCodeWrite           ErrorCode = "WRITE_FAILED"            // Save failed
)

// ParseKind narrows a PARSE_FAILED error.
type ParseKind string

// Parse failure kinds.
const (
	KindMissingKey    ParseKind = "missingKey"
	KindTypeMismatch  ParseKind = "typeMismatch"
	KindMissingValue  ParseKind = "missingValue"
	KindMalformedJSON ParseKind = "malformedJSON"
)

// RootPath is how an empty document path is rendered.
const RootPath = "root"

// ConfigError is a structured error from the config store.
type ConfigError struct {
	Code    ErrorCode // Error category
	Kind    ParseKind // Set for ErrCodeParse only
	Path    string    // Dotted document path, set for ErrCodeParse only
	Message string    // Human-readable message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors, one per code. Use these with errors.Is().
var (
	ErrDirectoryCreate = &ConfigError{Code: ErrCodeDirectoryCreate, Message: "failed to create config directory"}
	ErrDefaultWrite    = &ConfigError{Code: ErrCodeDefaultWrite, Message: "failed to create default config"}
	ErrRead            = &ConfigError{Code: ErrCodeRead, Message: "failed to load config"}
	ErrParse           = &ConfigError{Code: ErrCodeParse, Message: "invalid config"}
	ErrWrite           = &ConfigError{Code: ErrCodeWrite, Message: "failed to save config"}
)

// DirectoryCreate wraps a directory creation failure.
func DirectoryCreate(err error) error {
	return Wrap(ErrCodeDirectoryCreate, "failed to create config directory", err)
}

// DefaultWrite wraps a failure to write the default document.
func DefaultWrite(err error) error {
	return Wrap(ErrCodeDefaultWrite, "failed to create default config", err)
}

// Read wraps a failure to read the config file.
func Read(err error) error {
	return Wrap(ErrCodeRead, "failed to load config", err)
}

// Write wraps a failure to save the config file.
func Write(err error) error {
	return Wrap(ErrCodeWrite, "failed to save config", err)
}

// MissingKey reports a required key absent from the object at path.
func MissingKey(key, path string) error {
	return &ConfigError{
		Code:    ErrCodeParse,
		Kind:    KindMissingKey,
		Path:    joinPath(path, key),
		Message: fmt.Sprintf("Missing key '%s' at %s", key, displayPath(path)),
	}
}

// TypeMismatch reports a value at path that is not of the expected type.
func TypeMismatch(expected, path string) error {
	return &ConfigError{
		Code:    ErrCodeParse,
		Kind:    KindTypeMismatch,
		Path:    displayPath(path),
		Message: fmt.Sprintf("Type mismatch for %s at %s", expected, displayPath(path)),
	}
}

// MissingValue reports a null where a value of the expected type is required.
func MissingValue(expected, path string) error {
	return &ConfigError{
		Code:    ErrCodeParse,
		Kind:    KindMissingValue,
		Path:    displayPath(path),
		Message: fmt.Sprintf("Missing value for %s at %s", expected, displayPath(path)),
	}
}

// Malformed reports invalid JSON, or a value the schema cannot accept at path.
func Malformed(detail, path string) error {
	return &ConfigError{
		Code:    ErrCodeParse,
		Kind:    KindMalformedJSON,
		Path:    displayPath(path),
		Message: fmt.Sprintf("Invalid JSON: %s", detail),
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &ConfigError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func displayPath(path string) string {
	if path == "" {
		return RootPath
	}
	return path
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
