package codegen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidRequest indicates a request that failed validation.
	ErrInvalidRequest = errors.New("codegen: invalid request")
	// ErrInvalidConfig indicates a configuration error.
	ErrInvalidConfig = errors.New("codegen: invalid configuration")
)

// ErrorCode identifies a request-validation failure in machine-readable
// form.
type ErrorCode string

const (
	// CodeDuplicateServiceName: two services share the same
	// (namespace.Base, name.Base) pair.
	CodeDuplicateServiceName ErrorCode = "duplicate_service_name"
	// CodeServiceNamespaceCollision: a no-namespace service's generated
	// upper-case name collides with a namespace's generated upper-case
	// name.
	CodeServiceNamespaceCollision ErrorCode = "service_namespace_collision"
	// CodeDuplicateGeneratedName: two services in one namespace share a
	// generated upper-case name.
	CodeDuplicateGeneratedName ErrorCode = "duplicate_generated_name"
	// CodeDuplicateMethodName: two methods of one service share a base,
	// generated upper-case or generated lower-case name.
	CodeDuplicateMethodName ErrorCode = "duplicate_method_name"
	// CodeUnknownImportItemKind: a dependency carries an unrecognized
	// import-item kind.
	CodeUnknownImportItemKind ErrorCode = "unknown_import_item_kind"
)

// RequestError reports a validation failure of a CodeGenerationRequest.
// Code is machine-readable; Service and Method identify the offending
// declaration where applicable.
type RequestError struct {
	Code    ErrorCode
	Service string
	Method  string
	Message string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	var b strings.Builder
	b.WriteString("codegen: request error [")
	b.WriteString(string(e.Code))
	b.WriteString("]")
	if e.Service != "" {
		b.WriteString(" on service ")
		b.WriteString(e.Service)
	}
	if e.Method != "" {
		b.WriteString(" method ")
		b.WriteString(e.Method)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for
// RequestError.
func (e *RequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// NewRequestError creates a new RequestError.
func NewRequestError(code ErrorCode, service, method, message string) *RequestError {
	return &RequestError{
		Code:    code,
		Service: service,
		Method:  method,
		Message: message,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("codegen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("codegen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// IsRequestError reports whether the error is a RequestError.
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
