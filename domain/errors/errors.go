// Package errors provides domain-specific error types for component configuration.
// All error types support error unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/sehnryr/cargo-component/domain/entities"
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// DetailedError is an interface for custom error types that can convert themselves
// to a structured ErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to our structured ErrorDetail.
// The outermost DetailedError in the chain wins; its cause is attached as Wrapped.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		detail := de.ToErrorDetail()
		if inner := stdErrors.Unwrap(de); inner != nil && detail.Wrapped == nil {
			var next DetailedError
			if stdErrors.As(inner, &next) {
				detail.Wrapped = ToErrorDetail(inner)
			}
		}
		return detail
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// MalformedDocumentError reports a component section that cannot be
// deserialized into the expected schema. It carries the manifest path.
type MalformedDocumentError struct {
	Err          error
	ManifestPath string
}

func (e *MalformedDocumentError) Error() string {
	if e.ManifestPath != "" {
		return fmt.Sprintf("failed to deserialize component metadata from `%s`: %v", e.ManifestPath, e.Err)
	}
	return fmt.Sprintf("failed to deserialize component metadata: %v", e.Err)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *MalformedDocumentError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message: e.Error(),
		Type:    "config",
		Code:    "malformed_document",
		Details: map[string]any{"manifest_path": e.ManifestPath},
	}
}

// ConflictingFieldsError reports two mutually exclusive fields set together.
type ConflictingFieldsError struct {
	Fields  [2]string
	Context string // e.g. "target", "dependency"
}

func (e *ConflictingFieldsError) Error() string {
	ctx := e.Context
	if ctx == "" {
		ctx = "table"
	}
	return fmt.Sprintf("cannot specify both `%s` and `%s` fields in a %s entry", e.Fields[0], e.Fields[1], ctx)
}

// ToErrorDetail implements DetailedError.
func (e *ConflictingFieldsError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: "conflicting_fields"}
}

// MissingFieldError reports a required field that is absent.
type MissingFieldError struct {
	Field   string
	Context string
}

func (e *MissingFieldError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("missing field `%s` in %s entry", e.Field, e.Context)
	}
	return fmt.Sprintf("missing field `%s`", e.Field)
}

// ToErrorDetail implements DetailedError.
func (e *MissingFieldError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: "missing_field"}
}

// UnknownFieldError reports fields outside a strict schema.
type UnknownFieldError struct {
	Fields  []string
	Context string
}

func (e *UnknownFieldError) Error() string {
	quoted := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		quoted[i] = "`" + f + "`"
	}
	if e.Context != "" {
		return fmt.Sprintf("unknown field %s in %s entry", strings.Join(quoted, ", "), e.Context)
	}
	return fmt.Sprintf("unknown field %s", strings.Join(quoted, ", "))
}

// ToErrorDetail implements DetailedError.
func (e *UnknownFieldError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: "unknown_field"}
}

// InvalidTargetError reports a target shorthand that does not match
// `<package-name>[/<world>]@<version>`.
type InvalidTargetError struct {
	Err   error
	Input string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid target `%s`: %v", e.Input, e.Err)
}

func (e *InvalidTargetError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *InvalidTargetError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: "invalid_target"}
}

// IdentifierKind names what an invalid identifier was meant to be.
type IdentifierKind string

const (
	// WorldIdentifier is a world name.
	WorldIdentifier IdentifierKind = "world"
	// PackageIdentifier is a `<namespace>:<name>` package name.
	PackageIdentifier IdentifierKind = "package"
)

// InvalidIdentifierError reports a package or world name that fails syntactic validation.
type InvalidIdentifierError struct {
	Err   error
	Kind  IdentifierKind
	Value string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid %s name `%s`: %v", e.Kind, e.Value, e.Err)
}

func (e *InvalidIdentifierError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *InvalidIdentifierError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: "invalid_" + string(e.Kind) + "_name"}
}

// FilesystemError represents a failed filesystem query about the manifest or its files.
type FilesystemError struct {
	Err  error
	Op   string
	Path string
}

func (e *FilesystemError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s `%s` failed", e.Op, e.Path)
	}
	return fmt.Sprintf("%s `%s` failed: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *FilesystemError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message:    e.Error(),
		Type:       "filesystem",
		Code:       e.Op,
		IsNotFound: stdErrors.Is(e.Err, fs.ErrNotExist),
	}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ConfigError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: e.Field}
}

// SchemaError represents a schema generation or validation error.
type SchemaError struct {
	Err  error
	Type string
}

func (e *SchemaError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("schema error for type %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("schema error: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *SchemaError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "validation", Code: "schema"}
}
