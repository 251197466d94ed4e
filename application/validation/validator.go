// Package validation lints raw component sections against the generated schema.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sehnryr/cargo-component/application/schema"
	"github.com/sehnryr/cargo-component/domain/entities"
	domainerrors "github.com/sehnryr/cargo-component/domain/errors"
	"github.com/sehnryr/cargo-component/domain/ports"
)

// SectionValidator implements ports.SectionValidator using the section JSON schema.
type SectionValidator struct {
	schema *jsonschema.Schema
}

// NewSectionValidator compiles the section schema once for reuse.
func NewSectionValidator() (ports.SectionValidator, error) {
	data, err := schema.SectionSchemaJSON()
	if err != nil {
		return nil, &domainerrors.SchemaError{Type: "component", Err: err}
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schema.SectionSchemaID, bytes.NewReader(data)); err != nil {
		return nil, &domainerrors.SchemaError{Type: "component", Err: fmt.Errorf("failed to add schema resource: %w", err)}
	}

	sch, err := compiler.Compile(schema.SectionSchemaID)
	if err != nil {
		return nil, &domainerrors.SchemaError{Type: "component", Err: fmt.Errorf("invalid schema: %w", err)}
	}
	return &SectionValidator{schema: sch}, nil
}

// Validate checks the generic component section document. A nil section is
// valid. Violations are reported in the result; the error is reserved for
// documents that cannot be prepared for validation.
func (v *SectionValidator) Validate(section any) (*entities.ValidationResult, error) {
	result := &entities.ValidationResult{Valid: true}
	if section == nil {
		return result, nil
	}

	// Round-trip through JSON so the validator only sees JSON types.
	b, err := json.Marshal(section)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare validation object: %w", err)
	}
	var obj interface{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, fmt.Errorf("failed to prepare validation object: %w", err)
	}

	if err := v.schema.Validate(obj); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, err
		}
		result.Valid = false
		for _, e := range ve.BasicOutput().Errors {
			if e.Error == "" {
				continue
			}
			result.Errors = append(result.Errors, entities.ValidationError{
				Field:   e.InstanceLocation,
				Message: e.Error,
			})
		}
		if len(result.Errors) == 0 {
			result.Errors = append(result.Errors, entities.ValidationError{Message: ve.Error()})
		}
	}

	return result, nil
}
