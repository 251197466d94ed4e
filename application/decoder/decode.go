// Package decoder turns the generic component section document into the
// typed configuration model.
//
// Decoding is strict: unknown fields are rejected, types are never coerced,
// and mutually exclusive fields fail with a named error instead of being
// silently ignored. The decoder never touches the filesystem; relative
// paths are returned exactly as written.
package decoder

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/sehnryr/cargo-component/domain/entities"
	domainerrors "github.com/sehnryr/cargo-component/domain/errors"
)

var ownershipType = reflect.TypeOf(entities.Ownership(""))

// ownershipHook rejects ownership names outside the closed set.
func ownershipHook(from, to reflect.Type, data any) (any, error) {
	if to != ownershipType || from.Kind() != reflect.String {
		return data, nil
	}
	return entities.ParseOwnership(reflect.ValueOf(data).String())
}

// decodeStrict decodes input into out using json tag names, matched
// case-sensitively. Keys that do not map to a field of out fail with an
// UnknownFieldError naming context.
func decodeStrict(input any, out any, context string) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     out,
		Metadata:   &md,
		DecodeHook: mapstructure.DecodeHookFuncType(ownershipHook),
		MatchName:  exactName,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := dec.Decode(input); err != nil {
		return err
	}

	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		return &domainerrors.UnknownFieldError{Fields: md.Unused, Context: context}
	}
	return nil
}

func exactName(mapKey, fieldName string) bool {
	return mapKey == fieldName
}

// parsePackageName parses a package name, classifying failures as InvalidIdentifierError.
func parsePackageName(s string) (entities.PackageName, error) {
	name, err := entities.ParsePackageName(s)
	if err != nil {
		return entities.PackageName{}, &domainerrors.InvalidIdentifierError{
			Kind:  domainerrors.PackageIdentifier,
			Value: s,
			Err:   err,
		}
	}
	return name, nil
}

// validateWorld checks a world name, classifying failures as InvalidIdentifierError.
func validateWorld(s string) error {
	if err := entities.ValidateID(s); err != nil {
		return &domainerrors.InvalidIdentifierError{
			Kind:  domainerrors.WorldIdentifier,
			Value: s,
			Err:   err,
		}
	}
	return nil
}

// parseVersionReq parses a version requirement found in a table field.
func parseVersionReq(s string) (entities.VersionReq, error) {
	req, err := entities.ParseVersionReq(s)
	if err != nil {
		return entities.VersionReq{}, fmt.Errorf("invalid version requirement `%s`: %w", s, err)
	}
	return req, nil
}

// sortedKeys returns the keys of m in lexical order so that the first
// reported failure is deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
