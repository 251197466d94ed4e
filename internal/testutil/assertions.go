// Package testutil provides common test utilities and assertions for package tests
package testutil

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/sehnryr/cargo-component/domain/entities"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// RequireErrorAs asserts that err has an E in its chain and returns it.
func RequireErrorAs[E error](t *testing.T, err error, msgAndArgs ...interface{}) E {
	t.Helper()

	var target E
	require.Error(t, err, msgAndArgs...)
	require.True(t, errors.As(err, &target), "expected %T in chain of %q", target, err)
	return target
}

// MustPackageName parses a `<namespace>:<name>` package name or fails the test.
func MustPackageName(t *testing.T, s string) entities.PackageName {
	t.Helper()

	name, err := entities.ParsePackageName(s)
	require.NoError(t, err)
	return name
}

// MustVersionReq parses a version requirement or fails the test.
func MustVersionReq(t *testing.T, s string) entities.VersionReq {
	t.Helper()

	req, err := entities.ParseVersionReq(s)
	require.NoError(t, err)
	return req
}

// WriteFile writes content to path on fs, creating parent directories.
func WriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

// NewPackage returns a package record for the manifest at manifestPath with
// the given component section. A nil section leaves the metadata empty.
func NewPackage(manifestPath string, section map[string]any) *entities.Package {
	metadata := map[string]any{}
	if section != nil {
		metadata[entities.ComponentMetadataKey] = section
	}
	return &entities.Package{
		Name:         "component",
		Version:      "0.1.0",
		ManifestPath: manifestPath,
		Metadata:     metadata,
	}
}
