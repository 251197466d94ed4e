package decoder

import (
	"testing"

	"github.com/sehnryr/cargo-component/domain/entities"
	domainerrors "github.com/sehnryr/cargo-component/domain/errors"
	"github.com/sehnryr/cargo-component/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	t.Run("should parse a package and version", func(t *testing.T) {
		target, err := ParseTarget("wasi:http@0.2.0")
		require.NoError(t, err)

		assert.Equal(t, testutil.MustPackageName(t, "wasi:http"), target.Name)
		assert.Equal(t, "0.2.0", target.Package.Version.String())
		assert.Nil(t, target.Package.Name)
		assert.Empty(t, target.Package.Registry)
		_, ok := target.World()
		assert.False(t, ok)
	})

	t.Run("should parse a world", func(t *testing.T) {
		target, err := ParseTarget("wasi:http/proxy@0.2.0")
		require.NoError(t, err)

		assert.Equal(t, "wasi:http", target.Name.String())
		world, ok := target.World()
		require.True(t, ok)
		assert.Equal(t, "proxy", world)
	})

	t.Run("should split the version on the last @", func(t *testing.T) {
		target, err := ParseTarget("my:pkg/world@>=1.0, <2")
		require.NoError(t, err)
		assert.Equal(t, ">=1.0, <2", target.Package.Version.String())
	})

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "should reject a missing version",
			input: "wasi:http",
			check: func(t *testing.T, err error) {
				e := testutil.RequireErrorAs[*domainerrors.InvalidTargetError](t, err)
				assert.Equal(t, "wasi:http", e.Input)
				assert.Contains(t, err.Error(), TargetFormat)
			},
		},
		{
			name:  "should reject an invalid version",
			input: "wasi:http@not-a-version",
			check: func(t *testing.T, err error) {
				testutil.RequireErrorAs[*domainerrors.InvalidTargetError](t, err)
			},
		},
		{
			name:  "should reject an empty version",
			input: "wasi:http@",
			check: func(t *testing.T, err error) {
				testutil.RequireErrorAs[*domainerrors.InvalidTargetError](t, err)
			},
		},
		{
			name:  "should reject a version outside the requirement grammar",
			input: "wasi:http@v1.0",
			check: func(t *testing.T, err error) {
				testutil.RequireErrorAs[*domainerrors.InvalidTargetError](t, err)
			},
		},
		{
			name:  "should reject space-separated comparators",
			input: "wasi:http@>=1 <2",
			check: func(t *testing.T, err error) {
				testutil.RequireErrorAs[*domainerrors.InvalidTargetError](t, err)
			},
		},
		{
			name:  "should reject an invalid world",
			input: "wasi:http/Bad_World@0.2.0",
			check: func(t *testing.T, err error) {
				e := testutil.RequireErrorAs[*domainerrors.InvalidIdentifierError](t, err)
				assert.Equal(t, domainerrors.WorldIdentifier, e.Kind)
				assert.Equal(t, "Bad_World", e.Value)
			},
		},
		{
			name:  "should reject an empty world",
			input: "wasi:http/@0.2.0",
			check: func(t *testing.T, err error) {
				e := testutil.RequireErrorAs[*domainerrors.InvalidIdentifierError](t, err)
				assert.Equal(t, domainerrors.WorldIdentifier, e.Kind)
			},
		},
		{
			name:  "should reject a package without namespace",
			input: "http@0.2.0",
			check: func(t *testing.T, err error) {
				e := testutil.RequireErrorAs[*domainerrors.InvalidIdentifierError](t, err)
				assert.Equal(t, domainerrors.PackageIdentifier, e.Kind)
				assert.Equal(t, "http", e.Value)
			},
		},
		{
			name:  "should keep everything after the first slash as the world",
			input: "wasi:http/proxy/extra@0.2.0",
			check: func(t *testing.T, err error) {
				e := testutil.RequireErrorAs[*domainerrors.InvalidIdentifierError](t, err)
				assert.Equal(t, domainerrors.WorldIdentifier, e.Kind)
				assert.Equal(t, "proxy/extra", e.Value)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := ParseTarget(tt.input)
			assert.Nil(t, target)
			tt.check(t, err)
		})
	}
}

func TestDecodeTarget_Table(t *testing.T) {
	t.Run("should decode a registry target", func(t *testing.T) {
		target, err := DecodeTarget(map[string]any{
			"package":  "wasi:cli",
			"version":  "0.2",
			"world":    "command",
			"registry": "internal",
		})
		require.NoError(t, err)

		pkg, ok := target.(*entities.PackageTarget)
		require.True(t, ok)
		assert.Equal(t, "wasi:cli", pkg.Name.String())
		assert.Equal(t, "0.2", pkg.Package.Version.String())
		assert.Equal(t, "internal", pkg.Package.Registry)
		assert.Equal(t, "command", pkg.WorldName)

		deps := target.Dependencies()
		require.Len(t, deps, 1)
		assert.Equal(t, "internal", deps[pkg.Name].Package.Registry)
	})

	t.Run("should decode a local target", func(t *testing.T) {
		target, err := DecodeTarget(map[string]any{
			"path":  "wit/world.wit",
			"world": "example",
			"dependencies": map[string]any{
				"my:dep":    map[string]any{"path": "deps/dep"},
				"wasi:http": "0.2.0",
			},
		})
		require.NoError(t, err)

		local, ok := target.(*entities.LocalTarget)
		require.True(t, ok)
		assert.Equal(t, "wit/world.wit", local.Path, "decoder must not rewrite paths")
		assert.Equal(t, "example", local.WorldName)
		require.Len(t, local.Deps, 2)

		dep := local.Deps[testutil.MustPackageName(t, "my:dep")]
		assert.True(t, dep.IsLocal())
		assert.Equal(t, "deps/dep", dep.Path)
		assert.False(t, local.Deps[testutil.MustPackageName(t, "wasi:http")].IsLocal())
	})

	t.Run("should decode an empty table as the default local target", func(t *testing.T) {
		target, err := DecodeTarget(map[string]any{})
		require.NoError(t, err)

		local, ok := target.(*entities.LocalTarget)
		require.True(t, ok)
		assert.Empty(t, local.Path)
		assert.NotNil(t, local.Deps)
		assert.Empty(t, local.Deps)
	})

	t.Run("should decode nil as the default target", func(t *testing.T) {
		target, err := DecodeTarget(nil)
		require.NoError(t, err)
		assert.IsType(t, &entities.LocalTarget{}, target)
	})

	t.Run("should decode the shorthand string", func(t *testing.T) {
		target, err := DecodeTarget("wasi:http/proxy@0.2.0")
		require.NoError(t, err)
		assert.IsType(t, &entities.PackageTarget{}, target)
	})

	t.Run("should return a nil interface for an invalid shorthand", func(t *testing.T) {
		target, err := DecodeTarget("wasi:http")
		require.Error(t, err)
		assert.Nil(t, target)
	})

	t.Run("should reject other node types", func(t *testing.T) {
		_, err := DecodeTarget(int64(42))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected a string or a table")
	})

	conflicts := []struct {
		name   string
		table  map[string]any
		fields [2]string
	}{
		{
			name:   "should reject path with package",
			table:  map[string]any{"path": "wit", "package": "wasi:http", "version": "0.2.0"},
			fields: [2]string{"path", "package"},
		},
		{
			name:   "should reject path with package even when the package is invalid",
			table:  map[string]any{"path": "wit", "package": "invalid"},
			fields: [2]string{"path", "package"},
		},
		{
			name:   "should reject dependencies with package",
			table:  map[string]any{"package": "wasi:http", "version": "0.2.0", "dependencies": map[string]any{"a:b": "1.0"}},
			fields: [2]string{"dependencies", "package"},
		},
		{
			name:   "should reject version without package",
			table:  map[string]any{"version": "0.2.0"},
			fields: [2]string{"version", "path"},
		},
		{
			name:   "should reject registry without package",
			table:  map[string]any{"path": "wit", "registry": "internal"},
			fields: [2]string{"registry", "path"},
		},
	}
	for _, tt := range conflicts {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTarget(tt.table)
			e := testutil.RequireErrorAs[*domainerrors.ConflictingFieldsError](t, err)
			assert.Equal(t, tt.fields, e.Fields)
			assert.Equal(t, "target", e.Context)
		})
	}

	t.Run("should require a version for a registry target", func(t *testing.T) {
		_, err := DecodeTarget(map[string]any{"package": "wasi:http"})
		e := testutil.RequireErrorAs[*domainerrors.MissingFieldError](t, err)
		assert.Equal(t, "version", e.Field)
	})

	t.Run("should reject unknown fields", func(t *testing.T) {
		_, err := DecodeTarget(map[string]any{"path": "wit", "wrold": "oops"})
		e := testutil.RequireErrorAs[*domainerrors.UnknownFieldError](t, err)
		assert.Equal(t, []string{"wrold"}, e.Fields)
		assert.Equal(t, "target", e.Context)
	})

	t.Run("should reject differently-cased field names", func(t *testing.T) {
		_, err := DecodeTarget(map[string]any{"Package": "wasi:http", "VERSION": "1"})
		e := testutil.RequireErrorAs[*domainerrors.UnknownFieldError](t, err)
		assert.Equal(t, []string{"Package", "VERSION"}, e.Fields)
	})

	t.Run("should validate the world of a registry target", func(t *testing.T) {
		_, err := DecodeTarget(map[string]any{"package": "wasi:http", "version": "0.2", "world": "Not_Valid"})
		e := testutil.RequireErrorAs[*domainerrors.InvalidIdentifierError](t, err)
		assert.Equal(t, domainerrors.WorldIdentifier, e.Kind)
		assert.Equal(t, "Not_Valid", e.Value)
	})

	t.Run("should validate the world of a local target", func(t *testing.T) {
		_, err := DecodeTarget(map[string]any{"world": "not_valid"})
		e := testutil.RequireErrorAs[*domainerrors.InvalidIdentifierError](t, err)
		assert.Equal(t, domainerrors.WorldIdentifier, e.Kind)
	})

	t.Run("should reject an empty path", func(t *testing.T) {
		_, err := DecodeTarget(map[string]any{"path": ""})
		assert.Error(t, err)
	})

	t.Run("should reject a non-string package", func(t *testing.T) {
		_, err := DecodeTarget(map[string]any{"package": int64(1), "version": "1.0"})
		assert.Error(t, err)
	})
}
