package manifest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/sehnryr/cargo-component/domain/entities"
	domainerrors "github.com/sehnryr/cargo-component/domain/errors"
	"github.com/sehnryr/cargo-component/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingParser struct {
	path string
	data []byte
}

func (p *recordingParser) Parse(manifestPath string, data []byte) (*entities.Package, error) {
	p.path, p.data = manifestPath, data
	return &entities.Package{Name: "recorded", ManifestPath: manifestPath}, nil
}

func (p *recordingParser) ParseWorkspace(manifestPath string, data []byte) (*entities.Workspace, error) {
	p.path, p.data = manifestPath, data
	return &entities.Workspace{ManifestPath: manifestPath}, nil
}

func TestFileReader_Read(t *testing.T) {
	t.Run("should read and parse a Cargo manifest", func(t *testing.T) {
		memFs := afero.NewMemMapFs()
		testutil.WriteFile(t, memFs, "/work/Cargo.toml", `
[package]
name = "app"
version = "1.0.0"

[package.metadata.component]
target = "wasi:cli/command@0.2.0"
`)

		pkg, err := NewFileReader(WithFilesystem(memFs)).Read("/work/Cargo.toml")
		require.NoError(t, err)
		assert.Equal(t, "app", pkg.Name)
		assert.Equal(t, "1.0.0", pkg.Version)

		section, ok := pkg.Metadata[entities.ComponentMetadataKey].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "wasi:cli/command@0.2.0", section["target"])
	})

	t.Run("should report a missing manifest", func(t *testing.T) {
		_, err := NewFileReader(WithFilesystem(afero.NewMemMapFs())).Read("/missing/Cargo.toml")

		fsErr := testutil.RequireErrorAs[*domainerrors.FilesystemError](t, err)
		assert.Equal(t, "read", fsErr.Op)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("should use the configured parser", func(t *testing.T) {
		memFs := afero.NewMemMapFs()
		testutil.WriteFile(t, memFs, "/work/manifest", "raw")
		parser := &recordingParser{}

		pkg, err := NewFileReader(WithFilesystem(memFs), WithParser(parser)).Read("/work/manifest")
		require.NoError(t, err)
		assert.Equal(t, "recorded", pkg.Name)
		assert.Equal(t, "/work/manifest", parser.path)
		assert.Equal(t, []byte("raw"), parser.data)
	})
}

func TestFileReader_ReadWorkspace(t *testing.T) {
	t.Run("should read the workspace table", func(t *testing.T) {
		memFs := afero.NewMemMapFs()
		testutil.WriteFile(t, memFs, "/work/Cargo.toml", `
[workspace]
members = ["crates/*"]
`)

		ws, err := NewFileReader(WithFilesystem(memFs)).ReadWorkspace("/work/Cargo.toml")
		require.NoError(t, err)
		assert.Equal(t, []string{"crates/*"}, ws.Members)
	})

	t.Run("should report a missing manifest", func(t *testing.T) {
		_, err := NewFileReader(WithFilesystem(afero.NewMemMapFs())).ReadWorkspace("/missing/Cargo.toml")

		fsErr := testutil.RequireErrorAs[*domainerrors.FilesystemError](t, err)
		assert.Equal(t, "/missing/Cargo.toml", fsErr.Path)
	})

	t.Run("should use the configured parser", func(t *testing.T) {
		memFs := afero.NewMemMapFs()
		testutil.WriteFile(t, memFs, "/work/manifest", "raw")
		parser := &recordingParser{}

		ws, err := NewFileReader(WithFilesystem(memFs), WithParser(parser)).ReadWorkspace("/work/manifest")
		require.NoError(t, err)
		assert.Equal(t, "/work/manifest", ws.ManifestPath)
		assert.Equal(t, []byte("raw"), parser.data)
	})
}
