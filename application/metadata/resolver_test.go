package metadata

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/sehnryr/cargo-component/domain/entities"
	"github.com/sehnryr/cargo-component/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReader serves package records from memory.
type stubReader struct {
	packages   map[string]*entities.Package
	workspaces map[string]*entities.Workspace
	reads      atomic.Int32
}

func (r *stubReader) Read(path string) (*entities.Package, error) {
	r.reads.Add(1)
	pkg, ok := r.packages[path]
	if !ok {
		return nil, fmt.Errorf("no manifest at %s", path)
	}
	return pkg, nil
}

func (r *stubReader) ReadWorkspace(path string) (*entities.Workspace, error) {
	ws, ok := r.workspaces[path]
	if !ok {
		return nil, fmt.Errorf("no workspace at %s", path)
	}
	return ws, nil
}

func newWorkspace(t *testing.T, members ...string) (afero.Fs, *stubReader) {
	t.Helper()

	fs := afero.NewMemMapFs()
	reader := &stubReader{packages: map[string]*entities.Package{}}
	for _, member := range members {
		path := "/work/" + member + "/Cargo.toml"
		testutil.WriteFile(t, fs, path, "")
		pkg := testutil.NewPackage(path, map[string]any{"adapter": "adapter.wasm"})
		pkg.Name = member
		reader.packages[path] = pkg
	}
	return fs, reader
}

func TestResolveManifest(t *testing.T) {
	t.Run("should read then resolve", func(t *testing.T) {
		fs, reader := newWorkspace(t, "app")

		md, err := NewResolver(WithFilesystem(fs), WithManifestReader(reader)).ResolveManifest("/work/app/Cargo.toml")
		require.NoError(t, err)
		assert.Equal(t, "app", md.Name)
		assert.Equal(t, "/work/app/adapter.wasm", md.Section.Adapter)
	})

	t.Run("should require a reader", func(t *testing.T) {
		_, err := NewResolver().ResolveManifest("/work/app/Cargo.toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "manifest reader is required")
	})

	t.Run("should propagate read errors", func(t *testing.T) {
		fs, reader := newWorkspace(t)
		_, err := NewResolver(WithFilesystem(fs), WithManifestReader(reader)).ResolveManifest("/missing/Cargo.toml")
		assert.Error(t, err)
	})
}

func TestResolveAll(t *testing.T) {
	t.Run("should resolve every member in order", func(t *testing.T) {
		members := []string{"a", "b", "c", "d", "e"}
		fs, reader := newWorkspace(t, members...)

		paths := make([]string, len(members))
		for i, m := range members {
			paths[i] = "/work/" + m + "/Cargo.toml"
		}

		resolver := NewResolver(WithFilesystem(fs), WithManifestReader(reader), WithConcurrency(2))
		results, err := resolver.ResolveAll(context.Background(), paths)
		require.NoError(t, err)
		require.Len(t, results, len(members))

		for i, md := range results {
			assert.Equal(t, members[i], md.Name)
			assert.Equal(t, "/work/"+members[i]+"/adapter.wasm", md.Section.Adapter)
		}
		assert.Equal(t, int32(len(members)), reader.reads.Load())
	})

	t.Run("should return no results when one member fails", func(t *testing.T) {
		fs, reader := newWorkspace(t, "a", "b")
		reader.packages["/work/b/Cargo.toml"].Metadata[entities.ComponentMetadataKey] = map[string]any{"unknown": true}

		results, err := NewResolver(WithFilesystem(fs), WithManifestReader(reader)).ResolveAll(
			context.Background(),
			[]string{"/work/a/Cargo.toml", "/work/b/Cargo.toml"},
		)
		require.Error(t, err)
		assert.Nil(t, results)
	})

	t.Run("should stop on a cancelled context", func(t *testing.T) {
		fs, reader := newWorkspace(t, "a")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewResolver(WithFilesystem(fs), WithManifestReader(reader)).ResolveAll(ctx, []string{"/work/a/Cargo.toml"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, int32(0), reader.reads.Load())
	})

	t.Run("should accept an empty workspace", func(t *testing.T) {
		results, err := NewResolver().ResolveAll(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestFromPackage(t *testing.T) {
	dir := t.TempDir()
	manifest := dir + "/Cargo.toml"
	testutil.WriteFile(t, afero.NewOsFs(), manifest, "[package]\nname = \"component\"\n")

	md, err := FromPackage(testutil.NewPackage(manifest, map[string]any{"target": map[string]any{"path": "wit"}}))
	require.NoError(t, err)

	path, ok := md.TargetPath()
	require.True(t, ok)
	assert.Equal(t, dir+"/wit", path)
}
