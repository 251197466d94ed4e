package metadata

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sehnryr/cargo-component/domain/entities"
	domainerrors "github.com/sehnryr/cargo-component/domain/errors"
	"github.com/spf13/afero"
)

// ManifestName is the file name of a package manifest.
const ManifestName = "Cargo.toml"

// ExpandMembers returns the manifest paths of every member of ws, sorted,
// with the root manifest first when it is itself a package.
//
// Member patterns are globs relative to the root manifest directory. A
// literal member must contain a manifest; directories matched by a glob
// without one are skipped. Excluded directories and everything below them
// are left out.
func ExpandMembers(fs afero.Fs, ws *entities.Workspace) ([]string, error) {
	root := filepath.Dir(ws.ManifestPath)

	excluded := make([]string, 0, len(ws.Exclude))
	for _, ex := range ws.Exclude {
		excluded = append(excluded, filepath.Join(root, filepath.FromSlash(ex)))
	}

	seen := make(map[string]struct{})
	var members []string
	for _, pattern := range ws.Members {
		dirs, err := matchMembers(fs, root, pattern)
		if err != nil {
			return nil, err
		}
		for _, dir := range dirs {
			if isExcluded(dir, excluded) {
				continue
			}
			manifest := filepath.Join(dir, ManifestName)
			if _, ok := seen[manifest]; ok {
				continue
			}
			seen[manifest] = struct{}{}
			members = append(members, manifest)
		}
	}
	sort.Strings(members)

	if ws.HasPackage {
		if _, ok := seen[ws.ManifestPath]; !ok {
			members = append([]string{ws.ManifestPath}, members...)
		}
	}
	return members, nil
}

// matchMembers returns the member directories matching pattern.
func matchMembers(fs afero.Fs, root, pattern string) ([]string, error) {
	pattern = path.Clean(filepath.ToSlash(pattern))
	if !doublestar.ValidatePattern(pattern) {
		return nil, &domainerrors.ConfigError{
			Field: "workspace.members",
			Err:   fmt.Errorf("invalid member pattern `%s`", pattern),
		}
	}

	base, rest := doublestar.SplitPattern(pattern)
	baseDir := filepath.Join(root, filepath.FromSlash(base))

	if !hasMeta(rest) {
		dir := filepath.Join(baseDir, filepath.FromSlash(rest))
		manifest := filepath.Join(dir, ManifestName)
		ok, err := afero.Exists(fs, manifest)
		if err != nil {
			return nil, &domainerrors.FilesystemError{Op: "stat", Path: manifest, Err: err}
		}
		if !ok {
			return nil, &domainerrors.FilesystemError{
				Op:   "load workspace member",
				Path: manifest,
				Err:  errors.New("member has no manifest"),
			}
		}
		return []string{dir}, nil
	}

	// A base path fs only accepts absolute bases; relative roots are
	// globbed from the fs root with the base folded into the pattern.
	fsys, glob, prefix := afero.NewIOFS(fs), path.Join(filepath.ToSlash(baseDir), rest), ""
	if filepath.IsAbs(baseDir) {
		fsys, glob, prefix = afero.NewIOFS(afero.NewBasePathFs(fs, baseDir)), rest, baseDir
	}
	matches, err := doublestar.Glob(fsys, glob)
	if err != nil {
		return nil, &domainerrors.ConfigError{Field: "workspace.members", Err: err}
	}

	var dirs []string
	for _, match := range matches {
		dir := filepath.Join(prefix, filepath.FromSlash(match))
		ok, err := afero.Exists(fs, filepath.Join(dir, ManifestName))
		if err != nil || !ok {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[{\`)
}

func isExcluded(dir string, excluded []string) bool {
	for _, ex := range excluded {
		if dir == ex || strings.HasPrefix(dir, ex+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// ResolveWorkspace resolves every member of the workspace rooted at the
// manifest at manifestPath.
func (r *Resolver) ResolveWorkspace(ctx context.Context, manifestPath string) ([]*ComponentMetadata, error) {
	if r.config.reader == nil {
		return nil, errors.New("manifest reader is required")
	}

	ws, err := r.config.reader.ReadWorkspace(manifestPath)
	if err != nil {
		return nil, err
	}

	members, err := ExpandMembers(r.config.fs, ws)
	if err != nil {
		return nil, err
	}
	r.config.logger.Debug("expanded workspace members", "manifest", manifestPath, "members", len(members))

	return r.ResolveAll(ctx, members)
}
