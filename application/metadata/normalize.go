package metadata

import (
	"path/filepath"

	"github.com/sehnryr/cargo-component/domain/entities"
)

// NormalizePaths rewrites every path of section relative to manifestDir:
// the local target path, local dependencies of the local target, local
// component dependencies and the adapter. Absolute paths are kept as they are.
//
// It must run once, right after decoding.
func NormalizePaths(section *entities.ComponentSection, manifestDir string) {
	if local, ok := section.Target.(*entities.LocalTarget); ok {
		if local.Path != "" {
			local.Path = joinPath(manifestDir, local.Path)
		}
		normalizeDependencies(local.Deps, manifestDir)
	}

	normalizeDependencies(section.Dependencies, manifestDir)

	if section.Adapter != "" {
		section.Adapter = joinPath(manifestDir, section.Adapter)
	}
}

func normalizeDependencies(deps map[entities.PackageName]entities.Dependency, manifestDir string) {
	for name, dep := range deps {
		if dep.IsLocal() {
			dep.Path = joinPath(manifestDir, dep.Path)
			deps[name] = dep
		}
	}
}

func joinPath(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}
