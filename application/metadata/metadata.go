// Package metadata builds ComponentMetadata from a package record: it
// extracts the component section, decodes it, and anchors every relative
// path at the manifest directory.
package metadata

import (
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/sehnryr/cargo-component/domain/entities"
	"github.com/spf13/afero"
)

// DefaultWitDir is the directory, relative to the manifest, searched for a
// local target when none is configured.
const DefaultWitDir = "wit"

// ComponentMetadata is the resolved component configuration of one package.
// Every path in Section is absolute or anchored at the manifest directory.
type ComponentMetadata struct {
	// Name is the package name.
	Name string
	// Version is the package version.
	Version *semver.Version
	// ManifestPath is the path to the manifest file.
	ManifestPath string
	// ModifiedAt is the last modification time of the manifest.
	ModifiedAt time.Time
	// Section is the component section, with paths normalized.
	Section entities.ComponentSection
	// SectionPresent reports whether the manifest had a component section at all.
	SectionPresent bool

	fs afero.Fs
}

// ManifestDir returns the directory containing the manifest.
func (m *ComponentMetadata) ManifestDir() string {
	return filepath.Dir(m.ManifestPath)
}

// TargetPackage returns the target package name.
// It returns false if the target is not a registry package.
func (m *ComponentMetadata) TargetPackage() (entities.PackageName, bool) {
	if t, ok := m.Section.Target.(*entities.PackageTarget); ok {
		return t.Name, true
	}
	return entities.PackageName{}, false
}

// TargetPath returns the path to a local target.
//
// It returns false if the target is a registry package, or if no path is
// configured and the default `wit` directory does not exist. The existence
// check runs on every call.
func (m *ComponentMetadata) TargetPath() (string, bool) {
	t, ok := m.Section.Target.(*entities.LocalTarget)
	if !ok {
		return "", false
	}
	if t.Path != "" {
		return t.Path, true
	}

	path := filepath.Join(m.ManifestDir(), DefaultWitDir)
	exists, err := afero.Exists(m.filesystem(), path)
	if err != nil || !exists {
		return "", false
	}
	return path, true
}

// TargetWorld returns the target world, if any.
func (m *ComponentMetadata) TargetWorld() (string, bool) {
	return m.Section.Target.World()
}

func (m *ComponentMetadata) filesystem() afero.Fs {
	if m.fs == nil {
		return afero.NewOsFs()
	}
	return m.fs
}
