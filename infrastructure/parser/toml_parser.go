// Package parser provides manifest parsers for the supported manifest formats.
package parser

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/sehnryr/cargo-component/domain/entities"
	domainerrors "github.com/sehnryr/cargo-component/domain/errors"
	"github.com/sehnryr/cargo-component/domain/ports"
)

// defaultPackageVersion is the version of a package whose manifest omits it.
const defaultPackageVersion = "0.0.0"

// cargoManifest is the subset of a Cargo manifest this module reads.
// Every other table is ignored.
type cargoManifest struct {
	Package   *cargoPackage   `toml:"package"`
	Workspace *cargoWorkspace `toml:"workspace"`
}

type cargoPackage struct {
	Name     string         `toml:"name"`
	Version  any            `toml:"version"`
	Metadata map[string]any `toml:"metadata"`
}

type cargoWorkspace struct {
	Members []string `toml:"members"`
	Exclude []string `toml:"exclude"`
	Package struct {
		Version string `toml:"version"`
	} `toml:"package"`
}

// TomlManifestParser implements ManifestParser for Cargo.toml.
type TomlManifestParser struct{}

// NewTomlManifestParser creates a new TomlManifestParser.
func NewTomlManifestParser() ports.ManifestParser {
	return &TomlManifestParser{}
}

// Parse unmarshals a Cargo.toml into a package record. The `[package.metadata]`
// table is returned as a generic document.
func (p *TomlManifestParser) Parse(manifestPath string, data []byte) (*entities.Package, error) {
	var manifest cargoManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, malformed(manifestPath, fmt.Errorf("failed to parse manifest: %w", err))
	}

	if manifest.Package == nil {
		return nil, malformed(manifestPath, errors.New("manifest has no [package] table"))
	}
	if manifest.Package.Name == "" {
		return nil, malformed(manifestPath, &domainerrors.MissingFieldError{Field: "name", Context: "package"})
	}

	version, err := packageVersion(manifest)
	if err != nil {
		return nil, malformed(manifestPath, err)
	}

	metadata := manifest.Package.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	return &entities.Package{
		Name:         manifest.Package.Name,
		Version:      version,
		ManifestPath: manifestPath,
		Metadata:     metadata,
	}, nil
}

// ParseWorkspace unmarshals the `[workspace]` table of a root manifest.
func (p *TomlManifestParser) ParseWorkspace(manifestPath string, data []byte) (*entities.Workspace, error) {
	var manifest cargoManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, malformed(manifestPath, fmt.Errorf("failed to parse manifest: %w", err))
	}

	if manifest.Workspace == nil {
		return nil, malformed(manifestPath, errors.New("manifest has no [workspace] table"))
	}

	return &entities.Workspace{
		ManifestPath: manifestPath,
		Members:      manifest.Workspace.Members,
		Exclude:      manifest.Workspace.Exclude,
		HasPackage:   manifest.Package != nil,
	}, nil
}

// packageVersion returns the package version, following `version.workspace = true`
// when the workspace table lives in the same manifest.
func packageVersion(m cargoManifest) (string, error) {
	switch v := m.Package.Version.(type) {
	case nil:
		return defaultPackageVersion, nil
	case string:
		return v, nil
	case map[string]any:
		if inherit, _ := v["workspace"].(bool); inherit {
			if m.Workspace == nil || m.Workspace.Package.Version == "" {
				return "", errors.New("package version is inherited from a workspace that is not part of this manifest")
			}
			return m.Workspace.Package.Version, nil
		}
		return "", errors.New("invalid type for `package.version`: expected a string or `{ workspace = true }`")
	default:
		return "", fmt.Errorf("invalid type for `package.version`: expected a string, found %T", v)
	}
}

func malformed(manifestPath string, err error) error {
	return &domainerrors.MalformedDocumentError{ManifestPath: manifestPath, Err: err}
}
