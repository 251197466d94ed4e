package ports

import "github.com/sehnryr/cargo-component/domain/entities"

// ManifestParser parses the raw bytes of a build manifest into a package record.
type ManifestParser interface {
	// Parse decodes data read from manifestPath.
	Parse(manifestPath string, data []byte) (*entities.Package, error)

	// ParseWorkspace decodes the workspace table of a root manifest.
	ParseWorkspace(manifestPath string, data []byte) (*entities.Workspace, error)
}

// ManifestReader loads the package record of the manifest at a path.
type ManifestReader interface {
	// Read reads and parses the manifest at manifestPath.
	Read(manifestPath string) (*entities.Package, error)

	// ReadWorkspace reads the workspace table of the root manifest at manifestPath.
	ReadWorkspace(manifestPath string) (*entities.Workspace, error)
}
