package entities

// Package is a package record produced by a manifest reader.
type Package struct {
	// Name is the package name.
	Name string
	// Version is the package version as written in the manifest.
	Version string
	// ManifestPath is the path to the manifest file.
	ManifestPath string
	// Metadata is the open-ended `[package.metadata]` table.
	Metadata map[string]any
}
