package entities

// Workspace is the `[workspace]` table of a root manifest.
type Workspace struct {
	// ManifestPath is the path to the root manifest.
	ManifestPath string
	// Members are member directory patterns, relative to the root manifest.
	Members []string
	// Exclude are member directories left out of the workspace.
	Exclude []string
	// HasPackage reports whether the root manifest is itself a package,
	// which makes it a member.
	HasPackage bool
}
