package entities

// RegistryPackage references a versioned package in a registry.
type RegistryPackage struct {
	// Name overrides the package name used in the registry.
	Name *PackageName `json:"name,omitempty" yaml:"name,omitempty"`

	// Version is the version requirement of the package.
	Version VersionReq `json:"version" yaml:"version"`

	// Registry is the alias of the registry to fetch from.
	// Empty means the default registry.
	Registry string `json:"registry,omitempty" yaml:"registry,omitempty"`
}

// DependencyKind discriminates the two forms of a Dependency.
type DependencyKind int

const (
	// PackageDependency is a dependency on a registry package.
	PackageDependency DependencyKind = iota
	// LocalDependency is a dependency on a local file or directory.
	LocalDependency
)

func (k DependencyKind) String() string {
	if k == LocalDependency {
		return "local"
	}
	return "package"
}

// Dependency is either a registry package or a local path.
type Dependency struct {
	Kind    DependencyKind
	Path    string          // set for LocalDependency
	Package RegistryPackage // set for PackageDependency
}

// NewLocalDependency returns a dependency on the file or directory at path.
func NewLocalDependency(path string) Dependency {
	return Dependency{Kind: LocalDependency, Path: path}
}

// NewPackageDependency returns a dependency on a registry package.
func NewPackageDependency(pkg RegistryPackage) Dependency {
	return Dependency{Kind: PackageDependency, Package: pkg}
}

// IsLocal reports whether the dependency refers to a local path.
func (d Dependency) IsLocal() bool {
	return d.Kind == LocalDependency
}
