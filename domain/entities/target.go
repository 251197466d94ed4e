package entities

// Target defines the world of the component being developed.
// It is either a *PackageTarget or a *LocalTarget.
type Target interface {
	// Dependencies returns the dependencies needed to resolve the target.
	Dependencies() map[PackageName]Dependency

	// World returns the name of the targeted world, if any.
	World() (string, bool)

	isTarget()
}

// PackageTarget targets a world from a registry package.
type PackageTarget struct {
	// Name of the target package (e.g. `wasi:http`).
	Name PackageName
	// Package is the registry package being targeted.
	Package RegistryPackage
	// WorldName is the targeted world; empty selects the package's default world.
	WorldName string
}

// Dependencies returns the target itself as the single dependency, so
// resolution can treat it like any other registry package.
func (t *PackageTarget) Dependencies() map[PackageName]Dependency {
	return map[PackageName]Dependency{
		t.Name: NewPackageDependency(t.Package),
	}
}

// World returns the targeted world name.
func (t *PackageTarget) World() (string, bool) {
	return t.WorldName, t.WorldName != ""
}

func (*PackageTarget) isTarget() {}

// LocalTarget targets a world from a local wit document.
type LocalTarget struct {
	// Path to the wit document or directory; empty means the default `wit` directory.
	Path string
	// WorldName is the targeted world; empty selects the document's default world.
	WorldName string
	// Deps are the dependencies of the wit document.
	Deps map[PackageName]Dependency
}

// Dependencies returns the stored dependency map, not a copy.
func (t *LocalTarget) Dependencies() map[PackageName]Dependency {
	return t.Deps
}

// World returns the targeted world name.
func (t *LocalTarget) World() (string, bool) {
	return t.WorldName, t.WorldName != ""
}

func (*LocalTarget) isTarget() {}

// DefaultTarget returns the target used when the manifest names none:
// a local target with no path, no world and no dependencies.
func DefaultTarget() Target {
	return &LocalTarget{Deps: map[PackageName]Dependency{}}
}
