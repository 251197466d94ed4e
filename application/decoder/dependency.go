package decoder

import (
	"errors"
	"fmt"

	"github.com/sehnryr/cargo-component/domain/entities"
	domainerrors "github.com/sehnryr/cargo-component/domain/errors"
)

// dependencyEntry is the table form of a dependency.
type dependencyEntry struct {
	Path     *string `json:"path,omitempty"`
	Package  *string `json:"package,omitempty"`
	Version  *string `json:"version,omitempty"`
	Registry *string `json:"registry,omitempty"`
}

// DecodeDependency decodes a dependency given either as a version requirement
// string or as a table with `path` or `version` (plus optional `package` and
// `registry`).
func DecodeDependency(node any) (entities.Dependency, error) {
	switch v := node.(type) {
	case string:
		req, err := parseVersionReq(v)
		if err != nil {
			return entities.Dependency{}, err
		}
		return entities.NewPackageDependency(entities.RegistryPackage{Version: req}), nil

	case map[string]any:
		var entry dependencyEntry
		if err := decodeStrict(v, &entry, "dependency"); err != nil {
			return entities.Dependency{}, err
		}
		return entry.dependency()

	default:
		return entities.Dependency{}, fmt.Errorf("expected a version string or a table, found %T", node)
	}
}

func (e dependencyEntry) dependency() (entities.Dependency, error) {
	if e.Path != nil {
		for _, other := range []struct {
			set  bool
			name string
		}{
			{e.Package != nil, "package"},
			{e.Version != nil, "version"},
			{e.Registry != nil, "registry"},
		} {
			if other.set {
				return entities.Dependency{}, &domainerrors.ConflictingFieldsError{
					Fields:  [2]string{"path", other.name},
					Context: "dependency",
				}
			}
		}
		if *e.Path == "" {
			return entities.Dependency{}, errors.New("dependency `path` cannot be empty")
		}
		return entities.NewLocalDependency(*e.Path), nil
	}

	if e.Version == nil {
		return entities.Dependency{}, &domainerrors.MissingFieldError{Field: "version", Context: "dependency"}
	}
	req, err := parseVersionReq(*e.Version)
	if err != nil {
		return entities.Dependency{}, err
	}

	pkg := entities.RegistryPackage{Version: req}
	if e.Package != nil {
		name, err := parsePackageName(*e.Package)
		if err != nil {
			return entities.Dependency{}, err
		}
		pkg.Name = &name
	}
	if e.Registry != nil {
		pkg.Registry = *e.Registry
	}
	return entities.NewPackageDependency(pkg), nil
}

// decodeDependencies decodes a package-name keyed dependency table.
// The result is never nil.
func decodeDependencies(raw map[string]any, context string) (map[entities.PackageName]entities.Dependency, error) {
	deps := make(map[entities.PackageName]entities.Dependency, len(raw))
	for _, key := range sortedKeys(raw) {
		name, err := parsePackageName(key)
		if err != nil {
			return nil, err
		}
		dep, err := DecodeDependency(raw[key])
		if err != nil {
			return nil, fmt.Errorf("%s `%s`: %w", context, key, err)
		}
		deps[name] = dep
	}
	return deps, nil
}
