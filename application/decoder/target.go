package decoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sehnryr/cargo-component/domain/entities"
	domainerrors "github.com/sehnryr/cargo-component/domain/errors"
)

// TargetFormat is the shorthand grammar accepted for a string target.
const TargetFormat = "<package-name>[/<world>]@<version>"

// ParseTarget parses the shorthand `<package-name>[/<world>]@<version>`.
// The version suffix is mandatory; the result never names a registry or an
// override package name.
func ParseTarget(s string) (*entities.PackageTarget, error) {
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return nil, &domainerrors.InvalidTargetError{
			Input: s,
			Err:   fmt.Errorf("expected target format `%s`", TargetFormat),
		}
	}
	name, version := s[:at], s[at+1:]

	req, err := entities.ParseVersionReq(version)
	if err != nil {
		return nil, &domainerrors.InvalidTargetError{
			Input: s,
			Err:   fmt.Errorf("invalid target version `%s`: %w", version, err),
		}
	}

	var world string
	if slash := strings.Index(name, "/"); slash >= 0 {
		name, world = name[:slash], name[slash+1:]
		if err := validateWorld(world); err != nil {
			return nil, err
		}
	}

	pkg, err := parsePackageName(name)
	if err != nil {
		return nil, err
	}

	return &entities.PackageTarget{
		Name:      pkg,
		Package:   entities.RegistryPackage{Version: req},
		WorldName: world,
	}, nil
}

// TargetEntry is the flat table form of a target, holding every field either
// variant may use. Target projects it onto exactly one variant.
type TargetEntry struct {
	Package      *string        `json:"package,omitempty"`
	Version      *string        `json:"version,omitempty"`
	World        *string        `json:"world,omitempty"`
	Registry     *string        `json:"registry,omitempty"`
	Path         *string        `json:"path,omitempty"`
	Dependencies map[string]any `json:"dependencies,omitempty"`
}

// Target applies the exclusivity rules of the table form:
//   - `package` without `path` is a registry target and requires `version`;
//   - no `package` is a local target and forbids `version` and `registry`;
//   - `package` with `path` is always rejected.
func (e TargetEntry) Target() (entities.Target, error) {
	switch {
	case e.Path != nil && e.Package != nil:
		return nil, &domainerrors.ConflictingFieldsError{Fields: [2]string{"path", "package"}, Context: "target"}

	case e.Package != nil:
		if len(e.Dependencies) > 0 {
			return nil, &domainerrors.ConflictingFieldsError{Fields: [2]string{"dependencies", "package"}, Context: "target"}
		}

		name, err := parsePackageName(*e.Package)
		if err != nil {
			return nil, err
		}

		if e.Version == nil {
			return nil, &domainerrors.MissingFieldError{Field: "version", Context: "target"}
		}
		req, err := parseVersionReq(*e.Version)
		if err != nil {
			return nil, err
		}

		target := &entities.PackageTarget{
			Name:    name,
			Package: entities.RegistryPackage{Version: req},
		}
		if e.Registry != nil {
			target.Package.Registry = *e.Registry
		}
		if e.World != nil {
			if err := validateWorld(*e.World); err != nil {
				return nil, err
			}
			target.WorldName = *e.World
		}
		return target, nil

	default:
		if e.Version != nil {
			return nil, &domainerrors.ConflictingFieldsError{Fields: [2]string{"version", "path"}, Context: "target"}
		}
		if e.Registry != nil {
			return nil, &domainerrors.ConflictingFieldsError{Fields: [2]string{"registry", "path"}, Context: "target"}
		}

		target := &entities.LocalTarget{}
		if e.Path != nil {
			if *e.Path == "" {
				return nil, errors.New("target `path` cannot be empty")
			}
			target.Path = *e.Path
		}
		if e.World != nil {
			if err := validateWorld(*e.World); err != nil {
				return nil, err
			}
			target.WorldName = *e.World
		}

		deps, err := decodeDependencies(e.Dependencies, "target dependency")
		if err != nil {
			return nil, err
		}
		target.Deps = deps
		return target, nil
	}
}

// DecodeTarget decodes a target given either as a shorthand string or as a table.
func DecodeTarget(node any) (entities.Target, error) {
	switch v := node.(type) {
	case nil:
		return entities.DefaultTarget(), nil
	case string:
		target, err := ParseTarget(v)
		if err != nil {
			return nil, err
		}
		return target, nil
	case map[string]any:
		var entry TargetEntry
		if err := decodeStrict(v, &entry, "target"); err != nil {
			return nil, err
		}
		return entry.Target()
	default:
		return nil, fmt.Errorf("invalid type for `target`: expected a string or a table, found %T", node)
	}
}
