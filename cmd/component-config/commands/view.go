package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sehnryr/cargo-component/application/metadata"
	"github.com/sehnryr/cargo-component/domain/entities"
	"gopkg.in/yaml.v3"
)

// metadataView is the printable form of resolved component metadata.
type metadataView struct {
	Name           string                    `json:"name" yaml:"name"`
	Version        string                    `json:"version" yaml:"version"`
	ManifestPath   string                    `json:"manifest_path" yaml:"manifest_path"`
	ModifiedAt     time.Time                 `json:"modified_at" yaml:"modified_at"`
	SectionPresent bool                      `json:"section_present" yaml:"section_present"`
	Package        string                    `json:"package,omitempty" yaml:"package,omitempty"`
	Target         targetView                `json:"target" yaml:"target"`
	Adapter        string                    `json:"adapter,omitempty" yaml:"adapter,omitempty"`
	AdapterInfo    *entities.AdapterInfo     `json:"adapter_info,omitempty" yaml:"adapter_info,omitempty"`
	Proxy          bool                      `json:"proxy" yaml:"proxy"`
	Dependencies   map[string]dependencyView `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Registries     map[string]string         `json:"registries,omitempty" yaml:"registries,omitempty"`
	Bindings       entities.Bindings         `json:"bindings" yaml:"bindings"`
}

type targetView struct {
	Kind         string                    `json:"kind" yaml:"kind"`
	Package      string                    `json:"package,omitempty" yaml:"package,omitempty"`
	Path         string                    `json:"path,omitempty" yaml:"path,omitempty"`
	World        string                    `json:"world,omitempty" yaml:"world,omitempty"`
	Dependencies map[string]dependencyView `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

type dependencyView struct {
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Package  string `json:"package,omitempty" yaml:"package,omitempty"`
	Version  string `json:"version,omitempty" yaml:"version,omitempty"`
	Registry string `json:"registry,omitempty" yaml:"registry,omitempty"`
}

func newMetadataView(md *metadata.ComponentMetadata) metadataView {
	section := md.Section
	view := metadataView{
		Name:           md.Name,
		Version:        md.Version.String(),
		ManifestPath:   md.ManifestPath,
		ModifiedAt:     md.ModifiedAt,
		SectionPresent: md.SectionPresent,
		Adapter:        section.Adapter,
		Proxy:          section.Proxy,
		Dependencies:   newDependencyViews(section.Dependencies),
		Registries:     make(map[string]string, len(section.Registries)),
		Bindings:       section.Bindings,
		Target:         newTargetView(md),
	}
	if section.Package != nil {
		view.Package = section.Package.String()
	}
	for alias, u := range section.Registries {
		view.Registries[alias] = u.String()
	}
	return view
}

func newTargetView(md *metadata.ComponentMetadata) targetView {
	view := targetView{Kind: "local"}
	if name, ok := md.TargetPackage(); ok {
		view.Kind = "package"
		view.Package = name.String()
		if t, ok := md.Section.Target.(*entities.PackageTarget); ok {
			view.Package += "@" + t.Package.Version.String()
		}
	} else {
		view.Dependencies = newDependencyViews(md.Section.Target.Dependencies())
	}
	if path, ok := md.TargetPath(); ok {
		view.Path = path
	}
	if world, ok := md.TargetWorld(); ok {
		view.World = world
	}
	return view
}

func newDependencyViews(deps map[entities.PackageName]entities.Dependency) map[string]dependencyView {
	if len(deps) == 0 {
		return nil
	}
	views := make(map[string]dependencyView, len(deps))
	for name, dep := range deps {
		if dep.IsLocal() {
			views[name.String()] = dependencyView{Path: dep.Path}
			continue
		}
		v := dependencyView{
			Version:  dep.Package.Version.String(),
			Registry: dep.Package.Registry,
		}
		if dep.Package.Name != nil {
			v.Package = dep.Package.Name.String()
		}
		views[name.String()] = v
	}
	return views
}

// writeOutput encodes v as json or yaml.
func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q (expected json or yaml)", format)
	}
}

// sortedNames returns the string forms of the keys of deps in order.
func sortedNames(deps map[entities.PackageName]entities.Dependency) []string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name.String())
	}
	sort.Strings(names)
	return names
}
