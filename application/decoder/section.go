package decoder

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/sehnryr/cargo-component/domain/entities"
)

// SectionDocument is the raw shape of the component section. Nested values
// whose form varies (target, dependencies, bindings) are kept generic and
// decoded in a second pass.
type SectionDocument struct {
	Package      *string           `json:"package,omitempty"`
	Target       any               `json:"target,omitempty"`
	Adapter      *string           `json:"adapter,omitempty"`
	Dependencies map[string]any    `json:"dependencies,omitempty"`
	Registries   map[string]string `json:"registries,omitempty"`
	Bindings     map[string]any    `json:"bindings,omitempty"`
	Proxy        bool              `json:"proxy,omitempty"`
}

// DecodeSection decodes the component section document. A nil node yields
// entities.DefaultComponentSection. Paths are returned as written.
func DecodeSection(node any) (entities.ComponentSection, error) {
	section := entities.DefaultComponentSection()
	if node == nil {
		return section, nil
	}

	var doc SectionDocument
	if err := decodeStrict(node, &doc, "component"); err != nil {
		return entities.ComponentSection{}, err
	}

	if doc.Package != nil {
		name, err := parsePackageName(*doc.Package)
		if err != nil {
			return entities.ComponentSection{}, err
		}
		section.Package = &name
	}

	if doc.Target != nil {
		target, err := DecodeTarget(doc.Target)
		if err != nil {
			return entities.ComponentSection{}, err
		}
		section.Target = target
	}

	if doc.Adapter != nil {
		if *doc.Adapter == "" {
			return entities.ComponentSection{}, errors.New("`adapter` cannot be empty")
		}
		section.Adapter = *doc.Adapter
	}

	deps, err := decodeDependencies(doc.Dependencies, "dependency")
	if err != nil {
		return entities.ComponentSection{}, err
	}
	section.Dependencies = deps

	for _, alias := range sortedKeys(doc.Registries) {
		u, err := parseRegistryURL(doc.Registries[alias])
		if err != nil {
			return entities.ComponentSection{}, fmt.Errorf("registry `%s`: %w", alias, err)
		}
		section.Registries[alias] = u
	}

	if doc.Bindings != nil {
		bindings, err := DecodeBindings(doc.Bindings)
		if err != nil {
			return entities.ComponentSection{}, err
		}
		section.Bindings = bindings
	}

	section.Proxy = doc.Proxy
	return section, nil
}

func parseRegistryURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("invalid URL `%s`: relative URL without a base", raw)
	}
	return u, nil
}
