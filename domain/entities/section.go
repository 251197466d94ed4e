package entities

import "net/url"

// ComponentMetadataKey is the key of the component section within a
// package's `[package.metadata]` table.
const ComponentMetadataKey = "component"

// ComponentSection represents the `package.metadata.component` section of a manifest.
type ComponentSection struct {
	// Package is the package name of the component, for publishing.
	Package *PackageName

	// Target is the world targeted by the component.
	Target Target

	// Adapter is the path to the WASI adapter to use; empty means the built-in one.
	Adapter string

	// Dependencies are the component dependencies.
	Dependencies map[PackageName]Dependency

	// Registries maps registry aliases to their URLs.
	Registries map[string]*url.URL

	// Bindings configures bindings generation.
	Bindings Bindings

	// Proxy selects the built-in `wasi:http/proxy` adapter.
	// It should only be set when Adapter is empty.
	Proxy bool
}

// DefaultComponentSection returns the section used when the manifest has none.
func DefaultComponentSection() ComponentSection {
	return ComponentSection{
		Target:       DefaultTarget(),
		Dependencies: map[PackageName]Dependency{},
		Registries:   map[string]*url.URL{},
		Bindings:     DefaultBindings(),
	}
}
