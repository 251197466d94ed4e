package schema

import (
	"github.com/invopop/jsonschema"
	"github.com/sehnryr/cargo-component/application/decoder"
	"github.com/sehnryr/cargo-component/domain/entities"
)

// SectionSchemaID is the $id of the component section schema.
const SectionSchemaID = "https://github.com/sehnryr/cargo-component/component-section.schema.json"

const (
	wordPattern        = `[a-z][a-z0-9]*`
	idPattern          = wordPattern + `(-` + wordPattern + `)*`
	worldWordPattern   = `([a-z][a-z0-9]*|[A-Z][A-Z0-9]*)`
	worldPattern       = worldWordPattern + `(-` + worldWordPattern + `)*`
	packageNamePattern = idPattern + `:` + idPattern
)

// SectionSchema returns the JSON Schema of the `package.metadata.component`
// table. The decoder stays authoritative; the schema exists for editors and
// for linting every violation at once.
func SectionSchema() *jsonschema.Schema {
	r := newReflector()

	s := r.Reflect(&decoder.SectionDocument{})
	s.ID = SectionSchemaID
	s.Title = "Component metadata"
	s.Description = "The [package.metadata.component] table of a component package manifest."

	s.Properties.Set("package", packageNameSchema("Package name of the component, for publishing."))
	s.Properties.Set("target", targetSchema(r))
	s.Properties.Set("adapter", &jsonschema.Schema{
		Type:        "string",
		MinLength:   uint64Ptr(1),
		Description: "Path to the WASI adapter, relative to the manifest.",
	})
	s.Properties.Set("dependencies", dependenciesSchema("Component dependencies."))
	s.Properties.Set("registries", &jsonschema.Schema{
		Type:                 "object",
		Description:          "Registry aliases and their URLs.",
		AdditionalProperties: &jsonschema.Schema{Type: "string", Format: "uri"},
	})
	s.Properties.Set("bindings", nested(r.Reflect(&entities.Bindings{})))
	s.Properties.Set("proxy", &jsonschema.Schema{
		Type:        "boolean",
		Description: "Use the built-in wasi:http/proxy adapter; only valid without `adapter`.",
	})
	return s
}

// SectionSchemaJSON returns SectionSchema encoded as indented JSON.
func SectionSchemaJSON() ([]byte, error) {
	return marshalSchema(SectionSchema())
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		ExpandedStruct:             true,
		DoNotReference:             true,
		Anonymous:                  true,
		RequiredFromJSONSchemaTags: true,
	}
}

// nested strips the document-level keywords of a reflected schema so it can
// be embedded as a property.
func nested(s *jsonschema.Schema) *jsonschema.Schema {
	s.Version = ""
	s.ID = ""
	s.Definitions = nil
	return s
}

func targetSchema(r *jsonschema.Reflector) *jsonschema.Schema {
	table := nested(r.Reflect(&decoder.TargetEntry{}))
	table.Properties.Set("package", packageNameSchema("Registry package defining the target world."))
	table.Properties.Set("world", &jsonschema.Schema{Type: "string", Pattern: "^" + worldPattern + "$"})
	table.Properties.Set("path", &jsonschema.Schema{Type: "string", MinLength: uint64Ptr(1)})
	table.Properties.Set("dependencies", dependenciesSchema("Dependencies of the local wit document."))
	table.If = &jsonschema.Schema{Required: []string{"package"}}
	table.Then = &jsonschema.Schema{
		Required: []string{"version"},
		Not: &jsonschema.Schema{AnyOf: []*jsonschema.Schema{
			{Required: []string{"path"}},
			{Required: []string{"dependencies"}},
		}},
	}
	table.Else = &jsonschema.Schema{
		Not: &jsonschema.Schema{AnyOf: []*jsonschema.Schema{
			{Required: []string{"version"}},
			{Required: []string{"registry"}},
		}},
	}

	return &jsonschema.Schema{
		Description: "The world targeted by the component.",
		OneOf: []*jsonschema.Schema{
			{
				Type:        "string",
				Pattern:     "^" + packageNamePattern + "(/" + worldPattern + ")?@.+$",
				Description: "Shorthand `" + decoder.TargetFormat + "`.",
			},
			table,
		},
	}
}

func packageNameSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     "^" + packageNamePattern + "$",
		Description: description,
	}
}

func dependenciesSchema(description string) *jsonschema.Schema {
	local := &jsonschema.Schema{
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		Required:             []string{"path"},
		AdditionalProperties: jsonschema.FalseSchema,
	}
	local.Properties.Set("path", &jsonschema.Schema{Type: "string", MinLength: uint64Ptr(1)})

	registry := &jsonschema.Schema{
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		Required:             []string{"version"},
		AdditionalProperties: jsonschema.FalseSchema,
	}
	registry.Properties.Set("version", &jsonschema.Schema{Type: "string", MinLength: uint64Ptr(1)})
	registry.Properties.Set("package", packageNameSchema("Overrides the package name in the registry."))
	registry.Properties.Set("registry", &jsonschema.Schema{Type: "string"})

	return &jsonschema.Schema{
		Type:          "object",
		Description:   description,
		PropertyNames: &jsonschema.Schema{Pattern: "^" + packageNamePattern + "$"},
		AdditionalProperties: &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{
				{Type: "string", MinLength: uint64Ptr(1)},
				local,
				registry,
			},
		},
	}
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}
