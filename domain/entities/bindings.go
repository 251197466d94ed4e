package entities

// Bindings configures bindings generation for a component.
// Field names in the manifest are the snake_case json names below.
type Bindings struct {
	// Format runs the formatter over generated bindings.
	Format bool `json:"format" yaml:"format"`

	// Ownership is the ownership model for generated types.
	Ownership Ownership `json:"ownership" yaml:"ownership" jsonschema:"enum=owning,enum=borrowing,enum=borrowing-duplicate-if-necessary"`

	// Derives are additional derives applied to generated types.
	Derives []string `json:"derives" yaml:"derives"`

	// StdFeature gates std-dependent features behind `cfg(feature = "std")`.
	StdFeature bool `json:"std_feature" yaml:"std_feature"`

	// RawStrings passes borrowed string arguments as byte slices.
	RawStrings bool `json:"raw_strings" yaml:"raw_strings"`

	// Skip names functions to skip generating bindings for.
	Skip []string `json:"skip" yaml:"skip"`

	// Stubs generates stub implementations for exported functions,
	// interfaces and resources.
	Stubs bool `json:"stubs" yaml:"stubs"`

	// ExportPrefix prefixes every export name.
	ExportPrefix *string `json:"export_prefix" yaml:"export_prefix"`

	// With remaps interface names to module names.
	With map[string]string `json:"with" yaml:"with"`

	// TypeSectionSuffix is appended to the name of the custom section
	// holding the component type.
	TypeSectionSuffix *string `json:"type_section_suffix" yaml:"type_section_suffix"`

	// DisableRunCtorsOnceWorkaround disables the workaround that keeps libc
	// constructors from running more than once.
	DisableRunCtorsOnceWorkaround bool `json:"disable_run_ctors_once_workaround" yaml:"disable_run_ctors_once_workaround"`

	// DefaultBindingsModule overrides the module the export macro refers to.
	DefaultBindingsModule *string `json:"default_bindings_module" yaml:"default_bindings_module"`

	// ExportMacroName renames the generated export macro.
	ExportMacroName *string `json:"export_macro_name" yaml:"export_macro_name"`

	// PubExportMacro makes the export macro public.
	PubExportMacro bool `json:"pub_export_macro" yaml:"pub_export_macro"`

	// GenerateUnusedTypes generates types not referenced by the world.
	GenerateUnusedTypes bool `json:"generate_unused_types" yaml:"generate_unused_types"`
}

// DefaultBindings returns the bindings configuration used for every field
// the manifest leaves unset.
func DefaultBindings() Bindings {
	return Bindings{
		Format:    true,
		Ownership: OwningOwnership,
		Derives:   []string{},
		Skip:      []string{},
		With:      map[string]string{},
	}
}
