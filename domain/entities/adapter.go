package entities

// AdapterInfo describes a compiled adapter module.
type AdapterInfo struct {
	// Path is the adapter file that was compiled.
	Path string `json:"path" yaml:"path"`
	// Imports are the imported functions as `module#name`.
	Imports []string `json:"imports" yaml:"imports"`
	// Exports are the exported function names.
	Exports []string `json:"exports" yaml:"exports"`
}
