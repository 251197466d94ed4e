package wazero

import (
	"context"
	"fmt"
	"sort"

	"github.com/sehnryr/cargo-component/domain/entities"
	domainerrors "github.com/sehnryr/cargo-component/domain/errors"
	"github.com/sehnryr/cargo-component/domain/ports"
	"github.com/spf13/afero"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// VerifierConfig holds configuration for the AdapterVerifier.
type VerifierConfig struct {
	// FS is the filesystem adapters are read from. Default is the OS filesystem.
	FS afero.Fs

	// Features are the core WebAssembly features the adapter may use.
	// Default is api.CoreFeaturesV2.
	Features api.CoreFeatures
}

// VerifierOption configures the verifier.
type VerifierOption func(*VerifierConfig)

// WithFilesystem sets the filesystem adapters are read from.
func WithFilesystem(fs afero.Fs) VerifierOption {
	return func(c *VerifierConfig) {
		c.FS = fs
	}
}

// WithCoreFeatures sets the enabled core WebAssembly features.
func WithCoreFeatures(features api.CoreFeatures) VerifierOption {
	return func(c *VerifierConfig) {
		c.Features = features
	}
}

func defaultVerifierConfig() VerifierConfig {
	return VerifierConfig{
		FS:       afero.NewOsFs(),
		Features: api.CoreFeaturesV2,
	}
}

// AdapterVerifier implements ports.AdapterVerifier by compiling the adapter
// with an interpreter runtime. Nothing is instantiated.
type AdapterVerifier struct {
	config VerifierConfig
}

// NewAdapterVerifier creates a new AdapterVerifier with the given options.
func NewAdapterVerifier(opts ...VerifierOption) ports.AdapterVerifier {
	cfg := defaultVerifierConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &AdapterVerifier{config: cfg}
}

// Verify compiles the adapter at path and lists its imported and exported functions.
func (v *AdapterVerifier) Verify(ctx context.Context, path string) (*entities.AdapterInfo, error) {
	data, err := afero.ReadFile(v.config.FS, path)
	if err != nil {
		return nil, &domainerrors.FilesystemError{Op: "read adapter", Path: path, Err: err}
	}

	rtConfig := wazero.NewRuntimeConfigInterpreter().WithCoreFeatures(v.config.Features)
	runtime := wazero.NewRuntimeWithConfig(ctx, rtConfig)
	defer runtime.Close(ctx)

	compiled, err := runtime.CompileModule(ctx, data)
	if err != nil {
		return nil, &domainerrors.ConfigError{
			Field: "adapter",
			Err:   fmt.Errorf("`%s` is not a valid core WebAssembly module: %w", path, err),
		}
	}
	defer compiled.Close(ctx)

	info := &entities.AdapterInfo{
		Path:    path,
		Imports: []string{},
		Exports: []string{},
	}
	for _, def := range compiled.ImportedFunctions() {
		module, name, _ := def.Import()
		info.Imports = append(info.Imports, module+"#"+name)
	}
	for name := range compiled.ExportedFunctions() {
		info.Exports = append(info.Exports, name)
	}
	sort.Strings(info.Imports)
	sort.Strings(info.Exports)

	return info, nil
}
