// Package manifest reads package manifests from a filesystem.
package manifest

import (
	"github.com/sehnryr/cargo-component/domain/entities"
	domainerrors "github.com/sehnryr/cargo-component/domain/errors"
	"github.com/sehnryr/cargo-component/domain/ports"
	"github.com/sehnryr/cargo-component/infrastructure/parser"
	"github.com/spf13/afero"
)

// fileReaderConfig holds configuration for the FileReader.
type fileReaderConfig struct {
	fs     afero.Fs
	parser ports.ManifestParser
}

func defaultFileReaderConfig() fileReaderConfig {
	return fileReaderConfig{
		fs:     afero.NewOsFs(),
		parser: parser.NewTomlManifestParser(),
	}
}

// FileReaderOption configures a FileReader instance.
type FileReaderOption func(*fileReaderConfig)

// WithFilesystem sets the filesystem manifests are read from.
// Default is the OS filesystem.
func WithFilesystem(fs afero.Fs) FileReaderOption {
	return func(c *fileReaderConfig) {
		c.fs = fs
	}
}

// WithParser sets the manifest parser. Default parses Cargo.toml.
func WithParser(p ports.ManifestParser) FileReaderOption {
	return func(c *fileReaderConfig) {
		c.parser = p
	}
}

// FileReader implements ports.ManifestReader.
type FileReader struct {
	config fileReaderConfig
}

// NewFileReader creates a new FileReader with the given options.
func NewFileReader(opts ...FileReaderOption) ports.ManifestReader {
	cfg := defaultFileReaderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FileReader{config: cfg}
}

// Read reads and parses the manifest at manifestPath.
func (r *FileReader) Read(manifestPath string) (*entities.Package, error) {
	data, err := afero.ReadFile(r.config.fs, manifestPath)
	if err != nil {
		return nil, &domainerrors.FilesystemError{Op: "read", Path: manifestPath, Err: err}
	}
	return r.config.parser.Parse(manifestPath, data)
}

// ReadWorkspace reads the workspace table of the root manifest at manifestPath.
func (r *FileReader) ReadWorkspace(manifestPath string) (*entities.Workspace, error) {
	data, err := afero.ReadFile(r.config.fs, manifestPath)
	if err != nil {
		return nil, &domainerrors.FilesystemError{Op: "read", Path: manifestPath, Err: err}
	}
	return r.config.parser.ParseWorkspace(manifestPath, data)
}
