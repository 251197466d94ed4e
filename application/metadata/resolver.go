package metadata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/sehnryr/cargo-component/application/decoder"
	"github.com/sehnryr/cargo-component/domain/entities"
	domainerrors "github.com/sehnryr/cargo-component/domain/errors"
	"github.com/sehnryr/cargo-component/domain/ports"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// resolverConfig holds configuration for the Resolver.
type resolverConfig struct {
	fs          afero.Fs
	logger      *slog.Logger
	reader      ports.ManifestReader
	concurrency int
}

func defaultResolverConfig() resolverConfig {
	return resolverConfig{
		fs:          afero.NewOsFs(),
		logger:      slog.Default(),
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// ResolverOption configures a Resolver.
type ResolverOption func(*resolverConfig)

// WithFilesystem sets the filesystem used to stat manifests and probe for the
// default `wit` directory. Default is the OS filesystem.
func WithFilesystem(fs afero.Fs) ResolverOption {
	return func(c *resolverConfig) {
		c.fs = fs
	}
}

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(c *resolverConfig) {
		c.logger = logger
	}
}

// WithManifestReader sets the reader used by ResolveManifest and ResolveAll.
func WithManifestReader(reader ports.ManifestReader) ResolverOption {
	return func(c *resolverConfig) {
		c.reader = reader
	}
}

// WithConcurrency bounds how many manifests ResolveAll resolves at once.
func WithConcurrency(n int) ResolverOption {
	return func(c *resolverConfig) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// Resolver builds ComponentMetadata for packages. It holds no per-package
// state and is safe for concurrent use.
type Resolver struct {
	config resolverConfig
}

// NewResolver creates a new Resolver with the given options.
func NewResolver(opts ...ResolverOption) *Resolver {
	cfg := defaultResolverConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Resolver{config: cfg}
}

// FromPackage creates component metadata for pkg using the OS filesystem.
func FromPackage(pkg *entities.Package) (*ComponentMetadata, error) {
	return NewResolver().Resolve(pkg)
}

// Resolve creates the component metadata of pkg. Either the whole metadata
// is returned or an error; relative paths in the section are anchored at
// the manifest directory before returning.
func (r *Resolver) Resolve(pkg *entities.Package) (*ComponentMetadata, error) {
	if pkg == nil {
		return nil, errors.New("package is required")
	}
	log := r.config.logger.With("manifest", pkg.ManifestPath)
	log.Debug("searching for component metadata")

	version, err := semver.StrictNewVersion(pkg.Version)
	if err != nil {
		return nil, &domainerrors.MalformedDocumentError{
			ManifestPath: pkg.ManifestPath,
			Err:          fmt.Errorf("invalid package version `%s`: %w", pkg.Version, err),
		}
	}

	section := entities.DefaultComponentSection()
	node, present := pkg.Metadata[entities.ComponentMetadataKey]
	if present {
		section, err = decoder.DecodeSection(node)
		if err != nil {
			return nil, &domainerrors.MalformedDocumentError{ManifestPath: pkg.ManifestPath, Err: err}
		}
	} else {
		log.Debug("manifest has no component metadata")
	}

	manifestDir, err := parentDir(pkg.ManifestPath)
	if err != nil {
		return nil, err
	}

	info, err := r.config.fs.Stat(pkg.ManifestPath)
	if err != nil {
		return nil, &domainerrors.FilesystemError{Op: "stat", Path: pkg.ManifestPath, Err: err}
	}

	NormalizePaths(&section, manifestDir)

	return &ComponentMetadata{
		Name:           pkg.Name,
		Version:        version,
		ManifestPath:   pkg.ManifestPath,
		ModifiedAt:     info.ModTime(),
		Section:        section,
		SectionPresent: present,
		fs:             r.config.fs,
	}, nil
}

// ResolveManifest reads the manifest at path and resolves it.
func (r *Resolver) ResolveManifest(path string) (*ComponentMetadata, error) {
	if r.config.reader == nil {
		return nil, errors.New("manifest reader is required")
	}
	pkg, err := r.config.reader.Read(path)
	if err != nil {
		return nil, err
	}
	return r.Resolve(pkg)
}

// ResolveAll resolves several manifests concurrently, e.g. the members of a
// workspace. Results keep the order of manifestPaths. The first failure
// cancels the remaining work and no results are returned.
func (r *Resolver) ResolveAll(ctx context.Context, manifestPaths []string) ([]*ComponentMetadata, error) {
	results := make([]*ComponentMetadata, len(manifestPaths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.concurrency)
	for i, path := range manifestPaths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			md, err := r.ResolveManifest(path)
			if err != nil {
				return err
			}
			results[i] = md
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// parentDir returns the directory holding the manifest.
func parentDir(manifestPath string) (string, error) {
	dir := filepath.Dir(manifestPath)
	if manifestPath == "" || dir == filepath.Clean(manifestPath) {
		return "", &domainerrors.FilesystemError{
			Op:   "locate parent directory of manifest",
			Path: manifestPath,
			Err:  errors.New("manifest path has no parent directory"),
		}
	}
	return dir, nil
}
