package ports

import (
	"context"

	"github.com/sehnryr/cargo-component/domain/entities"
)

// AdapterVerifier checks that a configured adapter is a loadable core module.
type AdapterVerifier interface {
	// Verify compiles the adapter at path and describes its imports and exports.
	Verify(ctx context.Context, path string) (*entities.AdapterInfo, error)
}
