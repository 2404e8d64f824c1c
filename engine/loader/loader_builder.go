package loader

import (
	"github.com/trevor-e-apple/time-game/common"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithWorkers is an option builder that sets the number of decode workers.
// When not specified, the default is the number of CPUs.
//
// Parameters:
//   - workers: the decode worker count
//
// Returns:
//   - LoaderBuilderOption: a function that applies the workers option to a loader
func WithWorkers(workers int) LoaderBuilderOption {
	return func(l *loader) {
		if workers > 0 {
			l.workers = workers
		}
	}
}

// WithTexture is an option builder that pre-populates the texture cache with
// already-decoded staging data, keyed by path.
//
// Parameters:
//   - path: the cache key for the texture
//   - staging: the decoded staging data to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the texture option to a loader
func WithTexture(path string, staging common.TextureStagingData) LoaderBuilderOption {
	return func(l *loader) {
		l.textureCache[path] = staging
	}
}
