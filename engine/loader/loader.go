package loader

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/trevor-e-apple/time-game/common"
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	textureCache map[string]common.TextureStagingData

	// pool manages a bounded set of reusable goroutines for decoding image
	// files off the main thread. Workers persist across LoadAll calls.
	pool    worker.DynamicWorkerPool
	workers int
}

// Loader decodes texture assets to RGBA staging data and caches the results by
// file path. Batch loads decode concurrently on a worker pool so startup is not
// bound by the slowest single file.
type Loader interface {
	// Load decodes a single texture file and caches the result.
	// If the texture is already cached (by file path), the cached version is returned.
	//
	// Parameters:
	//   - path: the file path to the texture image (PNG or JPEG)
	//
	// Returns:
	//   - common.TextureStagingData: the decoded RGBA pixel data and dimensions
	//   - error: error if the file cannot be read or decoded
	Load(path string) (common.TextureStagingData, error)

	// LoadAll decodes a set of texture files concurrently and caches the results.
	// Already-cached paths are skipped. If any file fails, the first error is
	// returned after all decodes finish; successfully decoded files stay cached.
	//
	// Parameters:
	//   - paths: the file paths to decode
	//
	// Returns:
	//   - error: the first decode error encountered, or nil
	LoadAll(paths ...string) error

	// Texture retrieves a cached texture by path without decoding.
	//
	// Parameters:
	//   - path: the file path the texture was loaded from
	//
	// Returns:
	//   - common.TextureStagingData: the cached staging data
	//   - bool: true if the texture is cached
	Texture(path string) (common.TextureStagingData, bool)

	// Evict removes a texture from the cache, freeing its pixel data.
	//
	// Parameters:
	//   - path: the file path the texture was loaded from
	Evict(path string)
}

var _ Loader = &loader{}

// NewLoader creates a texture Loader. The decode worker count defaults to the
// number of CPUs.
//
// Parameters:
//   - options: variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new Loader instance
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		textureCache: make(map[string]common.TextureStagingData),
		workers:      runtime.NumCPU(),
	}
	for _, option := range options {
		option(l)
	}

	// Initialize the pool after options so WithWorkers can override the default.
	// Queue size of 64 accommodates typical asset batches with headroom.
	l.pool = worker.NewDynamicWorkerPool(l.workers, 64, 1*time.Second)

	return l
}

func (l *loader) Load(path string) (common.TextureStagingData, error) {
	l.mu.RLock()
	if cached, ok := l.textureCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	staging, err := decodeTexture(path)
	if err != nil {
		return common.TextureStagingData{}, err
	}

	l.mu.Lock()
	l.textureCache[path] = staging
	l.mu.Unlock()

	return staging, nil
}

func (l *loader) LoadAll(paths ...string) error {
	pending := make([]string, 0, len(paths))
	l.mu.RLock()
	for _, path := range paths {
		if _, ok := l.textureCache[path]; !ok {
			pending = append(pending, path)
		}
	}
	l.mu.RUnlock()

	if len(pending) == 0 {
		return nil
	}

	// Submit one decode task per file. A WaitGroup provides the completion
	// barrier since pool workers are reused across calls.
	var wg sync.WaitGroup
	errs := make([]error, len(pending))
	for i, path := range pending {
		wg.Add(1)
		idx, p := i, path
		l.pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()

				staging, err := decodeTexture(p)
				if err != nil {
					errs[idx] = err
					return nil, err
				}

				l.mu.Lock()
				l.textureCache[p] = staging
				l.mu.Unlock()
				return nil, nil
			},
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) Texture(path string) (common.TextureStagingData, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	staging, ok := l.textureCache[path]
	return staging, ok
}

func (l *loader) Evict(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.textureCache, path)
}

// decodeTexture reads and decodes an image file to RGBA staging data.
func decodeTexture(path string) (common.TextureStagingData, error) {
	tex := common.ImportedTexture{Name: path, Path: path}
	pixels, width, height, err := tex.Decode()
	if err != nil {
		return common.TextureStagingData{}, fmt.Errorf("failed to load texture %s: %w", path, err)
	}
	return common.TextureStagingData{
		Pixels: pixels,
		Width:  width,
		Height: height,
	}, nil
}
