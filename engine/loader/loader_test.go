package loader

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trevor-e-apple/time-game/common"
)

// writeTestPNG writes a small solid-color PNG and returns its path.
func writeTestPNG(t *testing.T, name string, width, height int, c color.RGBA) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))

	return path
}

func TestLoaderLoad(t *testing.T) {
	l := NewLoader(WithWorkers(2))
	path := writeTestPNG(t, "red.png", 4, 2, color.RGBA{R: 255, A: 255})

	staging, err := l.Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(4), staging.Width)
	assert.Equal(t, uint32(2), staging.Height)
	require.Len(t, staging.Pixels, 4*2*4)
	assert.Equal(t, byte(255), staging.Pixels[0])
	assert.Equal(t, byte(0), staging.Pixels[1])

	cached, ok := l.Texture(path)
	require.True(t, ok)
	assert.Equal(t, staging.Width, cached.Width)
}

func TestLoaderLoadMissingFile(t *testing.T) {
	l := NewLoader(WithWorkers(1))

	_, err := l.Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	_, ok := l.Texture("missing.png")
	assert.False(t, ok)
}

func TestLoaderLoadAll(t *testing.T) {
	l := NewLoader(WithWorkers(4))

	paths := []string{
		writeTestPNG(t, "a.png", 2, 2, color.RGBA{R: 255, A: 255}),
		writeTestPNG(t, "b.png", 3, 3, color.RGBA{G: 255, A: 255}),
		writeTestPNG(t, "c.png", 5, 1, color.RGBA{B: 255, A: 255}),
	}

	require.NoError(t, l.LoadAll(paths...))

	for _, path := range paths {
		_, ok := l.Texture(path)
		assert.True(t, ok, "expected %s to be cached", path)
	}
}

func TestLoaderLoadAllPartialFailure(t *testing.T) {
	l := NewLoader(WithWorkers(2))

	good := writeTestPNG(t, "good.png", 2, 2, color.RGBA{A: 255})
	bad := filepath.Join(t.TempDir(), "bad.png")

	err := l.LoadAll(good, bad)
	assert.Error(t, err)

	// The good file still lands in the cache.
	_, ok := l.Texture(good)
	assert.True(t, ok)
}

func TestLoaderEvict(t *testing.T) {
	path := writeTestPNG(t, "tex.png", 1, 1, color.RGBA{A: 255})
	l := NewLoader()

	_, err := l.Load(path)
	require.NoError(t, err)

	l.Evict(path)
	_, ok := l.Texture(path)
	assert.False(t, ok)
}

func TestLoaderWithTextureOption(t *testing.T) {
	staging := common.TextureStagingData{Pixels: []byte{1, 2, 3, 4}, Width: 1, Height: 1}
	l := NewLoader(WithTexture("preloaded", staging))

	cached, ok := l.Texture("preloaded")
	require.True(t, ok)
	assert.Equal(t, staging.Pixels, cached.Pixels)
}
