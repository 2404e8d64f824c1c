package shader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShaderSource = `@vertex
fn vs_main() -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 1.0, 1.0);
}
`

func writeTestShader(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "shader.wgsl")
	require.NoError(t, os.WriteFile(path, []byte(testShaderSource), 0o644))
	return dir
}

func TestNewShaderFromSourceDir(t *testing.T) {
	dir := writeTestShader(t)

	s, err := NewShader("main_vs", ShaderTypeVertex, "shader.wgsl", WithSourceDir(dir))
	require.NoError(t, err)
	assert.Equal(t, "main_vs", s.Key())
	assert.Equal(t, "vs_main", s.EntryPoint())
	assert.Equal(t, testShaderSource, s.Source())
	assert.Equal(t, ShaderTypeVertex, s.ShaderType())

	require.NotNil(t, s.Module())
	assert.Equal(t, "main_vs", s.Module().Label)
	require.NotNil(t, s.Module().WGSLDescriptor)
	assert.Equal(t, testShaderSource, s.Module().WGSLDescriptor.Code)
}

func TestNewShaderFragmentEntryPoint(t *testing.T) {
	dir := writeTestShader(t)

	s, err := NewShader("main_fs", ShaderTypeFragment, "shader.wgsl", WithSourceDir(dir))
	require.NoError(t, err)
	assert.Equal(t, "fs_main", s.EntryPoint())
}

func TestNewShaderFromEnv(t *testing.T) {
	dir := writeTestShader(t)
	t.Setenv(SourceDirEnv, dir)

	s, err := NewShader("env_vs", ShaderTypeVertex, "shader.wgsl")
	require.NoError(t, err)
	assert.Equal(t, testShaderSource, s.Source())
}

func TestNewShaderEntryPointOverride(t *testing.T) {
	dir := writeTestShader(t)

	s, err := NewShader("custom", ShaderTypeVertex, "shader.wgsl",
		WithSourceDir(dir), WithEntryPoint("vs_other"))
	require.NoError(t, err)
	assert.Equal(t, "vs_other", s.EntryPoint())
}

func TestNewShaderErrors(t *testing.T) {
	t.Setenv(SourceDirEnv, "")

	_, err := NewShader("no_file", ShaderTypeVertex, "")
	assert.Error(t, err)

	_, err = NewShader("no_dir", ShaderTypeVertex, "shader.wgsl")
	assert.Error(t, err)

	_, err = NewShader("missing", ShaderTypeVertex, "missing.wgsl", WithSourceDir(t.TempDir()))
	assert.Error(t, err)
}
