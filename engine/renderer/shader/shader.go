package shader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cogentcore/webgpu/wgpu"
)

// SourceDirEnv is the environment variable consulted for the WGSL source
// directory when no explicit directory option is given.
const SourceDirEnv = "SHADER_SOURCE_DIR"

// ShaderType identifies which render pipeline stage a shader feeds.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

// shader is the implementation of the Shader interface.
// It holds the persistent shader data required for pipeline creation.
type shader struct {
	key        string
	source     string
	shaderType ShaderType
	entryPoint string
	module     *wgpu.ShaderModuleDescriptor

	sourceDir string
}

// Shader defines the interface for a loaded WGSL shader. It exposes the
// shader's unique key, source code, entry point, and module descriptor
// needed for pipeline creation.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// EntryPoint returns the entry point name for this shader.
	// Defaults to "vs_main" for vertex shaders and "fs_main" for fragment shaders.
	//
	// Returns:
	//   - string: the entry point name
	EntryPoint() string

	// Module returns the wgpu.ShaderModuleDescriptor for this shader, built
	// from the loaded source.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the shader module descriptor containing the WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor

	// ShaderType returns the type of the shader (vertex or fragment).
	//
	// Returns:
	//   - ShaderType: ShaderTypeVertex or ShaderTypeFragment
	ShaderType() ShaderType
}

var _ Shader = &shader{}

// NewShader loads a WGSL shader from fileName inside the configured source
// directory. The directory is taken from the WithSourceDir option when given,
// otherwise from the SHADER_SOURCE_DIR environment variable. A missing file
// or unset directory is a startup failure and is returned as an error.
//
// Parameters:
//   - key: a unique identifier for the shader, used for caching and lookups
//   - shaderType: the type of shader (vertex or fragment), selects the default entry point
//   - fileName: the WGSL file name to load, relative to the source directory
//   - options: functional options to configure the shader
//
// Returns:
//   - Shader: the loaded shader
//   - error: error if the source directory is unset or the file cannot be read
func NewShader(key string, shaderType ShaderType, fileName string, options ...ShaderBuilderOption) (Shader, error) {
	if fileName == "" {
		return nil, fmt.Errorf("shader %s: no source file name provided", key)
	}
	s := &shader{
		key:        key,
		shaderType: shaderType,
	}
	switch shaderType {
	case ShaderTypeVertex:
		s.entryPoint = "vs_main"
	case ShaderTypeFragment:
		s.entryPoint = "fs_main"
	}
	for _, option := range options {
		option(s)
	}

	dir := s.sourceDir
	if dir == "" {
		dir = os.Getenv(SourceDirEnv)
	}
	if dir == "" {
		return nil, fmt.Errorf("shader %s: no source directory configured and %s is unset", key, SourceDirEnv)
	}

	path := filepath.Join(dir, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shader %s: failed to read source file %q: %w", key, path, err)
	}
	s.source = string(data)
	s.module = &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}
	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}
