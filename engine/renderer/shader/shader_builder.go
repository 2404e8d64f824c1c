package shader

// ShaderBuilderOption is a functional option for configuring a shader.
type ShaderBuilderOption func(*shader)

// WithSourceDir sets the directory WGSL source files are loaded from,
// overriding the SHADER_SOURCE_DIR environment variable.
//
// Parameters:
//   - dir: the directory containing WGSL source files
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithSourceDir(dir string) ShaderBuilderOption {
	return func(s *shader) {
		s.sourceDir = dir
	}
}

// WithEntryPoint overrides the default entry point name for the shader's type.
//
// Parameters:
//   - entryPoint: the WGSL function name to use as the entry point
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = entryPoint
	}
}
