package bind_group_provider

// BufferWrite describes a single pending GPU buffer write targeting a
// specific binding on a BindGroupProvider at a given byte offset. The frame
// loop stages uniform updates as BufferWrites and the renderer flushes them
// in one batch before recording draw calls.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}

// NewBufferWrite stages a full-buffer write at offset 0 for binding 0, the
// common case for single-uniform providers such as cameras.
//
// Parameters:
//   - provider: the provider whose buffer receives the write
//   - data: the bytes to upload
//
// Returns:
//   - BufferWrite: the staged write
func NewBufferWrite(provider BindGroupProvider, data []byte) BufferWrite {
	return BufferWrite{
		Provider: provider,
		Binding:  0,
		Offset:   0,
		Data:     data,
	}
}
