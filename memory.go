package cmem

// RawMemory turns a bare numeric address into a bounded byte view. It is the
// boundary to the native layer: the core cannot validate addresses itself, so
// implementations must fail loudly for addresses they do not control.
//
// The returned Buffer aliases the addressed storage where the implementation
// can arrange it; writes through the buffer are then visible at the address.
type RawMemory interface {
	Window(addr uint64, length uint32) (*Buffer, error)
}
