package behavior

// TreeConfig bounds tree construction and per-frame tick execution.
// Violations surface as construction errors (MaxDepthExceeded) or are left
// to the embedder to enforce at the call site (MaxTicksPerFrame has no
// single natural enforcement point inside the engine itself — see DESIGN.md).
type TreeConfig struct {
	MaxDepth         int
	MaxTicksPerFrame int
}

// DefaultTreeConfig returns the conventional defaults: a max depth of 64 and
// a max of 10,000 ticks per frame.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		MaxDepth:         64,
		MaxTicksPerFrame: 10_000,
	}
}
