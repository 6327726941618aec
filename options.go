package emath

import "github.com/gogpu/gputypes"

// LayoutOption configures VertexLayout.
//
// Example:
//
//	// Per-instance transform rows starting at location 4
//	layout, err := emath.VertexLayout(rows,
//	    emath.WithStepMode(gputypes.VertexStepModeInstance),
//	    emath.WithShaderLocation(4),
//	)
type LayoutOption func(*layoutOptions)

// layoutOptions holds optional configuration for VertexLayout.
type layoutOptions struct {
	stepMode      gputypes.VertexStepMode
	firstLocation uint32
}

// defaultLayoutOptions returns per-vertex stepping starting at location 0.
func defaultLayoutOptions() layoutOptions {
	return layoutOptions{
		stepMode:      gputypes.VertexStepModeVertex,
		firstLocation: 0,
	}
}

// WithStepMode sets whether the buffer advances per vertex or per instance.
func WithStepMode(mode gputypes.VertexStepMode) LayoutOption {
	return func(o *layoutOptions) {
		o.stepMode = mode
	}
}

// WithShaderLocation sets the shader location of the first attribute.
// Following attributes take consecutive locations.
func WithShaderLocation(first uint32) LayoutOption {
	return func(o *layoutOptions) {
		o.firstLocation = first
	}
}
