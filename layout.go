package emath

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// ErrUnknownFormat is returned for vertex formats this package does not
// produce.
var ErrUnknownFormat = errors.New("emath: unsupported vertex format")

// VertexFormatter is implemented by types that can be stored as a vertex
// attribute.
type VertexFormatter interface {
	VertexFormat() gputypes.VertexFormat
}

// VertexFormat returns gputypes.VertexFormatFloat32x2.
func (Vector2) VertexFormat() gputypes.VertexFormat {
	return gputypes.VertexFormatFloat32x2
}

// VertexFormat returns gputypes.VertexFormatFloat32x3.
func (Vector3) VertexFormat() gputypes.VertexFormat {
	return gputypes.VertexFormatFloat32x3
}

// VertexFormat returns gputypes.VertexFormatFloat32x4.
func (Vector4) VertexFormat() gputypes.VertexFormat {
	return gputypes.VertexFormatFloat32x4
}

// VertexFormat returns gputypes.VertexFormatFloat32x4.
func (Quaternion) VertexFormat() gputypes.VertexFormat {
	return gputypes.VertexFormatFloat32x4
}

// FormatSize returns the byte size of a float32 vertex format.
func FormatSize(format gputypes.VertexFormat) (uint64, error) {
	switch format {
	case gputypes.VertexFormatFloat32:
		return 4, nil
	case gputypes.VertexFormatFloat32x2:
		return 8, nil
	case gputypes.VertexFormatFloat32x3:
		return 12, nil
	case gputypes.VertexFormatFloat32x4:
		return 16, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// VertexLayout packs one attribute per field, in order and without padding,
// and returns the resulting buffer layout.
//
// Example:
//
//	layout, err := emath.VertexLayout(
//	    []emath.VertexFormatter{emath.Vector3{}, emath.Vector2{}},
//	    emath.WithShaderLocation(1),
//	)
func VertexLayout(fields []VertexFormatter, opts ...LayoutOption) (gputypes.VertexBufferLayout, error) {
	o := defaultLayoutOptions()
	for _, opt := range opts {
		opt(&o)
	}

	attrs := make([]gputypes.VertexAttribute, 0, len(fields))
	var offset uint64
	for i, f := range fields {
		format := f.VertexFormat()
		size, err := FormatSize(format)
		if err != nil {
			return gputypes.VertexBufferLayout{}, fmt.Errorf("field %d: %w", i, err)
		}
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         format,
			Offset:         offset,
			ShaderLocation: o.firstLocation + uint32(i),
		})
		offset += size
	}

	return gputypes.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    o.stepMode,
		Attributes:  attrs,
	}, nil
}
