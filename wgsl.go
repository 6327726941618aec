package emath

import "strings"

// WGSLTyper is implemented by types with a WGSL counterpart.
type WGSLTyper interface {
	WGSLType() string
}

// WGSLType returns "vec2<f32>".
func (Vector2) WGSLType() string {
	return "vec2<f32>"
}

// WGSLType returns "vec3<f32>".
func (Vector3) WGSLType() string {
	return "vec3<f32>"
}

// WGSLType returns "vec4<f32>".
func (Vector4) WGSLType() string {
	return "vec4<f32>"
}

// WGSLType returns "vec4<f32>".
func (Quaternion) WGSLType() string {
	return "vec4<f32>"
}

// WGSLType returns "mat2x2<f32>".
func (Matrix2x2) WGSLType() string {
	return "mat2x2<f32>"
}

// WGSLType returns "mat3x3<f32>".
func (Matrix3x3) WGSLType() string {
	return "mat3x3<f32>"
}

// WGSLType returns "mat4x4<f32>".
func (Matrix4x4) WGSLType() string {
	return "mat4x4<f32>"
}

// WGSLField is one member of a generated WGSL struct.
type WGSLField struct {
	Name string
	Type WGSLTyper
}

// WGSLStruct returns a WGSL struct declaration with the given members, so
// shader structs can be kept in step with Go vertex and uniform types.
//
// WGSL stores matrices column-major; upload Matrix4x4 values with
// ColumnMajor.
func WGSLStruct(name string, fields ...WGSLField) string {
	var b strings.Builder
	b.WriteString("struct ")
	b.WriteString(name)
	b.WriteString(" {\n")
	for _, f := range fields {
		b.WriteString("    ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Type.WGSLType())
		b.WriteString(",\n")
	}
	b.WriteString("}\n")
	return b.String()
}
