package emath

import (
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

// Conversions to and from golang.org/x/image/math/f32, whose matrices share
// the row-major layout used here.

// F32 returns v as an f32.Vec2.
func (v Vector2) F32() f32.Vec2 { return f32.Vec2{v.X, v.Y} }

// F32 returns v as an f32.Vec3.
func (v Vector3) F32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }

// F32 returns v as an f32.Vec4.
func (v Vector4) F32() f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

// F32 returns q as an f32.Vec4 in x, y, z, w order.
func (q Quaternion) F32() f32.Vec4 { return f32.Vec4{q.X, q.Y, q.Z, q.W} }

// Vector2FromF32 converts an f32.Vec2.
func Vector2FromF32(v f32.Vec2) Vector2 {
	return Vector2{X: v[0], Y: v[1]}
}

// Vector3FromF32 converts an f32.Vec3.
func Vector3FromF32(v f32.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Vector4FromF32 converts an f32.Vec4.
func Vector4FromF32(v f32.Vec4) Vector4 {
	return Vector4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// F32 returns m as an f32.Mat3, where element (r, c) is at index 3*r+c.
func (m Matrix3x3) F32() f32.Mat3 {
	var out f32.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = m.M[r][c]
		}
	}
	return out
}

// Matrix3x3FromF32 converts a row-major f32.Mat3.
func Matrix3x3FromF32(a f32.Mat3) Matrix3x3 {
	var m Matrix3x3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.M[r][c] = a[3*r+c]
		}
	}
	return m
}

// F32 returns m as an f32.Mat4, where element (r, c) is at index 4*r+c.
func (m Matrix4x4) F32() f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = m.M[r][c]
		}
	}
	return out
}

// Matrix4x4FromF32 converts a row-major f32.Mat4.
func Matrix4x4FromF32(a f32.Mat4) Matrix4x4 {
	var m Matrix4x4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.M[r][c] = a[4*r+c]
		}
	}
	return m
}

// Fixed returns v as a 26.6 fixed-point point, rounding each component
// half away from zero.
func (v Vector2) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(v.X) * 64)),
		Y: fixed.Int26_6(math.Round(float64(v.Y) * 64)),
	}
}

// Vector2FromFixed converts a 26.6 fixed-point point.
func Vector2FromFixed(p fixed.Point26_6) Vector2 {
	return Vector2{X: float32(p.X) / 64, Y: float32(p.Y) / 64}
}
