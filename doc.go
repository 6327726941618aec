// Package emath provides float32 vectors, matrices, quaternions and the
// scalar math they are built on, for real-time graphics and simulation code.
//
// # Overview
//
// The scalar core (Sqrt, Sin, Cos, Power, Round, ...) is implemented from
// first principles with fixed iteration and term counts, so execution cost
// is predictable and no platform transcendental function is needed:
//
//	v := emath.V3(3, 4, 0)
//	v.Length() // 5, via 10 Newton-Raphson steps
//
// Value types carry the algebra:
//   - Vectors: Vector2, Vector3, Vector4
//   - Matrices: Matrix2x2, Matrix3x3, Matrix4x4 (row-major, column vectors)
//   - Rotations: Quaternion
//
// Methods like Add or Mul return new values. Methods ending in InPlace and
// the Set* builders mutate their receiver.
//
// # Degenerate Input
//
// Every operation is total. Geometric helpers resolve degenerate input to a
// fallback value: normalizing a zero vector yields the zero vector, a
// zero quaternion normalizes and inverts to the identity, and inverting a
// singular matrix yields the identity matrix. Plain arithmetic is not
// guarded: Vector3.Div(0) produces Inf or NaN components.
//
// Two scalar functions keep deliberately unusual definitions:
//   - Mod returns the fractional part of a/b, so Mod(5, 2) == 0.5.
//   - Ceil always adds one to the truncated value, so Ceil(2) == 3.
//
// # Component Access
//
// Component and SetComponent take an Axis and return an error wrapping
// ErrComponentIndex for axes the type does not have. Matrix At and Set
// report ErrMatrixIndex the same way.
//
// # GPU Interop
//
// Vectors convert to golang.org/x/image/math/f32 and fixed types, report
// their gputypes vertex formats, and can describe a vertex buffer layout
// through VertexLayout. WGSLStruct emits matching shader declarations.
//
// # Concurrency
//
// The package holds no mutable state besides the logger, which is stored
// atomically. Values may be shared freely as long as a single value is not
// mutated by more than one goroutine at a time.
package emath
