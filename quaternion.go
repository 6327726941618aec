package emath

import "fmt"

// Quaternion represents a rotation as x, y, z (vector part) and w (real part).
//
// The identity rotation is (0, 0, 0, 1). Use NewQuaternion or
// QuaternionIdentity rather than the zero value.
type Quaternion struct {
	X, Y, Z, W float32
}

// NewQuaternion returns the identity quaternion.
func NewQuaternion() Quaternion {
	return QuaternionIdentity()
}

// Quat is a convenience function to create a Quaternion.
func Quat(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// QuaternionIdentity returns (0, 0, 0, 1).
func QuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// FromAxisAngle returns the rotation of angle radians about axis.
// axis must already be unit length; it is not normalized here.
func FromAxisAngle(axis Vector3, angle float32) Quaternion {
	s, c := sinCos(angle * 0.5)
	return Quaternion{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// Mul returns the Hamilton product q * o: the rotation o followed by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// MulInPlace sets q to q * o.
func (q *Quaternion) MulInPlace(o Quaternion) {
	*q = q.Mul(o)
}

// Equal reports whether all components match exactly.
func (q Quaternion) Equal(o Quaternion) bool {
	return q == o
}

// Approx reports whether all components are within epsilon of o.
func (q Quaternion) Approx(o Quaternion, epsilon float32) bool {
	return Fabs(q.X-o.X) < epsilon && Fabs(q.Y-o.Y) < epsilon &&
		Fabs(q.Z-o.Z) < epsilon && Fabs(q.W-o.W) < epsilon
}

// Component returns the component named by a.
func (q Quaternion) Component(a Axis) (float32, error) {
	switch a {
	case AxisX:
		return q.X, nil
	case AxisY:
		return q.Y, nil
	case AxisZ:
		return q.Z, nil
	case AxisW:
		return q.W, nil
	default:
		return 0, componentError(a, 4)
	}
}

// SetComponent stores value in the component named by a.
func (q *Quaternion) SetComponent(a Axis, value float32) error {
	switch a {
	case AxisX:
		q.X = value
	case AxisY:
		q.Y = value
	case AxisZ:
		q.Z = value
	case AxisW:
		q.W = value
	default:
		return componentError(a, 4)
	}
	return nil
}

// Dot returns the dot product of q and o.
func (q Quaternion) Dot(o Quaternion) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// LengthSquared returns the squared magnitude of q.
func (q Quaternion) LengthSquared() float32 {
	return q.Dot(q)
}

// Length returns the magnitude of q.
func (q Quaternion) Length() float32 {
	return Sqrt(q.LengthSquared())
}

// Normalize scales q to unit length. A zero quaternion is left unchanged.
func (q *Quaternion) Normalize() {
	length := q.Length()
	if length == 0 {
		return
	}
	q.X /= length
	q.Y /= length
	q.Z /= length
	q.W /= length
}

// Normalized returns a unit-length copy of q, or the identity when q has
// zero length.
func (q Quaternion) Normalized() Quaternion {
	length := q.Length()
	if length == 0 {
		return QuaternionIdentity()
	}
	return Quaternion{X: q.X / length, Y: q.Y / length, Z: q.Z / length, W: q.W / length}
}

// Conjugate negates the vector part.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns Conjugate() / |q|², or the identity when |q|² is zero.
func (q Quaternion) Inverse() Quaternion {
	lenSq := q.LengthSquared()
	if lenSq == 0 {
		return QuaternionIdentity()
	}
	return Quaternion{X: -q.X / lenSq, Y: -q.Y / lenSq, Z: -q.Z / lenSq, W: q.W / lenSq}
}

// Rotate returns v rotated by q, computed as q * (v, 0) * q⁻¹.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	p := Quaternion{X: v.X, Y: v.Y, Z: v.Z}
	r := q.Mul(p).Mul(q.Inverse())
	return Vector3{X: r.X, Y: r.Y, Z: r.Z}
}

// QuaternionLerp interpolates component-wise from a to b and normalizes the
// result. t is clamped to [0, 1]. This is not a spherical interpolation.
func QuaternionLerp(a, b Quaternion, t float32) Quaternion {
	t = Clamp(t, 0, 1)
	return Quaternion{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
	}.Normalized()
}

// Matrix3x3 returns the rotation matrix of a unit quaternion.
func (q Quaternion) Matrix3x3() Matrix3x3 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return Mat3x3(
		1-2*(yy+zz), 2*(xy-wz), 2*(xz+wy),
		2*(xy+wz), 1-2*(xx+zz), 2*(yz-wx),
		2*(xz-wy), 2*(yz+wx), 1-2*(xx+yy),
	)
}

// Matrix4x4 returns the rotation matrix of a unit quaternion with no
// translation.
func (q Quaternion) Matrix4x4() Matrix4x4 {
	r := q.Matrix3x3()
	m := Identity4x4()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.M[i][j] = r.M[i][j]
		}
	}
	return m
}

// String returns the components formatted as (x, y, z, w).
func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}
