package emath

import "fmt"

// Vector4 represents a 4D vector, typically a point or direction in
// homogeneous coordinates.
type Vector4 struct {
	X, Y, Z, W float32
}

// V4 is a convenience function to create a Vector4.
func V4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4Zero returns (0, 0, 0, 0).
func Vector4Zero() Vector4 {
	return Vector4{}
}

// Vector4One returns (1, 1, 1, 1).
func Vector4One() Vector4 {
	return Vector4{X: 1, Y: 1, Z: 1, W: 1}
}

// Add returns the sum of two vectors.
func (v Vector4) Add(w Vector4) Vector4 {
	return Vector4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub returns the difference of two vectors.
func (v Vector4) Sub(w Vector4) Vector4 {
	return Vector4{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Mul returns the vector scaled by s.
func (v Vector4) Mul(s float32) Vector4 {
	return Vector4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Div returns the vector divided by s.
// Dividing by zero is not guarded and yields Inf or NaN components.
func (v Vector4) Div(s float32) Vector4 {
	return Vector4{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// Neg returns the negation of the vector.
func (v Vector4) Neg() Vector4 {
	return Vector4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// AddInPlace adds w to v.
func (v *Vector4) AddInPlace(w Vector4) {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
	v.W += w.W
}

// SubInPlace subtracts w from v.
func (v *Vector4) SubInPlace(w Vector4) {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
	v.W -= w.W
}

// MulInPlace scales v by s.
func (v *Vector4) MulInPlace(s float32) {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
}

// DivInPlace divides v by s without a zero check.
func (v *Vector4) DivInPlace(s float32) {
	v.X /= s
	v.Y /= s
	v.Z /= s
	v.W /= s
}

// Equal reports whether all components match exactly.
func (v Vector4) Equal(w Vector4) bool {
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z && v.W == w.W
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector4) Approx(w Vector4, epsilon float32) bool {
	return Fabs(v.X-w.X) < epsilon && Fabs(v.Y-w.Y) < epsilon &&
		Fabs(v.Z-w.Z) < epsilon && Fabs(v.W-w.W) < epsilon
}

// IsZero returns true if the vector is the zero vector.
func (v Vector4) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0 && v.W == 0
}

// Component returns the component named by a.
func (v Vector4) Component(a Axis) (float32, error) {
	switch a {
	case AxisX:
		return v.X, nil
	case AxisY:
		return v.Y, nil
	case AxisZ:
		return v.Z, nil
	case AxisW:
		return v.W, nil
	default:
		return 0, componentError(a, 4)
	}
}

// SetComponent sets the component named by a.
func (v *Vector4) SetComponent(a Axis, value float32) error {
	switch a {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	case AxisZ:
		v.Z = value
	case AxisW:
		v.W = value
	default:
		return componentError(a, 4)
	}
	return nil
}

// Length returns the magnitude of v.
func (v Vector4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of v.
func (v Vector4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Dot returns the dot product of v and w.
func (v Vector4) Dot(w Vector4) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Normalized returns a unit vector in the same direction, or the zero
// vector when v has zero length.
func (v Vector4) Normalized() Vector4 {
	length := v.Length()
	if length == 0 {
		return Vector4{}
	}
	return v.Div(length)
}

// Normalize scales v to unit length. A zero vector is left unchanged.
func (v *Vector4) Normalize() {
	length := v.Length()
	if length != 0 {
		v.DivInPlace(length)
	}
}

// Distance returns the distance between two points.
func (v Vector4) Distance(w Vector4) float32 {
	return v.Sub(w).Length()
}

// Lerp interpolates from v to w. t is clamped to [0, 1].
func (v Vector4) Lerp(w Vector4, t float32) Vector4 {
	t = Clamp(t, 0, 1)
	return v.Add(w.Sub(v).Mul(t))
}

// SetPosition overwrites v with pos.
func (v *Vector4) SetPosition(pos Vector4) {
	*v = pos
}

// Move adds ofs to v.
func (v *Vector4) Move(ofs Vector4) {
	v.AddInPlace(ofs)
}

// SetScale overwrites v with fac.
func (v *Vector4) SetScale(fac Vector4) {
	*v = fac
}

// SetOrigin overwrites v with ori.
func (v *Vector4) SetOrigin(ori Vector4) {
	*v = ori
}

// Scale multiplies v by fac component-wise.
func (v *Vector4) Scale(fac Vector4) {
	v.X *= fac.X
	v.Y *= fac.Y
	v.Z *= fac.Z
	v.W *= fac.W
}

// XYZ drops the w component.
func (v Vector4) XYZ() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// String returns the components formatted as (x, y, z, w).
func (v Vector4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
