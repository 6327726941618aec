package emath

import "fmt"

// Vector3 represents a 3D vector of float32 components.
type Vector3 struct {
	X, Y, Z float32
}

// V3 is a convenience function to create a Vector3.
func V3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Zero returns (0, 0, 0).
func Vector3Zero() Vector3 {
	return Vector3{}
}

// Vector3One returns (1, 1, 1).
func Vector3One() Vector3 {
	return Vector3{X: 1, Y: 1, Z: 1}
}

// Add returns the sum of two vectors.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by s.
func (v Vector3) Mul(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by s.
// Dividing by zero is not guarded and yields Inf or NaN components.
func (v Vector3) Div(s float32) Vector3 {
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Neg returns the negation of the vector.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// AddInPlace adds w to v.
func (v *Vector3) AddInPlace(w Vector3) {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
}

// SubInPlace subtracts w from v.
func (v *Vector3) SubInPlace(w Vector3) {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
}

// MulInPlace scales v by s.
func (v *Vector3) MulInPlace(s float32) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// DivInPlace divides v by s without a zero check.
func (v *Vector3) DivInPlace(s float32) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

// Equal reports whether all components match exactly.
func (v Vector3) Equal(w Vector3) bool {
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector3) Approx(w Vector3, epsilon float32) bool {
	return Fabs(v.X-w.X) < epsilon && Fabs(v.Y-w.Y) < epsilon && Fabs(v.Z-w.Z) < epsilon
}

// IsZero returns true if the vector is the zero vector.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Component returns the component named by a.
func (v Vector3) Component(a Axis) (float32, error) {
	switch a {
	case AxisX:
		return v.X, nil
	case AxisY:
		return v.Y, nil
	case AxisZ:
		return v.Z, nil
	default:
		return 0, componentError(a, 3)
	}
}

// SetComponent sets the component named by a.
func (v *Vector3) SetComponent(a Axis, value float32) error {
	switch a {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	case AxisZ:
		v.Z = value
	default:
		return componentError(a, 3)
	}
	return nil
}

// Length returns the magnitude of the vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude, skipping the square root.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors.
func (v Vector3) Dot(w Vector3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Normalized returns a unit vector in the same direction.
// Returns the zero vector if v has zero length.
func (v Vector3) Normalized() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	return Vector3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Normalize scales v to unit length. A zero vector is left unchanged.
func (v *Vector3) Normalize() {
	length := v.Length()
	if length != 0 {
		v.DivInPlace(length)
	}
}

// Distance returns the distance between two points.
func (v Vector3) Distance(w Vector3) float32 {
	return v.Sub(w).Length()
}

// Lerp interpolates from v to w. t is clamped to [0, 1].
func (v Vector3) Lerp(w Vector3, t float32) Vector3 {
	t = Clamp(t, 0, 1)
	return v.Add(w.Sub(v).Mul(t))
}

// Transform helpers. They all write the same X, Y, Z fields and differ
// only in name.

// SetPosition overwrites v with pos.
func (v *Vector3) SetPosition(pos Vector3) {
	*v = pos
}

// Move adds ofs to v.
func (v *Vector3) Move(ofs Vector3) {
	v.AddInPlace(ofs)
}

// SetScale overwrites v with fac.
func (v *Vector3) SetScale(fac Vector3) {
	*v = fac
}

// SetOrigin overwrites v with ori.
func (v *Vector3) SetOrigin(ori Vector3) {
	*v = ori
}

// Scale multiplies v by fac component-wise.
func (v *Vector3) Scale(fac Vector3) {
	v.X *= fac.X
	v.Y *= fac.Y
	v.Z *= fac.Z
}

// String returns the components formatted as (x, y, z).
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
