package emath

import "fmt"

// Vector2 represents a 2D vector of float32 components.
type Vector2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vector2.
func V2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Zero returns (0, 0).
func Vector2Zero() Vector2 {
	return Vector2{}
}

// Vector2One returns (1, 1).
func Vector2One() Vector2 {
	return Vector2{X: 1, Y: 1}
}

// Add returns the sum of two vectors.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by s.
func (v Vector2) Mul(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by s.
// Dividing by zero is not guarded and yields Inf or NaN components.
func (v Vector2) Div(s float32) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// AddInPlace adds w to v.
func (v *Vector2) AddInPlace(w Vector2) {
	v.X += w.X
	v.Y += w.Y
}

// SubInPlace subtracts w from v.
func (v *Vector2) SubInPlace(w Vector2) {
	v.X -= w.X
	v.Y -= w.Y
}

// MulInPlace scales v by s.
func (v *Vector2) MulInPlace(s float32) {
	v.X *= s
	v.Y *= s
}

// DivInPlace divides v by s without a zero check.
func (v *Vector2) DivInPlace(s float32) {
	v.X /= s
	v.Y /= s
}

// Equal reports whether both components match exactly.
func (v Vector2) Equal(w Vector2) bool {
	return v.X == w.X && v.Y == w.Y
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector2) Approx(w Vector2, epsilon float32) bool {
	return Fabs(v.X-w.X) < epsilon && Fabs(v.Y-w.Y) < epsilon
}

// IsZero returns true if the vector is the zero vector.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Component returns the component named by a.
func (v Vector2) Component(a Axis) (float32, error) {
	switch a {
	case AxisX:
		return v.X, nil
	case AxisY:
		return v.Y, nil
	default:
		return 0, componentError(a, 2)
	}
}

// SetComponent sets the component named by a.
func (v *Vector2) SetComponent(a Axis, value float32) error {
	switch a {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	default:
		return componentError(a, 2)
	}
	return nil
}

// Length returns the magnitude of the vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude, skipping the square root.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Dot returns the dot product of two vectors.
func (v Vector2) Dot(w Vector2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vector2) Cross(w Vector2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Normalized returns a unit vector in the same direction.
// Returns the zero vector if v has zero length.
func (v Vector2) Normalized() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

// Normalize scales v to unit length. A zero vector is left unchanged.
func (v *Vector2) Normalize() {
	length := v.Length()
	if length != 0 {
		v.X /= length
		v.Y /= length
	}
}

// Distance returns the distance between two points.
func (v Vector2) Distance(w Vector2) float32 {
	return v.Sub(w).Length()
}

// Lerp interpolates from v to w. t is clamped to [0, 1].
func (v Vector2) Lerp(w Vector2, t float32) Vector2 {
	t = Clamp(t, 0, 1)
	return v.Add(w.Sub(v).Mul(t))
}

// SetPosition copies position into v.
func (v *Vector2) SetPosition(position Vector2) {
	*v = position
}

// Move offsets v by ofs.
func (v *Vector2) Move(ofs Vector2) {
	v.AddInPlace(ofs)
}

// SetScale copies fac into v.
func (v *Vector2) SetScale(fac Vector2) {
	*v = fac
}

// Scale multiplies v by fac component-wise.
func (v *Vector2) Scale(fac Vector2) {
	v.X *= fac.X
	v.Y *= fac.Y
}

// SetOrigin copies origin into v.
func (v *Vector2) SetOrigin(origin Vector2) {
	*v = origin
}

// String returns the components formatted as (x, y).
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
