package emath

// Matrix2x2 is a 2x2 matrix in row-major order: M[row][col].
//
// The zero value is the zero matrix; use NewMatrix2x2 or Identity2x2 for
// the identity.
type Matrix2x2 struct {
	M [2][2]float32
}

// NewMatrix2x2 returns the identity matrix.
func NewMatrix2x2() Matrix2x2 {
	var m Matrix2x2
	m.SetIdentity()
	return m
}

// Mat2x2 builds a matrix from its elements, row by row.
func Mat2x2(m00, m01, m10, m11 float32) Matrix2x2 {
	return Matrix2x2{M: [2][2]float32{
		{m00, m01},
		{m10, m11},
	}}
}

// Identity2x2 returns the identity matrix.
func Identity2x2() Matrix2x2 {
	return NewMatrix2x2()
}

// Zero2x2 returns a matrix filled with zeros.
func Zero2x2() Matrix2x2 {
	return Matrix2x2{}
}

// Add returns m + o element-wise.
func (m Matrix2x2) Add(o Matrix2x2) Matrix2x2 {
	var r Matrix2x2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r.M[i][j] = m.M[i][j] + o.M[i][j]
		}
	}
	return r
}

// Sub returns m - o element-wise.
func (m Matrix2x2) Sub(o Matrix2x2) Matrix2x2 {
	var r Matrix2x2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r.M[i][j] = m.M[i][j] - o.M[i][j]
		}
	}
	return r
}

// MulScalar returns every element multiplied by s.
func (m Matrix2x2) MulScalar(s float32) Matrix2x2 {
	var r Matrix2x2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r.M[i][j] = m.M[i][j] * s
		}
	}
	return r
}

// Mul returns the matrix product m * o.
func (m Matrix2x2) Mul(o Matrix2x2) Matrix2x2 {
	r := Zero2x2()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				r.M[i][j] += m.M[i][k] * o.M[k][j]
			}
		}
	}
	return r
}

// MulVec returns m * v.
func (m Matrix2x2) MulVec(v Vector2) Vector2 {
	return Vector2{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y,
	}
}

// AddInPlace adds o to m.
func (m *Matrix2x2) AddInPlace(o Matrix2x2) {
	*m = m.Add(o)
}

// SubInPlace subtracts o from m.
func (m *Matrix2x2) SubInPlace(o Matrix2x2) {
	*m = m.Sub(o)
}

// MulScalarInPlace multiplies every element of m by s.
func (m *Matrix2x2) MulScalarInPlace(s float32) {
	*m = m.MulScalar(s)
}

// Equal reports whether every element matches exactly.
func (m Matrix2x2) Equal(o Matrix2x2) bool {
	return m.M == o.M
}

// Approx reports whether every element is within epsilon of o.
func (m Matrix2x2) Approx(o Matrix2x2, epsilon float32) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if Fabs(m.M[i][j]-o.M[i][j]) >= epsilon {
				return false
			}
		}
	}
	return true
}

// At returns the element at row, col.
func (m Matrix2x2) At(row, col int) (float32, error) {
	if err := checkCell(row, col, 2); err != nil {
		return 0, err
	}
	return m.M[row][col], nil
}

// Set stores value at row, col.
func (m *Matrix2x2) Set(row, col int, value float32) error {
	if err := checkCell(row, col, 2); err != nil {
		return err
	}
	m.M[row][col] = value
	return nil
}

// Determinant returns ad - bc.
func (m Matrix2x2) Determinant() float32 {
	return m.M[0][0]*m.M[1][1] - m.M[0][1]*m.M[1][0]
}

// Transpose returns the transposed matrix.
func (m Matrix2x2) Transpose() Matrix2x2 {
	return Mat2x2(
		m.M[0][0], m.M[1][0],
		m.M[0][1], m.M[1][1],
	)
}

// Inverse returns the inverse matrix.
// Returns the identity matrix if the determinant is exactly zero; callers
// that must tell the two apart should check Determinant first.
func (m Matrix2x2) Inverse() Matrix2x2 {
	det := m.Determinant()
	if det == 0 {
		logSingular("Matrix2x2")
		return Identity2x2()
	}
	invDet := 1 / det
	return Mat2x2(
		m.M[1][1]*invDet, -m.M[0][1]*invDet,
		-m.M[1][0]*invDet, m.M[0][0]*invDet,
	)
}

// SetIdentity overwrites m with the identity matrix.
func (m *Matrix2x2) SetIdentity() {
	m.M = [2][2]float32{
		{1, 0},
		{0, 1},
	}
}

// SetScale overwrites m with a scaling matrix.
func (m *Matrix2x2) SetScale(scaleX, scaleY float32) {
	m.M = [2][2]float32{
		{scaleX, 0},
		{0, scaleY},
	}
}

// SetRotation overwrites m with a counter-clockwise rotation by radians.
func (m *Matrix2x2) SetRotation(radians float32) {
	s, c := sinCos(radians)
	m.M = [2][2]float32{
		{c, -s},
		{s, c},
	}
}
