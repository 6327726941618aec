package emath

// Matrix3x3 is a 3x3 matrix in row-major order: M[row][col].
//
// Besides general linear maps it doubles as a 2D homogeneous transform,
// see TransformVector2 and the Set* builders.
type Matrix3x3 struct {
	M [3][3]float32
}

// NewMatrix3x3 returns the identity matrix.
func NewMatrix3x3() Matrix3x3 {
	var m Matrix3x3
	m.SetIdentity()
	return m
}

// Mat3x3 builds a matrix from its elements, row by row.
func Mat3x3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float32) Matrix3x3 {
	return Matrix3x3{M: [3][3]float32{
		{m00, m01, m02},
		{m10, m11, m12},
		{m20, m21, m22},
	}}
}

// Identity3x3 returns the identity matrix.
func Identity3x3() Matrix3x3 {
	return Mat3x3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// Zero3x3 returns a matrix filled with zeros.
func Zero3x3() Matrix3x3 {
	return Matrix3x3{}
}

// Add returns the sum of two matrices.
func (m Matrix3x3) Add(o Matrix3x3) Matrix3x3 {
	var r Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[i][j] + o.M[i][j]
		}
	}
	return r
}

// Sub returns the difference of two matrices.
func (m Matrix3x3) Sub(o Matrix3x3) Matrix3x3 {
	var r Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[i][j] - o.M[i][j]
		}
	}
	return r
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix3x3) MulScalar(s float32) Matrix3x3 {
	var r Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[i][j] * s
		}
	}
	return r
}

// Mul returns the matrix product m * o.
func (m Matrix3x3) Mul(o Matrix3x3) Matrix3x3 {
	r := Zero3x3()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			for k := 0; k < 3; k++ {
				r.M[row][col] += m.M[row][k] * o.M[k][col]
			}
		}
	}
	return r
}

// MulVec3 returns m * v.
func (m Matrix3x3) MulVec3(v Vector3) Vector3 {
	return Vector3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// TransformVector2 applies m to the homogeneous point (x, y, 1).
// The result is divided by the resulting w unless w is zero.
func (m Matrix3x3) TransformVector2(v Vector2) Vector2 {
	x := m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]
	y := m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]
	w := m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]
	if w != 0 {
		x /= w
		y /= w
	}
	return Vector2{X: x, Y: y}
}

// AddInPlace adds o to m.
func (m *Matrix3x3) AddInPlace(o Matrix3x3) {
	*m = m.Add(o)
}

// SubInPlace subtracts o from m.
func (m *Matrix3x3) SubInPlace(o Matrix3x3) {
	*m = m.Sub(o)
}

// MulScalarInPlace multiplies every element of m by s.
func (m *Matrix3x3) MulScalarInPlace(s float32) {
	*m = m.MulScalar(s)
}

// Equal reports whether every element matches exactly.
func (m Matrix3x3) Equal(o Matrix3x3) bool {
	return m.M == o.M
}

// Approx reports whether every element is within epsilon of o.
func (m Matrix3x3) Approx(o Matrix3x3, epsilon float32) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if Fabs(m.M[i][j]-o.M[i][j]) >= epsilon {
				return false
			}
		}
	}
	return true
}

// At returns the element at row, col.
func (m Matrix3x3) At(row, col int) (float32, error) {
	if err := checkCell(row, col, 3); err != nil {
		return 0, err
	}
	return m.M[row][col], nil
}

// Set stores value at row, col.
func (m *Matrix3x3) Set(row, col int, value float32) error {
	if err := checkCell(row, col, 3); err != nil {
		return err
	}
	m.M[row][col] = value
	return nil
}

// Determinant expands along the first row.
func (m Matrix3x3) Determinant() float32 {
	return m.M[0][0]*(m.M[1][1]*m.M[2][2]-m.M[1][2]*m.M[2][1]) -
		m.M[0][1]*(m.M[1][0]*m.M[2][2]-m.M[1][2]*m.M[2][0]) +
		m.M[0][2]*(m.M[1][0]*m.M[2][1]-m.M[1][1]*m.M[2][0])
}

// Transpose returns the transposed matrix.
func (m Matrix3x3) Transpose() Matrix3x3 {
	return Mat3x3(
		m.M[0][0], m.M[1][0], m.M[2][0],
		m.M[0][1], m.M[1][1], m.M[2][1],
		m.M[0][2], m.M[1][2], m.M[2][2],
	)
}

// Cofactor returns the signed minor of the element at row, col.
// row and col must be in [0, 3).
func (m Matrix3x3) Cofactor(row, col int) float32 {
	var sub [2][2]float32
	si := 0
	for i := 0; i < 3; i++ {
		if i == row {
			continue
		}
		sj := 0
		for j := 0; j < 3; j++ {
			if j == col {
				continue
			}
			sub[si][sj] = m.M[i][j]
			sj++
		}
		si++
	}
	minor := sub[0][0]*sub[1][1] - sub[0][1]*sub[1][0]
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// CofactorMatrix returns the matrix of all cofactors.
func (m Matrix3x3) CofactorMatrix() Matrix3x3 {
	var r Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.Cofactor(i, j)
		}
	}
	return r
}

// Adjugate returns the transposed cofactor matrix.
func (m Matrix3x3) Adjugate() Matrix3x3 {
	return m.CofactorMatrix().Transpose()
}

// Inverse returns Adjugate() / Determinant().
// Returns the identity matrix if the determinant is exactly zero.
func (m Matrix3x3) Inverse() Matrix3x3 {
	det := m.Determinant()
	if det == 0 {
		logSingular("Matrix3x3")
		return Identity3x3()
	}
	return m.Adjugate().MulScalar(1 / det)
}

// SetIdentity overwrites m with the identity matrix.
func (m *Matrix3x3) SetIdentity() {
	*m = Identity3x3()
}

// SetScale overwrites m with a 2D homogeneous scaling matrix.
func (m *Matrix3x3) SetScale(scaleX, scaleY float32) {
	*m = Mat3x3(
		scaleX, 0, 0,
		0, scaleY, 0,
		0, 0, 1,
	)
}

// SetRotation overwrites m with a 2D homogeneous rotation by radians.
func (m *Matrix3x3) SetRotation(radians float32) {
	s, c := sinCos(radians)
	*m = Mat3x3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// SetTranslation overwrites m with a 2D homogeneous translation.
func (m *Matrix3x3) SetTranslation(tx, ty float32) {
	*m = Mat3x3(
		1, 0, tx,
		0, 1, ty,
		0, 0, 1,
	)
}
