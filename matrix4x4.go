package emath

// Matrix4x4 is a 4x4 matrix in row-major order: M[row][col].
//
// Transforms treat vectors as columns, so translation lives in the last
// column (M[0][3], M[1][3], M[2][3]).
type Matrix4x4 struct {
	M [4][4]float32
}

// NewMatrix4x4 returns the identity matrix.
func NewMatrix4x4() Matrix4x4 {
	var m Matrix4x4
	m.SetIdentity()
	return m
}

// Mat4x4 builds a matrix from its elements, row by row.
func Mat4x4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) Matrix4x4 {
	return Matrix4x4{M: [4][4]float32{
		{m00, m01, m02, m03},
		{m10, m11, m12, m13},
		{m20, m21, m22, m23},
		{m30, m31, m32, m33},
	}}
}

// Identity4x4 returns the identity matrix.
func Identity4x4() Matrix4x4 {
	return Mat4x4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Zero4x4 returns a matrix filled with zeros.
func Zero4x4() Matrix4x4 {
	return Matrix4x4{}
}

// Add returns the sum of two matrices.
func (m Matrix4x4) Add(o Matrix4x4) Matrix4x4 {
	var r Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = m.M[i][j] + o.M[i][j]
		}
	}
	return r
}

// Sub returns the difference of two matrices.
func (m Matrix4x4) Sub(o Matrix4x4) Matrix4x4 {
	var r Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = m.M[i][j] - o.M[i][j]
		}
	}
	return r
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix4x4) MulScalar(s float32) Matrix4x4 {
	var r Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = m.M[i][j] * s
		}
	}
	return r
}

// Mul returns the matrix product m * o, so o is applied first.
func (m Matrix4x4) Mul(o Matrix4x4) Matrix4x4 {
	r := Zero4x4()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			for k := 0; k < 4; k++ {
				r.M[row][col] += m.M[row][k] * o.M[k][col]
			}
		}
	}
	return r
}

// MulVec4 returns m * v with no perspective division.
func (m Matrix4x4) MulVec4(v Vector4) Vector4 {
	return Vector4{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z + m.M[0][3]*v.W,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z + m.M[1][3]*v.W,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z + m.M[2][3]*v.W,
		W: m.M[3][0]*v.X + m.M[3][1]*v.Y + m.M[3][2]*v.Z + m.M[3][3]*v.W,
	}
}

// TransformVector3 applies m to the homogeneous point (x, y, z, 1).
// The result is divided by the resulting w unless w is zero.
func (m Matrix4x4) TransformVector3(v Vector3) Vector3 {
	x := m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z + m.M[0][3]
	y := m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z + m.M[1][3]
	z := m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z + m.M[2][3]
	w := m.M[3][0]*v.X + m.M[3][1]*v.Y + m.M[3][2]*v.Z + m.M[3][3]
	if w != 0 {
		x /= w
		y /= w
		z /= w
	}
	return Vector3{X: x, Y: y, Z: z}
}

// AddInPlace adds o to m.
func (m *Matrix4x4) AddInPlace(o Matrix4x4) {
	*m = m.Add(o)
}

// SubInPlace subtracts o from m.
func (m *Matrix4x4) SubInPlace(o Matrix4x4) {
	*m = m.Sub(o)
}

// MulScalarInPlace multiplies every element of m by s.
func (m *Matrix4x4) MulScalarInPlace(s float32) {
	*m = m.MulScalar(s)
}

// Equal reports whether every element matches exactly.
func (m Matrix4x4) Equal(o Matrix4x4) bool {
	return m.M == o.M
}

// Approx reports whether every element is within epsilon of o.
func (m Matrix4x4) Approx(o Matrix4x4, epsilon float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if Fabs(m.M[i][j]-o.M[i][j]) >= epsilon {
				return false
			}
		}
	}
	return true
}

// At returns the element at row, col.
func (m Matrix4x4) At(row, col int) (float32, error) {
	if err := checkCell(row, col, 4); err != nil {
		return 0, err
	}
	return m.M[row][col], nil
}

// Set stores value at row, col.
func (m *Matrix4x4) Set(row, col int, value float32) error {
	if err := checkCell(row, col, 4); err != nil {
		return err
	}
	m.M[row][col] = value
	return nil
}

// Transpose returns the transposed matrix.
func (m Matrix4x4) Transpose() Matrix4x4 {
	var r Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = m.M[j][i]
		}
	}
	return r
}

// minor returns the 3x3 matrix left after removing row and col.
func (m Matrix4x4) minor(row, col int) Matrix3x3 {
	var r Matrix3x3
	ri := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		rj := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			r.M[ri][rj] = m.M[i][j]
			rj++
		}
		ri++
	}
	return r
}

// Cofactor returns the signed minor of the element at row, col.
// row and col must be in [0, 4).
func (m Matrix4x4) Cofactor(row, col int) float32 {
	d := m.minor(row, col).Determinant()
	if (row+col)%2 != 0 {
		return -d
	}
	return d
}

// CofactorMatrix returns the matrix of all cofactors.
func (m Matrix4x4) CofactorMatrix() Matrix4x4 {
	var r Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = m.Cofactor(i, j)
		}
	}
	return r
}

// Adjugate returns the transposed cofactor matrix.
func (m Matrix4x4) Adjugate() Matrix4x4 {
	return m.CofactorMatrix().Transpose()
}

// Determinant expands along the first row.
func (m Matrix4x4) Determinant() float32 {
	var det float32
	for col := 0; col < 4; col++ {
		det += m.M[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Inverse returns Adjugate() / Determinant().
// Returns the identity matrix if the determinant is exactly zero.
func (m Matrix4x4) Inverse() Matrix4x4 {
	det := m.Determinant()
	if det == 0 {
		logSingular("Matrix4x4")
		return Identity4x4()
	}
	return m.Adjugate().MulScalar(1 / det)
}

// SetIdentity overwrites m with the identity matrix.
func (m *Matrix4x4) SetIdentity() {
	*m = Identity4x4()
}

// SetScale overwrites m with a scaling matrix. Every element not on the
// diagonal is zeroed and M[3][3] is 1.
func (m *Matrix4x4) SetScale(scaleX, scaleY, scaleZ float32) {
	*m = Zero4x4()
	m.M[0][0] = scaleX
	m.M[1][1] = scaleY
	m.M[2][2] = scaleZ
	m.M[3][3] = 1
}

// SetTranslation overwrites m with a translation matrix.
func (m *Matrix4x4) SetTranslation(tx, ty, tz float32) {
	*m = Zero4x4()
	m.M[0][0] = 1
	m.M[1][1] = 1
	m.M[2][2] = 1
	m.M[3][3] = 1
	m.M[0][3] = tx
	m.M[1][3] = ty
	m.M[2][3] = tz
}

// SetRotation overwrites m with a rotation about the Z axis.
func (m *Matrix4x4) SetRotation(radians float32) {
	s, c := sinCos(radians)
	*m = Zero4x4()
	m.M[0][0] = c
	m.M[0][1] = -s
	m.M[1][0] = s
	m.M[1][1] = c
	m.M[2][2] = 1
	m.M[3][3] = 1
}

// SetRotationX overwrites m with a rotation about the X axis.
func (m *Matrix4x4) SetRotationX(radians float32) {
	s, c := sinCos(radians)
	*m = Zero4x4()
	m.M[0][0] = 1
	m.M[1][1] = c
	m.M[1][2] = -s
	m.M[2][1] = s
	m.M[2][2] = c
	m.M[3][3] = 1
}

// SetRotationY overwrites m with a rotation about the Y axis.
func (m *Matrix4x4) SetRotationY(radians float32) {
	s, c := sinCos(radians)
	*m = Zero4x4()
	m.M[0][0] = c
	m.M[0][2] = s
	m.M[1][1] = 1
	m.M[2][0] = -s
	m.M[2][2] = c
	m.M[3][3] = 1
}

// ColumnMajor returns the elements column by column, the order WGSL and
// GLSL expect for mat4x4 uniforms.
func (m Matrix4x4) ColumnMajor() [16]float32 {
	var out [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] = m.M[row][col]
		}
	}
	return out
}
