package emath

import (
	"errors"
	"testing"

	"github.com/gogpu/emath/internal/testutil"
)

func TestMatrix_NewIsIdentity(t *testing.T) {
	if !NewMatrix2x2().Equal(Identity2x2()) {
		t.Error("NewMatrix2x2() is not the identity")
	}
	if !NewMatrix3x3().Equal(Identity3x3()) {
		t.Error("NewMatrix3x3() is not the identity")
	}
	if !NewMatrix4x4().Equal(Identity4x4()) {
		t.Error("NewMatrix4x4() is not the identity")
	}

	var m4 Matrix4x4
	m4.M[3][0] = 7
	m4.SetIdentity()
	if !m4.Equal(Identity4x4()) {
		t.Errorf("SetIdentity() = %v, want identity", m4.M)
	}
}

func TestMatrix_IdentityProduct(t *testing.T) {
	if got := Identity2x2().Mul(Identity2x2()); !got.Equal(Identity2x2()) {
		t.Errorf("I*I = %v", got.M)
	}
	if got := Identity3x3().Mul(Identity3x3()); !got.Equal(Identity3x3()) {
		t.Errorf("I*I = %v", got.M)
	}
	if got := Identity4x4().Mul(Identity4x4()); !got.Equal(Identity4x4()) {
		t.Errorf("I*I = %v", got.M)
	}

	m := Mat3x3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	if got := m.Mul(Identity3x3()); !got.Equal(m) {
		t.Errorf("M*I = %v, want %v", got.M, m.M)
	}
	if got := Identity3x3().Mul(m); !got.Equal(m) {
		t.Errorf("I*M = %v, want %v", got.M, m.M)
	}
}

func TestMatrix2x2_Arithmetic(t *testing.T) {
	a := Mat2x2(1, 2, 3, 4)
	b := Mat2x2(5, 6, 7, 8)

	tests := []struct {
		name string
		got  Matrix2x2
		want Matrix2x2
	}{
		{"add", a.Add(b), Mat2x2(6, 8, 10, 12)},
		{"sub", b.Sub(a), Mat2x2(4, 4, 4, 4)},
		{"scalar", a.MulScalar(2), Mat2x2(2, 4, 6, 8)},
		{"product", a.Mul(b), Mat2x2(19, 22, 43, 50)},
		{"transpose", a.Transpose(), Mat2x2(1, 3, 2, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got.M, tt.want.M)
			}
		})
	}

	c := a
	c.AddInPlace(b)
	c.SubInPlace(a)
	c.MulScalarInPlace(0.5)
	if want := Mat2x2(2.5, 3, 3.5, 4); !c.Equal(want) {
		t.Errorf("in-place chain = %v, want %v", c.M, want.M)
	}
}

func TestMatrix2x2_InverseAndRotation(t *testing.T) {
	m := Mat2x2(4, 7, 2, 6)
	if got := m.Determinant(); got != 10 {
		t.Fatalf("Determinant() = %v, want 10", got)
	}
	if got := m.Mul(m.Inverse()); !got.Approx(Identity2x2(), 1e-5) {
		t.Errorf("M*Inverse = %v, want identity", got.M)
	}

	var r Matrix2x2
	r.SetRotation(HalfPi)
	if got := r.MulVec(V2(1, 0)); !got.Approx(V2(0, 1), 1e-5) {
		t.Errorf("rotate (1,0) by 90° = %v, want (0, 1)", got)
	}

	var s Matrix2x2
	s.SetScale(2, 3)
	if got := s.MulVec(V2(1, 1)); !got.Equal(V2(2, 3)) {
		t.Errorf("scale (1,1) = %v, want (2, 3)", got)
	}
}

func TestMatrix3x3_KnownInverse(t *testing.T) {
	m := Mat3x3(
		1, 2, 3,
		0, 1, 4,
		5, 6, 0,
	)
	want := Mat3x3(
		-24, 18, 5,
		20, -15, -4,
		-5, 4, 1,
	)

	if got := m.Determinant(); got != 1 {
		t.Fatalf("Determinant() = %v, want 1", got)
	}
	if got := m.Inverse(); !got.Approx(want, 1e-4) {
		t.Errorf("Inverse() = %v, want %v", got.M, want.M)
	}
	if got := m.Mul(m.Inverse()); !got.Approx(Identity3x3(), 1e-4) {
		t.Errorf("M*Inverse = %v, want identity", got.M)
	}
	if got := m.Inverse().Mul(m); !got.Approx(Identity3x3(), 1e-4) {
		t.Errorf("Inverse*M = %v, want identity", got.M)
	}
}

func TestMatrix3x3_CofactorSigns(t *testing.T) {
	m := Mat3x3(
		1, 2, 3,
		0, 1, 4,
		5, 6, 0,
	)

	tests := []struct {
		row, col int
		want     float32
	}{
		{0, 0, -24},
		{0, 1, 20},
		{0, 2, -5},
		{1, 0, 18},
		{1, 1, -15},
		{1, 2, 4},
		{2, 0, 5},
		{2, 1, -4},
		{2, 2, 1},
	}

	for _, tt := range tests {
		if got := m.Cofactor(tt.row, tt.col); got != tt.want {
			t.Errorf("Cofactor(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
	if got := m.Adjugate(); !got.Equal(m.CofactorMatrix().Transpose()) {
		t.Errorf("Adjugate() = %v, want transposed cofactor matrix", got.M)
	}
}

func TestMatrix_SingularInverseIsIdentity(t *testing.T) {
	if got := Mat2x2(1, 2, 2, 4).Inverse(); !got.Equal(Identity2x2()) {
		t.Errorf("singular 2x2 Inverse() = %v, want identity", got.M)
	}
	if got := Zero3x3().Inverse(); !got.Equal(Identity3x3()) {
		t.Errorf("zero 3x3 Inverse() = %v, want identity", got.M)
	}
	singular3 := Mat3x3(1, 2, 3, 2, 4, 6, 0, 0, 1)
	if got := singular3.Inverse(); !got.Equal(Identity3x3()) {
		t.Errorf("singular 3x3 Inverse() = %v, want identity", got.M)
	}
	singular4 := Mat4x4(
		1, 2, 3, 4,
		2, 4, 6, 8,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	if got := singular4.Inverse(); !got.Equal(Identity4x4()) {
		t.Errorf("singular 4x4 Inverse() = %v, want identity", got.M)
	}
}

func TestMatrix3x3_HomogeneousTransforms(t *testing.T) {
	var tr Matrix3x3
	tr.SetTranslation(3, -2)
	if got := tr.TransformVector2(V2(1, 1)); !got.Equal(V2(4, -1)) {
		t.Errorf("translate = %v, want (4, -1)", got)
	}

	var sc Matrix3x3
	sc.SetScale(2, 3)
	if got := sc.TransformVector2(V2(1, 1)); !got.Equal(V2(2, 3)) {
		t.Errorf("scale = %v, want (2, 3)", got)
	}

	var rot Matrix3x3
	rot.SetRotation(HalfPi)
	if got := rot.TransformVector2(V2(1, 0)); !got.Approx(V2(0, 1), 1e-5) {
		t.Errorf("rotate = %v, want (0, 1)", got)
	}

	// Translate after scaling.
	combined := tr.Mul(sc)
	if got := combined.TransformVector2(V2(1, 1)); !got.Equal(V2(5, 1)) {
		t.Errorf("translate*scale = %v, want (5, 1)", got)
	}
}

func TestMatrix3x3_TransformDividesByW(t *testing.T) {
	m := Mat3x3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 2,
	)
	if got := m.TransformVector2(V2(4, 6)); !got.Equal(V2(2, 3)) {
		t.Errorf("w=2 transform = %v, want (2, 3)", got)
	}

	// w == 0 leaves the result undivided.
	z := Mat3x3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 0,
	)
	if got := z.TransformVector2(V2(4, 6)); !got.Equal(V2(4, 6)) {
		t.Errorf("w=0 transform = %v, want (4, 6)", got)
	}
}

func TestMatrix3x3_SettersOverwrite(t *testing.T) {
	m := Mat3x3(9, 9, 9, 9, 9, 9, 9, 9, 9)
	m.SetScale(2, 3)
	if want := Mat3x3(2, 0, 0, 0, 3, 0, 0, 0, 1); !m.Equal(want) {
		t.Errorf("SetScale() = %v, want %v", m.M, want.M)
	}
	m.SetTranslation(5, 6)
	if want := Mat3x3(1, 0, 5, 0, 1, 6, 0, 0, 1); !m.Equal(want) {
		t.Errorf("SetTranslation() = %v, want %v", m.M, want.M)
	}
	m.SetRotation(0)
	if !m.Approx(Identity3x3(), 1e-6) {
		t.Errorf("SetRotation(0) = %v, want identity", m.M)
	}
}

func TestMatrix3x3_MulVec3(t *testing.T) {
	m := Mat3x3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	if got := m.MulVec3(V3(1, 0, -1)); !got.Equal(V3(-2, -2, -2)) {
		t.Errorf("MulVec3 = %v, want (-2, -2, -2)", got)
	}
	if got := m.Transpose().M[0]; got != [3]float32{1, 4, 7} {
		t.Errorf("Transpose row 0 = %v, want [1 4 7]", got)
	}
}

func TestMatrix4x4_DeterminantAndInverse(t *testing.T) {
	m := Mat4x4(
		1, 0, 2, 0,
		0, 3, 0, 1,
		4, 0, 5, 0,
		0, 1, 0, 2,
	)
	if got := m.Determinant(); got != -15 {
		t.Fatalf("Determinant() = %v, want -15", got)
	}
	if got := m.Mul(m.Inverse()); !got.Approx(Identity4x4(), 1e-5) {
		t.Errorf("M*Inverse = %v, want identity", got.M)
	}
	if got := Identity4x4().Determinant(); got != 1 {
		t.Errorf("identity Determinant() = %v, want 1", got)
	}
}

func TestMatrix4x4_AffineInverse(t *testing.T) {
	var tr, rot, sc Matrix4x4
	tr.SetTranslation(1, 2, 3)
	rot.SetRotationX(0.7)
	sc.SetScale(2, 2, 2)
	m := tr.Mul(rot).Mul(sc)

	p := V3(0.5, -1, 2)
	back := m.Inverse().TransformVector3(m.TransformVector3(p))
	if !back.Approx(p, 1e-4) {
		t.Errorf("Inverse round trip = %v, want %v", back, p)
	}
}

func TestMatrix4x4_Transforms(t *testing.T) {
	tests := []struct {
		name  string
		build func(m *Matrix4x4)
		in    Vector3
		want  Vector3
	}{
		{"translation", func(m *Matrix4x4) { m.SetTranslation(1, 2, 3) }, V3(1, 1, 1), V3(2, 3, 4)},
		{"scale", func(m *Matrix4x4) { m.SetScale(2, 3, 4) }, V3(1, 1, 1), V3(2, 3, 4)},
		{"rotation z", func(m *Matrix4x4) { m.SetRotation(HalfPi) }, V3(1, 0, 0), V3(0, 1, 0)},
		{"rotation x", func(m *Matrix4x4) { m.SetRotationX(HalfPi) }, V3(0, 1, 0), V3(0, 0, 1)},
		{"rotation y", func(m *Matrix4x4) { m.SetRotationY(HalfPi) }, V3(0, 0, 1), V3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Mat4x4(
				9, 9, 9, 9,
				9, 9, 9, 9,
				9, 9, 9, 9,
				9, 9, 9, 9,
			)
			tt.build(&m)
			if got := m.TransformVector3(tt.in); !got.Approx(tt.want, 1e-5) {
				t.Errorf("TransformVector3(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if m.M[3] != [4]float32{0, 0, 0, 1} {
				t.Errorf("bottom row = %v, want [0 0 0 1]", m.M[3])
			}
		})
	}
}

func TestMatrix_RotationAtLargeAngles(t *testing.T) {
	// Ten full turns past a quarter turn.
	angle := 20*Pi + HalfPi

	var r2 Matrix2x2
	r2.SetRotation(angle)
	if got := r2.MulVec(V2(1, 0)); !got.Approx(V2(0, 1), 1e-3) {
		t.Errorf("Matrix2x2 rotate = %v, want (0, 1)", got)
	}

	var r3 Matrix3x3
	r3.SetRotation(angle)
	if got := r3.TransformVector2(V2(1, 0)); !got.Approx(V2(0, 1), 1e-3) {
		t.Errorf("Matrix3x3 rotate = %v, want (0, 1)", got)
	}

	tests := []struct {
		name  string
		build func(m *Matrix4x4)
		in    Vector3
		want  Vector3
	}{
		{"z", func(m *Matrix4x4) { m.SetRotation(angle) }, V3(1, 0, 0), V3(0, 1, 0)},
		{"x", func(m *Matrix4x4) { m.SetRotationX(angle) }, V3(0, 1, 0), V3(0, 0, 1)},
		{"y", func(m *Matrix4x4) { m.SetRotationY(-angle) }, V3(1, 0, 0), V3(0, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Matrix4x4
			tt.build(&m)
			if got := m.TransformVector3(tt.in); !got.Approx(tt.want, 1e-3) {
				t.Errorf("TransformVector3(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrix4x4_PerspectiveDivide(t *testing.T) {
	m := Identity4x4()
	m.M[3][3] = 2
	if got := m.TransformVector3(V3(2, 4, 6)); !got.Equal(V3(1, 2, 3)) {
		t.Errorf("w=2 transform = %v, want (1, 2, 3)", got)
	}

	m.M[3][3] = 0
	if got := m.TransformVector3(V3(2, 4, 6)); !got.Equal(V3(2, 4, 6)) {
		t.Errorf("w=0 transform = %v, want (2, 4, 6)", got)
	}

	if got := m.MulVec4(V4(1, 2, 3, 1)); !got.Equal(V4(1, 2, 3, 0)) {
		t.Errorf("MulVec4 = %v, want (1, 2, 3, 0)", got)
	}
}

func TestMatrix4x4_ColumnMajor(t *testing.T) {
	var m Matrix4x4
	m.SetTranslation(7, 8, 9)
	cm := m.ColumnMajor()
	want := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		7, 8, 9, 1,
	}
	testutil.RequireSliceNearlyEqual(t, cm[:], want, 0)
}

func TestMatrix4x4_ArithmeticAndInPlace(t *testing.T) {
	a := Identity4x4()
	b := Identity4x4().MulScalar(3)
	if got := a.Add(b); !got.Equal(Identity4x4().MulScalar(4)) {
		t.Errorf("Add = %v", got.M)
	}
	if got := b.Sub(a); !got.Equal(Identity4x4().MulScalar(2)) {
		t.Errorf("Sub = %v", got.M)
	}

	c := a
	c.AddInPlace(b)
	c.SubInPlace(a)
	c.MulScalarInPlace(2)
	if !c.Equal(Identity4x4().MulScalar(6)) {
		t.Errorf("in-place chain = %v", c.M)
	}

	m := Mat4x4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	if got := m.Transpose().Transpose(); !got.Equal(m) {
		t.Errorf("double Transpose = %v", got.M)
	}
	if got := m.Transpose().M[0]; got != [4]float32{1, 5, 9, 13} {
		t.Errorf("Transpose row 0 = %v", got)
	}
}

func TestMatrix_AtSet(t *testing.T) {
	m := NewMatrix3x3()
	if err := m.Set(1, 2, 5); err != nil {
		t.Fatalf("Set(1, 2) = %v", err)
	}
	got, err := m.At(1, 2)
	if err != nil || got != 5 {
		t.Errorf("At(1, 2) = %v, %v; want 5", got, err)
	}

	m4 := NewMatrix4x4()
	if err := m4.Set(3, 3, 2); err != nil {
		t.Fatalf("Set(3, 3) = %v", err)
	}
	if v, _ := m4.At(3, 3); v != 2 {
		t.Errorf("At(3, 3) = %v, want 2", v)
	}

	m2 := NewMatrix2x2()
	if v, err := m2.At(1, 1); err != nil || v != 1 {
		t.Errorf("At(1, 1) = %v, %v; want 1", v, err)
	}
}

func TestMatrix_AtSetOutOfRange(t *testing.T) {
	m2 := NewMatrix2x2()
	m3 := NewMatrix3x3()
	m4 := NewMatrix4x4()

	tests := []struct {
		name string
		err  error
	}{
		{"2x2 row", func() error { _, err := m2.At(2, 0); return err }()},
		{"2x2 set col", m2.Set(0, 2, 1)},
		{"3x3 negative", func() error { _, err := m3.At(-1, 0); return err }()},
		{"3x3 set row", m3.Set(3, 0, 1)},
		{"4x4 col", func() error { _, err := m4.At(0, 4); return err }()},
		{"4x4 set negative", m4.Set(0, -1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrMatrixIndex) {
				t.Errorf("error = %v, want ErrMatrixIndex", tt.err)
			}
		})
	}

	if !m3.Equal(Identity3x3()) || !m4.Equal(Identity4x4()) {
		t.Error("failed Set modified the matrix")
	}
}

func TestMatrix_Approx(t *testing.T) {
	a := Identity4x4()
	b := Identity4x4()
	b.M[2][1] = 1e-7
	if !a.Approx(b, 1e-6) {
		t.Error("Approx rejected a difference below epsilon")
	}
	b.M[2][1] = 1e-3
	if a.Approx(b, 1e-6) {
		t.Error("Approx accepted a difference above epsilon")
	}
	testutil.RequireNear(t, "Determinant", Mat3x3(2, 0, 0, 0, 2, 0, 0, 0, 2).Determinant(), 8, 0)
}
