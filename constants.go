package emath

// Math constants shared by every type in the package.
const (
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi float32 = 3.14159265358979323846

	// TwoPi is 2π.
	TwoPi float32 = 6.28318530717958647692

	// HalfPi is π/2.
	HalfPi float32 = 1.57079632679489661923

	// QuarterPi is π/4.
	QuarterPi float32 = 0.785398163397448309616

	// DegToRad converts degrees to radians.
	DegToRad = Pi / 180

	// RadToDeg converts radians to degrees.
	RadToDeg = 180 / Pi

	// E is Euler's number.
	E float32 = 2.71828182845904523536

	// Epsilon is the tolerance used for float comparisons.
	Epsilon float32 = 1e-6

	One  float32 = 1
	Zero float32 = 0

	// Inf is a large finite stand-in for positive infinity.
	Inf float32 = 1e30

	// NegInf is a large finite stand-in for negative infinity.
	NegInf float32 = -1e30
)

// Fixed iteration and term counts of the scalar approximations.
const (
	// SqrtIterations is the number of Newton-Raphson steps taken by Sqrt.
	SqrtIterations = 10

	// SinTolerance stops the Sin series once a term drops below it.
	SinTolerance float32 = 1e-7

	// CosTerms is the number of series terms summed by Cos after the leading 1.
	CosTerms = 5

	// sinMaxTerms bounds the Sin series for non-finite or huge input.
	sinMaxTerms = 64

	// powerMaxSteps bounds the multiplications done by Power.
	powerMaxSteps = 1 << 20
)
