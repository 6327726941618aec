package emath

import "math"

// Sqrt returns the square root of number using SqrtIterations fixed
// Newton-Raphson steps, starting from number/2.
// Non-positive input returns 0. Expect about 1e-5 relative error for
// moderate magnitudes; very large or very small inputs converge less.
func Sqrt(number float32) float32 {
	if number <= 0 {
		return 0
	}
	x := number / 2
	for i := 0; i < SqrtIterations; i++ {
		x -= (Square(x) - number) / (2 * x)
	}
	return x
}

// Square returns number².
func Square(number float32) float32 {
	return number * number
}

// Cube returns number³.
func Cube(number float32) float32 {
	return number * number * number
}

// Power multiplies base by itself once for every integer i with
// 0 <= i < exponent. Negative exponents return 1 and fractional exponents
// round the multiplication count up. A NaN or infinite exponent returns NaN.
//
// At most powerMaxSteps multiplications run, and the loop stops early once
// the product reaches zero, ±Inf or NaN.
func Power(base, exponent float32) float32 {
	if math.IsNaN(float64(exponent)) || math.IsInf(float64(exponent), 0) {
		return float32(math.NaN())
	}
	result := float32(1)
	for i := 0; float32(i) < exponent && i < powerMaxSteps; i++ {
		result *= base
		if result == 0 || result != result || math.IsInf(float64(result), 0) {
			break
		}
	}
	return result
}

// Exp returns e^exponent computed with Power, so only the iteration count
// derived from exponent is honored.
func Exp(exponent float32) float32 {
	return Power(E, exponent)
}

// Abs returns the absolute value of an int.
func Abs(number int) int {
	if number < 0 {
		return -number
	}
	return number
}

// Fabs returns the absolute value of a float32.
func Fabs(number float32) float32 {
	if number < 0 {
		return -number
	}
	return number
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round truncates number and adds one when the dropped fraction is at
// least 0.5. Negative fractions never round away from zero.
func Round(number float32) int {
	intPart := int(number)
	if number-float32(intPart) >= 0.5 {
		return intPart + 1
	}
	return intPart
}

// Floor truncates number toward zero.
func Floor(number float32) int {
	return int(number)
}

// Ceil truncates number and adds one, even when number is already whole:
// Ceil(2) == 3.
func Ceil(number float32) int {
	return int(number) + 1
}

// Mod returns the fractional part of a/b, that is a/b - trunc(a/b).
// This is not the conventional remainder: Mod(5, 2) == 0.5.
// A zero divisor returns 0.
func Mod(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	q := a / b
	return q - float32(int(q))
}

// Sin returns the sine of angle (radians) by summing its Taylor series
// until a term's magnitude drops below SinTolerance. The angle is not
// range-reduced, so accuracy degrades for large magnitudes.
func Sin(angle float32) float32 {
	var result float32
	term := angle
	for n := 1; ; n++ {
		result += term
		term *= -angle * angle / float32(2*n*(2*n+1))
		if Fabs(term) < SinTolerance || n >= sinMaxTerms {
			return result
		}
	}
}

// sinCos returns the sine and cosine of radians. The sine argument is
// shifted into [-π, π] first, so rotation builders accept any finite angle.
func sinCos(radians float32) (sin, cos float32) {
	return Sin(wrapPi(radians)), Cos(radians)
}

// Cos returns the cosine of radians. The angle is first shifted into
// [-π, π] by multiples of 2π, then CosTerms terms of the Taylor series
// are summed after the leading 1. Non-finite input returns NaN.
func Cos(radians float32) float32 {
	if math.IsNaN(float64(radians)) || math.IsInf(float64(radians), 0) {
		return float32(math.NaN())
	}
	x := wrapPi(radians)
	x2 := x * x
	result := float32(1)
	term := float32(1)
	sign := float32(-1)
	for i := 2; i <= 2*CosTerms; i += 2 {
		term *= x2 / float32(i*(i-1))
		result += sign * term
		sign = -sign
	}
	return result
}

// wrapPi shifts a finite angle into [-π, π] by whole turns.
func wrapPi(x float32) float32 {
	const (
		turn  = float64(TwoPi)
		bulk  = 4 * turn
		exact = 1 << 52
	)
	if r := float64(x); r > bulk || r < -bulk {
		for r > bulk || r < -bulk {
			k := r / turn
			if k < exact && k > -exact {
				k = float64(int64(k))
			}
			r -= k * turn
		}
		x = float32(r)
	}
	for x > Pi {
		x -= TwoPi
	}
	for x < -Pi {
		x += TwoPi
	}
	return x
}

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float32) float32 {
	return radians * 180 / Pi
}

// CircleArea returns πr².
func CircleArea(radius float32) float32 {
	return Pi * radius * radius
}

// CircleCircumference returns 2πr.
func CircleCircumference(radius float32) float32 {
	return 2 * Pi * radius
}

// RectArea returns width*height.
func RectArea(width, height float32) float32 {
	return width * height
}

// RectPerimeter returns 2(width+height).
func RectPerimeter(width, height float32) float32 {
	return 2 * (width + height)
}

// TriArea returns base*height/2.
func TriArea(base, height float32) float32 {
	return 0.5 * base * height
}

// TriPerimeter returns the sum of the three sides.
func TriPerimeter(side1, side2, side3 float32) float32 {
	return side1 + side2 + side3
}

// EquilateralTriPerimeter returns 3*side.
func EquilateralTriPerimeter(side float32) float32 {
	return 3 * side
}

// Distance returns the distance between points (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float32) float32 {
	dx := x2 - x1
	dy := y2 - y1
	return Sqrt(dx*dx + dy*dy)
}

// Lerp interpolates between start and end. t is not clamped.
func Lerp(start, end, t float32) float32 {
	return start + (end-start)*t
}

// Factorial returns n! for n > 0 and 1 otherwise.
func Factorial(n int) int64 {
	result := int64(1)
	for i := n; i > 0; i-- {
		result *= int64(i)
	}
	return result
}
