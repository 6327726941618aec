package emath

import (
	"errors"
	"fmt"
)

// ErrComponentIndex is returned when a vector or quaternion is asked for a
// component it does not have.
var ErrComponentIndex = errors.New("emath: component index out of range")

// ErrMatrixIndex is returned when a matrix row or column is out of range.
var ErrMatrixIndex = errors.New("emath: matrix index out of range")

// Axis names a vector component.
type Axis int

// Component axes in index order.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

// String returns the lower-case component name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisW:
		return "w"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// componentError reports an axis outside the first dims components.
func componentError(a Axis, dims int) error {
	return fmt.Errorf("%w: %v on a %d-component value", ErrComponentIndex, a, dims)
}

// checkCell reports whether (row, col) lies inside an n×n matrix.
func checkCell(row, col, n int) error {
	if row < 0 || row >= n || col < 0 || col >= n {
		return fmt.Errorf("%w: (%d, %d) on a %dx%d matrix", ErrMatrixIndex, row, col, n, n)
	}
	return nil
}
