// Package rectangle implements an immutable rectangle whose arithmetic and
// ordering are defined on its area.
package rectangle

import (
	"errors"
	"fmt"
	"math"

	"github.com/heshanpadmasiri/valueops/order"
	"golang.org/x/exp/constraints"
)

// ErrInvalidArgument is wrapped by every validation failure in this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Scalar is any number a rectangle can be multiplied by.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Tolerance controls how close two areas must be to compare equal.
type Tolerance struct {
	Relative float64
	Absolute float64
}

// DefaultTolerance is the tolerance used by Equal and Less.
var DefaultTolerance = Tolerance{Relative: 1e-9, Absolute: 0}

// Rectangle has strictly positive width and height. The zero value is not a
// valid rectangle; use New or FromArea.
type Rectangle struct {
	width  float64
	height float64
}

var _ order.Ordered[Rectangle] = Rectangle{}

// New validates both dimensions and returns the rectangle.
func New(width, height float64) (Rectangle, error) {
	if err := validateDimension(width); err != nil {
		return Rectangle{}, err
	}
	if err := validateDimension(height); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{width: width, height: height}, nil
}

func validateDimension(value float64) error {
	// NaN fails every comparison, so test for the valid range.
	if !(value > 0) {
		return fmt.Errorf("%w: dimensions must be greater than 0", ErrInvalidArgument)
	}
	return nil
}

// FromArea returns the square whose area is area.
func FromArea(area float64) (Rectangle, error) {
	if !(area > 0) {
		return Rectangle{}, fmt.Errorf("%w: area must be positive", ErrInvalidArgument)
	}
	side := math.Sqrt(area)
	return New(side, side)
}

// Width returns the width of r.
func (r Rectangle) Width() float64 {
	return r.width
}

// Height returns the height of r.
func (r Rectangle) Height() float64 {
	return r.height
}

// Area returns width times height.
func (r Rectangle) Area() float64 {
	return r.width * r.height
}

// Add combines two rectangles into a square with their combined area. It is
// not a geometric union.
func (r Rectangle) Add(other Rectangle) (Rectangle, error) {
	return FromArea(r.Area() + other.Area())
}

// Scale returns the square whose area is n times the area of r.
func (r Rectangle) Scale(n float64) (Rectangle, error) {
	if !(n > 0) {
		return Rectangle{}, fmt.Errorf("%w: multiplier must be greater than 0", ErrInvalidArgument)
	}
	return FromArea(r.Area() * n)
}

// Times is the reversed form of Scale, n * r.
func Times[N Scalar](n N, r Rectangle) (Rectangle, error) {
	return r.Scale(float64(n))
}

// Equal reports whether the areas match within DefaultTolerance.
func (r Rectangle) Equal(other Rectangle) bool {
	return r.EqualWithin(other, DefaultTolerance)
}

// EqualWithin reports whether the areas match within tol.
func (r Rectangle) EqualWithin(other Rectangle, tol Tolerance) bool {
	a, b := r.Area(), other.Area()
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	return diff <= tol.Relative*math.Max(math.Abs(a), math.Abs(b)) || diff <= tol.Absolute
}

// Less reports whether r is strictly smaller than other. Areas within the
// equality tolerance are never less than each other.
func (r Rectangle) Less(other Rectangle) bool {
	return r.LessWithin(other, DefaultTolerance)
}

// LessWithin is Less with an explicit tolerance.
func (r Rectangle) LessWithin(other Rectangle, tol Tolerance) bool {
	return !r.EqualWithin(other, tol) && r.Area() < other.Area()
}

// Compare orders rectangles by area, returning -1, 0 or +1.
func (r Rectangle) Compare(other Rectangle) int {
	return order.Compare(r, other)
}

// String formats r with two decimals, area included.
func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(w=%.2f, h=%.2f, area=%.2f)", r.width, r.height, r.Area())
}

// GoString returns the constructor form with full precision.
func (r Rectangle) GoString() string {
	return fmt.Sprintf("Rectangle(%v, %v)", r.width, r.height)
}
