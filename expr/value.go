package expr

import (
	"fmt"
	"strconv"

	"github.com/heshanpadmasiri/valueops/fraction"
	"github.com/heshanpadmasiri/valueops/rectangle"
)

// Value is the result of evaluating an expression. It holds one of
// fraction.Int, float64, bool, fraction.Fraction or rectangle.Rectangle.
type Value any

// TypeName names the type of v the way it is spelled in expressions.
func TypeName(v Value) string {
	switch v.(type) {
	case fraction.Int:
		return "int"
	case float64:
		return "double"
	case bool:
		return "boolean"
	case fraction.Fraction:
		return "Fraction"
	case rectangle.Rectangle:
		return "Rectangle"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// FormatValue renders v for output. precision applies to plain floating
// point results only and follows strconv.FormatFloat.
func FormatValue(v Value, precision int) string {
	switch v := v.(type) {
	case fraction.Int:
		return strconv.FormatInt(int64(v), 10)
	case float64:
		return strconv.FormatFloat(v, 'g', precision, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func asFloat(v Value) (float64, bool) {
	switch v := v.(type) {
	case fraction.Int:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// asOperand promotes integers so they can be mixed with fractions.
func asOperand(v Value) (fraction.Operand, bool) {
	switch v := v.(type) {
	case fraction.Int:
		return v, true
	case fraction.Fraction:
		return v, true
	default:
		return nil, false
	}
}

// tolerantRectangle compares rectangles using the evaluator's tolerance.
type tolerantRectangle struct {
	rect rectangle.Rectangle
	tol  rectangle.Tolerance
}

func (t tolerantRectangle) Equal(other tolerantRectangle) bool {
	return t.rect.EqualWithin(other.rect, t.tol)
}

func (t tolerantRectangle) Less(other tolerantRectangle) bool {
	return t.rect.LessWithin(other.rect, t.tol)
}
