// Package fraction implements an immutable rational number kept in lowest
// terms with the sign carried by the numerator.
//
// Numerators and denominators are int64. Results that do not fit, including
// a denominator of math.MinInt64 whose sign cannot be moved, are reported as
// ErrOverflow by the Exact methods and by New.
package fraction

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/heshanpadmasiri/valueops/order"
	"golang.org/x/exp/constraints"
)

// Errors returned by construction and the Exact arithmetic methods.
var (
	ErrDivisionByZero = errors.New("zero division error")
	ErrTypeMismatch   = errors.New("numerator and denominator must be integers")
	ErrOverflow       = errors.New("integer overflow")
)

// Operand is anything a Fraction can be combined with. Fraction and Int
// implement it.
type Operand interface {
	AsFraction() Fraction
}

// Int is an integer operand. It promotes to n/1.
type Int int64

// AsFraction promotes n to n/1
func (n Int) AsFraction() Fraction {
	return Fraction{num: int64(n), den: 1}
}

// Fraction is always normalized: den > 0 and gcd(|num|, den) == 1. The zero
// value is 0/1.
type Fraction struct {
	num int64
	den int64
}

var _ order.Ordered[Operand] = Fraction{}

// New returns numerator/denominator in lowest terms
func New[N constraints.Integer](numerator, denominator N) (Fraction, error) {
	return normalize(int64(numerator), int64(denominator))
}

// FromValues builds a fraction from dynamically typed operands. A zero
// denominator is reported before a non-integer operand.
func FromValues(numerator, denominator any) (Fraction, error) {
	if isZero(denominator) {
		return Fraction{}, ErrDivisionByZero
	}
	n, ok := toInt64(numerator)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: got numerator of type %T", ErrTypeMismatch, numerator)
	}
	d, ok := toInt64(denominator)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: got denominator of type %T", ErrTypeMismatch, denominator)
	}
	return normalize(n, d)
}

func isZero(value any) bool {
	switch v := value.(type) {
	case float64:
		return v == 0
	case float32:
		return v == 0
	}
	n, ok := toInt64(value)
	return ok && n == 0
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case Int:
		return int64(v), true
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	default:
		return 0, false
	}
}

func normalize(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	if den < 0 {
		if num == math.MinInt64 || den == math.MinInt64 {
			return Fraction{}, fmt.Errorf("%w: cannot negate %d/%d", ErrOverflow, num, den)
		}
		num, den = -num, -den
	}
	common := gcd(num, den)
	return Fraction{num: num / common, den: den / common}, nil
}

// gcd of |a| and |b|, with gcd(0, b) == |b|. b is never 0 here.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a
}

func abs64(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}

func mulExact(a, b int64) (int64, bool) {
	hi, lo := bits.Mul64(abs64(a), abs64(b))
	if hi != 0 {
		return 0, false
	}
	if (a < 0) != (b < 0) {
		if lo > 1<<63 {
			return 0, false
		}
		return -int64(lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

func addExact(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

// crossProducts returns a*d, c*b and b*d for a/b and c/d.
func crossProducts(a, b, c, d int64) (ad, cb, bd int64, ok bool) {
	ad, ok1 := mulExact(a, d)
	cb, ok2 := mulExact(c, b)
	bd, ok3 := mulExact(b, d)
	return ad, cb, bd, ok1 && ok2 && ok3
}

func overflow(f Fraction, op string, o Operand) error {
	return fmt.Errorf("%w: %s %s %s", ErrOverflow, f, op, o.AsFraction())
}

func must(f Fraction, err error) Fraction {
	if err != nil {
		panic("fraction: " + err.Error())
	}
	return f
}

func (f Fraction) parts() (int64, int64) {
	if f.den == 0 {
		return f.num, 1
	}
	return f.num, f.den
}

// AsFraction returns f itself, normalized if f is the zero value
func (f Fraction) AsFraction() Fraction {
	num, den := f.parts()
	return Fraction{num: num, den: den}
}

// Numerator returns the numerator in lowest terms, carrying the sign
func (f Fraction) Numerator() int64 {
	num, _ := f.parts()
	return num
}

// Denominator returns the denominator in lowest terms, always positive
func (f Fraction) Denominator() int64 {
	_, den := f.parts()
	return den
}

// Float64 returns the nearest floating point value
func (f Fraction) Float64() float64 {
	num, den := f.parts()
	return float64(num) / float64(den)
}

// AddExact returns f + o, or ErrOverflow if an intermediate product or sum
// does not fit in an int64.
func (f Fraction) AddExact(o Operand) (Fraction, error) {
	a, b := f.parts()
	c, d := o.AsFraction().parts()
	ad, cb, bd, ok := crossProducts(a, b, c, d)
	if !ok {
		return Fraction{}, overflow(f, "+", o)
	}
	num, ok := addExact(ad, cb)
	if !ok {
		return Fraction{}, overflow(f, "+", o)
	}
	return normalize(num, bd)
}

// SubExact returns f - o, or ErrOverflow.
func (f Fraction) SubExact(o Operand) (Fraction, error) {
	a, b := f.parts()
	c, d := o.AsFraction().parts()
	ad, cb, bd, ok := crossProducts(a, b, c, d)
	if !ok || cb == math.MinInt64 {
		return Fraction{}, overflow(f, "-", o)
	}
	num, ok := addExact(ad, -cb)
	if !ok {
		return Fraction{}, overflow(f, "-", o)
	}
	return normalize(num, bd)
}

// MulExact returns f * o, or ErrOverflow.
func (f Fraction) MulExact(o Operand) (Fraction, error) {
	a, b := f.parts()
	c, d := o.AsFraction().parts()
	num, ok1 := mulExact(a, c)
	den, ok2 := mulExact(b, d)
	if !ok1 || !ok2 {
		return Fraction{}, overflow(f, "*", o)
	}
	return normalize(num, den)
}

// Add returns f + o. It panics on overflow; use AddExact to handle it.
func (f Fraction) Add(o Operand) Fraction {
	return must(f.AddExact(o))
}

// Sub returns f - o. It panics on overflow; use SubExact to handle it.
func (f Fraction) Sub(o Operand) Fraction {
	return must(f.SubExact(o))
}

// Mul returns f * o. It panics on overflow; use MulExact to handle it.
func (f Fraction) Mul(o Operand) Fraction {
	return must(f.MulExact(o))
}

// Equal is exact rational equality.
func (f Fraction) Equal(o Operand) bool {
	a, b := f.parts()
	c, d := o.AsFraction().parts()
	return a == c && b == d
}

// Less compares by cross-multiplication.
func (f Fraction) Less(o Operand) bool {
	a, b := f.parts()
	c, d := o.AsFraction().parts()
	ad, ok1 := mulExact(a, d)
	cb, ok2 := mulExact(c, b)
	if ok1 && ok2 {
		return ad < cb
	}
	left := new(big.Int).Mul(big.NewInt(a), big.NewInt(d))
	right := new(big.Int).Mul(big.NewInt(c), big.NewInt(b))
	return left.Cmp(right) < 0
}

// Compare returns -1, 0 or +1 as f is less than, equal to or greater than o
func (f Fraction) Compare(o Operand) int {
	return order.Compare(f, o)
}

// String formats f as "n" when it is whole, "n/d" otherwise
func (f Fraction) String() string {
	num, den := f.parts()
	if den == 1 {
		return strconv.FormatInt(num, 10)
	}
	return fmt.Sprintf("%d/%d", num, den)
}

// GoString formats f as Fraction(n, d)
func (f Fraction) GoString() string {
	num, den := f.parts()
	return fmt.Sprintf("Fraction(%d, %d)", num, den)
}
