package fraction

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func mustNew(t *testing.T, num, den int64) Fraction {
	t.Helper()
	f, err := New(num, den)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", num, den, err)
	}
	return f
}

func TestNewNormalizes(t *testing.T) {
	tests := []struct {
		num, den                 int64
		expectedNum, expectedDen int64
		expectedString           string
	}{
		{1, 2, 1, 2, "1/2"},
		{2, 4, 1, 2, "1/2"},
		{-2, 4, -1, 2, "-1/2"},
		{2, -4, -1, 2, "-1/2"},
		{-2, -4, 1, 2, "1/2"},
		{10, 8, 5, 4, "5/4"},
		{6, 3, 2, 1, "2"},
		{0, 5, 0, 1, "0"},
		{0, -7, 0, 1, "0"},
		{7, 1, 7, 1, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedString, func(t *testing.T) {
			f := mustNew(t, tt.num, tt.den)
			if f.Numerator() != tt.expectedNum || f.Denominator() != tt.expectedDen {
				t.Errorf("New(%d, %d) = %#v, expected %d/%d", tt.num, tt.den, f, tt.expectedNum, tt.expectedDen)
			}
			if f.String() != tt.expectedString {
				t.Errorf("Expected %q, got %q", tt.expectedString, f.String())
			}
		})
	}
}

func TestNormalizedFormProperty(t *testing.T) {
	for n := int64(-30); n <= 30; n++ {
		for d := int64(-30); d <= 30; d++ {
			if d == 0 {
				continue
			}
			f := mustNew(t, n, d)
			if f.Denominator() <= 0 {
				t.Fatalf("New(%d, %d) has non-positive denominator %d", n, d, f.Denominator())
			}
			if g := gcd(f.Numerator(), f.Denominator()); g != 1 {
				t.Fatalf("New(%d, %d) = %s is not in lowest terms (gcd %d)", n, d, f, g)
			}
			// a/b == c/d means a*d == c*b before reduction.
			if f.Numerator()*d != n*f.Denominator() {
				t.Fatalf("New(%d, %d) = %s changed the value", n, d, f)
			}
		}
	}
}

func TestNewZeroDenominator(t *testing.T) {
	_, err := New(1, 0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Expected ErrDivisionByZero, got %v", err)
	}
	_, err = New[uint8](0, 0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Expected ErrDivisionByZero for 0/0, got %v", err)
	}
}

func TestFromValues(t *testing.T) {
	tests := []struct {
		name        string
		num, den    any
		expected    string
		expectedErr error
	}{
		{"ints", 3, 6, "1/2", nil},
		{"mixed integer kinds", int8(-3), uint64(9), "-1/3", nil},
		{"promoted Int", Int(4), 2, "2", nil},
		{"float numerator", 1.5, 2, "", ErrTypeMismatch},
		{"float denominator", 1, 2.0, "", ErrTypeMismatch},
		{"string numerator", "1", 2, "", ErrTypeMismatch},
		{"zero denominator", 1, 0, "", ErrDivisionByZero},
		{"zero float denominator", 1, 0.0, "", ErrDivisionByZero},
		{"zero denominator wins over type mismatch", 1.5, 0, "", ErrDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := FromValues(tt.num, tt.den)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("Expected %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if f.String() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, f)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	half := mustNew(t, 1, 2)
	threeQuarters := mustNew(t, 3, 4)

	tests := []struct {
		name     string
		result   Fraction
		expected string
	}{
		{"add", half.Add(threeQuarters), "5/4"},
		{"add to whole", half.Add(half), "1"},
		{"sub", threeQuarters.Sub(half), "1/4"},
		{"sub below zero", half.Sub(threeQuarters), "-1/4"},
		{"mul", half.Mul(threeQuarters), "3/8"},
		{"mul int", half.Mul(Int(2)), "1"},
		{"add int", half.Add(Int(3)), "7/2"},
		{"sub int", half.Sub(Int(1)), "-1/2"},
		{"mul zero", threeQuarters.Mul(Int(0)), "0"},
		{"zero value operand", half.Add(Fraction{}), "1/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.String() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, tt.result)
			}
		})
	}

	if !half.Add(half).Equal(mustNew(t, 1, 1)) {
		t.Error("Expected 1/2 + 1/2 == 1/1")
	}
}

func TestArithmeticCrossProducts(t *testing.T) {
	for a := int64(-6); a <= 6; a++ {
		for b := int64(-6); b <= 6; b++ {
			if b == 0 {
				continue
			}
			for c := int64(-6); c <= 6; c++ {
				for d := int64(-6); d <= 6; d++ {
					if d == 0 {
						continue
					}
					f, g := mustNew(t, a, b), mustNew(t, c, d)
					tests := []struct {
						op       string
						result   Fraction
						num, den int64
					}{
						{"*", f.Mul(g), a * c, b * d},
						{"+", f.Add(g), a*d + c*b, b * d},
						{"-", f.Sub(g), a*d - c*b, b * d},
					}
					for _, tt := range tests {
						if !tt.result.Equal(mustNew(t, tt.num, tt.den)) {
							t.Fatalf("%d/%d %s %d/%d = %s, expected %d/%d", a, b, tt.op, c, d, tt.result, tt.num, tt.den)
						}
						if tt.result.Numerator()*tt.den != tt.num*tt.result.Denominator() {
							t.Fatalf("%d/%d %s %d/%d = %s does not cross-multiply to %d/%d", a, b, tt.op, c, d, tt.result, tt.num, tt.den)
						}
						if tt.result.Denominator() <= 0 || gcd(tt.result.Numerator(), tt.result.Denominator()) != 1 {
							t.Fatalf("%d/%d %s %d/%d = %#v is not normalized", a, b, tt.op, c, d, tt.result)
						}
					}
				}
			}
		}
	}
}

func TestOverflow(t *testing.T) {
	t.Run("negative denominator at the int64 limit", func(t *testing.T) {
		for _, tt := range [][2]int64{{1, math.MinInt64}, {math.MinInt64, -1}, {math.MinInt64, math.MinInt64}} {
			if _, err := New(tt[0], tt[1]); !errors.Is(err, ErrOverflow) {
				t.Errorf("New(%d, %d): expected ErrOverflow, got %v", tt[0], tt[1], err)
			}
		}
	})

	t.Run("MinInt64 numerator with positive denominator", func(t *testing.T) {
		f := mustNew(t, math.MinInt64, 6)
		if f.Numerator() != math.MinInt64/2 || f.Denominator() != 3 {
			t.Errorf("Unexpected %#v", f)
		}
	})

	small := mustNew(t, 1, 3037000500)
	tests := []struct {
		name string
		op   func() (Fraction, error)
	}{
		{"mul denominator", func() (Fraction, error) { return small.MulExact(small) }},
		{"mul numerator", func() (Fraction, error) { return mustNew(t, 3037000500, 1).MulExact(Int(3037000500)) }},
		{"add", func() (Fraction, error) { return mustNew(t, math.MaxInt64, 1).AddExact(Int(1)) }},
		{"sub", func() (Fraction, error) { return mustNew(t, math.MaxInt64, 1).SubExact(Int(-1)) }},
		{"sub MinInt64", func() (Fraction, error) { return Int(0).AsFraction().SubExact(Int(math.MinInt64)) }},
		{"cross product", func() (Fraction, error) { return small.AddExact(mustNew(t, 1, 3037000501)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.op(); !errors.Is(err, ErrOverflow) {
				t.Errorf("Expected ErrOverflow, got %v", err)
			}
		})
	}

	t.Run("Mul panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected a panic")
			}
		}()
		small.Mul(small)
	})

	t.Run("Less beyond int64 products", func(t *testing.T) {
		a := mustNew(t, math.MaxInt64, math.MaxInt64-1)
		b := mustNew(t, math.MaxInt64-1, math.MaxInt64-2)
		if !a.Less(b) || b.Less(a) {
			t.Errorf("Expected %s < %s", a, b)
		}
	})
}

func TestEquality(t *testing.T) {
	if !mustNew(t, 1, 2).Equal(mustNew(t, 2, 4)) {
		t.Error("Expected 1/2 == 2/4")
	}
	if mustNew(t, 1, 2).Equal(mustNew(t, 1, 3)) {
		t.Error("Expected 1/2 != 1/3")
	}
	if !mustNew(t, 4, 2).Equal(Int(2)) {
		t.Error("Expected 4/2 == 2")
	}
	if (Fraction{}).Equal(Int(1)) || !(Fraction{}).Equal(Int(0)) {
		t.Error("Expected the zero value to equal 0")
	}
}

func TestOrdering(t *testing.T) {
	values := []Fraction{
		mustNew(t, 3, 4),
		mustNew(t, -1, 2),
		mustNew(t, 1, 2),
		mustNew(t, 2, 4),
		mustNew(t, 5, 1),
		mustNew(t, 0, 1),
	}

	for _, a := range values {
		for _, b := range values {
			if a.Less(b) && b.Less(a) {
				t.Errorf("%s and %s are both less than each other", a, b)
			}
			neither := !a.Less(b) && !b.Less(a)
			if a.Equal(b) != neither {
				t.Errorf("%s == %s is %v but neither-less is %v", a, b, a.Equal(b), neither)
			}
		}
	}

	if !mustNew(t, 1, 2).Less(mustNew(t, 3, 4)) {
		t.Error("Expected 1/2 < 3/4")
	}
	if !mustNew(t, 1, 2).Less(Int(1)) {
		t.Error("Expected 1/2 < 1")
	}
	if mustNew(t, 7, 2).Compare(Int(3)) != 1 {
		t.Error("Expected 7/2 > 3")
	}

	slices.SortFunc(values, func(a, b Fraction) int { return a.Compare(b) })
	expected := []string{"-1/2", "0", "1/2", "1/2", "3/4", "5"}
	for i, f := range values {
		if f.String() != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], f)
		}
	}
}

func TestFormatting(t *testing.T) {
	f := mustNew(t, 10, -8)
	if f.GoString() != "Fraction(-5, 4)" {
		t.Errorf("Unexpected GoString: %s", f.GoString())
	}
	if f.Float64() != -1.25 {
		t.Errorf("Unexpected Float64: %v", f.Float64())
	}
}
