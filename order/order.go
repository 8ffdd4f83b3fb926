// Package order derives the full set of comparison relations from an
// equality test and a strict less-than.
package order

// Ordered is implemented by values that define Equal and Less against an
// operand of type O. O is usually the implementing type itself, but may be a
// wider interface the value knows how to promote.
type Ordered[O any] interface {
	Equal(other O) bool
	Less(other O) bool
}

// Compare returns -1, 0 or +1. Compare[T, T] can be passed to slices.SortFunc.
func Compare[T Ordered[O], O any](a T, b O) int {
	switch {
	case a.Equal(b):
		return 0
	case a.Less(b):
		return -1
	default:
		return 1
	}
}

// NotEqual reports !a.Equal(b).
func NotEqual[T Ordered[O], O any](a T, b O) bool {
	return !a.Equal(b)
}

// LessOrEqual reports a < b or a == b.
func LessOrEqual[T Ordered[O], O any](a T, b O) bool {
	return a.Less(b) || a.Equal(b)
}

// Greater reports that a is neither less than nor equal to b.
func Greater[T Ordered[O], O any](a T, b O) bool {
	return !a.Less(b) && !a.Equal(b)
}

// GreaterOrEqual reports !a.Less(b).
func GreaterOrEqual[T Ordered[O], O any](a T, b O) bool {
	return !a.Less(b)
}
