// Package checked provides signed integer arithmetic that reports overflow
// instead of wrapping.
package checked

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned when a result cannot be represented in the target
// integer type.
var ErrOverflow = errors.New("integer overflow")

// Add returns a + b.
func Add[T constraints.Signed](a, b T) (T, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return c, nil
}

// Sub returns a - b.
func Sub[T constraints.Signed](a, b T) (T, error) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return c, nil
}

// Mul returns a * b.
func Mul[T constraints.Signed](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// x == -x only for zero and the most negative value, which has no
	// positive counterpart.
	if (a == -1 && b == -b) || (b == -1 && a == -a) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	c := a * b
	if c/b != a {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return c, nil
}

// Narrow converts v to To, failing if the value does not survive the
// conversion.
func Narrow[To, From constraints.Signed](v From) (To, error) {
	n := To(v)
	if From(n) != v {
		var zero To
		return zero, fmt.Errorf("%w: %d does not fit in %T", ErrOverflow, v, zero)
	}
	return n, nil
}

// FloorDiv returns the quotient rounded toward negative infinity and the
// non-negative remainder of a / b. b must be positive.
func FloorDiv[T constraints.Signed](a, b T) (T, T) {
	q, r := a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
