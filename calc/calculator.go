// Package calc contains a trivial calculator used by the example tests to
// demonstrate table-driven parametrization and error assertions.
package calc

import "errors"

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("cannot divide by zero")

// Calculator performs basic arithmetic. It is stateless; the zero value is
// ready to use.
type Calculator struct{}

func (Calculator) Add(a, b float64) float64 { return a + b }

func (Calculator) Subtract(a, b float64) float64 { return a - b }

func (Calculator) Multiply(a, b float64) float64 { return a * b }

// Divide returns a/b, or ErrDivideByZero when b is zero.
func (Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}
