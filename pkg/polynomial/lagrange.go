package polynomial

import (
	"errors"
	"fmt"

	"github.com/Davincible/gfpoly/pkg/gf256"
)

var (
	ErrLengthMismatch = errors.New("x and y sample counts differ")
	ErrDuplicatePoint = errors.New("sample x-coordinates are not distinct")
	ErrIndexRange     = errors.New("basis index out of range")
)

// LagrangeBasis returns l_i, the polynomial that is one at xs[i] and zero at
// every other sample x-coordinate.
func LagrangeBasis(i int, xs []gf256.Element) (Polynomial, error) {
	if i < 0 || i >= len(xs) {
		return Polynomial{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexRange, i, len(xs))
	}

	numer := New(gf256.One)
	denom := gf256.One
	xi := xs[i]

	for j, xj := range xs {
		if j == i {
			continue
		}
		// (x - x_j)
		numer = numer.Mul(New(xj.Neg(), gf256.One))
		denom = denom.Mul(xi.Sub(xj))
	}

	inv, err := denom.Inverse()
	if err != nil {
		return Polynomial{}, fmt.Errorf("basis %d: %w: %w", i, ErrDuplicatePoint, err)
	}
	return numer.Scale(inv), nil
}

// Interpolate returns the unique polynomial of degree < len(xs) passing
// through every (xs[i], ys[i]). With no samples the result is Zero().
func Interpolate(xs, ys []gf256.Element) (Polynomial, error) {
	if err := checkSamples(xs, ys); err != nil {
		return Polynomial{}, err
	}

	result := Zero()
	for i := range xs {
		li, err := LagrangeBasis(i, xs)
		if err != nil {
			return Polynomial{}, err
		}
		result = result.Add(li.Scale(ys[i]))
	}
	return result, nil
}

// InterpolateAt evaluates the interpolating polynomial of the samples at x
// without building it. InterpolateAt(xs, ys, 0) recovers the constant term,
// which is how Shamir secrets are reconstructed.
func InterpolateAt(xs, ys []gf256.Element, x gf256.Element) (gf256.Element, error) {
	if err := checkSamples(xs, ys); err != nil {
		return gf256.Zero, err
	}

	sum := gf256.Zero
	for i, xi := range xs {
		numer, denom := gf256.One, gf256.One
		for j, xj := range xs {
			if i == j {
				continue
			}
			numer = numer.Mul(x.Sub(xj))
			denom = denom.Mul(xi.Sub(xj))
		}

		weight, err := numer.Div(denom)
		if err != nil {
			return gf256.Zero, fmt.Errorf("sample %d: %w: %w", i, ErrDuplicatePoint, err)
		}
		sum = sum.Add(ys[i].Mul(weight))
	}
	return sum, nil
}

func checkSamples(xs, ys []gf256.Element) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}

	seen := make(map[gf256.Element]int, len(xs))
	for i, x := range xs {
		if j, ok := seen[x]; ok {
			return fmt.Errorf("%w: xs[%d] and xs[%d] are both %s", ErrDuplicatePoint, j, i, x)
		}
		seen[x] = i
	}
	return nil
}
