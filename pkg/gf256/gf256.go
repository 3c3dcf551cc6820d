// Package gf256 implements arithmetic in GF(2^8) using the AES irreducible
// polynomial x^8 + x^4 + x^3 + x + 1.
package gf256

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Irreducible is the low byte of the AES polynomial (0x11B).
	Irreducible = 0x1B

	// Order is the number of elements in the field.
	Order = 256
)

var (
	// ErrZeroInverse is returned when the zero element is inverted or divided by.
	ErrZeroInverse = errors.New("zero has no multiplicative inverse in GF(256)")

	// ErrInvalidInput is returned by Parse for malformed hex bytes.
	ErrInvalidInput = errors.New("invalid field element")
)

// Element is a single GF(256) element. Bit i is the coefficient of x^i.
type Element byte

const (
	Zero Element = 0
	One  Element = 1
)

// Add returns a + b. Addition and subtraction coincide in characteristic 2.
func Add(a, b Element) Element {
	return a ^ b
}

// Sub returns a - b.
func Sub(a, b Element) Element {
	return a ^ b
}

// Mul returns a * b using the shift-and-add (Russian peasant) method.
func Mul(a, b Element) Element {
	x, y := byte(a), byte(b)
	var product byte

	for y > 0 {
		if y&1 != 0 {
			product ^= x
		}
		carry := x & 0x80
		x <<= 1
		if carry != 0 {
			x ^= Irreducible
		}
		y >>= 1
	}

	return Element(product)
}

// Add returns e + a.
func (e Element) Add(a Element) Element { return Add(e, a) }

// Sub returns e - a.
func (e Element) Sub(a Element) Element { return Sub(e, a) }

// Neg returns -e, which is e itself.
func (e Element) Neg() Element { return e }

// Mul returns e * a.
func (e Element) Mul(a Element) Element { return Mul(e, a) }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e == Zero }

// Pow returns e^n by square-and-multiply. e^0 is One for every e, zero included.
func (e Element) Pow(n uint) Element {
	result := One
	base := e

	for n > 0 {
		if n&1 != 0 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		n >>= 1
	}

	return result
}

// Inverse returns e^-1. Every nonzero element satisfies e^255 = 1, so the
// inverse is e^254.
func (e Element) Inverse() (Element, error) {
	if e == Zero {
		return Zero, ErrZeroInverse
	}
	return e.Pow(Order - 2), nil
}

// Div returns e / a.
func (e Element) Div(a Element) (Element, error) {
	inv, err := a.Inverse()
	if err != nil {
		return Zero, fmt.Errorf("division by %s: %w", a, err)
	}
	return Mul(e, inv), nil
}

// String renders the element as 0xNN.
func (e Element) String() string {
	return fmt.Sprintf("0x%02X", byte(e))
}

// Parse reads a one or two digit hex byte, with or without a 0x prefix.
func Parse(s string) (Element, error) {
	digits := strings.TrimSpace(s)
	if len(digits) >= 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		digits = digits[2:]
	}
	if len(digits) == 0 || len(digits) > 2 {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}

	v, err := strconv.ParseUint(digits, 16, 8)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	return Element(v), nil
}

// FromBytes converts raw bytes to elements.
func FromBytes(b []byte) []Element {
	out := make([]Element, len(b))
	for i, v := range b {
		out[i] = Element(v)
	}
	return out
}
