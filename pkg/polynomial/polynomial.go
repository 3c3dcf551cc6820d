// Package polynomial implements polynomials with coefficients in GF(256).
//
// Coefficients are stored in ascending power order, index 0 being the
// constant term. Polynomials are never trimmed implicitly: trailing zero
// coefficients survive every operation, and Trim must be called to obtain
// the canonical form.
package polynomial

import (
	"strconv"
	"strings"

	"github.com/Davincible/gfpoly/pkg/gf256"
)

// Polynomial is an immutable polynomial over GF(256).
type Polynomial struct {
	coeffs []gf256.Element
}

// New copies coeffs into a new polynomial.
func New(coeffs ...gf256.Element) Polynomial {
	c := make([]gf256.Element, len(coeffs))
	copy(c, coeffs)
	return Polynomial{coeffs: c}
}

// FromBytes builds a polynomial whose coefficients are the given bytes.
func FromBytes(b []byte) Polynomial {
	return Polynomial{coeffs: gf256.FromBytes(b)}
}

// Zero returns the zero polynomial with a single zero coefficient.
func Zero() Polynomial {
	return Polynomial{coeffs: []gf256.Element{gf256.Zero}}
}

// Len returns the number of stored coefficients, trailing zeros included.
func (p Polynomial) Len() int {
	return len(p.coeffs)
}

// Degree returns the true degree, ignoring zero leading coefficients.
// The zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if !p.coeffs[i].IsZero() {
			return i
		}
	}
	return -1
}

// IsZero reports whether every coefficient is zero.
func (p Polynomial) IsZero() bool {
	return p.Degree() < 0
}

// Coefficients returns a copy of the coefficient slice.
func (p Polynomial) Coefficients() []gf256.Element {
	c := make([]gf256.Element, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// Coefficient returns the coefficient of x^i, or zero past the end.
func (p Polynomial) Coefficient(i int) gf256.Element {
	if i < 0 || i >= len(p.coeffs) {
		return gf256.Zero
	}
	return p.coeffs[i]
}

// Trim returns p without trailing zero coefficients.
func (p Polynomial) Trim() Polynomial {
	return New(p.coeffs[:p.Degree()+1]...)
}

// Equal reports whether p and q are the same polynomial, treating missing
// coefficients as zero.
func (p Polynomial) Equal(q Polynomial) bool {
	n := max(len(p.coeffs), len(q.coeffs))
	for i := 0; i < n; i++ {
		if p.Coefficient(i) != q.Coefficient(i) {
			return false
		}
	}
	return true
}

// Evaluate returns p(x) using Horner's method.
func (p Polynomial) Evaluate(x gf256.Element) gf256.Element {
	result := gf256.Zero
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coeffs[i])
	}
	return result
}

// Add returns p + q, as long as the longer operand.
func (p Polynomial) Add(q Polynomial) Polynomial {
	out := make([]gf256.Element, max(len(p.coeffs), len(q.coeffs)))
	for i, c := range p.coeffs {
		out[i] = out[i].Add(c)
	}
	for i, c := range q.coeffs {
		out[i] = out[i].Add(c)
	}
	return Polynomial{coeffs: out}
}

// Mul returns p * q with len(p)+len(q)-1 coefficients. A polynomial with no
// coefficients absorbs: the product is then also empty.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Polynomial{coeffs: []gf256.Element{}}
	}

	out := make([]gf256.Element, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return Polynomial{coeffs: out}
}

// Scale returns p with every coefficient multiplied by s.
func (p Polynomial) Scale(s gf256.Element) Polynomial {
	out := make([]gf256.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Mul(s)
	}
	return Polynomial{coeffs: out}
}

// String renders the nonzero terms in ascending order, e.g.
// "0x03 + 0x05x^1 + 0x07x^2". The zero polynomial renders as "0".
func (p Polynomial) String() string {
	terms := make([]string, 0, len(p.coeffs))
	for i, c := range p.coeffs {
		if c.IsZero() {
			continue
		}
		if i == 0 {
			terms = append(terms, c.String())
		} else {
			terms = append(terms, c.String()+"x^"+strconv.Itoa(i))
		}
	}

	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}
