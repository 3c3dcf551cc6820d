package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Davincible/gfpoly/pkg/gf256"
)

var hexPattern = regexp.MustCompile(`^(0[xX])?[0-9a-fA-F]{1,2}$`)

// ValidateHex checks that input is a single hex byte.
func ValidateHex(input string) error {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return fmt.Errorf("hex byte cannot be empty")
	}

	if !hexPattern.MatchString(input) {
		return fmt.Errorf("invalid hex byte %q (expected 00-ff, optional 0x prefix)", input)
	}

	return nil
}

// ParseElement parses a single hex byte into a field element.
func ParseElement(input string) (gf256.Element, error) {
	if err := ValidateHex(input); err != nil {
		return gf256.Zero, err
	}

	e, err := gf256.Parse(input)
	if err != nil {
		return gf256.Zero, fmt.Errorf("failed to parse field element: %w", err)
	}

	return e, nil
}

// ParseElements parses a comma and/or whitespace separated list of hex bytes.
func ParseElements(input string) ([]gf256.Element, error) {
	fields := SplitList(input)
	if len(fields) == 0 {
		return nil, fmt.Errorf("element list cannot be empty")
	}

	elems := make([]gf256.Element, len(fields))
	for i, f := range fields {
		e, err := ParseElement(f)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i+1, err)
		}
		elems[i] = e
	}

	return elems, nil
}

// SplitList splits on commas and whitespace, dropping empty fields.
func SplitList(input string) []string {
	return strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// ValidatePoints rejects an empty sample set. Length and distinctness are
// checked by polynomial.Interpolate.
func ValidatePoints(xs []gf256.Element) error {
	if len(xs) == 0 {
		return fmt.Errorf("at least one sample point is required")
	}
	return nil
}
