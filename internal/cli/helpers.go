package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Davincible/gfpoly/internal/validation"
	"github.com/Davincible/gfpoly/pkg/gf256"
	"github.com/Davincible/gfpoly/pkg/polynomial"
	"github.com/fatih/color"
)

// Options holds settings shared by every command, filled from the config
// file and overridden by persistent flags.
type Options struct {
	JSON        bool
	NoColor     bool
	Verbose     bool
	Verify      bool
	Interactive bool
}

// PolynomialOutput is the JSON form of a polynomial.
type PolynomialOutput struct {
	Coefficients []string `json:"coefficients"`
	Degree       int      `json:"degree"`
	Display      string   `json:"display"`
}

func newPolynomialOutput(p polynomial.Polynomial) PolynomialOutput {
	return PolynomialOutput{
		Coefficients: hexList(p.Coefficients()),
		Degree:       p.Degree(),
		Display:      p.String(),
	}
}

func hexList(elems []gf256.Element) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.String()
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// parseElementArgs parses each argument as a single field element.
func parseElementArgs(args []string) ([]gf256.Element, error) {
	elems := make([]gf256.Element, len(args))
	for i, arg := range args {
		e, err := validation.ParseElement(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		elems[i] = e
	}
	return elems, nil
}

// parsePolynomial parses a coefficient list, constant term first.
func parsePolynomial(input string) (polynomial.Polynomial, error) {
	coeffs, err := validation.ParseElements(input)
	if err != nil {
		return polynomial.Polynomial{}, fmt.Errorf("invalid coefficients: %w", err)
	}
	return polynomial.New(coeffs...), nil
}

func printHeading(w io.Writer, title string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(w)
	cyan.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
}

func printField(w io.Writer, label, value string) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(w, "%-12s", label+":")
	fmt.Fprintf(w, " %s\n", value)
}

func printPolynomial(w io.Writer, label string, p polynomial.Polynomial) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(w, "%-12s", label+":")
	fmt.Fprintf(w, " %s\n", p)
	fmt.Fprintf(w, "%-12s  [%s] (degree %d)\n", "", strings.Join(hexList(p.Coefficients()), " "), p.Degree())
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprintln(w, "✓ "+msg)
}
