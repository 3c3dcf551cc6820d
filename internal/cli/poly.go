package cli

import (
	"fmt"
	"log/slog"

	"github.com/Davincible/gfpoly/internal/validation"
	"github.com/Davincible/gfpoly/pkg/polynomial"
	"github.com/spf13/cobra"
)

// EvaluateResult is the JSON form of a polynomial evaluation.
type EvaluateResult struct {
	Polynomial PolynomialOutput `json:"polynomial"`
	X          string           `json:"x"`
	Value      string           `json:"value"`
}

// NewPolyCommand creates the polynomial command group
func NewPolyCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poly",
		Short: "Polynomial arithmetic over GF(256)",
		Long: `Operations on polynomials with GF(256) coefficients.

Polynomials are given as quoted coefficient lists, constant term first:
"03,05,07" is 0x03 + 0x05x + 0x07x^2. Trailing zero coefficients are kept.`,
	}

	eval := &cobra.Command{
		Use:     "eval coefficients x",
		Short:   "Evaluate a polynomial at x (Horner's method)",
		Example: `  gfpoly poly eval "03,05,07" 02`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePolynomial(args[0])
			if err != nil {
				return err
			}
			x, err := validation.ParseElement(args[1])
			if err != nil {
				return fmt.Errorf("invalid x: %w", err)
			}

			v := p.Evaluate(x)
			slog.Debug("Evaluated polynomial", "poly", p.String(), "x", x.String(), "value", v.String())

			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), EvaluateResult{
					Polynomial: newPolynomialOutput(p),
					X:          x.String(),
					Value:      v.String(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}

	binary := func(use, short string, op func(p, q polynomial.Polynomial) polynomial.Polynomial) *cobra.Command {
		return &cobra.Command{
			Use:   use + " p q",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := parsePolynomial(args[0])
				if err != nil {
					return fmt.Errorf("first operand: %w", err)
				}
				q, err := parsePolynomial(args[1])
				if err != nil {
					return fmt.Errorf("second operand: %w", err)
				}
				return reportPolynomial(cmd, opts, op(p, q))
			},
		}
	}

	scale := &cobra.Command{
		Use:   "scale p s",
		Short: "Multiply every coefficient by s",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePolynomial(args[0])
			if err != nil {
				return err
			}
			s, err := validation.ParseElement(args[1])
			if err != nil {
				return fmt.Errorf("invalid scalar: %w", err)
			}
			return reportPolynomial(cmd, opts, p.Scale(s))
		},
	}

	cmd.AddCommand(
		eval,
		binary("add", "Add two polynomials", polynomial.Polynomial.Add),
		binary("mul", "Multiply two polynomials", polynomial.Polynomial.Mul),
		scale,
	)

	return cmd
}

func reportPolynomial(cmd *cobra.Command, opts *Options, p polynomial.Polynomial) error {
	if opts.JSON {
		return writeJSON(cmd.OutOrStdout(), newPolynomialOutput(p))
	}
	fmt.Fprintln(cmd.OutOrStdout(), p)
	return nil
}
