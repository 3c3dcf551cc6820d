package cli

import (
	"fmt"
	"log/slog"

	"github.com/Davincible/gfpoly/internal/validation"
	"github.com/Davincible/gfpoly/pkg/gf256"
	"github.com/Davincible/gfpoly/pkg/polynomial"
	"github.com/spf13/cobra"
)

// InterpolateResult is the JSON form of an interpolation.
type InterpolateResult struct {
	Xs         []string         `json:"xs"`
	Ys         []string         `json:"ys"`
	Polynomial PolynomialOutput `json:"polynomial"`
	At         string           `json:"at,omitempty"`
	Value      string           `json:"value,omitempty"`
	Verified   bool             `json:"verified"`
}

// NewInterpolateCommand creates the Lagrange interpolation command
func NewInterpolateCommand(opts *Options) *cobra.Command {
	var (
		xsFlag string
		ysFlag string
		atFlag string
	)

	cmd := &cobra.Command{
		Use:   "interpolate",
		Short: "Recover the polynomial through a set of sample points",
		Long: `Run Lagrange interpolation over GF(256) and print the unique polynomial of
degree < n that passes through the n given points. The x values must be
distinct.`,
		Example: `  gfpoly interpolate --x 01,02,03 --y 05,09,11

  # Recover a Shamir secret byte (the value at x = 0)
  gfpoly interpolate --x 01,02,03 --y 05,09,11 --at 00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := validation.ParseElements(xsFlag)
			if err != nil {
				return fmt.Errorf("invalid --x: %w", err)
			}
			ys, err := validation.ParseElements(ysFlag)
			if err != nil {
				return fmt.Errorf("invalid --y: %w", err)
			}

			result, p, err := interpolate(xs, ys, atFlag, opts.Verify)
			if err != nil {
				return err
			}

			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			w := cmd.OutOrStdout()
			printHeading(w, "Lagrange Interpolation")
			printField(w, "points", fmt.Sprintf("%d", len(xs)))
			printPolynomial(w, "P(x)", p)
			if result.At != "" {
				printField(w, "P("+result.At+")", result.Value)
			}
			if result.Verified {
				fmt.Fprintln(w)
				printSuccess(w, "Polynomial reproduces every sample point")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&xsFlag, "x", "", "comma separated x coordinates (hex)")
	cmd.Flags().StringVar(&ysFlag, "y", "", "comma separated y values (hex)")
	cmd.Flags().StringVar(&atFlag, "at", "", "also evaluate the result at this point")
	cmd.Flags().BoolVar(&opts.Verify, "verify", opts.Verify, "re-evaluate every sample after interpolating")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

func interpolate(xs, ys []gf256.Element, at string, verify bool) (InterpolateResult, polynomial.Polynomial, error) {
	var none polynomial.Polynomial

	if err := validation.ValidatePoints(xs); err != nil {
		return InterpolateResult{}, none, fmt.Errorf("invalid sample set: %w", err)
	}

	p, err := polynomial.Interpolate(xs, ys)
	if err != nil {
		return InterpolateResult{}, none, fmt.Errorf("interpolation failed: %w", err)
	}
	slog.Debug("Interpolated polynomial", "points", len(xs), "degree", p.Degree())

	result := InterpolateResult{
		Xs:         hexList(xs),
		Ys:         hexList(ys),
		Polynomial: newPolynomialOutput(p),
	}

	if verify {
		for i := range xs {
			if got := p.Evaluate(xs[i]); got != ys[i] {
				return InterpolateResult{}, none, fmt.Errorf("verification failed: P(%s) = %s, expected %s",
					xs[i], got, ys[i])
			}
		}
		result.Verified = true
	}

	if at != "" {
		x, err := validation.ParseElement(at)
		if err != nil {
			return InterpolateResult{}, none, fmt.Errorf("invalid --at: %w", err)
		}
		v, err := polynomial.InterpolateAt(xs, ys, x)
		if err != nil {
			return InterpolateResult{}, none, fmt.Errorf("interpolation failed: %w", err)
		}
		result.At = x.String()
		result.Value = v.String()
	}

	return result, p, nil
}
