package cli

import (
	"log/slog"
	"os"

	"github.com/Davincible/gfpoly/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree with defaults taken from cfg.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	opts := &Options{
		JSON:        cfg.UI.JSONOutput,
		NoColor:     !cfg.UI.UseColor,
		Verify:      cfg.Defaults.VerifyInterpolation,
		Interactive: cfg.Defaults.Interactive,
	}

	rootCmd := &cobra.Command{
		Use:   "gfpoly",
		Short: "GF(2^8) arithmetic and polynomial interpolation",
		Long: `gfpoly computes in the finite field GF(2^8) defined by the AES polynomial
x^8 + x^4 + x^3 + x + 1, and with polynomials over that field.

Features:
- Field addition, multiplication, division, powers and inverses
- Polynomial evaluation, addition, multiplication and scaling
- Lagrange interpolation, the primitive behind Shamir secret sharing
  and Reed-Solomon erasure coding`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.NoColor {
				color.NoColor = true
			}
			if opts.Verbose {
				slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	rootCmd.AddCommand(
		NewCalcCommand(opts),
		NewFieldCommand(opts),
		NewPolyCommand(opts),
		NewInterpolateCommand(opts),
		NewExampleCommand(),
	)

	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&opts.JSON, "json", "j", opts.JSON, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", opts.NoColor, "Disable colored output")

	return rootCmd
}
