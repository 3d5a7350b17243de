package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger shared by all subcommands
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fano",
	Short: "fano - Fano schemes of projective varieties in Pluecker coordinates",
	Long: `fano computes the scheme of k-dimensional linear subspaces contained in a
projective variety, presented as a closed subscheme of the Grassmannian in
its Pluecker embedding. All arithmetic is exact over the rationals.

Varieties are described in YAML (see 'fano compute --help') or built
programmatically by an interpreted Go script (see 'fano script --help').`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Compute flags
	computeCmd.Flags().StringVarP(&computeFile, "file", "f", "", "YAML variety definition (required)")
	computeCmd.Flags().IntVar(&computeK, "k", 0, "Plane dimension (overrides the YAML value)")
	computeCmd.Flags().StringVar(&computeOut, "out", "", "Write the resulting ideal to this file")
	computeCmd.Flags().BoolVar(&computeInvariants, "invariants", false, "Also print dimension and degree")
	computeCmd.Flags().BoolVar(&computeComponents, "components", false, "Also print the component decomposition")
	computeCmd.MarkFlagRequired("file")

	// Grassmannian flags
	grassmannianCmd.Flags().IntVar(&grassK, "k", 1, "Plane dimension k")
	grassmannianCmd.Flags().IntVar(&grassN, "n", 3, "Dimension n of the ambient projective space")
	grassmannianCmd.Flags().BoolVar(&grassInvariants, "invariants", false, "Also print dimension and degree")

	// Script flags
	scriptCmd.Flags().StringVar(&computeOut, "out", "", "Write the resulting ideal to this file")

	// Analyze flags
	analyzeCmd.Flags().StringVar(&analyzeOut, "out", "analysis_out", "Output directory for charts and stats")
	analyzeCmd.Flags().BoolVar(&analyzeFull, "full", false, "Include the expensive worked examples")

	// Add commands to root
	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(grassmannianCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
