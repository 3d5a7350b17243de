package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"fano-scheme/fano"
	"fano-scheme/ideal"
	"fano-scheme/mpoly"
	"fano-scheme/scheme"
)

var (
	computeFile       string
	computeK          int
	computeOut        string
	computeInvariants bool
	computeComponents bool
)

// varietyInput is the YAML shape accepted by 'fano compute' and returned by
// 'fano script' definitions.
type varietyInput struct {
	Field       string   `yaml:"field"`
	Variables   []string `yaml:"variables"`
	Polynomials []string `yaml:"polynomials"`
	K           int      `yaml:"k"`
	AmbientDim  *int     `yaml:"ambient_dim"`
}

// computeCmd runs the Fano pipeline on a YAML variety definition
var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute the Fano scheme of a variety described in YAML",
	Long: `Reads a projective variety from a YAML file, runs the Fano pipeline for the
requested plane dimension k, and prints the resulting ideal in Pluecker
coordinates together with its digest.

The YAML file looks like:

  field: QQ
  variables: [x0, x1, x2, x3]
  polynomials:
    - x0*x3 - x1*x2
  k: 1
  ambient_dim: 5   # optional, must equal C(n, k+1) - 1 for n variables

Example:
  fano compute -f quadric.yaml
  fano compute -f quadric.yaml --k 1 --invariants --out lines.txt`,
	RunE: runCompute,
}

// runCompute decodes the input file and runs the pipeline
func runCompute(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(computeFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", computeFile, err)
	}
	var in varietyInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parse %s: %w", computeFile, err)
	}
	if cmd.Flags().Changed("k") {
		in.K = computeK
	}
	return computeAndReport(&in)
}

// computeAndReport runs the pipeline on a decoded definition and prints the
// result. Shared by the compute and script subcommands.
func computeAndReport(in *varietyInput) error {
	X, err := buildVariety(in)
	if err != nil {
		return err
	}
	logger.Info("computing fano scheme",
		zap.Int("k", in.K),
		zap.String("variety", X.String()))

	var F *scheme.Variety
	if in.AmbientDim != nil {
		gr, gerr := scheme.NewProjectiveSpace(X.Ambient.BaseField(), *in.AmbientDim)
		if gerr != nil {
			return fmt.Errorf("grassmannian ambient: %w", gerr)
		}
		F, err = fano.SchemeIn(in.K, X, gr)
	} else {
		F, err = fano.Scheme(in.K, X)
	}
	if err != nil {
		return err
	}
	logger.Debug("pipeline finished",
		zap.Int("generators", len(F.Ideal.Groebner())),
		zap.String("digest", F.Ideal.Digest()))

	fmt.Printf("Fano scheme F_%d(X)\n", in.K)
	fmt.Printf("  ambient: %v\n", F.Ambient)
	fmt.Printf("  ideal:   %s\n", F.Ideal.FormatGroebner())
	fmt.Printf("  digest:  %s\n", F.Ideal.Digest())
	if computeInvariants {
		fmt.Printf("  dimension: %d\n", F.Dim())
		fmt.Printf("  degree:    %v\n", F.Degree())
	}
	if computeComponents {
		comps := F.Components()
		fmt.Printf("  components: %d\n", len(comps))
		for i, C := range comps {
			fmt.Printf("    [%d] %s\n", i+1, C.Ideal.FormatGroebner())
		}
	}
	if computeOut != "" {
		if err := writeIdealFile(computeOut, F); err != nil {
			return fmt.Errorf("write %s: %w", computeOut, err)
		}
		logger.Info("wrote ideal", zap.String("path", computeOut))
	}
	return nil
}

// buildVariety turns a decoded definition into a projective variety
func buildVariety(in *varietyInput) (*scheme.Variety, error) {
	if in.Field != "" && in.Field != mpoly.QQ.Name() {
		return nil, fmt.Errorf("unsupported base field %q (only %s is available)", in.Field, mpoly.QQ.Name())
	}
	if len(in.Variables) == 0 {
		return nil, fmt.Errorf("no variables given")
	}
	P, err := scheme.NewProjectiveSpaceNamed(mpoly.QQ, in.Variables)
	if err != nil {
		return nil, err
	}
	I, err := ideal.Parse(P.CoordinateRing(), in.Polynomials)
	if err != nil {
		return nil, err
	}
	return scheme.New(P, I)
}

// writeIdealFile writes the reduced Groebner basis of the result, one
// generator per line, with the ambient and digest as header comments.
func writeIdealFile(path string, F *scheme.Variety) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# ambient: %v\n", F.Ambient)
	fmt.Fprintf(&b, "# digest: %s\n", F.Ideal.Digest())
	for _, g := range F.Ideal.Groebner() {
		b.WriteString(F.Ideal.Ring.Format(g))
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
