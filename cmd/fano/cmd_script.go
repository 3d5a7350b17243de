package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const scriptFuncName = "Define"

// scriptCmd builds the input variety with an interpreted Go script
var scriptCmd = &cobra.Command{
	Use:   "script [file.go]",
	Short: "Build the input variety with an interpreted Go script",
	Long: `Evaluates a Go source file with the yaegi interpreter. The script must define

  func Define() (map[string]any, error)

returning the same keys as the YAML input of 'fano compute' (field, variables,
polynomials, k, ambient_dim). Useful for families of inputs that are tedious
to write by hand, e.g. Fermat hypersurfaces of varying degree.

Example:
  fano script fermat.go`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func runScript(cmd *cobra.Command, args []string) error {
	logger.Info("evaluating script", zap.String("path", args[0]))
	in, err := loadScriptInput(args[0])
	if err != nil {
		return err
	}
	return computeAndReport(in)
}

// loadScriptInput interprets path and collects the definition declared via Define().
func loadScriptInput(path string) (*varietyInput, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(code))) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	i := interp.New(interp.Options{})
	i.Use(stdlib.Symbols)
	if _, err := i.EvalPath(path); err != nil {
		return nil, fmt.Errorf("interpret %s: %w", path, err)
	}
	fnValue, err := i.Eval(scriptFuncName)
	if err != nil {
		return nil, fmt.Errorf("%s must define %s() (map[string]any, error): %w", path, scriptFuncName, err)
	}
	raw, callErr := invokeDefine(fnValue)
	if callErr != nil {
		return nil, fmt.Errorf("%s: %w", path, callErr)
	}
	// Round-trip through YAML so script output decodes exactly like a file.
	payload, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: encode definition: %w", path, err)
	}
	var in varietyInput
	if err := yaml.Unmarshal(payload, &in); err != nil {
		return nil, fmt.Errorf("%s: decode definition: %w", path, err)
	}
	return &in, nil
}

func invokeDefine(value reflect.Value) (map[string]any, error) {
	if !value.IsValid() {
		return nil, fmt.Errorf("missing %s function", scriptFuncName)
	}
	if value.Kind() != reflect.Func {
		return nil, fmt.Errorf("%s is not a function", scriptFuncName)
	}
	results := value.Call(nil)
	if len(results) == 0 || len(results) > 2 {
		return nil, fmt.Errorf("%s must return (map[string]any[, error])", scriptFuncName)
	}
	if len(results) == 2 && !results[1].IsNil() {
		if e, ok := results[1].Interface().(error); ok && e != nil {
			return nil, e
		}
		return nil, fmt.Errorf("%s returned non-error second value", scriptFuncName)
	}
	def, ok := results[0].Interface().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must return map[string]any", scriptFuncName)
	}
	return def, nil
}
