package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const quadricYAML = `field: QQ
variables: [x0, x1, x2, x3]
polynomials:
  - x0*x3 - x1*x2
k: 1
`

const fermatScript = `package main

import "fmt"

func Define() (map[string]any, error) {
	n := 4
	vars := make([]string, n)
	terms := make([]string, n)
	for i := 0; i < n; i++ {
		vars[i] = fmt.Sprintf("x%d", i)
		terms[i] = fmt.Sprintf("x%d^3", i)
	}
	return map[string]any{
		"variables":   vars,
		"polynomials": []string{terms[0] + " + " + terms[1] + " + " + terms[2] + " + " + terms[3]},
		"k":           1,
	}, nil
}`

func TestBuildVarietyFromYAML(t *testing.T) {
	var in varietyInput
	if err := yaml.Unmarshal([]byte(quadricYAML), &in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if in.K != 1 {
		t.Fatalf("k: got %d, want 1", in.K)
	}
	X, err := buildVariety(&in)
	if err != nil {
		t.Fatalf("buildVariety: %v", err)
	}
	if X.Ambient.Dimension() != 3 {
		t.Fatalf("ambient dimension: got %d, want 3", X.Ambient.Dimension())
	}
	// Grevlex puts x1*x2 ahead of x0*x3, so the raw generator prints with
	// its negative term first.
	if got := X.Ideal.Format(); got != "(-x1*x2 + x0*x3)" {
		t.Fatalf("ideal: got %s", got)
	}
}

func TestBuildVarietyRejectsBadInput(t *testing.T) {
	if _, err := buildVariety(&varietyInput{Field: "GF(7)", Variables: []string{"x"}}); err == nil {
		t.Fatal("expected error for unsupported field")
	}
	if _, err := buildVariety(&varietyInput{}); err == nil {
		t.Fatal("expected error for missing variables")
	}
	in := varietyInput{Variables: []string{"x0", "x1"}, Polynomials: []string{"x0 +"}}
	if _, err := buildVariety(&in); err == nil {
		t.Fatal("expected error for malformed polynomial")
	}
}

func TestLoadScriptInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fermat.go")
	if err := os.WriteFile(path, []byte(fermatScript), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	in, err := loadScriptInput(path)
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	if in.K != 1 {
		t.Fatalf("k: got %d, want 1", in.K)
	}
	if len(in.Variables) != 4 || in.Variables[3] != "x3" {
		t.Fatalf("variables: got %v", in.Variables)
	}
	if len(in.Polynomials) != 1 || !strings.Contains(in.Polynomials[0], "x0^3") {
		t.Fatalf("polynomials: got %v", in.Polynomials)
	}
}

func TestLoadScriptInputMissingFunc(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if _, err := loadScriptInput(path); err == nil {
		t.Fatal("expected error for missing Define function")
	}
}

func TestComputeAndReportWritesIdeal(t *testing.T) {
	logger = zap.NewNop()
	out := filepath.Join(t.TempDir(), "conic.txt")
	computeOut = out
	defer func() { computeOut = "" }()

	in := varietyInput{
		Variables:   []string{"x0", "x1", "x2"},
		Polynomials: []string{"x1^2 - x0*x2"},
		K:           0,
	}
	if err := computeAndReport(&in); err != nil {
		t.Fatalf("computeAndReport: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "# ambient: P^2 over QQ") {
		t.Errorf("missing ambient header:\n%s", text)
	}
	if !strings.Contains(text, "p1^2 - p0*p2") {
		t.Errorf("missing generator:\n%s", text)
	}
}

func TestWorkedExamplesCatalogue(t *testing.T) {
	base := workedExamples(false)
	full := workedExamples(true)
	if len(full) != len(base)+1 {
		t.Fatalf("full catalogue: got %d, want %d", len(full), len(base)+1)
	}
	seen := make(map[string]bool)
	for _, ex := range full {
		if seen[ex.name] {
			t.Fatalf("duplicate example name %s", ex.name)
		}
		seen[ex.name] = true
	}
	if !seen["fermat-cubic-lines"] {
		t.Fatal("full catalogue misses fermat-cubic-lines")
	}
}

func TestSummarize(t *testing.T) {
	s := summarize([]float64{2, 2, 3, 5})
	if s.Count != 4 {
		t.Fatalf("count: got %d", s.Count)
	}
	if s.Min != 2 || s.Max != 5 {
		t.Fatalf("range: got [%v, %v]", s.Min, s.Max)
	}
	if s.Mean != 3 {
		t.Fatalf("mean: got %v", s.Mean)
	}
	counts := intCounts([]float64{2, 2, 3, 5})
	if counts[2] != 2 || counts[3] != 1 || counts[5] != 1 {
		t.Fatalf("counts: got %v", counts)
	}
}
