package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"fano-scheme/fano"
	"fano-scheme/internal/timing"
	"fano-scheme/mpoly"
	"fano-scheme/scheme"
)

var (
	analyzeOut  string
	analyzeFull bool
)

// analyzeCmd runs the bundled worked examples and renders statistics
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the worked classical examples and chart generator statistics",
	Long: `Runs a fixed catalogue of classical Fano computations (points of a conic,
lines in the plane, the Grassmannian G(1,3), lines on a quadric surface),
collects degree and term-count statistics over the resulting Groebner bases,
and writes a JSON summary plus go-echarts bar charts to the output directory.

The 27-lines-on-a-cubic computation is included only with --full; it takes
considerably longer than the rest of the catalogue.

Example:
  fano analyze --out analysis_out
  fano analyze --full`,
	RunE: runAnalyze,
}

type workedExample struct {
	name string
	run  func() (*scheme.Variety, error)
}

// exampleResult is the per-example record of the JSON summary.
type exampleResult struct {
	Name       string `json:"name"`
	Ambient    string `json:"ambient"`
	Generators int    `json:"generators"`
	Dimension  int    `json:"dimension"`
	Degree     string `json:"degree"`
	Digest     string `json:"digest"`
	ElapsedMS  int64  `json:"elapsed_ms"`
}

type summaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	IQR    float64 `json:"iqr"`
}

type analysisReport struct {
	RunID      string          `json:"run_id"`
	Timestamp  string          `json:"timestamp"`
	Examples   []exampleResult `json:"examples"`
	GenDegrees summaryStats    `json:"generator_degrees"`
	GenTerms   summaryStats    `json:"generator_terms"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	runID := uuid.NewString()
	logger.Info("starting analysis", zap.String("run_id", runID), zap.Bool("full", analyzeFull))

	if err := os.MkdirAll(analyzeOut, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", analyzeOut, err)
	}

	catalogue := workedExamples(analyzeFull)
	results := make([]exampleResult, 0, len(catalogue))
	var clock timing.Collector
	var degrees, terms []float64
	for i, ex := range catalogue {
		logger.Info("running example",
			zap.Int("index", i+1),
			zap.Int("total", len(catalogue)),
			zap.String("name", ex.name))
		start := time.Now()
		F, err := ex.run()
		if err != nil {
			return fmt.Errorf("example %s: %w", ex.name, err)
		}
		clock.Track(start, ex.name)
		gb := F.Ideal.Groebner()
		for _, g := range gb {
			degrees = append(degrees, float64(g.TotalDeg()))
			terms = append(terms, float64(g.NumTerms()))
		}
		results = append(results, exampleResult{
			Name:       ex.name,
			Ambient:    fmt.Sprintf("%v", F.Ambient),
			Generators: len(gb),
			Dimension:  F.Dim(),
			Degree:     F.Degree().String(),
			Digest:     F.Ideal.Digest(),
		})
	}
	for i, s := range clock.Drain() {
		results[i].ElapsedMS = s.Elapsed.Milliseconds()
	}

	report := analysisReport{
		RunID:      runID,
		Timestamp:  time.Now().Format(time.RFC3339),
		Examples:   results,
		GenDegrees: summarize(degrees),
		GenTerms:   summarize(terms),
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(analyzeOut, fmt.Sprintf("fano_stats_%s.json", ts))
	if err := saveJSON(jsonPath, report); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}

	page := components.NewPage()
	page.AddCharts(
		newCountChart("Generator total degrees", report.GenDegrees, intCounts(degrees)),
		newCountChart("Generator term counts", report.GenTerms, intCounts(terms)),
	)
	htmlPath := filepath.Join(analyzeOut, fmt.Sprintf("fano_charts_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		return fmt.Errorf("create html: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	logger.Info("analysis complete",
		zap.String("stats", jsonPath),
		zap.String("charts", htmlPath))
	for _, r := range results {
		fmt.Printf("%-24s gens=%-3d dim=%-2d deg=%-4s %dms\n",
			r.Name, r.Generators, r.Dimension, r.Degree, r.ElapsedMS)
	}
	return nil
}

// workedExamples is the catalogue of classical computations. The Fermat cubic
// is gated behind full: its elimination step dominates the whole run.
func workedExamples(full bool) []workedExample {
	ex := []workedExample{
		{"conic-points", func() (*scheme.Variety, error) {
			X, err := varietyFrom([]string{"x0", "x1", "x2"}, []string{"x1^2 - x0*x2"})
			if err != nil {
				return nil, err
			}
			return fano.Scheme(0, X)
		}},
		{"twisted-cubic-points", func() (*scheme.Variety, error) {
			X, err := varietyFrom([]string{"x0", "x1", "x2", "x3"},
				[]string{"x1^2 - x0*x2", "x1*x2 - x0*x3", "x2^2 - x1*x3"})
			if err != nil {
				return nil, err
			}
			return fano.Scheme(0, X)
		}},
		{"lines-in-plane", func() (*scheme.Variety, error) {
			P, err := scheme.NewProjectiveSpace(mpoly.QQ, 2)
			if err != nil {
				return nil, err
			}
			return fano.GrassmannianOf(1, P)
		}},
		{"grassmannian-g13", func() (*scheme.Variety, error) {
			P, err := scheme.NewProjectiveSpace(mpoly.QQ, 3)
			if err != nil {
				return nil, err
			}
			return fano.GrassmannianOf(1, P)
		}},
		{"quadric-lines", func() (*scheme.Variety, error) {
			X, err := varietyFrom([]string{"x0", "x1", "x2", "x3"}, []string{"x0*x3 - x1*x2"})
			if err != nil {
				return nil, err
			}
			return fano.Scheme(1, X)
		}},
	}
	if full {
		ex = append(ex, workedExample{"fermat-cubic-lines", func() (*scheme.Variety, error) {
			X, err := varietyFrom([]string{"x0", "x1", "x2", "x3"},
				[]string{"x0^3 + x1^3 + x2^3 + x3^3"})
			if err != nil {
				return nil, err
			}
			return fano.Scheme(1, X)
		}})
	}
	return ex
}

func varietyFrom(vars, polys []string) (*scheme.Variety, error) {
	in := varietyInput{Variables: vars, Polynomials: polys}
	return buildVariety(&in)
}

// ------------------------------ stats utilities ------------------------------

func summarize(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	q1 := stat.Quantile(0.25, stat.Empirical, cp, nil)
	q3 := stat.Quantile(0.75, stat.Empirical, cp, nil)
	return summaryStats{
		Count:  n,
		Mean:   stat.Mean(cp, nil),
		Std:    stat.StdDev(cp, nil),
		Min:    cp[0],
		Q1:     q1,
		Median: stat.Quantile(0.5, stat.Empirical, cp, nil),
		Q3:     q3,
		Max:    cp[n-1],
		IQR:    q3 - q1,
	}
}

// intCounts buckets integer-valued samples by value.
func intCounts(values []float64) map[int]int {
	counts := make(map[int]int)
	for _, v := range values {
		counts[int(v)]++
	}
	return counts
}

// ------------------------- plotting: go-echarts HTML -------------------------

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newCountChart(title string, stats summaryStats, counts map[int]int) *charts.Bar {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	xLabels := make([]string, len(keys))
	vals := make([]int, len(keys))
	for i, k := range keys {
		xLabels[i] = strconv.Itoa(k)
		vals[i] = counts[k]
	}
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d, mean=%.3f, std=%.3f, median=%.3f, IQR=%.3f",
		stats.Count, stats.Mean, stats.Std, stats.Median, stats.IQR)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", toBarItems(vals)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

// ------------------------------ JSON and I/O ------------------------------

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
