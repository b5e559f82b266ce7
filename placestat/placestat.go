// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package placestat compares the measured performance of competing
// VM-placement algorithms and formats the comparison as text, CSV, or
// HTML tables.
//
// Each algorithm contributes one placefmt.ResultSet. With exactly two
// result sets every shared metric is compared with a two-sample test
// and annotated with a percent delta; with three or more, a
// Kruskal-Wallis test across all algorithms is run per metric. The
// statistics come from package placemath.
package placestat

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/vmplace/placeperf/placefmt"
	"github.com/vmplace/placeperf/placemath"
)

// A Test names the two-sample significance test applied per metric.
type Test string

const (
	// TTest is the unpaired pooled-variance Student's t-test.
	TTest Test = "ttest"

	// Wilcoxon is the Wilcoxon signed-rank test. It treats the
	// runs of the two algorithms as paired by position, so both
	// result sets must have the same number of runs per metric.
	Wilcoxon Test = "wilcoxon"

	// UTest is the Mann-Whitney U-test.
	UTest Test = "utest"
)

// A Collection accumulates result sets and the comparison options.
type Collection struct {
	// Alpha is the p-value cutoff to report a change as
	// significant. If zero, it defaults to 0.05.
	Alpha float64

	// Test selects the two-sample significance test. If empty, it
	// defaults to TTest. It is ignored with three or more result
	// sets, which always use Kruskal-Wallis.
	Test Test

	// Correction, if non-empty, adjusts the per-metric p-values of
	// a table for multiple comparisons before deciding
	// significance.
	Correction placemath.Method

	results []*placefmt.ResultSet
}

// AddResultSet adds one algorithm's measurements to the collection.
func (c *Collection) AddResultSet(rs *placefmt.ResultSet) {
	c.results = append(c.results, rs)
}

// A Table is the comparison of all added result sets, one row per
// metric.
type Table struct {
	// Configs are the result-set names in the order added.
	Configs []string

	// OldNewDelta is true when exactly two result sets were
	// compared and the rows carry delta columns.
	OldNewDelta bool

	Rows []*Row
}

// A Row compares one metric across all configurations.
type Row struct {
	Metric string

	// Means, Spreads, and Counts hold the per-configuration mean,
	// standard deviation, and run count, parallel to
	// Table.Configs.
	Means   []float64
	Spreads []float64
	Counts  []int

	// P is the raw p-value of the significance test and PAdj the
	// corrected one (NaN when no correction was requested or the
	// test did not run).
	P    float64
	PAdj float64

	// Significant reports the decision at the collection's alpha,
	// using the corrected p-value when present.
	Significant bool

	// EffectD is Cohen's d of the first two configurations (NaN
	// when undefined or more than two configurations).
	EffectD float64

	// Delta is the formatted percent change of the second
	// configuration's mean against the first, or "~" when the
	// difference is not significant. Empty without a delta column.
	Delta string

	// Note carries the test diagnostics, e.g. "(p=0.016 n=10+10)",
	// or the reason the row has no statistics.
	Note string
}

func (c *Collection) alpha() float64 {
	if c.Alpha == 0 {
		return 0.05
	}
	return c.Alpha
}

// Table compares all added result sets. It needs at least two.
func (c *Collection) Table() (*Table, error) {
	if len(c.results) < 2 {
		return nil, fmt.Errorf("have %d result sets, need at least 2", len(c.results))
	}
	thr := placemath.DefaultThresholds
	thr.Alpha = c.alpha()

	t := &Table{OldNewDelta: len(c.results) == 2}
	for _, rs := range c.results {
		t.Configs = append(t.Configs, rs.Name)
	}

	for _, metric := range c.metricNames() {
		row := &Row{Metric: metric, P: math.NaN(), PAdj: math.NaN(), EffectD: math.NaN()}
		samples, ok := c.gather(metric, row)
		t.Rows = append(t.Rows, row)
		if !ok {
			continue
		}
		if t.OldNewDelta {
			c.compareTwo(row, samples[0], samples[1], &thr)
		} else {
			c.compareMany(row, samples, &thr)
		}
	}

	if c.Correction != "" {
		if err := c.applyCorrection(t); err != nil {
			return nil, err
		}
	}
	for _, row := range t.Rows {
		if t.OldNewDelta && !math.IsNaN(row.P) {
			row.Delta = formatDelta(row.Means[0], row.Means[1], row.Significant)
		}
	}
	return t, nil
}

// metricNames returns the union of all metric names, in
// first-appearance order across result sets.
func (c *Collection) metricNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, rs := range c.results {
		for _, m := range rs.MetricNames() {
			if !seen[m] {
				seen[m] = true
				names = append(names, m)
			}
		}
	}
	return names
}

// gather fills the per-configuration summary columns of row and
// returns the raw samples. It reports false if any configuration has
// no data for the metric.
func (c *Collection) gather(metric string, row *Row) ([][]float64, bool) {
	samples := make([][]float64, len(c.results))
	ok := true
	for i, rs := range c.results {
		xs := rs.Metrics[metric]
		samples[i] = xs
		d := placemath.Describe(xs)
		row.Means = append(row.Means, d.Mean)
		row.Spreads = append(row.Spreads, d.StdDev)
		row.Counts = append(row.Counts, d.N)
		if d.N == 0 {
			row.Note = fmt.Sprintf("(no data in %s)", rs.Name)
			ok = false
		}
	}
	return samples, ok
}

func (c *Collection) compareTwo(row *Row, a, b []float64, thr *placemath.Thresholds) {
	switch test := c.Test; test {
	case TTest, "":
		res, err := placemath.TTest(a, b, false, thr)
		if err != nil || !res.Valid {
			row.Note = testFailure(err)
			return
		}
		row.P = res.P
		row.Significant = res.Significant
	case Wilcoxon:
		res, err := placemath.WilcoxonSignedRank(a, b, thr)
		if err != nil || !res.Valid {
			row.Note = testFailure(err)
			return
		}
		row.P = res.P
		row.Significant = res.Significant
	case UTest:
		res, err := stats.MannWhitneyUTest(a, b, stats.LocationDiffers)
		if err != nil {
			row.Note = testFailure(err)
			return
		}
		row.P = res.P
		row.Significant = res.P < c.alpha()
	default:
		row.Note = fmt.Sprintf("(unknown test %q)", test)
		return
	}
	row.Note = fmt.Sprintf("(p=%0.3f n=%d+%d)", row.P, len(a), len(b))

	if es, err := placemath.EffectSizes(a, b); err == nil && es.Valid {
		row.EffectD = es.CohenD
	}
}

func (c *Collection) compareMany(row *Row, samples [][]float64, thr *placemath.Thresholds) {
	res, err := placemath.KruskalWallis(samples, c.configLabels(), thr)
	if err != nil || !res.Valid {
		row.Note = testFailure(err)
		return
	}
	row.P = res.P
	row.Significant = res.Significant
	row.Note = fmt.Sprintf("(H=%0.2f p=%0.3f)", res.H, res.P)
}

func (c *Collection) configLabels() []string {
	labels := make([]string, len(c.results))
	for i, rs := range c.results {
		labels[i] = rs.Name
	}
	return labels
}

// applyCorrection adjusts the p-values of all testable rows as one
// comparison family and rewrites their significance decisions.
func (c *Collection) applyCorrection(t *Table) error {
	var ps []float64
	var labels []string
	var rows []*Row
	for _, row := range t.Rows {
		if !math.IsNaN(row.P) {
			ps = append(ps, row.P)
			labels = append(labels, row.Metric)
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	res, err := placemath.AdjustPValues(ps, labels, c.Correction)
	if err != nil {
		return err
	}
	for i, row := range rows {
		row.PAdj = res.Adjusted[i]
		row.Significant = res.Adjusted[i] < c.alpha()
	}
	return nil
}

func testFailure(err error) string {
	if err == nil {
		return "(degenerate data)"
	}
	return "(" + err.Error() + ")"
}

// formatDelta renders the percent change of new against old, or "~"
// when the difference is not significant.
func formatDelta(old, new float64, significant bool) string {
	if !significant {
		return "~"
	}
	if old == new {
		return "0.00%"
	}
	if old == 0 {
		return "?"
	}
	return fmt.Sprintf("%+.2f%%", (new/old-1)*100)
}
