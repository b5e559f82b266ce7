// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placestat

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// FormatText appends a fixed-width text formatting of the table to buf.
func FormatText(buf *bytes.Buffer, t *Table) {
	rows := toText(t)

	var max []int
	for _, row := range rows {
		for len(max) < len(row) {
			max = append(max, 0)
		}
		for i, s := range row {
			if n := utf8.RuneCountInString(s); max[i] < n {
				max[i] = n
			}
		}
	}

	for _, row := range rows {
		for i, s := range row {
			switch {
			case i == 0:
				fmt.Fprintf(buf, "%-*s", max[i], s)
			case i == len(row)-1:
				// Left-align the trailing note.
				fmt.Fprintf(buf, "  %s", s)
			default:
				fmt.Fprintf(buf, "  %*s", max[i], s)
			}
		}
		fmt.Fprintf(buf, "\n")
	}
}

// FormatCSV appends a CSV formatting of the table to buf.
func FormatCSV(buf *bytes.Buffer, t *Table) error {
	w := csv.NewWriter(buf)
	for _, row := range toCSV(t) {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func toText(t *Table) [][]string {
	header := []string{"metric"}
	for _, c := range t.Configs {
		header = append(header, c)
	}
	if t.OldNewDelta {
		header = append(header, "delta")
	}
	header = append(header, "")

	out := [][]string{header}
	for _, row := range t.Rows {
		cols := []string{row.Metric}
		for i := range t.Configs {
			cols = append(cols, formatSummary(row.Means[i], row.Spreads[i]))
		}
		if t.OldNewDelta {
			cols = append(cols, row.Delta)
		}
		cols = append(cols, row.Note)
		out = append(out, cols)
	}
	return out
}

func toCSV(t *Table) [][]string {
	header := []string{"metric"}
	for _, c := range t.Configs {
		header = append(header, c+" mean", c+" stddev", c+" n")
	}
	header = append(header, "p", "p-adjusted", "effect-d", "significant")
	if t.OldNewDelta {
		header = append(header, "delta")
	}

	out := [][]string{header}
	for _, row := range t.Rows {
		cols := []string{row.Metric}
		for i := range t.Configs {
			cols = append(cols,
				formatFloat(row.Means[i]),
				formatFloat(row.Spreads[i]),
				strconv.Itoa(row.Counts[i]))
		}
		cols = append(cols,
			formatFloat(row.P),
			formatFloat(row.PAdj),
			formatFloat(row.EffectD),
			strconv.FormatBool(row.Significant))
		if t.OldNewDelta {
			cols = append(cols, row.Delta)
		}
		out = append(out, cols)
	}
	return out
}

func formatSummary(mean, stddev float64) string {
	return fmt.Sprintf("%.4g ±%.2g", mean, stddev)
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
