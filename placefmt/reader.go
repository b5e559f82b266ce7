// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package placefmt reads the measurement files produced by
// VM-placement simulation runs.
//
// A measurement file holds one line per measurement in the form
//
//	<metric> <value>
//
// for example "energy-kwh 1234.5" or "sla-violations 3". Blank lines
// and lines starting with '#' are ignored. Anything after the value is
// ignored, and lines whose value does not parse are skipped, so the
// format tolerates log noise from the simulator.
package placefmt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A ResultSet holds all measurements from one simulation run of one
// placement algorithm, grouped by metric.
type ResultSet struct {
	// Name identifies the run, typically the input file name or
	// the algorithm name.
	Name string

	// Metrics maps a metric name to its measured values in file
	// order.
	Metrics map[string][]float64

	order []string
}

// MetricNames returns the metric names in first-appearance order.
func (rs *ResultSet) MetricNames() []string {
	return append([]string(nil), rs.order...)
}

func (rs *ResultSet) add(metric string, v float64) {
	if _, ok := rs.Metrics[metric]; !ok {
		rs.order = append(rs.order, metric)
	}
	rs.Metrics[metric] = append(rs.Metrics[metric], v)
}

// Read parses measurement data from r. The name is recorded on the
// returned ResultSet and used in error messages. An input with no
// valid measurement lines yields an empty ResultSet, not an error.
func Read(r io.Reader, name string) (*ResultSet, error) {
	rs := &ResultSet{Name: name, Metrics: make(map[string][]float64)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			continue
		}
		rs.add(f[0], v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return rs, nil
}

// ReadFile parses the measurement file at path. The ResultSet is named
// after the file.
func ReadFile(path string) (*ResultSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}
