// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Placestat compares the measured performance of VM-placement
// algorithms.
//
// Usage:
//
//	placestat [-alpha α] [-test name] [-correct method] [-html] [-csv] base.txt rival.txt [more.txt ...]
//
// Each input file holds the concatenated measurements of repeated runs
// of one placement algorithm, one "<metric> <value>" pair per line.
// For each metric appearing in the inputs, placestat prints the mean
// and standard deviation per algorithm.
//
// With exactly two input files, placestat also prints the percent
// change in mean from the first file to the second, together with the
// p-value and sample sizes of a significance test on the two
// distributions. If the test reports no significant difference
// (p > 0.05 by default), the delta column shows a single ~ instead.
//
// The -test option selects the two-file significance test: ttest
// (two-sample pooled t-test, the default), wilcoxon (signed-rank test
// on position-paired runs), or utest (Mann-Whitney U-test).
//
// With three or more input files, placestat runs a Kruskal-Wallis test
// per metric across all files and prints no delta column.
//
// The -correct option adjusts the p-values of all metrics as one
// comparison family before deciding significance: bonferroni, holm, or
// bh (Benjamini-Hochberg).
//
// The -html and -csv options select the output format.
//
// Example
//
// Suppose run.sh replays a cluster trace under a placement algorithm
// and emits one metric line per run:
//
//	$ for i in $(seq 10); do ./run.sh -algo ffd; done > ffd.txt
//	$ for i in $(seq 10); do ./run.sh -algo bfd; done > bfd.txt
//	$ placestat ffd.txt bfd.txt
//	metric              ffd          bfd  delta
//	energy-kwh   1236 ±4.2   1114 ±5.1   -9.87% (p=0.000 n=10+10)
//	migrations   30.2 ±0.92  29.9 ±1.1       ~  (p=0.476 n=10+10)
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/vmplace/placeperf/placefmt"
	"github.com/vmplace/placeperf/placemath"
	"github.com/vmplace/placeperf/placestat"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: placestat [options] base.txt rival.txt [more.txt ...]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagAlpha   = flag.Float64("alpha", 0.05, "consider change significant if p < `α`")
	flagTest    = flag.String("test", "ttest", "significance `test` for two inputs: ttest, wilcoxon, or utest")
	flagCorrect = flag.String("correct", "", "multiple-comparison `method`: bonferroni, holm, or bh")
	flagHTML    = flag.Bool("html", false, "print results as an HTML table")
	flagCSV     = flag.Bool("csv", false, "print results in CSV form")
)

var testNames = map[string]placestat.Test{
	"t":        placestat.TTest,
	"t-test":   placestat.TTest,
	"ttest":    placestat.TTest,
	"wilcoxon": placestat.Wilcoxon,
	"signed":   placestat.Wilcoxon,
	"u":        placestat.UTest,
	"u-test":   placestat.UTest,
	"utest":    placestat.UTest,
}

var correctionNames = map[string]placemath.Method{
	"":           "",
	"none":       "",
	"bonferroni": placemath.Bonferroni,
	"holm":       placemath.Holm,
	"bh":         placemath.BenjaminiHochberg,
	"fdr":        placemath.BenjaminiHochberg,
}

func main() {
	log.SetPrefix("placestat: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	test, testOK := testNames[strings.ToLower(*flagTest)]
	correction, correctOK := correctionNames[strings.ToLower(*flagCorrect)]
	if flag.NArg() < 2 || !testOK || !correctOK {
		flag.Usage()
	}

	c := &placestat.Collection{
		Alpha:      *flagAlpha,
		Test:       test,
		Correction: correction,
	}
	for _, file := range flag.Args() {
		rs, err := placefmt.ReadFile(file)
		if err != nil {
			log.Fatal(err)
		}
		c.AddResultSet(rs)
	}

	table, err := c.Table()
	if err != nil {
		log.Fatal(err)
	}
	var buf bytes.Buffer
	if *flagHTML {
		buf.WriteString(htmlHeader)
		if err := placestat.FormatHTML(&buf, table); err != nil {
			log.Fatal(err)
		}
		buf.WriteString(htmlFooter)
	} else if *flagCSV {
		if err := placestat.FormatCSV(&buf, table); err != nil {
			log.Fatal(err)
		}
	} else {
		placestat.FormatText(&buf, table)
	}
	os.Stdout.Write(buf.Bytes())
}

var htmlHeader = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Placement Algorithm Comparison</title>
<style>
.placestat { border-collapse: collapse; }
.placestat th:nth-child(1) { text-align: left; }
.placestat tbody td:nth-child(1n+2) { text-align: right; padding: 0em 1em; }
.placestat thead th { border-top: 1px solid #666; border-bottom: 1px solid #ccc; }
</style>
</head>
<body>
`
var htmlFooter = `</body>
</html>
`
