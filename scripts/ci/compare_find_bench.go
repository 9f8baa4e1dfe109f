// Command compare_find_bench checks `go test -bench BenchmarkFind` output
// against a baseline run and exits non-zero when a case regresses.
//
// The "all" cases scan the whole buffer and get a tight time budget. The
// "position" cases are short and noisier, so they get a looser one. Both
// fail when allocations per op grow, since find.All should allocate only
// for the rune copies and the result slice.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	findLinePattern = regexp.MustCompile(`^(BenchmarkFind/\S+?)(?:-\d+)?\s+\d+\s+(.*)$`)
	metricPattern   = regexp.MustCompile(`([\d.]+)\s+(ns/op|B/op|allocs/op)`)
	findCases       = []string{
		"BenchmarkFind/small/all",
		"BenchmarkFind/small/position",
		"BenchmarkFind/large/all",
		"BenchmarkFind/large/position",
	}
)

type findResult struct {
	nsPerOp     float64
	allocsPerOp float64
}

type caseReport struct {
	name        string
	base, curr  findResult
	timeDelta   float64
	budget      float64
	allocGrowth bool
}

func (r caseReport) ok() bool {
	return r.timeDelta <= r.budget && !r.allocGrowth
}

func main() {
	baselinePath := flag.String("baseline", "", "benchmark output of the base commit")
	currentPath := flag.String("current", "", "benchmark output of the change")
	allBudget := flag.Float64("all-max-pct", 15, "allowed ns/op regression for the all cases")
	positionBudget := flag.Float64("position-max-pct", 30, "allowed ns/op regression for the position cases")
	flag.Parse()

	if *baselinePath == "" || *currentPath == "" {
		fail("both -baseline and -current are required")
	}

	baseline, err := readFindResults(*baselinePath)
	if err != nil {
		fail("baseline: %v", err)
	}
	current, err := readFindResults(*currentPath)
	if err != nil {
		fail("current: %v", err)
	}

	budgets := map[string]float64{"all": *allBudget, "position": *positionBudget}
	reports, err := compareFindResults(baseline, current, budgets)
	if err != nil {
		fail("%v", err)
	}

	writeReport(os.Stdout, reports)
	if summary := os.Getenv("GITHUB_STEP_SUMMARY"); summary != "" {
		f, err := os.OpenFile(summary, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
		if err != nil {
			fail("open step summary: %v", err)
		}
		writeReport(f, reports)
		f.Close()
	}

	for _, r := range reports {
		if !r.ok() {
			os.Exit(1)
		}
	}
}

func readFindResults(file string) (map[string]findResult, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseFindResults(f)
}

// parseFindResults keeps the last sample of each case, so output from
// -count=N runs resolves to the final run.
func parseFindResults(r io.Reader) (map[string]findResult, error) {
	results := map[string]findResult{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := findLinePattern.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil {
			continue
		}
		var res findResult
		for _, metric := range metricPattern.FindAllStringSubmatch(m[2], -1) {
			v, err := strconv.ParseFloat(metric[1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", m[1], metric[2], err)
			}
			switch metric[2] {
			case "ns/op":
				res.nsPerOp = v
			case "allocs/op":
				res.allocsPerOp = v
			}
		}
		results[m[1]] = res
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.New("no BenchmarkFind results")
	}
	return results, nil
}

func compareFindResults(baseline, current map[string]findResult, budgets map[string]float64) ([]caseReport, error) {
	reports := make([]caseReport, 0, len(findCases))
	for _, name := range findCases {
		curr, ok := current[name]
		if !ok {
			return nil, fmt.Errorf("missing current result for %s", name)
		}
		base, ok := baseline[name]
		if !ok {
			// A case added by this change has nothing to compare against yet.
			base = curr
		}
		if base.nsPerOp <= 0 {
			return nil, fmt.Errorf("baseline ns/op for %s is %v", name, base.nsPerOp)
		}
		reports = append(reports, caseReport{
			name:        name,
			base:        base,
			curr:        curr,
			timeDelta:   (curr.nsPerOp - base.nsPerOp) / base.nsPerOp * 100,
			budget:      budgets[path.Base(name)],
			allocGrowth: curr.allocsPerOp > base.allocsPerOp,
		})
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].name < reports[j].name })
	return reports, nil
}

func writeReport(out io.Writer, reports []caseReport) {
	fmt.Fprintln(out, "## Find benchmarks")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "| Case | ns/op base | ns/op now | Delta | Budget | allocs/op | Result |")
	fmt.Fprintln(out, "|---|---:|---:|---:|---:|---:|---|")
	for _, r := range reports {
		result := "ok"
		if !r.ok() {
			result = "REGRESSED"
		}
		fmt.Fprintf(out, "| %s | %.0f | %.0f | %+.1f%% | %.0f%% | %.0f → %.0f | %s |\n",
			strings.TrimPrefix(r.name, "BenchmarkFind/"), r.base.nsPerOp, r.curr.nsPerOp,
			r.timeDelta, r.budget, r.base.allocsPerOp, r.curr.allocsPerOp, result)
	}
	fmt.Fprintln(out)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "compare_find_bench: "+format+"\n", args...)
	os.Exit(2)
}
