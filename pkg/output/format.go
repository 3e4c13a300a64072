// Package output provides utilities for formatting and displaying optimization results.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/production-optimizer/internal/optimizer"
	"github.com/iwvelando/production-optimizer/pkg/constants"
	"github.com/iwvelando/production-optimizer/pkg/format"
	"github.com/iwvelando/production-optimizer/pkg/lp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Options controls human-readable output.
type Options struct {
	CurrencySymbol string
	MaxRows        int
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, report *optimizer.Report, opts Options) {
	if report == nil {
		return
	}
	if opts.MaxRows <= 0 {
		opts.MaxRows = constants.DefaultMaxRows
	}
	p := message.NewPrinter(language.English)
	s := report.Summary

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("--- Optimal production (%s policy) ---", s.Policy)))
	status := s.Status
	if !report.Result.Found() {
		status = statusStyle.Render(status)
	}
	fmt.Fprintf(w, "Status  | %s\n", status)
	fmt.Fprintf(w, "%-7s | %s\n", label(s.TableName), format.Quantity(s.Tables))
	fmt.Fprintf(w, "%-7s | %s\n", label(s.ChairName), format.Quantity(s.Chairs))
	fmt.Fprintf(w, "Profit  | %s\n", format.Currency(opts.CurrencySymbol, s.Profit))
	if report.Result.Found() {
		fmt.Fprintf(w, "Hours   | %s / %s (slack %s)\n", format.Quantity(s.HoursUsed),
			format.Quantity(report.Problem.Limits.TotalHours), format.Quantity(s.HoursSlack))
		fmt.Fprintf(w, "Wood    | %s / %s (slack %s)\n", format.Quantity(s.WoodUsed),
			format.Quantity(report.Problem.Limits.TotalWood), format.Quantity(s.WoodSlack))
		binding := "none"
		if len(s.Binding) > 0 {
			binding = strings.Join(s.Binding, ", ")
		}
		fmt.Fprintf(w, "Binding | %s\n", binding)
	}
	writeList(w, "Notes", s.Notes)
	writeList(w, "Warnings", report.Warnings)

	if len(report.Corners) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("--- Corner points ---"))
		fmt.Fprintf(w, "x        | y        | Profit\n")
		fmt.Fprintf(w, "________ | ________ | ______\n")
		for _, corner := range report.Corners {
			c := report.Problem.Evaluate(corner)
			fmt.Fprintf(w, "%-8s | %-8s | %s\n", format.Quantity(c.X), format.Quantity(c.Y),
				format.Currency(opts.CurrencySymbol, c.Profit))
		}
	}

	if len(report.Result.Candidates) > 0 {
		top := topCandidates(report.Result.Candidates, opts.MaxRows)
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render(
			p.Sprintf("--- Top %d of %d feasible candidates ---", len(top), len(report.Result.Candidates))))
		fmt.Fprintf(w, "x        | y        | Profit\n")
		fmt.Fprintf(w, "________ | ________ | ______\n")
		for _, c := range top {
			fmt.Fprintf(w, "%-8s | %-8s | %s\n", format.Quantity(c.X), format.Quantity(c.Y),
				format.Currency(opts.CurrencySymbol, c.Profit))
		}
	}
}

// CsvFormat outputs the evaluated points in comma-separated value format. Grid
// results list every feasible candidate; corner results list the vertices.
func CsvFormat(w io.Writer, report *optimizer.Report) {
	if report == nil {
		return
	}
	rows := report.Result.Candidates
	selected := report.Result.Best.Point
	if report.Result.Policy == lp.PolicyCorner {
		rows = report.Result.Corners
		if report.Result.Vertex != nil {
			selected = report.Result.Vertex.Point
		}
	}

	fmt.Fprintf(w, `"x","y","profit","hoursUsed","woodUsed","selected"`)
	fmt.Fprintf(w, "\n")
	for _, c := range rows {
		mark := ""
		if report.Result.Found() && c.Point == selected {
			mark = "yes"
		}
		fmt.Fprintf(w, `"%g","%g","%.2f","%.2f","%.2f","%s"`, c.X, c.Y, c.Profit, c.HoursUsed, c.WoodUsed, mark)
		fmt.Fprintf(w, "\n")
	}
}

// CsvString returns the CSV representation of the report.
func CsvString(report *optimizer.Report) string {
	var buf bytes.Buffer
	CsvFormat(&buf, report)
	return buf.String()
}

// JSONFormat outputs the report as indented JSON, keeping at most maxCandidates
// grid candidates.
func JSONFormat(w io.Writer, report *optimizer.Report, maxCandidates int) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report.View(maxCandidates)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func topCandidates(candidates []lp.Candidate, n int) []lp.Candidate {
	sorted := make([]lp.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Profit > sorted[j].Profit
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func label(name string) string {
	runes := []rune(name)
	if len(runes) > 7 {
		return string(runes[:7])
	}
	return name
}
